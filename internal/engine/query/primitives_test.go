package query

import (
	"reflect"
	"testing"
)

func TestDedupe_CaseInsensitive(t *testing.T) {
	got := Dedupe([]string{"Developer", "developer", "DEVELOPER"})
	want := []string{"Developer"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dedupe = %v, want %v", got, want)
	}
}

func TestDedupe_Table(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  []string
	}{
		{"nil", nil, nil},
		{"empties dropped", []string{"", "  ", "Go"}, []string{"Go"}},
		{"trims", []string{" Go ", "Rust"}, []string{"Go", "Rust"}},
		{"order preserved", []string{"b", "a", "B", "c"}, []string{"b", "a", "c"}},
		{"all empty", []string{"", " "}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dedupe(tt.items)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Dedupe(%v) = %v, want %v", tt.items, got, tt.want)
			}
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Software Engineer", `"Software Engineer"`},
		{"Developer", "Developer"},
		{"C,C++", `"C,C++"`},
		{"(lead)", `"(lead)"`},
		{"  padded  ", "padded"},
		{"", ""},
		{`"talent acquisition"`, `"talent acquisition"`}, // pre-quoted passes through
		{`"fresh graduate"`, `"fresh graduate"`},
		{`"`, `"`}, // a lone quote is content, not wrapping
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnsupportedChars(t *testing.T) {
	got := UnsupportedChars("dev* [senior] <go>")
	want := []string{"*", "[", "]", "<", ">"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UnsupportedChars = %v, want %v", got, want)
	}
	if got := UnsupportedChars("plain text"); got != nil {
		t.Errorf("UnsupportedChars(clean) = %v, want nil", got)
	}
}

func TestCountOperators(t *testing.T) {
	tests := []struct {
		clause string
		want   int
	}{
		{"", 0},
		{"Developer AND Go", 1},
		{"(a OR b) AND c NOT d", 3},
		{"go -junior -intern", 2},
		{"and or not", 3},          // case-insensitive
		{"full-stack developer", 0}, // hyphen inside a word is not an operator
		{`-"Senior Manager"`, 1},
	}
	for _, tt := range tests {
		if got := CountOperators(tt.clause); got != tt.want {
			t.Errorf("CountOperators(%q) = %d, want %d", tt.clause, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  a   b  ", "a b"},
		{"AND a AND b AND", "a AND b"},
		{"AND AND x", "x"},
		{"AND", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
