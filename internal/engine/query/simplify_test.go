package query

import (
	"testing"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
)

func TestFlattenKeywords(t *testing.T) {
	p := engine.QueryPayload{
		Titles:   []string{"Developer", "Software Engineer"},
		Skills:   []string{"Go"},
		Exclude:  []string{"Junior"},
		Location: "Riyadh",
	}
	got := FlattenKeywords(p)
	want := `Developer "Software Engineer" Go -Junior Riyadh`
	if got != want {
		t.Errorf("FlattenKeywords = %q, want %q", got, want)
	}
	if ops := CountOperators(got); ops != 1 {
		t.Errorf("flattened query has %d operators, want 1 (the minus)", ops)
	}
}

func TestSimplifyBoolean(t *testing.T) {
	tests := []struct {
		name string
		p    engine.QueryPayload
		want string
	}{
		{
			"titles keep OR",
			engine.QueryPayload{Titles: []string{"Developer", "Engineer"}},
			"(Developer OR Engineer)",
		},
		{
			"single title unwrapped",
			engine.QueryPayload{Titles: []string{"Developer"}},
			"Developer",
		},
		{
			"skills space joined",
			engine.QueryPayload{Skills: []string{"Go", "Docker"}},
			"Go Docker",
		},
		{
			"full payload",
			engine.QueryPayload{
				Titles:   []string{"Developer", "Engineer"},
				Skills:   []string{"Go"},
				Location: "Dubai",
				Exclude:  []string{"Junior"},
			},
			"(Developer OR Engineer) Go Dubai -Junior",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SimplifyBoolean(tt.p); got != tt.want {
				t.Errorf("SimplifyBoolean = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCountSimplifiedOperators(t *testing.T) {
	tests := []struct {
		query string
		want  int
	}{
		{"", 0},
		{"(Developer OR Engineer) Go -Junior", 2},
		{"a AND b NOT c", 0}, // AND and NOT are not counted on partial platforms
		{"-x -y -z", 3},
	}
	for _, tt := range tests {
		if got := CountSimplifiedOperators(tt.query); got != tt.want {
			t.Errorf("CountSimplifiedOperators(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}
