package transform

import (
	"reflect"
	"testing"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
)

func goodCaps() engine.Capabilities {
	return engine.Capabilities{
		BooleanLevel: engine.BooleanGood,
		Region:       engine.RegionGlobal,
	}
}

func TestApplyHiringSignals_NoOpForNonPeople(t *testing.T) {
	p := engine.QueryPayload{
		SearchType:    engine.SearchJobs,
		Titles:        []string{"Developer"},
		HiringSignals: &engine.HiringSignals{Enabled: true, Selected: []string{"open-to-work"}},
	}
	res := ApplyHiringSignals(p, goodCaps())
	if !reflect.DeepEqual(res.Payload, p) {
		t.Error("non-people search should pass through unchanged")
	}
	if res.Explanation.Enabled {
		t.Error("no-op pass should not report an enabled explanation")
	}
}

func TestApplyHiringSignals_NoOpWhenDisabledOrEmpty(t *testing.T) {
	base := engine.QueryPayload{SearchType: engine.SearchPeople, Titles: []string{"Developer"}}

	tests := []struct {
		name string
		hs   *engine.HiringSignals
	}{
		{"nil signals", nil},
		{"disabled", &engine.HiringSignals{Enabled: false, Selected: []string{"open-to-work"}}},
		{"empty selection", &engine.HiringSignals{Enabled: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			p.HiringSignals = tt.hs
			res := ApplyHiringSignals(p, goodCaps())
			if !reflect.DeepEqual(res.Payload, p) {
				t.Error("expected unchanged payload")
			}
		})
	}
}

func TestApplyHiringSignals_InjectsIncludesAndExcludes(t *testing.T) {
	p := engine.QueryPayload{
		SearchType: engine.SearchPeople,
		Titles:     []string{"Developer"},
		Exclude:    []string{"Recruiter"},
		HiringSignals: &engine.HiringSignals{
			Enabled:  true,
			Selected: []string{"open-to-work", "exclude-recruiters", "bogus-id"},
		},
	}
	res := ApplyHiringSignals(p, goodCaps())

	if got := res.Explanation.AppliedSignals; !reflect.DeepEqual(got, []string{"open-to-work", "exclude-recruiters"}) {
		t.Errorf("applied = %v", got)
	}
	if len(res.Payload.SignalIncludes) == 0 {
		t.Fatal("expected injected include phrases")
	}
	// "recruiter" already present case-insensitively; only the new excludes land.
	wantExcludes := []string{"Recruiter", `"talent acquisition"`, "staffing"}
	if !reflect.DeepEqual(res.Payload.Exclude, wantExcludes) {
		t.Errorf("excludes = %v, want %v", res.Payload.Exclude, wantExcludes)
	}

	// Input untouched.
	if len(p.SignalIncludes) != 0 || len(p.Exclude) != 1 {
		t.Error("signals pass mutated the input payload")
	}
}

func TestApplyHiringSignals_WarnsOnWeakPlatform(t *testing.T) {
	p := engine.QueryPayload{
		SearchType:    engine.SearchPeople,
		Titles:        []string{"Developer"},
		HiringSignals: &engine.HiringSignals{Enabled: true, Selected: []string{"open-to-work"}},
	}
	caps := engine.Capabilities{BooleanLevel: engine.BooleanPartial, Region: engine.RegionMENA}
	res := ApplyHiringSignals(p, caps)

	found := false
	for _, w := range res.Explanation.Warnings {
		if w == "Hiring signals work best on LinkedIn and Sales Navigator" {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, missing platform warning", res.Explanation.Warnings)
	}
}

func TestApplyHiringSignals_ManyPhrasesWarning(t *testing.T) {
	p := engine.QueryPayload{
		SearchType: engine.SearchPeople,
		Titles:     []string{"Developer"},
		HiringSignals: &engine.HiringSignals{
			Enabled: true,
			Selected: []string{
				"open-to-work", "actively-looking", "exclude-students",
				"exclude-recruiters", "career-switchers",
			},
		},
	}
	res := ApplyHiringSignals(p, goodCaps())

	found := false
	for _, w := range res.Explanation.Warnings {
		if w == "Many signal phrases selected; the query may get noisy" {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, missing noise warning", res.Explanation.Warnings)
	}
}

func TestSignalByID(t *testing.T) {
	if _, ok := SignalByID("open-to-work"); !ok {
		t.Error("open-to-work should exist")
	}
	if _, ok := SignalByID("nope"); ok {
		t.Error("unknown id should not resolve")
	}
}
