package transform

import (
	"reflect"
	"testing"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
)

func TestApplyEmotionalMode_NormalIsIdentity(t *testing.T) {
	p := engine.QueryPayload{
		Titles: []string{"Developer", "Engineer", "Architect", "Lead"},
		Skills: []string{"Go", "Rust", "Python"},
	}
	res := ApplyEmotionalMode(p, engine.ModeNormal)
	if !reflect.DeepEqual(res.Payload, p) {
		t.Error("normal mode should return the payload unchanged")
	}
	if len(res.Adjustments) != 0 {
		t.Errorf("normal mode adjustments = %v, want none", res.Adjustments)
	}
	if res.UseOrForSkills {
		t.Error("normal mode should not broaden skills")
	}
}

func TestApplyEmotionalMode_UrgentTruncates(t *testing.T) {
	p := engine.QueryPayload{
		Titles: []string{"Developer", "Engineer", "Architect", "Lead"},
		Skills: []string{"Go", "Rust", "Python"},
	}
	res := ApplyEmotionalMode(p, engine.ModeUrgent)

	if len(res.Payload.Titles) != 3 {
		t.Errorf("urgent titles = %d, want 3", len(res.Payload.Titles))
	}
	if len(res.Payload.Skills) != 2 {
		t.Errorf("urgent skills = %d, want 2", len(res.Payload.Skills))
	}
	if !res.UseOrForSkills {
		t.Error("urgent mode with 2 skills should broaden with OR")
	}

	found := false
	for _, a := range res.Adjustments {
		if a == "Reduced titles from 4 to 3" {
			found = true
		}
	}
	if !found {
		t.Errorf("adjustments %v missing title reduction message", res.Adjustments)
	}

	// Input untouched.
	if len(p.Titles) != 4 || len(p.Skills) != 3 {
		t.Error("urgent mode mutated the input payload")
	}
}

func TestApplyEmotionalMode_UrgentKeepsEssentialExcludes(t *testing.T) {
	p := engine.QueryPayload{
		Titles:  []string{"Developer"},
		Exclude: []string{"crypto", "Junior Developer", "agency", "Intern"},
	}
	res := ApplyEmotionalMode(p, engine.ModeUrgent)
	want := []string{"Junior Developer", "Intern"}
	if !reflect.DeepEqual(res.Payload.Exclude, want) {
		t.Errorf("urgent excludes = %v, want %v", res.Payload.Exclude, want)
	}
}

func TestApplyEmotionalMode_UrgentExcludeFallback(t *testing.T) {
	// No essential terms: fall back to the first two.
	p := engine.QueryPayload{
		Titles:  []string{"Developer"},
		Exclude: []string{"crypto", "agency", "consulting"},
	}
	res := ApplyEmotionalMode(p, engine.ModeUrgent)
	want := []string{"crypto", "agency"}
	if !reflect.DeepEqual(res.Payload.Exclude, want) {
		t.Errorf("fallback excludes = %v, want %v", res.Payload.Exclude, want)
	}
}

func TestApplyEmotionalMode_UrgentExcludeCap(t *testing.T) {
	p := engine.QueryPayload{
		Titles:  []string{"Developer"},
		Exclude: []string{"intern", "junior", "student", "trainee", "graduate"},
	}
	res := ApplyEmotionalMode(p, engine.ModeUrgent)
	if len(res.Payload.Exclude) != urgentMaxExcludes {
		t.Errorf("urgent excludes = %d, want cap %d", len(res.Payload.Exclude), urgentMaxExcludes)
	}
}

func TestApplyEmotionalMode_Chill(t *testing.T) {
	p := engine.QueryPayload{
		Titles: []string{"Developer", "Engineer", "Architect", "Lead"},
		Skills: []string{"Go", "Rust", "Python"},
	}
	res := ApplyEmotionalMode(p, engine.ModeChill)

	if !reflect.DeepEqual(res.Payload.Titles, p.Titles) || !reflect.DeepEqual(res.Payload.Skills, p.Skills) {
		t.Error("chill mode should keep every term")
	}
	if len(res.Adjustments) != 1 {
		t.Errorf("chill adjustments = %v, want exactly one", res.Adjustments)
	}
	if res.UseOrForSkills {
		t.Error("chill mode should not broaden skills")
	}
}
