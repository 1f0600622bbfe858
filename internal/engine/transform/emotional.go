package transform

import (
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
)

// Urgent-mode caps. Urgent searches keep the query tight enough to scan
// results quickly.
const (
	urgentMaxTitles        = 3
	urgentMaxSkills        = 2
	urgentMaxExcludes      = 4
	urgentFallbackExcludes = 2
)

// essentialExcludeTerms are the exclusions worth keeping even under urgent
// truncation: they cut junior-level noise, which urgent searches suffer
// from the most.
var essentialExcludeTerms = []string{
	"intern", "internship", "junior", "entry", "trainee", "student", "graduate",
}

// EmotionalResult is the outcome of an emotional-mode pass.
type EmotionalResult struct {
	Payload        engine.QueryPayload
	Adjustments    []string
	UseOrForSkills bool
}

// ApplyEmotionalMode adjusts query breadth for the given urgency preset.
// Normal mode passes the payload through untouched (same value, no clone);
// urgent and chill return an adjusted clone and never mutate the input.
func ApplyEmotionalMode(p engine.QueryPayload, mode engine.EmotionalMode) EmotionalResult {
	switch mode {
	case engine.ModeUrgent:
		return applyUrgent(p)
	case engine.ModeChill:
		c := p.Clone()
		return EmotionalResult{
			Payload:     c,
			Adjustments: []string{"Chill mode: keeping every term for maximum result quality"},
		}
	default:
		return EmotionalResult{Payload: p}
	}
}

func applyUrgent(p engine.QueryPayload) EmotionalResult {
	c := p.Clone()
	var adjustments []string

	if len(c.Titles) > urgentMaxTitles {
		adjustments = append(adjustments,
			fmt.Sprintf("Reduced titles from %d to %d", len(c.Titles), urgentMaxTitles))
		c.Titles = c.Titles[:urgentMaxTitles]
	}
	if len(c.Skills) > urgentMaxSkills {
		adjustments = append(adjustments,
			fmt.Sprintf("Reduced skills from %d to %d", len(c.Skills), urgentMaxSkills))
		c.Skills = c.Skills[:urgentMaxSkills]
	}

	useOr := false
	if len(c.Skills) > 1 {
		useOr = true
		adjustments = append(adjustments, "Using OR between skills to broaden matches")
	}

	if len(c.Exclude) > 0 {
		original := len(c.Exclude)
		var kept []string
		for _, e := range c.Exclude {
			if hasEssentialExclude(e) {
				kept = append(kept, e)
			}
		}
		if len(kept) == 0 {
			n := original
			if n > urgentFallbackExcludes {
				n = urgentFallbackExcludes
			}
			kept = append(kept, c.Exclude[:n]...)
		}
		if len(kept) > urgentMaxExcludes {
			kept = kept[:urgentMaxExcludes]
		}
		c.Exclude = kept
		if len(kept) != original {
			adjustments = append(adjustments,
				fmt.Sprintf("Trimmed exclusions from %d to %d", original, len(kept)))
		}
	}

	return EmotionalResult{Payload: c, Adjustments: adjustments, UseOrForSkills: useOr}
}

func hasEssentialExclude(value string) bool {
	lower := strings.ToLower(value)
	for _, term := range essentialExcludeTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
