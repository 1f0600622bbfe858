package transform

import (
	"strings"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
	"github.com/anatolykoptev/go_sourcing/internal/engine/query"
)

// manySignalPhrases is the combined include+exclude count past which the
// injected phrases start to dominate the query.
const manySignalPhrases = 10

// SignalsResult is the outcome of a hiring-signals pass.
type SignalsResult struct {
	Payload     engine.QueryPayload
	Explanation engine.SignalsExplanation
}

// ApplyHiringSignals injects the selected signal phrases into a people-search
// payload: deduplicated includes land in SignalIncludes, deduplicated
// excludes merge into Exclude (case-insensitively, skipping duplicates).
// Anything other than an enabled people search with a non-empty selection is
// a no-op returning the input payload unchanged.
func ApplyHiringSignals(p engine.QueryPayload, caps engine.Capabilities) SignalsResult {
	hs := p.HiringSignals
	if hs == nil || !hs.Enabled || p.SearchType != engine.SearchPeople || len(hs.Selected) == 0 {
		return SignalsResult{Payload: p}
	}

	c := p.Clone()
	var applied, includes, excludes []string
	for _, id := range hs.Selected {
		def, ok := SignalByID(id)
		if !ok {
			continue
		}
		applied = append(applied, def.ID)
		includes = append(includes, def.IncludePhrases...)
		excludes = append(excludes, def.ExcludePhrases...)
	}

	includes = query.Dedupe(includes)
	excludes = query.Dedupe(excludes)

	if len(includes) > 0 {
		c.SignalIncludes = includes
	}
	if len(excludes) > 0 {
		existing := make(map[string]bool, len(c.Exclude))
		for _, e := range c.Exclude {
			existing[strings.ToLower(strings.TrimSpace(e))] = true
		}
		for _, e := range excludes {
			key := strings.ToLower(e)
			if existing[key] {
				continue
			}
			existing[key] = true
			c.Exclude = append(c.Exclude, e)
		}
	}

	var warnings []string
	if len(includes)+len(excludes) > manySignalPhrases {
		warnings = append(warnings, "Many signal phrases selected; the query may get noisy")
	}
	if !(caps.Region == engine.RegionGlobal && caps.BooleanLevel == engine.BooleanGood) {
		warnings = append(warnings, "Hiring signals work best on LinkedIn and Sales Navigator")
	}

	return SignalsResult{
		Payload: c,
		Explanation: engine.SignalsExplanation{
			Enabled:          true,
			AppliedSignals:   applied,
			InjectedIncludes: includes,
			InjectedExcludes: excludes,
			Warnings:         warnings,
		},
	}
}
