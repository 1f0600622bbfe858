package platforms

import (
	"fmt"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
	"github.com/anatolykoptev/go_sourcing/internal/engine/query"
)

// MENA boards with partial Boolean support: OR survives for titles, the rest
// degrades to implicit AND. One adapter type, three instances.
type menaBoardAdapter struct {
	meta
	searchBase  string
	searchParam string
}

func partialBooleanCaps() engine.Capabilities {
	return engine.Capabilities{
		SupportsBoolean:      true,
		SupportsParentheses:  true,
		SupportsQuotes:       true,
		SupportsOr:           true,
		SupportsMinusExclude: true,
		BooleanLevel:         engine.BooleanPartial,
		Region:               engine.RegionMENA,
	}
}

func (a *menaBoardAdapter) BuildQuery(p engine.QueryPayload) engine.QueryResult {
	q := query.SimplifyBoolean(p)
	count := query.CountSimplifiedOperators(q)
	warnings := []string{
		fmt.Sprintf("%s has partial Boolean support; the query was simplified to OR groups and plain terms", a.label),
	}
	badge := engine.BadgeSafe
	if count >= 10 {
		warnings = append(warnings, fmt.Sprintf("Query uses %d operators; consider trimming terms", count))
		badge = engine.BadgeWarning
	}
	return engine.QueryResult{
		Query:         q,
		OperatorCount: count,
		Warnings:      warnings,
		Badge:         badge,
	}
}

func (a *menaBoardAdapter) BuildURL(_ engine.QueryPayload, booleanQuery string) string {
	return searchURL(a.searchBase, a.searchParam, booleanQuery)
}

func newBayt() *menaBoardAdapter {
	return &menaBoardAdapter{
		meta: meta{
			id:          "bayt",
			label:       "Bayt",
			description: "Leading MENA job board; quoted phrases and OR groups work, NOT does not.",
			notes: []string{
				"Exclusions degrade to minus terms and are not always honored.",
			},
			searchTypes: []engine.SearchType{engine.SearchJobs},
			caps:        partialBooleanCaps(),
		},
		searchBase:  "https://www.bayt.com/en/international/jobs/",
		searchParam: "q",
	}
}

func newGulfTalent() *menaBoardAdapter {
	return &menaBoardAdapter{
		meta: meta{
			id:          "gulftalent",
			label:       "GulfTalent",
			description: "Gulf-region professional job board with simplified keyword search.",
			notes: []string{
				"Keep queries short; GulfTalent matches fewer terms than LinkedIn.",
			},
			searchTypes: []engine.SearchType{engine.SearchJobs},
			caps:        partialBooleanCaps(),
		},
		searchBase:  "https://www.gulftalent.com/jobs/search",
		searchParam: "keywords",
	}
}

func newNaukriGulf() *menaBoardAdapter {
	return &menaBoardAdapter{
		meta: meta{
			id:          "naukrigulf",
			label:       "Naukrigulf",
			description: "Gulf arm of Naukri; OR groups survive, everything else is keywords.",
			notes: []string{
				"Location belongs in the query text; there is no separate location field.",
			},
			searchTypes: []engine.SearchType{engine.SearchJobs},
			caps:        partialBooleanCaps(),
		},
		searchBase:  "https://www.naukrigulf.com/jobs-in-gulf",
		searchParam: "keyword",
	}
}
