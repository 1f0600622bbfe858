package platforms

import (
	"fmt"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
	"github.com/anatolykoptev/go_sourcing/internal/engine/query"
)

// Keyword-only boards: no Boolean syntax at all. The payload is flattened to
// plain terms, so the result is always operator-free and safe.
type keywordBoardAdapter struct {
	meta
	searchBase  string
	searchParam string
}

func keywordOnlyCaps(region engine.Region) engine.Capabilities {
	return engine.Capabilities{
		BooleanLevel: engine.BooleanNone,
		Region:       region,
	}
}

func (a *keywordBoardAdapter) BuildQuery(p engine.QueryPayload) engine.QueryResult {
	return engine.QueryResult{
		Query: query.FlattenKeywords(p),
		Warnings: []string{
			fmt.Sprintf("%s does not support Boolean search; terms were flattened to plain keywords", a.label),
		},
		Badge: engine.BadgeSafe,
	}
}

func (a *keywordBoardAdapter) BuildURL(_ engine.QueryPayload, booleanQuery string) string {
	return searchURL(a.searchBase, a.searchParam, booleanQuery)
}

func newArabJobs() *keywordBoardAdapter {
	return &keywordBoardAdapter{
		meta: meta{
			id:          "arabjobs",
			label:       "ArabJobs",
			description: "Pan-Arab job board; plain keyword matching only.",
			searchTypes: []engine.SearchType{engine.SearchJobs},
			caps:        keywordOnlyCaps(engine.RegionMENA),
		},
		searchBase:  "https://www.arabjobs.com/jobs/search",
		searchParam: "q",
	}
}

func newBeBee() *keywordBoardAdapter {
	return &keywordBoardAdapter{
		meta: meta{
			id:          "bebee",
			label:       "beBee",
			description: "Professional network job feed; plain keyword matching only.",
			searchTypes: []engine.SearchType{engine.SearchJobs},
			caps:        keywordOnlyCaps(engine.RegionGlobal),
		},
		searchBase:  "https://www.bebee.com/jobs",
		searchParam: "term",
	}
}

func newGulfJobs() *keywordBoardAdapter {
	return &keywordBoardAdapter{
		meta: meta{
			id:          "gulfjobs",
			label:       "GulfJobs",
			description: "Gulf-region aggregator; plain keyword matching only.",
			searchTypes: []engine.SearchType{engine.SearchJobs},
			caps:        keywordOnlyCaps(engine.RegionMENA),
		},
		searchBase:  "https://www.gulfjobs.com/jobs",
		searchParam: "search",
	}
}

func newRecruitNet() *keywordBoardAdapter {
	return &keywordBoardAdapter{
		meta: meta{
			id:          "recruitnet",
			label:       "Recruit.net",
			description: "Global aggregator; plain keyword matching only.",
			searchTypes: []engine.SearchType{engine.SearchJobs},
			caps:        keywordOnlyCaps(engine.RegionGlobal),
		},
		searchBase:  "https://www.recruit.net/search",
		searchParam: "query",
	}
}
