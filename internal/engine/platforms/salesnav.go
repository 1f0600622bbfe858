package platforms

import (
	"fmt"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
	"github.com/anatolykoptev/go_sourcing/internal/engine/query"
)

const salesNavSearch = "https://www.linkedin.com/sales/search/people"

// salesNavOperatorLimit is a hard cap enforced by Sales Navigator itself.
const salesNavOperatorLimit = 15

type salesNavAdapter struct{ meta }

func newSalesNavigator() *salesNavAdapter {
	caps := fullBooleanCaps()
	caps.MaxOperators = salesNavOperatorLimit
	return &salesNavAdapter{meta{
		id:          "salesnav",
		label:       "Sales Navigator",
		description: "LinkedIn Sales Navigator people search; full Boolean, capped at 15 operators.",
		notes: []string{
			"Requires a Sales Navigator seat.",
		},
		searchTypes: []engine.SearchType{engine.SearchPeople},
		caps:        caps,
	}}
}

func (a *salesNavAdapter) BuildQuery(p engine.QueryPayload) engine.QueryResult {
	res := query.Build(p, query.Options{
		NotOperator:              "NOT",
		WrapGroups:               true,
		UppercaseOperators:       true,
		OrSkills:                 p.UseOrForSkills,
		OperatorWarningThreshold: 10,
		OperatorLimit:            salesNavOperatorLimit,
		QueryLengthWarning:       400,
	})
	if res.OperatorCount > salesNavOperatorLimit {
		// One message per condition: the specific cap warning replaces the
		// builder's generic over-limit one.
		query.ReplaceOverLimitWarning(&res, fmt.Sprintf(
			"Sales Navigator supports up to %d Boolean operators; this query uses %d",
			salesNavOperatorLimit, res.OperatorCount))
		res.Badge = engine.BadgeDanger
	}
	return res
}

func (a *salesNavAdapter) BuildURL(_ engine.QueryPayload, booleanQuery string) string {
	return searchURL(salesNavSearch, "keywords", booleanQuery)
}
