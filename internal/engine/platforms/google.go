package platforms

import (
	"net/url"
	"strings"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
	"github.com/anatolykoptev/go_sourcing/internal/engine/query"
)

const googleSearch = "https://www.google.com/search"

// googleDefaultPeopleSite is the X-ray default: people searches restrict to
// LinkedIn profiles unless a site filter overrides it.
const googleDefaultPeopleSite = "linkedin.com/in"

type googleAdapter struct{ meta }

func newGoogle() *googleAdapter {
	caps := fullBooleanCaps()
	caps.SupportsMinusExclude = true
	caps.SupportsNot = false
	return &googleAdapter{meta{
		id:          "google",
		label:       "Google",
		description: "X-ray search: Boolean queries with site: restriction and minus exclusions.",
		notes: []string{
			"People searches restrict to linkedin.com/in unless the site filter overrides it.",
			"Skills join with OR by default; set filter skills_joiner=and to tighten.",
		},
		searchTypes: []engine.SearchType{engine.SearchPeople, engine.SearchJobs},
		caps:        caps,
	}}
}

// sitePrefix resolves the toggle-controlled site: restriction.
func (a *googleAdapter) sitePrefix(p engine.QueryPayload) string {
	if site := strings.TrimSpace(p.Filter("site")); site != "" {
		if site == "none" {
			return ""
		}
		return "site:" + site
	}
	if p.SearchType == engine.SearchPeople {
		return "site:" + googleDefaultPeopleSite
	}
	return ""
}

func (a *googleAdapter) BuildQuery(p engine.QueryPayload) engine.QueryResult {
	// Skills joiner: OR by default, AND on request.
	orSkills := !strings.EqualFold(p.Filter("skills_joiner"), "and")
	return query.Build(p, query.Options{
		NotOperator:              "-",
		SitePrefix:               a.sitePrefix(p),
		WrapGroups:               true,
		UppercaseOperators:       true,
		OrSkills:                 orSkills || p.UseOrForSkills,
		IncludeLocation:          strings.EqualFold(p.Filter("include_location"), "true"),
		OperatorWarningThreshold: 20,
		QueryLengthWarning:       350,
	})
}

func (a *googleAdapter) BuildURL(_ engine.QueryPayload, booleanQuery string) string {
	return searchURL(googleSearch, "q", booleanQuery)
}

type googleJobsAdapter struct{ meta }

func newGoogleJobs() *googleJobsAdapter {
	caps := fullBooleanCaps()
	caps.SupportsMinusExclude = true
	caps.SupportsNot = false
	return &googleJobsAdapter{meta{
		id:          "google-jobs",
		label:       "Google Jobs",
		description: "Google's jobs panel; Boolean works but long queries degrade fast.",
		notes: []string{
			"Keep queries short: the jobs panel matches far less text than web search.",
		},
		searchTypes: []engine.SearchType{engine.SearchJobs},
		caps:        caps,
	}}
}

func (a *googleJobsAdapter) BuildQuery(p engine.QueryPayload) engine.QueryResult {
	return query.Build(p, query.Options{
		NotOperator:              "-",
		WrapGroups:               true,
		UppercaseOperators:       true,
		OrSkills:                 p.UseOrForSkills,
		IncludeLocation:          true,
		OperatorWarningThreshold: 10,
		QueryLengthWarning:       150,
	})
}

func (a *googleJobsAdapter) BuildURL(_ engine.QueryPayload, booleanQuery string) string {
	if booleanQuery == "" {
		return ""
	}
	u, err := url.Parse(googleSearch)
	if err != nil {
		return ""
	}
	q := u.Query()
	q.Set("q", booleanQuery+" jobs")
	q.Set("ibp", "htl;jobs")
	u.RawQuery = q.Encode()
	return u.String()
}
