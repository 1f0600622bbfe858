package platforms

import (
	"net/url"
	"strings"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
	"github.com/anatolykoptev/go_sourcing/internal/engine/query"
)

// LinkedIn search URLs. People search goes through global search; jobs
// search carries its own filter params.
const (
	linkedinPeopleSearch = "https://www.linkedin.com/search/results/people/"
	linkedinJobsSearch   = "https://www.linkedin.com/jobs/search/"
)

// linkedinDatePostedMap maps date-posted buckets to LinkedIn seconds-based codes.
var linkedinDatePostedMap = map[string]string{
	"day":   "r86400",
	"week":  "r604800",
	"month": "r2592000",
}

// linkedinJobTypeMap maps job types to LinkedIn filter codes.
var linkedinJobTypeMap = map[string]string{
	"full-time":  "F",
	"part-time":  "P",
	"contract":   "C",
	"temporary":  "T",
	"internship": "I",
	"volunteer":  "V",
}

// linkedinExperienceMap maps experience levels to LinkedIn filter codes.
var linkedinExperienceMap = map[string]string{
	"internship": "1",
	"entry":      "2",
	"associate":  "3",
	"mid-senior": "4",
	"director":   "5",
	"executive":  "6",
}

// linkedinWorkTypeMap maps remote/onsite to LinkedIn workplace type codes.
var linkedinWorkTypeMap = map[string]string{
	"onsite": "1",
	"hybrid": "2",
	"remote": "3",
}

var linkedinSortMap = map[string]string{
	"recent":   "DD",
	"relevant": "R",
}

// linkedinConnectionMap maps connection levels to the people-search network param.
var linkedinConnectionMap = map[string]string{
	"first":  `["F"]`,
	"second": `["S"]`,
	"third":  `["O"]`,
}

var linkedinProfileLanguageMap = map[string]string{
	"english":    "en",
	"french":     "fr",
	"german":     "de",
	"spanish":    "es",
	"portuguese": "pt",
	"arabic":     "ar",
}

type linkedinAdapter struct{ meta }

func newLinkedIn() *linkedinAdapter {
	return &linkedinAdapter{meta{
		id:          "linkedin",
		label:       "LinkedIn",
		description: "People and job search with full Boolean support.",
		notes: []string{
			"Quotes around multi-word titles keep phrases intact.",
			"Filters (date posted, job type, experience) apply via the URL, not the query.",
		},
		searchTypes: []engine.SearchType{engine.SearchPeople, engine.SearchJobs},
		caps:        fullBooleanCaps(),
	}}
}

func (a *linkedinAdapter) BuildQuery(p engine.QueryPayload) engine.QueryResult {
	return query.Build(p, query.Options{
		NotOperator:              "NOT",
		WrapGroups:               true,
		UppercaseOperators:       true,
		OrSkills:                 p.UseOrForSkills,
		OperatorWarningThreshold: 15,
		QueryLengthWarning:       400,
	})
}

func (a *linkedinAdapter) BuildURL(p engine.QueryPayload, booleanQuery string) string {
	if booleanQuery == "" {
		return ""
	}
	if p.SearchType == engine.SearchJobs {
		return a.jobsURL(p, booleanQuery)
	}
	return a.peopleURL(p, booleanQuery)
}

func (a *linkedinAdapter) peopleURL(p engine.QueryPayload, booleanQuery string) string {
	u, err := url.Parse(linkedinPeopleSearch)
	if err != nil {
		return ""
	}
	q := u.Query()
	q.Set("keywords", booleanQuery)
	q.Set("origin", "GLOBAL_SEARCH_HEADER")
	if v, ok := linkedinConnectionMap[strings.ToLower(p.Filter("connections"))]; ok {
		q.Set("network", v)
	}
	if v, ok := linkedinProfileLanguageMap[strings.ToLower(p.Filter("profile_language"))]; ok {
		q.Set("profileLanguage", `["`+v+`"]`)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func (a *linkedinAdapter) jobsURL(p engine.QueryPayload, booleanQuery string) string {
	u, err := url.Parse(linkedinJobsSearch)
	if err != nil {
		return ""
	}
	q := u.Query()
	q.Set("keywords", booleanQuery)
	if loc := strings.TrimSpace(p.Location); loc != "" {
		q.Set("location", loc)
	}
	if v, ok := linkedinDatePostedMap[strings.ToLower(p.Filter("date_posted"))]; ok {
		q.Set("f_TPR", v)
	}
	if v, ok := linkedinJobTypeMap[strings.ToLower(p.Filter("job_type"))]; ok {
		q.Set("f_JT", v)
	}
	if v, ok := linkedinExperienceMap[strings.ToLower(p.Filter("experience"))]; ok {
		q.Set("f_E", v)
	}
	if v, ok := linkedinWorkTypeMap[strings.ToLower(p.Filter("work_type"))]; ok {
		q.Set("f_WT", v)
	}
	if v, ok := linkedinSortMap[strings.ToLower(p.Filter("sort"))]; ok {
		q.Set("sortBy", v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}
