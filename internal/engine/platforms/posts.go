package platforms

import (
	"net/url"
	"time"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
	"github.com/anatolykoptev/go_sourcing/internal/engine/query"
)

// PostsQuerier is implemented by posts-search adapters. It exposes the
// builder's injected intent phrases, which BuildQuery's flat result drops.
type PostsQuerier interface {
	BuildPostsQuery(p engine.QueryPayload) query.PostsResult
}

// timeNow is swapped in tests to pin since: dates.
var timeNow = time.Now

func postsCaps(hashtags bool, minusExclude bool) engine.Capabilities {
	caps := fullBooleanCaps()
	caps.SupportsHashtags = hashtags
	caps.SupportsMinusExclude = minusExclude
	if minusExclude {
		caps.SupportsNot = false
	}
	return caps
}

// linkedinPostsAdapter searches LinkedIn content with full Boolean syntax.
type linkedinPostsAdapter struct{ meta }

const linkedinContentSearch = "https://www.linkedin.com/search/results/content/"

func newLinkedInPosts() *linkedinPostsAdapter {
	return &linkedinPostsAdapter{meta{
		id:          "linkedin-posts",
		label:       "LinkedIn Posts",
		description: "Content search across LinkedIn posts; full Boolean plus hashtags.",
		notes: []string{
			"Date filtering is manual: use the Date posted filter after opening the link.",
		},
		searchTypes: []engine.SearchType{engine.SearchPosts},
		caps:        postsCaps(true, false),
	}}
}

func (a *linkedinPostsAdapter) BuildPostsQuery(p engine.QueryPayload) query.PostsResult {
	return query.BuildPosts(p.PostsOrDefault(), query.PostsOptions{
		NotOperator:              "NOT",
		SupportsHashtags:         true,
		OperatorWarningThreshold: 15,
		QueryLengthWarning:       400,
	})
}

func (a *linkedinPostsAdapter) BuildQuery(p engine.QueryPayload) engine.QueryResult {
	return a.BuildPostsQuery(p).QueryResult
}

func (a *linkedinPostsAdapter) BuildURL(_ engine.QueryPayload, booleanQuery string) string {
	return searchURL(linkedinContentSearch, "keywords", booleanQuery)
}

// xPostsAdapter searches X (Twitter) posts. Date ranges become since:
// operators appended at URL-build time.
type xPostsAdapter struct{ meta }

const xSearch = "https://x.com/search"

func newXPosts() *xPostsAdapter {
	return &xPostsAdapter{meta{
		id:          "x-posts",
		label:       "X Posts",
		description: "Live search on X; minus exclusions, hashtags, since: date filtering.",
		notes: []string{
			"Results open in the Latest tab for recency.",
		},
		searchTypes: []engine.SearchType{engine.SearchPosts},
		caps:        postsCaps(true, true),
	}}
}

func (a *xPostsAdapter) BuildPostsQuery(p engine.QueryPayload) query.PostsResult {
	return query.BuildPosts(p.PostsOrDefault(), query.PostsOptions{
		NotOperator:              "-",
		SupportsHashtags:         true,
		OperatorWarningThreshold: 15,
		QueryLengthWarning:       400,
	})
}

func (a *xPostsAdapter) BuildQuery(p engine.QueryPayload) engine.QueryResult {
	return a.BuildPostsQuery(p).QueryResult
}

// sinceDate maps a date range onto an X since: cutoff. Empty for "any".
func sinceDate(dr engine.DateRange, now time.Time) string {
	switch dr {
	case engine.DatePast24h:
		return now.AddDate(0, 0, -1).Format("2006-01-02")
	case engine.DatePast7d:
		return now.AddDate(0, 0, -7).Format("2006-01-02")
	default:
		return ""
	}
}

func (a *xPostsAdapter) BuildURL(p engine.QueryPayload, booleanQuery string) string {
	if booleanQuery == "" {
		return ""
	}
	q := booleanQuery
	if since := sinceDate(p.PostsOrDefault().DateRange, timeNow()); since != "" {
		q += " since:" + since
	}
	u, err := url.Parse(xSearch)
	if err != nil {
		return ""
	}
	v := u.Query()
	v.Set("q", q)
	v.Set("src", "typed_query")
	v.Set("f", "live")
	u.RawQuery = v.Encode()
	return u.String()
}

// redditPostsAdapter searches Reddit posts. No hashtag syntax; date ranges
// map onto the t= window param.
type redditPostsAdapter struct{ meta }

const redditSearch = "https://www.reddit.com/search/"

var redditTimeWindow = map[engine.DateRange]string{
	engine.DateAny:     "all",
	engine.DatePast24h: "day",
	engine.DatePast7d:  "week",
}

func newRedditPosts() *redditPostsAdapter {
	return &redditPostsAdapter{meta{
		id:          "reddit-posts",
		label:       "Reddit Posts",
		description: "Reddit search; minus exclusions, sorted by new with a time window.",
		notes: []string{
			"Hashtags carry no meaning on Reddit and are dropped from the query.",
		},
		searchTypes: []engine.SearchType{engine.SearchPosts},
		caps:        postsCaps(false, true),
	}}
}

func (a *redditPostsAdapter) BuildPostsQuery(p engine.QueryPayload) query.PostsResult {
	return query.BuildPosts(p.PostsOrDefault(), query.PostsOptions{
		NotOperator:              "-",
		SupportsHashtags:         false,
		OperatorWarningThreshold: 15,
		QueryLengthWarning:       400,
	})
}

func (a *redditPostsAdapter) BuildQuery(p engine.QueryPayload) engine.QueryResult {
	return a.BuildPostsQuery(p).QueryResult
}

func (a *redditPostsAdapter) BuildURL(p engine.QueryPayload, booleanQuery string) string {
	if booleanQuery == "" {
		return ""
	}
	window, ok := redditTimeWindow[p.PostsOrDefault().DateRange]
	if !ok {
		window = "all"
	}
	u, err := url.Parse(redditSearch)
	if err != nil {
		return ""
	}
	v := u.Query()
	v.Set("q", booleanQuery)
	v.Set("sort", "new")
	v.Set("t", window)
	u.RawQuery = v.Encode()
	return u.String()
}

// googlePostsAdapter fronts a posts platform through Google web search. The
// site: restriction is a URL concern only: the visible query stays clean so
// warnings and operator counts match the other posts adapters.
type googlePostsAdapter struct {
	meta
	siteDomain string
}

func newGooglePosts(id, label, domain string) *googlePostsAdapter {
	return &googlePostsAdapter{
		meta: meta{
			id:          id,
			label:       label,
			description: "Google X-ray over " + domain + " posts; minus exclusions.",
			notes: []string{
				"Useful when the native platform search rate-limits or hides results.",
			},
			searchTypes: []engine.SearchType{engine.SearchPosts},
			caps:        postsCaps(false, true),
		},
		siteDomain: domain,
	}
}

func (a *googlePostsAdapter) BuildPostsQuery(p engine.QueryPayload) query.PostsResult {
	return query.BuildPosts(p.PostsOrDefault(), query.PostsOptions{
		NotOperator:              "-",
		SupportsHashtags:         false,
		OperatorWarningThreshold: 20,
		QueryLengthWarning:       350,
	})
}

func (a *googlePostsAdapter) BuildQuery(p engine.QueryPayload) engine.QueryResult {
	return a.BuildPostsQuery(p).QueryResult
}

func (a *googlePostsAdapter) BuildURL(_ engine.QueryPayload, booleanQuery string) string {
	if booleanQuery == "" {
		return ""
	}
	return searchURL(googleSearch, "q", "site:"+a.siteDomain+" "+booleanQuery)
}
