package platforms

import (
	"net/url"
	"strings"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
	"github.com/anatolykoptev/go_sourcing/internal/engine/query"
)

// indeedDomains maps region codes to Indeed country domains. Unknown or
// missing codes fall back to the US domain.
var indeedDomains = map[string]string{
	"us": "www.indeed.com",
	"uk": "uk.indeed.com",
	"ca": "ca.indeed.com",
	"au": "au.indeed.com",
	"nz": "nz.indeed.com",
	"ie": "ie.indeed.com",
	"de": "de.indeed.com",
	"fr": "fr.indeed.com",
	"es": "es.indeed.com",
	"it": "it.indeed.com",
	"pt": "pt.indeed.com",
	"nl": "nl.indeed.com",
	"be": "be.indeed.com",
	"lu": "lu.indeed.com",
	"ch": "ch.indeed.com",
	"at": "at.indeed.com",
	"pl": "pl.indeed.com",
	"cz": "cz.indeed.com",
	"sk": "sk.indeed.com",
	"hu": "hu.indeed.com",
	"ro": "ro.indeed.com",
	"gr": "gr.indeed.com",
	"tr": "tr.indeed.com",
	"ua": "ua.indeed.com",
	"se": "se.indeed.com",
	"no": "no.indeed.com",
	"dk": "dk.indeed.com",
	"fi": "fi.indeed.com",
	"ae": "ae.indeed.com",
	"sa": "sa.indeed.com",
	"kw": "kw.indeed.com",
	"qa": "qa.indeed.com",
	"bh": "bh.indeed.com",
	"om": "om.indeed.com",
	"eg": "eg.indeed.com",
	"ma": "ma.indeed.com",
	"tn": "tn.indeed.com",
	"il": "il.indeed.com",
	"za": "za.indeed.com",
	"ng": "ng.indeed.com",
	"ke": "ke.indeed.com",
	"in": "in.indeed.com",
	"pk": "pk.indeed.com",
	"sg": "sg.indeed.com",
	"my": "malaysia.indeed.com",
	"ph": "ph.indeed.com",
	"id": "id.indeed.com",
	"th": "th.indeed.com",
	"vn": "vn.indeed.com",
	"hk": "hk.indeed.com",
	"tw": "tw.indeed.com",
	"jp": "jp.indeed.com",
	"kr": "kr.indeed.com",
	"cn": "cn.indeed.com",
	"br": "br.indeed.com",
	"mx": "mx.indeed.com",
	"ar": "ar.indeed.com",
	"cl": "cl.indeed.com",
	"co": "co.indeed.com",
	"pe": "pe.indeed.com",
	"ec": "ec.indeed.com",
	"cr": "cr.indeed.com",
	"uy": "uy.indeed.com",
}

type indeedAdapter struct{ meta }

func newIndeed() *indeedAdapter {
	caps := fullBooleanCaps()
	caps.SupportsMinusExclude = true
	caps.SupportsNot = false
	return &indeedAdapter{meta{
		id:          "indeed",
		label:       "Indeed",
		description: "Job search across Indeed's country sites; minus exclusions, quoted phrases.",
		notes: []string{
			"Set the country filter (two-letter code) to land on the right Indeed domain.",
		},
		searchTypes: []engine.SearchType{engine.SearchJobs},
		caps:        caps,
	}}
}

func (a *indeedAdapter) BuildQuery(p engine.QueryPayload) engine.QueryResult {
	return query.Build(p, query.Options{
		NotOperator:              "-",
		WrapGroups:               true,
		UppercaseOperators:       true,
		OrSkills:                 p.UseOrForSkills,
		OperatorWarningThreshold: 15,
		QueryLengthWarning:       300,
	})
}

func (a *indeedAdapter) BuildURL(p engine.QueryPayload, booleanQuery string) string {
	if booleanQuery == "" {
		return ""
	}
	domain, ok := indeedDomains[strings.ToLower(strings.TrimSpace(p.Filter("country")))]
	if !ok {
		domain = indeedDomains["us"]
	}
	u := &url.URL{Scheme: "https", Host: domain, Path: "/jobs"}
	q := u.Query()
	q.Set("q", booleanQuery)
	if loc := strings.TrimSpace(p.Location); loc != "" {
		q.Set("l", loc)
	}
	u.RawQuery = q.Encode()
	return u.String()
}
