// Package platforms holds one adapter per supported search platform and the
// registry that resolves them. Every platform is a peer: an independent
// value behind one interface, no inheritance chain.
package platforms

import (
	"net/url"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
)

// Adapter translates a normalized payload into one platform's query dialect
// and deep-link URL. BuildURL returns "" iff the Boolean query is empty.
// Validate is advisory only: IsValid is always true, Errors always empty.
type Adapter interface {
	ID() string
	Label() string
	Description() string
	Notes() []string
	SupportedSearchTypes() []engine.SearchType
	Capabilities() engine.Capabilities
	BuildQuery(p engine.QueryPayload) engine.QueryResult
	BuildURL(p engine.QueryPayload, booleanQuery string) string
	Validate(p engine.QueryPayload, booleanQuery string) engine.Validation
}

// meta carries the static identity shared by every adapter.
type meta struct {
	id          string
	label       string
	description string
	notes       []string
	searchTypes []engine.SearchType
	caps        engine.Capabilities
}

func (m meta) ID() string          { return m.id }
func (m meta) Label() string       { return m.label }
func (m meta) Description() string { return m.description }

func (m meta) Notes() []string {
	out := make([]string, len(m.notes))
	copy(out, m.notes)
	return out
}

func (m meta) SupportedSearchTypes() []engine.SearchType {
	out := make([]engine.SearchType, len(m.searchTypes))
	copy(out, m.searchTypes)
	return out
}

func (m meta) Capabilities() engine.Capabilities { return m.caps }

// Validate is the shared advisory no-op. Adapters with guidance to give
// override it, but none ever report a hard error.
func (m meta) Validate(_ engine.QueryPayload, _ string) engine.Validation {
	return engine.Validation{IsValid: true}
}

func (m meta) supports(t engine.SearchType) bool {
	for _, st := range m.searchTypes {
		if st == t {
			return true
		}
	}
	return false
}

// searchURL builds base?param=query, returning "" for an empty query.
func searchURL(base, param, query string) string {
	if query == "" {
		return ""
	}
	u, err := url.Parse(base)
	if err != nil {
		return ""
	}
	q := u.Query()
	q.Set(param, query)
	u.RawQuery = q.Encode()
	return u.String()
}

// fullBooleanCaps is the canonical LinkedIn-grade capability profile.
func fullBooleanCaps() engine.Capabilities {
	return engine.Capabilities{
		SupportsBoolean:     true,
		SupportsParentheses: true,
		SupportsQuotes:      true,
		SupportsNot:         true,
		SupportsOr:          true,
		SupportsAnd:         true,
		BooleanLevel:        engine.BooleanGood,
		Region:              engine.RegionGlobal,
	}
}
