package query

import (
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
)

// Intent phrase sets injected into the any-of group when the matching
// payload toggle is set. Multi-word phrases are pre-quoted.
var (
	hiringIntentPhrases = []string{
		`"we are hiring"`, `"we're hiring"`, `"join our team"`, `"open role"`, `"now hiring"`,
	}
	openToWorkIntentPhrases = []string{
		`"open to work"`, `"looking for opportunities"`, `"seeking a new role"`,
	}
	remoteIntentPhrases = []string{
		"remote", `"work from home"`, `"fully remote"`,
	}
)

// PostsOptions configure the posts builder for one platform dialect.
type PostsOptions struct {
	NotOperator              string // "NOT" or "-"
	SupportsHashtags         bool
	OperatorWarningThreshold int
	QueryLengthWarning       int
}

// PostsResult extends QueryResult with the intent phrases the builder
// injected, for UI transparency.
type PostsResult struct {
	engine.QueryResult
	InjectedPhrases []string `json:"injected_phrases,omitempty"`
}

// BuildPosts assembles the full-Boolean posts query: keyword OR-group,
// always-quoted must-include AND-group, any-of OR-group merged with the
// enabled intent phrase sets, hashtags and location as bare AND-ed clauses,
// and excludes appended last with a single space.
func BuildPosts(pp engine.PostsPayload, opts PostsOptions) PostsResult {
	keywords := Dedupe(pp.Keywords)
	must := Dedupe(pp.MustIncludePhrases)
	anyOf := Dedupe(pp.AnyOfPhrases)
	excludes := Dedupe(pp.ExcludePhrases)
	hashtags := Dedupe(pp.Hashtags)

	injected := intentPhrases(pp)
	merged := Dedupe(append(append([]string{}, anyOf...), injected...))

	var warnings []string
	for _, vals := range [][]string{keywords, must, anyOf, excludes} {
		warnings = append(warnings, unsupportedCharWarnings(vals)...)
	}

	operatorCount := 0
	var parts []string

	if len(keywords) > 0 {
		formatted := make([]string, 0, len(keywords))
		for _, k := range keywords {
			formatted = append(formatted, FormatValue(k))
		}
		clause := strings.Join(formatted, " OR ")
		if len(keywords) > 1 {
			clause = "(" + clause + ")"
		}
		parts = append(parts, clause)
		operatorCount += len(keywords) - 1
	}
	if len(must) > 0 {
		quoted := make([]string, 0, len(must))
		for _, m := range must {
			quoted = append(quoted, quotePhrase(m))
		}
		parts = append(parts, strings.Join(quoted, " AND "))
		operatorCount += len(must) - 1
	}
	if len(merged) > 0 {
		clause := strings.Join(merged, " OR ")
		if len(merged) > 1 {
			clause = "(" + clause + ")"
		}
		parts = append(parts, clause)
		operatorCount += len(merged) - 1
	}
	if opts.SupportsHashtags && len(hashtags) > 0 {
		parts = append(parts, strings.Join(hashtagTokens(hashtags), " "))
	}
	if loc := strings.TrimSpace(pp.LocationText); loc != "" {
		parts = append(parts, FormatValue(loc))
	}

	query := strings.Join(parts, " AND ")
	if len(parts) > 1 {
		operatorCount += len(parts) - 1
	}

	if len(excludes) > 0 {
		terms := make([]string, 0, len(excludes))
		for _, v := range excludes {
			if opts.NotOperator == "-" {
				terms = append(terms, "-"+FormatValue(v))
			} else {
				terms = append(terms, "NOT "+FormatValue(v))
			}
		}
		clause := strings.Join(terms, " ")
		operatorCount += len(excludes)
		if query == "" {
			query = clause
		} else {
			query += " " + clause
		}
	}

	query = Normalize(query)

	badge := engine.BadgeSafe
	switch {
	case opts.OperatorWarningThreshold > 0 && operatorCount >= opts.OperatorWarningThreshold:
		warnings = append(warnings, fmt.Sprintf("Query uses %d operators; consider trimming terms", operatorCount))
		badge = engine.BadgeWarning
	case opts.QueryLengthWarning > 0 && len(query) >= opts.QueryLengthWarning:
		warnings = append(warnings, fmt.Sprintf("Query is %d characters; long queries may be truncated", len(query)))
		badge = engine.BadgeWarning
	}

	return PostsResult{
		QueryResult: engine.QueryResult{
			Query:         query,
			OperatorCount: operatorCount,
			Warnings:      warnings,
			Badge:         badge,
		},
		InjectedPhrases: Dedupe(injected),
	}
}

// BuildPostsSimplified degrades the posts payload to plain space-joined
// keywords: no operators, one representative literal per enabled intent
// toggle, minus-prefixed excludes. Always safe by construction.
func BuildPostsSimplified(pp engine.PostsPayload, opts PostsOptions) PostsResult {
	var terms []string
	var injected []string

	for _, k := range Dedupe(pp.Keywords) {
		terms = append(terms, FormatValue(k))
	}
	for _, m := range Dedupe(pp.MustIncludePhrases) {
		terms = append(terms, quotePhrase(m))
	}
	for _, a := range Dedupe(pp.AnyOfPhrases) {
		terms = append(terms, FormatValue(a))
	}
	if pp.HiringIntent {
		injected = append(injected, hiringIntentPhrases[0])
	}
	if pp.OpenToWorkIntent {
		injected = append(injected, openToWorkIntentPhrases[0])
	}
	if pp.RemoteIntent {
		injected = append(injected, remoteIntentPhrases[0])
	}
	terms = append(terms, injected...)
	if loc := strings.TrimSpace(pp.LocationText); loc != "" {
		terms = append(terms, FormatValue(loc))
	}
	if opts.SupportsHashtags {
		terms = append(terms, hashtagTokens(Dedupe(pp.Hashtags))...)
	}
	for _, e := range Dedupe(pp.ExcludePhrases) {
		terms = append(terms, "-"+FormatValue(e))
	}

	return PostsResult{
		QueryResult: engine.QueryResult{
			Query: strings.Join(terms, " "),
			Badge: engine.BadgeSafe,
		},
		InjectedPhrases: injected,
	}
}

func intentPhrases(pp engine.PostsPayload) []string {
	var injected []string
	if pp.HiringIntent {
		injected = append(injected, hiringIntentPhrases...)
	}
	if pp.OpenToWorkIntent {
		injected = append(injected, openToWorkIntentPhrases...)
	}
	if pp.RemoteIntent {
		injected = append(injected, remoteIntentPhrases...)
	}
	return injected
}

// quotePhrase always quotes a phrase unless it arrived pre-quoted.
func quotePhrase(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) && len(v) > 1 {
		return v
	}
	return `"` + v + `"`
}

func hashtagTokens(tags []string) []string {
	tokens := make([]string, 0, len(tags))
	for _, t := range tags {
		tokens = append(tokens, "#"+strings.TrimPrefix(t, "#"))
	}
	return tokens
}
