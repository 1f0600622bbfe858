package query

import (
	"regexp"
	"strings"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
)

// FlattenKeywords degrades a payload to plain keywords for platforms with
// no Boolean support: titles and skills as-is, excludes minus-prefixed,
// location appended, all space-joined with zero operators.
func FlattenKeywords(p engine.QueryPayload) string {
	var terms []string
	for _, t := range Dedupe(p.Titles) {
		terms = append(terms, FormatValue(t))
	}
	for _, s := range Dedupe(p.Skills) {
		terms = append(terms, FormatValue(s))
	}
	for _, e := range Dedupe(p.Exclude) {
		terms = append(terms, "-"+FormatValue(e))
	}
	if loc := strings.TrimSpace(p.Location); loc != "" {
		terms = append(terms, FormatValue(loc))
	}
	return strings.Join(terms, " ")
}

// SimplifyBoolean is the partial dialect: OR preserved for titles only,
// skills space-joined (implicit AND by platform convention), excludes
// minus-prefixed and appended last.
func SimplifyBoolean(p engine.QueryPayload) string {
	var parts []string

	titles := Dedupe(p.Titles)
	if len(titles) > 0 {
		formatted := make([]string, 0, len(titles))
		for _, t := range titles {
			formatted = append(formatted, FormatValue(t))
		}
		clause := strings.Join(formatted, " OR ")
		if len(titles) > 1 {
			clause = "(" + clause + ")"
		}
		parts = append(parts, clause)
	}
	for _, s := range Dedupe(p.Skills) {
		parts = append(parts, FormatValue(s))
	}
	if loc := strings.TrimSpace(p.Location); loc != "" {
		parts = append(parts, FormatValue(loc))
	}
	for _, e := range Dedupe(p.Exclude) {
		parts = append(parts, "-"+FormatValue(e))
	}
	return strings.Join(parts, " ")
}

var orTokenRe = regexp.MustCompile(`\bOR\b`)

// CountSimplifiedOperators counts only what partial platforms expose:
// OR tokens and leading-minus terms. No AND, no NOT.
func CountSimplifiedOperators(query string) int {
	if query == "" {
		return 0
	}
	return len(orTokenRe.FindAllString(query, -1)) +
		len(minusTermRe.FindAllString(query, -1))
}
