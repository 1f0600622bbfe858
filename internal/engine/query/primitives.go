// Package query builds platform Boolean search strings from normalized
// payloads. Everything here is pure: no I/O, no shared state.
package query

import (
	"regexp"
	"strings"
)

// Dedupe trims items, drops empties, and collapses case-insensitive
// duplicates keeping the first occurrence's original casing. Remaining
// insertion order is preserved.
func Dedupe(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		v := strings.TrimSpace(item)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// FormatValue trims a value and wraps it in double quotes when it contains
// a space, comma, or parenthesis. A value that already arrives wrapped in
// quotes (signal catalog phrases, intent phrases) passes through unchanged.
// The value itself is never altered.
func FormatValue(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}
	if strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) && len(v) > 1 {
		return v
	}
	if strings.ContainsAny(v, " ,()") {
		return `"` + v + `"`
	}
	return v
}

// unsupportedChars are flagged (never stripped) because most job boards
// treat them as syntax rather than search text.
var unsupportedChars = []string{"*", "{", "}", "[", "]", "<", ">"}

// UnsupportedChars returns the subset of flagged characters present in value.
func UnsupportedChars(value string) []string {
	var found []string
	for _, c := range unsupportedChars {
		if strings.Contains(value, c) {
			found = append(found, c)
		}
	}
	return found
}

var (
	wordOperatorRe = regexp.MustCompile(`(?i)\b(AND|OR|NOT)\b`)
	// Leading minus on a term: start-of-string or whitespace, then -x.
	// Hyphens inside words (full-stack) do not match.
	minusTermRe  = regexp.MustCompile(`(?:^|\s)-\S`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CountOperators counts whole-word AND/OR/NOT tokens (case-insensitive)
// plus standalone leading-minus terms in free query text, such as a pasted
// or hand-edited query. A minus attached to a quoted exclusion counts once;
// quoting does not double it. Build does not use it for its own output: the
// regex cannot tell a quoted "Sales AND Marketing" title from syntax, so the
// builder counts the operators it inserts instead.
func CountOperators(clause string) int {
	if clause == "" {
		return 0
	}
	return len(wordOperatorRe.FindAllString(clause, -1)) +
		len(minusTermRe.FindAllString(clause, -1))
}

// Normalize trims the query, collapses whitespace runs, and strips a stray
// leading or trailing AND left behind by empty clause groups.
func Normalize(query string) string {
	q := whitespaceRe.ReplaceAllString(strings.TrimSpace(query), " ")
	for {
		switch {
		case strings.HasPrefix(q, "AND "):
			q = strings.TrimSpace(q[4:])
		case strings.HasSuffix(q, " AND"):
			q = strings.TrimSpace(q[:len(q)-4])
		case q == "AND":
			q = ""
		default:
			return q
		}
	}
}
