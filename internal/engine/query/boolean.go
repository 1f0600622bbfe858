package query

import (
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
)

// Options configure the generic Boolean builder for one platform dialect.
type Options struct {
	NotOperator        string // "NOT" or "-"
	SitePrefix         string // e.g. "site:linkedin.com/in"; prepended when query is non-empty
	WrapGroups         bool   // parenthesize title/skill/signal groups (regardless of member count)
	UppercaseOperators bool
	OrSkills           bool // join skills with OR instead of AND
	IncludeLocation    bool // inject location even when SearchType is not people

	// Thresholds. Zero disables a check. An exceeded OperatorLimit wins over
	// the warning threshold, which wins over the length warning.
	OperatorWarningThreshold int
	OperatorLimit            int
	QueryLengthWarning       int
}

func (o Options) op(upper string) string {
	if o.UppercaseOperators {
		return upper
	}
	return strings.ToLower(upper)
}

// overLimitWarning is the generic over-limit message. Adapters with a more
// specific message (Sales Navigator) replace it; see ReplaceOverLimitWarning.
func overLimitWarning(count, limit int) string {
	return fmt.Sprintf("Query uses %d operators, over the platform limit of %d", count, limit)
}

// ReplaceOverLimitWarning swaps the builder's generic over-limit warning for
// a platform-specific message, so only one warning fires per condition.
func ReplaceOverLimitWarning(res *engine.QueryResult, message string) {
	for i, w := range res.Warnings {
		if strings.Contains(w, "over the platform limit") {
			res.Warnings[i] = message
			return
		}
	}
	res.Warnings = append(res.Warnings, message)
}

// Build assembles a Boolean query from titles, skills, signal includes,
// people location, and exclusions.
//
// Non-empty title/skill/signal/location clauses join with AND. The exclude
// clause is appended with a single space, never an AND: that asymmetry is
// shared by every platform dialect and is deliberate.
func Build(p engine.QueryPayload, opts Options) engine.QueryResult {
	titles := Dedupe(p.Titles)
	skills := Dedupe(p.Skills)
	excludes := Dedupe(p.Exclude)

	var warnings []string
	for _, vals := range [][]string{titles, skills, excludes} {
		warnings = append(warnings, unsupportedCharWarnings(vals)...)
	}

	orOp := opts.op("OR")
	andOp := opts.op("AND")

	group := func(vals []string, joiner string) string {
		formatted := make([]string, 0, len(vals))
		for _, v := range vals {
			formatted = append(formatted, FormatValue(v))
		}
		clause := strings.Join(formatted, joiner)
		if opts.WrapGroups && clause != "" {
			clause = "(" + clause + ")"
		}
		return clause
	}

	// Operator counts derive from group sizes, not from re-scanning the
	// rendered query with CountOperators: an AND/OR/NOT word inside a quoted
	// term ("Head of Sales AND Marketing") is text, not syntax, and must not
	// inflate the count.
	operatorCount := 0
	var parts []string

	if len(titles) > 0 {
		parts = append(parts, group(titles, " "+orOp+" "))
		operatorCount += len(titles) - 1
	}
	if len(skills) > 0 {
		skillsOp := andOp
		if opts.OrSkills {
			skillsOp = orOp
		}
		parts = append(parts, group(skills, " "+skillsOp+" "))
		operatorCount += len(skills) - 1
	}
	if len(p.SignalIncludes) > 0 {
		// Signal phrases arrive pre-quoted from the signals transform.
		clause := strings.Join(p.SignalIncludes, " "+orOp+" ")
		if opts.WrapGroups {
			clause = "(" + clause + ")"
		}
		parts = append(parts, clause)
		operatorCount += len(p.SignalIncludes) - 1
	}
	if loc := strings.TrimSpace(p.Location); loc != "" &&
		(p.SearchType == engine.SearchPeople || opts.IncludeLocation) {
		// Location is a bare AND-ed term, never OR'd with anything.
		parts = append(parts, FormatValue(loc))
	}

	query := strings.Join(parts, " "+andOp+" ")
	if len(parts) > 1 {
		operatorCount += len(parts) - 1
	}

	if len(excludes) > 0 {
		terms := make([]string, 0, len(excludes))
		for _, v := range excludes {
			if opts.NotOperator == "-" {
				terms = append(terms, "-"+FormatValue(v))
			} else {
				terms = append(terms, opts.op("NOT")+" "+FormatValue(v))
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

	if opts.SitePrefix != "" && query != "" {
		query = opts.SitePrefix + " " + query
	}
	query = Normalize(query)

	badge := engine.BadgeSafe
	switch {
	case opts.OperatorLimit > 0 && operatorCount > opts.OperatorLimit:
		warnings = append(warnings, overLimitWarning(operatorCount, opts.OperatorLimit))
		badge = engine.BadgeDanger
	case opts.OperatorWarningThreshold > 0 && operatorCount >= opts.OperatorWarningThreshold:
		warnings = append(warnings, fmt.Sprintf("Query uses %d operators; consider trimming terms", operatorCount))
		badge = engine.BadgeWarning
	case opts.QueryLengthWarning > 0 && len(query) >= opts.QueryLengthWarning:
		warnings = append(warnings, fmt.Sprintf("Query is %d characters; long queries may be truncated", len(query)))
		badge = engine.BadgeWarning
	}

	return engine.QueryResult{
		Query:         query,
		OperatorCount: operatorCount,
		Warnings:      warnings,
		Badge:         badge,
	}
}

func unsupportedCharWarnings(vals []string) []string {
	var warnings []string
	for _, v := range vals {
		if chars := UnsupportedChars(v); len(chars) > 0 {
			warnings = append(warnings, fmt.Sprintf("%q contains unsupported characters: %s", v, strings.Join(chars, " ")))
		}
	}
	return warnings
}
