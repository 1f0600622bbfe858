// Package quality scores a built query against a deterministic rubric.
// The score starts at 100 and independent rules add or subtract; rule order
// only decides which reasons appear first.
package quality

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
)

// CapabilityLookup resolves a platform's capabilities by id. The registry
// satisfies this; tests pass a closure.
type CapabilityLookup func(platformID string) (engine.Capabilities, bool)

// Input is everything the rubric reads. Signals is nil when the
// hiring-signals transform did not run.
type Input struct {
	Payload      engine.QueryPayload
	Result       engine.QueryResult
	PlatformID   string
	Mode         engine.EmotionalMode
	Signals      *engine.SignalsExplanation
	Capabilities CapabilityLookup
}

var andTokenRe = regexp.MustCompile(`\bAND\b`)

// Score applies the rubric and returns a clamped 0-100 result with reasons
// and tips. Pure and deterministic.
func Score(in Input) engine.QualityScore {
	// Empty payloads are terminal: nothing else can redeem them.
	if len(in.Payload.Titles) == 0 && len(in.Payload.Skills) == 0 {
		if len(in.Payload.Exclude) > 0 {
			return engine.QualityScore{
				Score: 10,
				Level: engine.LevelRisky,
				Reasons: []engine.ScoreReason{{
					Type:    engine.ReasonWarning,
					Message: "Query has only exclusions; add titles or skills to match anyone",
				}},
			}
		}
		return engine.QualityScore{
			Score: 0,
			Level: engine.LevelRisky,
			Reasons: []engine.ScoreReason{{
				Type:    engine.ReasonWarning,
				Message: "Empty query; add at least one title or skill",
			}},
		}
	}

	score := 100
	var reasons []engine.ScoreReason
	var tips []string

	warn := func(msg string) {
		reasons = append(reasons, engine.ScoreReason{Type: engine.ReasonWarning, Message: msg})
	}
	info := func(msg string) {
		reasons = append(reasons, engine.ScoreReason{Type: engine.ReasonInfo, Message: msg})
	}

	ops := in.Result.OperatorCount
	urgent := in.Mode == engine.ModeUrgent
	chill := in.Mode == engine.ModeChill

	// Operator count, thresholds shifted by mode. Penalty and plain warning
	// are mutually exclusive per pair.
	warnAt, penalizeAt, penalty := 15, 20, 15
	if urgent {
		warnAt, penalizeAt, penalty = 20, 25, 10
	}
	switch {
	case ops > penalizeAt:
		score -= penalty
		warn(fmt.Sprintf("Very high operator count (%d); results may be unpredictable", ops))
	case ops > warnAt:
		warn(fmt.Sprintf("High operator count (%d); consider trimming terms", ops))
	}

	// Literal AND tokens in the final string.
	andCount := len(andTokenRe.FindAllString(in.Result.Query, -1))
	andThreshold := 8
	switch {
	case urgent:
		andThreshold = 4
	case chill:
		andThreshold = 12
	}
	if andCount > andThreshold {
		if chill {
			score -= 5
			info(fmt.Sprintf("Many AND conditions (%d); chill mode keeps them all", andCount))
		} else {
			score -= 10
			warn(fmt.Sprintf("Many AND conditions (%d); each one narrows the result pool", andCount))
			tips = append(tips, "Drop the least important AND condition to widen results")
		}
	}

	// Length, higher penalty wins.
	switch length := len(in.Result.Query); {
	case length >= 400:
		score -= 10
		warn(fmt.Sprintf("Query is %d characters; platforms may truncate it", length))
	case length >= 250:
		score -= 5
		info(fmt.Sprintf("Query is %d characters; getting long", length))
	}

	for _, w := range in.Result.Warnings {
		lw := strings.ToLower(w)
		if strings.Contains(lw, "unsupported") || strings.Contains(lw, "character") {
			score -= 10
			warn("Query contains characters the platform does not support")
			break
		}
	}

	// Google Jobs degrades much earlier than web search; stackable extras.
	if in.PlatformID == "google-jobs" {
		if ops > 10 {
			score -= 15
			warn("Google Jobs handles few operators; this query exceeds its comfort zone")
		}
		if len(in.Result.Query) > 150 {
			score -= 10
			warn("Google Jobs matches far less text; shorten the query")
		}
		if andCount > 3 {
			score -= 10
			warn("Google Jobs treats extra AND conditions poorly")
		}
	}

	if in.Capabilities != nil {
		if caps, ok := in.Capabilities(in.PlatformID); ok &&
			(caps.BooleanLevel == engine.BooleanPartial || caps.BooleanLevel == engine.BooleanNone) {
			if ops > 5 {
				score -= 15
				warn("This platform has limited Boolean support; most operators will be ignored")
				tips = append(tips, "Switch to LinkedIn or Google for complex Boolean queries")
			}
			if strings.Contains(in.Result.Query, "(") {
				score -= 10
				warn("Parentheses are not honored on this platform")
			}
			if caps.BooleanLevel == engine.BooleanNone && ops > 3 {
				score -= 10
				warn("This platform ignores Boolean operators entirely")
				tips = append(tips, "Reduce the query to two or three plain keywords")
			}
		}
	}

	if len(in.Payload.Titles) > 0 && len(in.Payload.Skills) > 0 {
		score += 5
		info("Balanced query: both titles and skills present")
	}

	if len(in.Payload.Exclude) == 0 && len(in.Payload.Titles)+len(in.Payload.Skills) > 2 {
		tips = append(tips, "Add exclusions (e.g. Junior, Intern) to filter out noise")
	}

	if in.Signals != nil && in.Signals.Enabled {
		injected := len(in.Signals.InjectedIncludes) + len(in.Signals.InjectedExcludes)
		if injected > 10 {
			score -= 10
			warn(fmt.Sprintf("Hiring signals injected %d phrases; the query may get noisy", injected))
			tips = append(tips, "Deselect a signal or two to keep the query focused")
		}
		if ops > 20 {
			info("Operator count is high with hiring signals enabled")
		}
		for _, w := range in.Signals.Warnings {
			info(w)
		}
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return engine.QualityScore{
		Score:   score,
		Level:   engine.LevelForScore(score),
		Reasons: reasons,
		Tips:    tips,
	}
}
