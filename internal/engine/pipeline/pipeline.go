// Package pipeline composes the full query-building flow: emotional mode,
// hiring signals, platform dialect, deep link, quality score. Every run is
// a pure computation over a payload snapshot.
package pipeline

import (
	"github.com/anatolykoptev/go_sourcing/internal/engine"
	"github.com/anatolykoptev/go_sourcing/internal/engine/platforms"
	"github.com/anatolykoptev/go_sourcing/internal/engine/quality"
	"github.com/anatolykoptev/go_sourcing/internal/engine/transform"
)

// Result is one pipeline run: the fully transformed payload and everything
// derived from it.
type Result struct {
	PlatformID  string                     `json:"platform_id"`
	Payload     engine.QueryPayload        `json:"payload"`
	Query       engine.QueryResult         `json:"query"`
	URL         string                     `json:"url"`
	Quality     engine.QualityScore        `json:"quality"`
	Adjustments []string                   `json:"adjustments,omitempty"`
	Signals     *engine.SignalsExplanation `json:"signals,omitempty"`
}

// Run executes the pipeline for one platform. The mode argument wins over the
// payload's own emotional_mode field; pass "" to use the payload's.
func Run(p engine.QueryPayload, a platforms.Adapter, mode engine.EmotionalMode, caps quality.CapabilityLookup) Result {
	engine.IncrPipelineRuns()

	if mode == "" {
		mode = p.Mode()
	}

	emotional := transform.ApplyEmotionalMode(p, mode)
	payload := emotional.Payload
	payload.UseOrForSkills = emotional.UseOrForSkills

	var signals *engine.SignalsExplanation
	sr := transform.ApplyHiringSignals(payload, a.Capabilities())
	payload = sr.Payload
	if sr.Explanation.Enabled {
		expl := sr.Explanation
		signals = &expl
	}

	res := a.BuildQuery(payload)
	url := a.BuildURL(payload, res.Query)

	score := quality.Score(quality.Input{
		Payload:      payload,
		Result:       res,
		PlatformID:   a.ID(),
		Mode:         mode,
		Signals:      signals,
		Capabilities: caps,
	})

	return Result{
		PlatformID:  a.ID(),
		Payload:     payload,
		Query:       res,
		URL:         url,
		Quality:     score,
		Adjustments: emotional.Adjustments,
		Signals:     signals,
	}
}

// RunAll runs the pipeline across every enabled platform supporting the
// payload's search type, preserving registry order.
func RunAll(p engine.QueryPayload, reg *platforms.Registry, mode engine.EmotionalMode) []Result {
	caps := reg.Capabilities
	adapters := reg.ForSearchType(p.SearchType)
	out := make([]Result, 0, len(adapters))
	for _, a := range adapters {
		out = append(out, Run(p, a, mode, caps))
	}
	return out
}
