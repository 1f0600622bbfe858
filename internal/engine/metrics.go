package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	PipelineRuns   atomic.Int64
	QueriesBuilt   atomic.Int64
	PostsQueries   atomic.Int64
	Comparisons    atomic.Int64
	ShareEncodes   atomic.Int64
	ShareDecodes   atomic.Int64
	PresetSaves    atomic.Int64
	PresetLoads    atomic.Int64
	HistoryWrites  atomic.Int64
	HistoryReads   atomic.Int64
}

// GetMetrics returns a snapshot of all counters.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"pipeline_runs":  metrics.PipelineRuns.Load(),
		"queries_built":  metrics.QueriesBuilt.Load(),
		"posts_queries":  metrics.PostsQueries.Load(),
		"comparisons":    metrics.Comparisons.Load(),
		"share_encodes":  metrics.ShareEncodes.Load(),
		"share_decodes":  metrics.ShareDecodes.Load(),
		"preset_saves":   metrics.PresetSaves.Load(),
		"preset_loads":   metrics.PresetLoads.Load(),
		"history_writes": metrics.HistoryWrites.Load(),
		"history_reads":  metrics.HistoryReads.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"pipeline_runs", "queries_built", "posts_queries", "comparisons",
		"share_encodes", "share_decodes",
		"preset_saves", "preset_loads",
		"history_writes", "history_reads",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the pipeline and server packages.
func IncrPipelineRuns()  { metrics.PipelineRuns.Add(1) }
func IncrQueriesBuilt()  { metrics.QueriesBuilt.Add(1) }
func IncrPostsQueries()  { metrics.PostsQueries.Add(1) }
func IncrComparisons()   { metrics.Comparisons.Add(1) }
func IncrShareEncodes()  { metrics.ShareEncodes.Add(1) }
func IncrShareDecodes()  { metrics.ShareDecodes.Add(1) }
func IncrPresetSaves()   { metrics.PresetSaves.Add(1) }
func IncrPresetLoads()   { metrics.PresetLoads.Add(1) }
func IncrHistoryWrites() { metrics.HistoryWrites.Add(1) }
func IncrHistoryReads()  { metrics.HistoryReads.Add(1) }
