package queryserver

import (
	"github.com/anatolykoptev/go_sourcing/internal/engine"
	"github.com/anatolykoptev/go_sourcing/internal/engine/pipeline"
)

// BuildQueryInput is the input for build_query.
type BuildQueryInput struct {
	Payload  engine.QueryPayload `json:"payload" jsonschema:"Search payload: titles, skills, exclusions, location, filters"`
	Platform string              `json:"platform,omitempty" jsonschema:"Platform id (default: current selection, e.g. linkedin, salesnav, google, indeed)"`
	Mode     string              `json:"mode,omitempty" jsonschema:"Emotional mode: urgent, normal, chill (default: payload's own, then normal)"`
}

// BuildQueryOutput is the output for build_query.
type BuildQueryOutput struct {
	Platform    string                     `json:"platform"`
	Query       string                     `json:"query"`
	URL         string                     `json:"url,omitempty"`
	Badge       engine.BadgeStatus         `json:"badge"`
	Operators   int                        `json:"operators"`
	Warnings    []string                   `json:"warnings,omitempty"`
	Quality     engine.QualityScore        `json:"quality"`
	Adjustments []string                   `json:"adjustments,omitempty"`
	Signals     *engine.SignalsExplanation `json:"signals,omitempty"`
}

// CompareInput is the input for compare_platforms.
type CompareInput struct {
	Payload engine.QueryPayload `json:"payload" jsonschema:"Search payload to run across every enabled platform"`
	Mode    string              `json:"mode,omitempty" jsonschema:"Emotional mode: urgent, normal, chill"`
}

// CompareOutput is the output for compare_platforms, ranked by quality score.
type CompareOutput struct {
	Results []pipeline.Result `json:"results"`
}

// ListPlatformsInput is the input for list_platforms.
type ListPlatformsInput struct {
	SearchType string `json:"search_type,omitempty" jsonschema:"Filter by search type: people, jobs, posts (default: all enabled)"`
}

// PlatformInfo is one platform's identity and capabilities.
type PlatformInfo struct {
	ID           string              `json:"id"`
	Label        string              `json:"label"`
	Description  string              `json:"description"`
	Notes        []string            `json:"notes,omitempty"`
	SearchTypes  []engine.SearchType `json:"search_types"`
	Capabilities engine.Capabilities `json:"capabilities"`
	Current      bool                `json:"current,omitempty"`
}

// ListPlatformsOutput is the output for list_platforms.
type ListPlatformsOutput struct {
	Platforms []PlatformInfo `json:"platforms"`
}

// PostsQueryInput is the input for posts_query.
type PostsQueryInput struct {
	Posts    engine.PostsPayload `json:"posts" jsonschema:"Posts payload: keywords, phrase groups, hashtags, intent toggles, date range"`
	Platform string              `json:"platform,omitempty" jsonschema:"Posts platform id (default: linkedin-posts; also x-posts, reddit-posts, google-*-posts)"`
}

// PostsQueryOutput is the output for posts_query.
type PostsQueryOutput struct {
	Platform        string             `json:"platform"`
	Query           string             `json:"query"`
	URL             string             `json:"url,omitempty"`
	Badge           engine.BadgeStatus `json:"badge"`
	Operators       int                `json:"operators"`
	Warnings        []string           `json:"warnings,omitempty"`
	InjectedPhrases []string           `json:"injected_phrases,omitempty"`
}

// ShareEncodeInput is the input for share_link_encode.
type ShareEncodeInput struct {
	Platform string              `json:"platform" jsonschema:"Platform id to restore on open"`
	Payload  engine.QueryPayload `json:"payload" jsonschema:"Builder payload to encode"`
}

// ShareEncodeOutput is the output for share_link_encode.
type ShareEncodeOutput struct {
	Token string `json:"token"`
}

// ShareDecodeInput is the input for share_link_decode.
type ShareDecodeInput struct {
	Token string `json:"token" jsonschema:"Token produced by share_link_encode"`
}

// ShareDecodeOutput is the output for share_link_decode.
type ShareDecodeOutput struct {
	Version  int                 `json:"version"`
	Platform string              `json:"platform"`
	Payload  engine.QueryPayload `json:"payload"`
}

// PresetSaveInput is the input for preset_save.
type PresetSaveInput struct {
	Name     string              `json:"name" jsonschema:"Preset name"`
	Platform string              `json:"platform,omitempty" jsonschema:"Platform id the preset targets"`
	Payload  engine.QueryPayload `json:"payload" jsonschema:"Payload to store"`
}

// PresetSaveOutput is the output for preset_save.
type PresetSaveOutput struct {
	Preset engine.Preset `json:"preset"`
	Shared bool          `json:"shared"`
}

// PresetListInput is the input for preset_list.
type PresetListInput struct{}

// PresetListOutput is the output for preset_list.
type PresetListOutput struct {
	Presets []engine.Preset `json:"presets"`
	Shared  bool            `json:"shared"`
}

// PresetDeleteInput is the input for preset_delete.
type PresetDeleteInput struct {
	ID string `json:"id" jsonschema:"Preset id to delete"`
}

// PresetDeleteOutput is the output for preset_delete.
type PresetDeleteOutput struct {
	Message string `json:"message"`
}

// HistoryListInput is the input for history_list.
type HistoryListInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max entries to return (default 50, max 100)"`
}

// HistoryListOutput is the output for history_list.
type HistoryListOutput struct {
	Entries []engine.HistoryEntry `json:"entries"`
	Total   int                   `json:"total"`
}
