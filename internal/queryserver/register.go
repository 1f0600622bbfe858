// Package queryserver exposes the sourcing engine as MCP tools.
package queryserver

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
	"github.com/anatolykoptev/go_sourcing/internal/engine/history"
	"github.com/anatolykoptev/go_sourcing/internal/engine/pipeline"
	"github.com/anatolykoptev/go_sourcing/internal/engine/platforms"
	"github.com/anatolykoptev/go_sourcing/internal/engine/presetdb"
)

// RegisterTools registers every sourcing tool on the given MCP server:
// query building, platform comparison, posts search, share links, presets,
// and history.
func RegisterTools(server *mcp.Server, reg *platforms.Registry) {
	registerBuildQuery(server, reg)
	registerComparePlatforms(server, reg)
	registerListPlatforms(server, reg)
	registerPostsQuery(server, reg)
	registerShareLinks(server)
	registerPresets(server)
	registerHistory(server)
}

// resolveAdapter picks the requested platform or falls back to the current
// selection. An explicit but unknown id is an input error, and so is a
// known but disabled one.
func resolveAdapter(reg *platforms.Registry, id string) (platforms.Adapter, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		a := reg.Current()
		if a == nil {
			return nil, fmt.Errorf("no platforms enabled")
		}
		return a, nil
	}
	a, ok := reg.EnabledGet(id)
	if !ok {
		if _, known := reg.Get(id); known {
			return nil, fmt.Errorf("platform %q is disabled", id)
		}
		return nil, fmt.Errorf("unknown platform %q", id)
	}
	return a, nil
}

func registerBuildQuery(server *mcp.Server, reg *platforms.Registry) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_query",
		Description: "Build a Boolean recruiting search query for one platform. Applies the emotional-mode and hiring-signals transforms, returns the query string, a deep-link URL, warnings, a risk badge, and a 0-100 quality score. The run is recorded in history.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input BuildQueryInput) (*mcp.CallToolResult, BuildQueryOutput, error) {
		a, err := resolveAdapter(reg, input.Platform)
		if err != nil {
			return nil, BuildQueryOutput{}, err
		}

		engine.IncrQueriesBuilt()
		res := pipeline.Run(input.Payload, a, engine.EmotionalMode(input.Mode), reg.Capabilities)

		if err := history.Append(ctx, a.ID(), res.Query.Query, res.Quality.Score); err != nil {
			slog.Warn("build_query: history append failed", slog.Any("error", err))
		}
		slog.Info("query built",
			slog.String("platform", a.ID()),
			slog.Int("operators", res.Query.OperatorCount),
			slog.Int("score", res.Quality.Score),
		)

		return nil, BuildQueryOutput{
			Platform:    a.ID(),
			Query:       res.Query.Query,
			URL:         res.URL,
			Badge:       res.Query.Badge,
			Operators:   res.Query.OperatorCount,
			Warnings:    res.Query.Warnings,
			Quality:     res.Quality,
			Adjustments: res.Adjustments,
			Signals:     res.Signals,
		}, nil
	})
}

func registerComparePlatforms(server *mcp.Server, reg *platforms.Registry) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "compare_platforms",
		Description: "Run the full query pipeline across every enabled platform supporting the payload's search type. Returns per-platform queries, URLs, and quality scores ranked best-first.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input CompareInput) (*mcp.CallToolResult, CompareOutput, error) {
		if input.Payload.SearchType == "" {
			input.Payload.SearchType = engine.SearchPeople
		}

		engine.IncrComparisons()
		results := pipeline.RunAll(input.Payload, reg, engine.EmotionalMode(input.Mode))
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Quality.Score > results[j].Quality.Score
		})

		slog.Info("platforms compared",
			slog.String("search_type", string(input.Payload.SearchType)),
			slog.Int("platforms", len(results)),
		)
		return nil, CompareOutput{Results: results}, nil
	})
}

func registerListPlatforms(server *mcp.Server, reg *platforms.Registry) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_platforms",
		Description: "List enabled search platforms with their labels, notes, supported search types, and Boolean capabilities. Optionally filter by search type (people, jobs, posts).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ListPlatformsInput) (*mcp.CallToolResult, ListPlatformsOutput, error) {
		var adapters []platforms.Adapter
		if t := strings.ToLower(strings.TrimSpace(input.SearchType)); t != "" {
			adapters = reg.ForSearchType(engine.SearchType(t))
		} else {
			adapters = reg.Enabled()
		}

		current := reg.Current()
		out := ListPlatformsOutput{Platforms: make([]PlatformInfo, 0, len(adapters))}
		for _, a := range adapters {
			out.Platforms = append(out.Platforms, PlatformInfo{
				ID:           a.ID(),
				Label:        a.Label(),
				Description:  a.Description(),
				Notes:        a.Notes(),
				SearchTypes:  a.SupportedSearchTypes(),
				Capabilities: a.Capabilities(),
				Current:      current != nil && current.ID() == a.ID(),
			})
		}
		return nil, out, nil
	})
}

func registerPostsQuery(server *mcp.Server, reg *platforms.Registry) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "posts_query",
		Description: "Build a posts-search query (hiring announcements, open-to-work posts) for LinkedIn, X, Reddit, or a Google X-ray over those platforms. Intent toggles inject curated phrase sets; the response lists every injected phrase.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input PostsQueryInput) (*mcp.CallToolResult, PostsQueryOutput, error) {
		platformID := input.Platform
		if platformID == "" {
			platformID = "linkedin-posts"
		}
		a, err := resolveAdapter(reg, platformID)
		if err != nil {
			return nil, PostsQueryOutput{}, err
		}
		pq, ok := a.(platforms.PostsQuerier)
		if !ok {
			return nil, PostsQueryOutput{}, fmt.Errorf("platform %q does not support posts search", a.ID())
		}

		engine.IncrPostsQueries()
		posts := input.Posts
		payload := engine.QueryPayload{SearchType: engine.SearchPosts, Posts: &posts}
		res := pq.BuildPostsQuery(payload)
		url := a.BuildURL(payload, res.Query)

		slog.Info("posts query built",
			slog.String("platform", a.ID()),
			slog.Int("operators", res.OperatorCount),
			slog.Int("injected", len(res.InjectedPhrases)),
		)
		return nil, PostsQueryOutput{
			Platform:        a.ID(),
			Query:           res.Query,
			URL:             url,
			Badge:           res.Badge,
			Operators:       res.OperatorCount,
			Warnings:        res.Warnings,
			InjectedPhrases: res.InjectedPhrases,
		}, nil
	})
}

func registerShareLinks(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "share_link_encode",
		Description: "Encode the full builder state (platform + payload) into a URL-safe token for sharing. Decoding the token restores the exact builder state.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ShareEncodeInput) (*mcp.CallToolResult, ShareEncodeOutput, error) {
		engine.IncrShareEncodes()
		token, err := engine.EncodeShareState(engine.BuilderShareState{
			Version:    engine.ShareStateVersion,
			PlatformID: input.Platform,
			Payload:    input.Payload,
		})
		if err != nil {
			return nil, ShareEncodeOutput{}, err
		}
		return nil, ShareEncodeOutput{Token: token}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "share_link_decode",
		Description: "Decode a share token back into the builder state it was created from.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ShareDecodeInput) (*mcp.CallToolResult, ShareDecodeOutput, error) {
		if input.Token == "" {
			return nil, ShareDecodeOutput{}, fmt.Errorf("token is required")
		}
		engine.IncrShareDecodes()
		state, err := engine.DecodeShareState(input.Token)
		if err != nil {
			return nil, ShareDecodeOutput{}, err
		}
		return nil, ShareDecodeOutput{
			Version:  state.Version,
			Platform: state.PlatformID,
			Payload:  state.Payload,
		}, nil
	})
}

func registerPresets(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "preset_save",
		Description: "Save a named search payload as a preset. Stored in the shared team store when DATABASE_URL is configured, otherwise locally.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input PresetSaveInput) (*mcp.CallToolResult, PresetSaveOutput, error) {
		if input.Name == "" {
			return nil, PresetSaveOutput{}, fmt.Errorf("name is required")
		}

		if db := presetdb.Get(); db != nil {
			engine.IncrPresetSaves()
			p, err := db.Save(ctx, input.Name, input.Platform, input.Payload)
			if err != nil {
				return nil, PresetSaveOutput{}, err
			}
			return nil, PresetSaveOutput{Preset: *p, Shared: true}, nil
		}

		p, err := history.SavePreset(ctx, input.Name, input.Platform, input.Payload)
		if err != nil {
			return nil, PresetSaveOutput{}, err
		}
		return nil, PresetSaveOutput{Preset: *p}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "preset_list",
		Description: "List saved search presets, newest first.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input PresetListInput) (*mcp.CallToolResult, PresetListOutput, error) {
		if db := presetdb.Get(); db != nil {
			engine.IncrPresetLoads()
			presets, err := db.List(ctx)
			if err != nil {
				return nil, PresetListOutput{}, err
			}
			return nil, PresetListOutput{Presets: presets, Shared: true}, nil
		}

		presets, err := history.ListPresets(ctx)
		if err != nil {
			return nil, PresetListOutput{}, err
		}
		return nil, PresetListOutput{Presets: presets}, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "preset_delete",
		Description: "Delete a saved preset by id.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input PresetDeleteInput) (*mcp.CallToolResult, PresetDeleteOutput, error) {
		if input.ID == "" {
			return nil, PresetDeleteOutput{}, fmt.Errorf("id is required")
		}

		var err error
		if db := presetdb.Get(); db != nil {
			err = db.Delete(ctx, input.ID)
		} else {
			err = history.DeletePreset(ctx, input.ID)
		}
		if err != nil {
			return nil, PresetDeleteOutput{}, err
		}
		return nil, PresetDeleteOutput{
			Message: fmt.Sprintf("Preset %s deleted", input.ID),
		}, nil
	})
}

func registerHistory(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "history_list",
		Description: "List recent build_query runs: platform, query text, and quality score, newest first.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input HistoryListInput) (*mcp.CallToolResult, HistoryListOutput, error) {
		entries, err := history.List(ctx, input.Limit)
		if err != nil {
			return nil, HistoryListOutput{}, err
		}
		return nil, HistoryListOutput{Entries: entries, Total: len(entries)}, nil
	})
}
