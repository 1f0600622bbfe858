// go_sourcing is a Boolean recruiting-search query builder MCP server.
//
// Converts a normalized search payload (titles, skills, exclusions, hiring
// signals, posts phrases) into platform-specific Boolean queries, deep-link
// URLs, and quality scores for ~18 platforms. Exposes the engine as MCP
// tools over HTTP or stdio, with local history and presets.
package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
	"github.com/anatolykoptev/go_sourcing/internal/engine/platforms"
	"github.com/anatolykoptev/go_sourcing/internal/engine/presetdb"
	"github.com/anatolykoptev/go_sourcing/internal/queryserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8894")
)

func main() {
	_ = godotenv.Load()
	initEngine()

	slog.Info("starting go_sourcing",
		slog.String("port", mcpPort),
	)

	reg := platforms.Default(func(id string) bool {
		return !engine.PlatformDisabled(id)
	})
	reg.SetCurrent(engine.Cfg.DefaultPlatform)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_sourcing",
		Version: version,
	}, nil)

	queryserver.RegisterTools(server, reg)
	slog.Info("tools registered",
		slog.Int("platforms", len(reg.Enabled())),
	)

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_sourcing",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 60 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		DefaultPlatform:   env.Str("DEFAULT_PLATFORM", platforms.DefaultPlatformID),
		DisabledPlatforms: env.List("DISABLED_PLATFORMS", ""),
		HistoryLimit:      env.Int("HISTORY_LIMIT", 200),
		DatabaseURL:       env.Str("DATABASE_URL", ""),
		DataDir:           env.Str("DATA_DIR", ""),
	}
	engine.Init(c)

	// Shared preset store (PostgreSQL, optional)
	if c.DatabaseURL != "" {
		db, err := presetdb.Connect(context.Background(), c.DatabaseURL)
		if err != nil {
			slog.Warn("shared preset store init failed, using local store", slog.Any("error", err))
		} else {
			presetdb.Set(db)
		}
	}
}
