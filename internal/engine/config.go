package engine

import "strings"

// Config holds all engine configuration, injected from main.
type Config struct {
	DefaultPlatform   string   // platform id selected at startup
	DisabledPlatforms []string // feature flags: platform ids hidden from the registry
	HistoryLimit      int      // max retained history entries (0 = unlimited)
	DatabaseURL       string   // optional shared preset store; empty = sqlite only
	DataDir           string   // local data dir override; empty = ~/.go_sourcing
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages.
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}

// PlatformDisabled reports whether a platform id is switched off by config.
func PlatformDisabled(id string) bool {
	for _, d := range cfg.DisabledPlatforms {
		if strings.EqualFold(strings.TrimSpace(d), id) {
			return true
		}
	}
	return false
}
