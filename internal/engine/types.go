package engine

// BooleanLevel is a platform's declared Boolean-operator support tier.
type BooleanLevel string

const (
	BooleanGood    BooleanLevel = "good"
	BooleanPartial BooleanLevel = "partial"
	BooleanNone    BooleanLevel = "none"
)

// Region groups platforms by their primary market.
type Region string

const (
	RegionGlobal Region = "global"
	RegionMENA   Region = "mena"
)

// BadgeStatus is the three-level risk signal attached to a built query.
type BadgeStatus string

const (
	BadgeSafe    BadgeStatus = "safe"
	BadgeWarning BadgeStatus = "warning"
	BadgeDanger  BadgeStatus = "danger"
)

// Capabilities declares what a platform's search syntax supports.
// Immutable after construction.
type Capabilities struct {
	SupportsBoolean      bool         `json:"supports_boolean"`
	SupportsParentheses  bool         `json:"supports_parentheses"`
	SupportsQuotes       bool         `json:"supports_quotes"`
	SupportsNot          bool         `json:"supports_not"`
	SupportsOr           bool         `json:"supports_or"`
	SupportsAnd          bool         `json:"supports_and"`
	SupportsMinusExclude bool         `json:"supports_minus_exclude"`
	SupportsHashtags     bool         `json:"supports_hashtags"`
	BooleanLevel         BooleanLevel `json:"boolean_level"`
	Region               Region       `json:"region"`
	MaxOperators         int          `json:"max_operators,omitempty"`
	MaxQueryLength       int          `json:"max_query_length,omitempty"`
}

// QueryResult is the output of an adapter's BuildQuery. Ephemeral:
// recomputed on every payload change.
type QueryResult struct {
	Query         string      `json:"query"`
	OperatorCount int         `json:"operator_count"`
	Warnings      []string    `json:"warnings,omitempty"`
	Badge         BadgeStatus `json:"badge"`
}

// Validation is advisory only: no adapter ever reports a hard error.
type Validation struct {
	IsValid  bool     `json:"is_valid"`
	Warnings []string `json:"warnings,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

// QualityLevel buckets a quality score.
type QualityLevel string

const (
	LevelGood  QualityLevel = "good"
	LevelOK    QualityLevel = "ok"
	LevelRisky QualityLevel = "risky"
)

// ReasonType classifies a quality-score reason.
type ReasonType string

const (
	ReasonInfo    ReasonType = "info"
	ReasonWarning ReasonType = "warning"
)

// ScoreReason is a single line of quality-score rationale.
type ScoreReason struct {
	Type    ReasonType `json:"type"`
	Message string     `json:"message"`
}

// QualityScore is the deterministic 0-100 rubric result for a built query.
type QualityScore struct {
	Score   int           `json:"score"`
	Level   QualityLevel  `json:"level"`
	Reasons []ScoreReason `json:"reasons,omitempty"`
	Tips    []string      `json:"tips,omitempty"`
}

// LevelForScore buckets a clamped score: >=70 good, >=40 ok, else risky.
func LevelForScore(score int) QualityLevel {
	switch {
	case score >= 70:
		return LevelGood
	case score >= 40:
		return LevelOK
	default:
		return LevelRisky
	}
}

// SignalsExplanation is the transparency record of a hiring-signals pass.
type SignalsExplanation struct {
	Enabled          bool     `json:"enabled"`
	AppliedSignals   []string `json:"applied_signals,omitempty"`
	InjectedIncludes []string `json:"injected_includes,omitempty"`
	InjectedExcludes []string `json:"injected_excludes,omitempty"`
	Warnings         []string `json:"warnings,omitempty"`
}

// Preset is a named, stored builder payload keyed to a platform id. The bare
// platform id string round-trips through the registry on load.
type Preset struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	PlatformID string       `json:"platform_id"`
	Payload    QueryPayload `json:"payload"`
	CreatedAt  string       `json:"created_at"`
}

// HistoryEntry is one recorded build_query run.
type HistoryEntry struct {
	ID         int64  `json:"id"`
	PlatformID string `json:"platform_id"`
	Query      string `json:"query"`
	Score      int    `json:"score"`
	CreatedAt  string `json:"created_at"`
}
