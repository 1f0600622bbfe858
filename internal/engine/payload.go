package engine

// SearchType selects which builder family a platform runs for a payload.
type SearchType string

const (
	SearchPeople SearchType = "people"
	SearchJobs   SearchType = "jobs"
	SearchPosts  SearchType = "posts"
)

// EmotionalMode is the user-selected urgency preset. It pre-adjusts query
// breadth before any platform sees the payload.
type EmotionalMode string

const (
	ModeUrgent EmotionalMode = "urgent"
	ModeNormal EmotionalMode = "normal"
	ModeChill  EmotionalMode = "chill"
)

// DateRange filters posts search by recency.
type DateRange string

const (
	DateAny     DateRange = "any"
	DatePast24h DateRange = "24h"
	DatePast7d  DateRange = "7d"
)

// HiringSignals is the caller's opt-in selection of signal injections.
type HiringSignals struct {
	Enabled  bool     `json:"enabled"`
	Selected []string `json:"selected,omitempty"`
}

// PostsPayload carries the fields used only when SearchType is posts.
type PostsPayload struct {
	Keywords           []string  `json:"keywords,omitempty"`
	MustIncludePhrases []string  `json:"must_include_phrases,omitempty"`
	AnyOfPhrases       []string  `json:"any_of_phrases,omitempty"`
	ExcludePhrases     []string  `json:"exclude_phrases,omitempty"`
	Hashtags           []string  `json:"hashtags,omitempty"`
	HiringIntent       bool      `json:"hiring_intent,omitempty"`
	OpenToWorkIntent   bool      `json:"open_to_work_intent,omitempty"`
	RemoteIntent       bool      `json:"remote_intent,omitempty"`
	LocationText       string    `json:"location_text,omitempty"`
	DateRange          DateRange `json:"date_range,omitempty"`
}

// QueryPayload is the canonical input to the engine. Transforms never mutate
// a payload in place: each stage works on a Clone, so one source payload can
// feed every platform adapter without cross-contamination.
type QueryPayload struct {
	SearchType    SearchType        `json:"search_type"`
	Titles        []string          `json:"titles,omitempty"`
	Skills        []string          `json:"skills,omitempty"`
	Exclude       []string          `json:"exclude,omitempty"`
	Location      string            `json:"location,omitempty"`
	EmotionalMode EmotionalMode     `json:"emotional_mode,omitempty"`
	HiringSignals *HiringSignals    `json:"hiring_signals,omitempty"`
	Posts         *PostsPayload     `json:"posts,omitempty"`
	Filters       map[string]string `json:"filters,omitempty"`

	// SignalIncludes is populated by the hiring-signals transform, never by
	// the caller. Phrases are pre-quoted where multi-word.
	SignalIncludes []string `json:"signal_includes,omitempty"`

	// UseOrForSkills is set by the pipeline when urgent mode broadens the
	// skills group. Not part of the persisted payload shape.
	UseOrForSkills bool `json:"-"`
}

// DefaultPostsPayload returns the documented empty posts payload substituted
// when a posts search arrives without one.
func DefaultPostsPayload() PostsPayload {
	return PostsPayload{DateRange: DateAny}
}

// PostsOrDefault returns the posts payload, substituting the default when absent.
func (p QueryPayload) PostsOrDefault() PostsPayload {
	if p.Posts == nil {
		return DefaultPostsPayload()
	}
	pp := *p.Posts
	if pp.DateRange == "" {
		pp.DateRange = DateAny
	}
	return pp
}

// Mode returns the emotional mode, defaulting to normal.
func (p QueryPayload) Mode() EmotionalMode {
	switch p.EmotionalMode {
	case ModeUrgent, ModeChill:
		return p.EmotionalMode
	default:
		return ModeNormal
	}
}

// Filter returns a platform-specific filter value, or "" when unset.
func (p QueryPayload) Filter(key string) string {
	return p.Filters[key]
}

// Clone returns a deep copy of the payload. Slices, the filter map, and the
// optional sub-structs are all copied.
func (p QueryPayload) Clone() QueryPayload {
	c := p
	c.Titles = cloneStrings(p.Titles)
	c.Skills = cloneStrings(p.Skills)
	c.Exclude = cloneStrings(p.Exclude)
	c.SignalIncludes = cloneStrings(p.SignalIncludes)
	if p.HiringSignals != nil {
		hs := *p.HiringSignals
		hs.Selected = cloneStrings(p.HiringSignals.Selected)
		c.HiringSignals = &hs
	}
	if p.Posts != nil {
		pp := *p.Posts
		pp.Keywords = cloneStrings(p.Posts.Keywords)
		pp.MustIncludePhrases = cloneStrings(p.Posts.MustIncludePhrases)
		pp.AnyOfPhrases = cloneStrings(p.Posts.AnyOfPhrases)
		pp.ExcludePhrases = cloneStrings(p.Posts.ExcludePhrases)
		pp.Hashtags = cloneStrings(p.Posts.Hashtags)
		c.Posts = &pp
	}
	if p.Filters != nil {
		c.Filters = make(map[string]string, len(p.Filters))
		for k, v := range p.Filters {
			c.Filters[k] = v
		}
	}
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
