// Package transform adjusts a query payload before any platform adapter
// sees it: emotional-mode breadth tuning and hiring-signal phrase injection.
package transform

// SignalCategory groups signals in the picker UI.
type SignalCategory string

const (
	CategoryInclude  SignalCategory = "include"
	CategoryExclude  SignalCategory = "exclude"
	CategoryAdvanced SignalCategory = "advanced"
)

// SignalDefinition is one entry in the static hiring-signal catalog.
// Phrases are literal and pre-quoted where multi-word. Immutable.
type SignalDefinition struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Category       SignalCategory `json:"category"`
	IncludePhrases []string       `json:"include_phrases,omitempty"`
	ExcludePhrases []string       `json:"exclude_phrases,omitempty"`
	Experimental   bool           `json:"experimental,omitempty"`
}

var signalCatalog = []SignalDefinition{
	{
		ID:       "open-to-work",
		Title:    "Open to work",
		Category: CategoryInclude,
		IncludePhrases: []string{
			`"open to work"`, `"opentowork"`, `"open for opportunities"`,
		},
	},
	{
		ID:       "actively-looking",
		Title:    "Actively looking",
		Category: CategoryInclude,
		IncludePhrases: []string{
			`"actively looking"`, `"seeking new opportunities"`, `"available immediately"`,
		},
	},
	{
		ID:       "exclude-students",
		Title:    "Exclude students",
		Category: CategoryExclude,
		ExcludePhrases: []string{
			"intern", "student", `"fresh graduate"`,
		},
	},
	{
		ID:       "exclude-recruiters",
		Title:    "Exclude recruiters",
		Category: CategoryExclude,
		ExcludePhrases: []string{
			"recruiter", `"talent acquisition"`, "staffing",
		},
	},
	{
		ID:       "career-switchers",
		Title:    "Career switchers",
		Category: CategoryAdvanced,
		IncludePhrases: []string{
			`"career change"`, `"transitioning to"`,
		},
		Experimental: true,
	},
}

// SignalByID looks up a catalog entry.
func SignalByID(id string) (SignalDefinition, bool) {
	for _, def := range signalCatalog {
		if def.ID == id {
			return def, true
		}
	}
	return SignalDefinition{}, false
}

// Signals returns a copy of the catalog in declaration order.
func Signals() []SignalDefinition {
	out := make([]SignalDefinition, len(signalCatalog))
	copy(out, signalCatalog)
	return out
}
