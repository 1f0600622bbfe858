package platforms

import "github.com/anatolykoptev/go_sourcing/internal/engine"

// DefaultPlatformID is selected when nothing else is configured.
const DefaultPlatformID = "linkedin"

// FlagFunc reports whether a platform id is enabled. The registry takes it
// as a dependency instead of reading config directly.
type FlagFunc func(id string) bool

// Registry holds adapters in registration order. Registered once at
// startup; the only mutable piece is the current selection.
type Registry struct {
	order   []Adapter
	byID    map[string]Adapter
	enabled FlagFunc
	current string
}

// NewRegistry registers adapters in the given order. A nil enabled func
// means every platform is enabled.
func NewRegistry(enabled FlagFunc, adapters ...Adapter) *Registry {
	if enabled == nil {
		enabled = func(string) bool { return true }
	}
	r := &Registry{
		byID:    make(map[string]Adapter, len(adapters)),
		enabled: enabled,
		current: DefaultPlatformID,
	}
	for _, a := range adapters {
		if _, dup := r.byID[a.ID()]; dup {
			continue
		}
		r.byID[a.ID()] = a
		r.order = append(r.order, a)
	}
	return r
}

// Default builds a registry with every adapter in canonical order.
func Default(enabled FlagFunc) *Registry {
	return NewRegistry(enabled,
		newLinkedIn(),
		newSalesNavigator(),
		newGoogle(),
		newGoogleJobs(),
		newIndeed(),
		newBayt(),
		newGulfTalent(),
		newNaukriGulf(),
		newArabJobs(),
		newBeBee(),
		newGulfJobs(),
		newRecruitNet(),
		newLinkedInPosts(),
		newXPosts(),
		newRedditPosts(),
		newGooglePosts("google-linkedin-posts", "Google → LinkedIn posts", "linkedin.com/posts"),
		newGooglePosts("google-x-posts", "Google → X posts", "x.com"),
		newGooglePosts("google-reddit-posts", "Google → Reddit posts", "reddit.com"),
	)
}

// Get returns an adapter by id.
func (r *Registry) Get(id string) (Adapter, bool) {
	a, ok := r.byID[id]
	return a, ok
}

// EnabledGet returns an adapter by id, treating a disabled platform as
// absent. Callers resolving user-supplied ids use this so the feature
// flags cannot be bypassed by name.
func (r *Registry) EnabledGet(id string) (Adapter, bool) {
	a, ok := r.byID[id]
	if !ok || !r.enabled(a.ID()) {
		return nil, false
	}
	return a, true
}

// Capabilities looks up a platform's capabilities by id.
func (r *Registry) Capabilities(id string) (engine.Capabilities, bool) {
	a, ok := r.byID[id]
	if !ok {
		return engine.Capabilities{}, false
	}
	return a.Capabilities(), true
}

// Current returns the currently selected adapter, falling back to the first
// enabled platform when the selection itself is disabled.
func (r *Registry) Current() Adapter {
	if a, ok := r.byID[r.current]; ok && r.enabled(r.current) {
		return a
	}
	return r.FirstEnabled()
}

// SetCurrent selects a platform. A disabled target silently redirects to
// the first enabled platform; an unknown id leaves the selection unchanged.
// Never fails.
func (r *Registry) SetCurrent(id string) {
	a, ok := r.byID[id]
	if !ok {
		return
	}
	if !r.enabled(a.ID()) {
		if first := r.FirstEnabled(); first != nil {
			r.current = first.ID()
		}
		return
	}
	r.current = a.ID()
}

// ForSearchType returns enabled adapters supporting the search type,
// preserving registration order.
func (r *Registry) ForSearchType(t engine.SearchType) []Adapter {
	var out []Adapter
	for _, a := range r.order {
		if !r.enabled(a.ID()) {
			continue
		}
		for _, st := range a.SupportedSearchTypes() {
			if st == t {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

// Enabled returns the feature-flag-filtered adapter list in registration order.
func (r *Registry) Enabled() []Adapter {
	var out []Adapter
	for _, a := range r.order {
		if r.enabled(a.ID()) {
			out = append(out, a)
		}
	}
	return out
}

// FirstEnabled returns the first enabled adapter, or nil when everything is
// switched off.
func (r *Registry) FirstEnabled() Adapter {
	for _, a := range r.order {
		if r.enabled(a.ID()) {
			return a
		}
	}
	return nil
}

// All returns every registered adapter regardless of flags.
func (r *Registry) All() []Adapter {
	out := make([]Adapter, len(r.order))
	copy(out, r.order)
	return out
}
