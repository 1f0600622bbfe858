package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_sourcing/internal/engine"
)

func postsLinkedInStyle() PostsOptions {
	return PostsOptions{NotOperator: "NOT", SupportsHashtags: true}
}

func TestBuildPosts_Basic(t *testing.T) {
	res := BuildPosts(engine.PostsPayload{
		Keywords:           []string{"golang", "backend"},
		MustIncludePhrases: []string{"remote team"},
	}, postsLinkedInStyle())

	assert.Equal(t, `(golang OR backend) AND "remote team"`, res.Query)
	// 1 OR + 1 joining AND
	assert.Equal(t, 2, res.OperatorCount)
	assert.Equal(t, engine.BadgeSafe, res.Badge)
	assert.Empty(t, res.InjectedPhrases)
}

func TestBuildPosts_HiringIntentInjection(t *testing.T) {
	res := BuildPosts(engine.PostsPayload{
		Keywords:     []string{"golang"},
		HiringIntent: true,
	}, postsLinkedInStyle())

	require.Len(t, res.InjectedPhrases, len(hiringIntentPhrases))
	assert.Contains(t, res.Query, `"we are hiring"`)
	assert.Contains(t, res.Query, `"now hiring"`)
	assert.Contains(t, res.Query, "golang AND (")
}

func TestBuildPosts_AnyOfMergesWithIntent(t *testing.T) {
	res := BuildPosts(engine.PostsPayload{
		AnyOfPhrases:     []string{"hiring now"},
		OpenToWorkIntent: true,
	}, postsLinkedInStyle())

	// User phrases come first, then the injected set.
	assert.Contains(t, res.Query, "hiring now")
	assert.Contains(t, res.Query, `"open to work"`)
	require.Len(t, res.InjectedPhrases, len(openToWorkIntentPhrases))
}

func TestBuildPosts_HashtagsAndLocation(t *testing.T) {
	res := BuildPosts(engine.PostsPayload{
		Keywords:     []string{"golang"},
		Hashtags:     []string{"hiring", "#remote"},
		LocationText: "Dubai",
	}, postsLinkedInStyle())
	assert.Equal(t, "golang AND #hiring #remote AND Dubai", res.Query)
}

func TestBuildPosts_HashtagsDroppedWhenUnsupported(t *testing.T) {
	res := BuildPosts(engine.PostsPayload{
		Keywords: []string{"golang"},
		Hashtags: []string{"hiring"},
	}, PostsOptions{NotOperator: "-"})
	assert.Equal(t, "golang", res.Query)
}

func TestBuildPosts_ExcludesAppendedWithSpace(t *testing.T) {
	res := BuildPosts(engine.PostsPayload{
		Keywords:       []string{"golang"},
		ExcludePhrases: []string{"crypto"},
	}, PostsOptions{NotOperator: "-"})
	assert.Equal(t, "golang -crypto", res.Query)
	assert.Equal(t, 1, res.OperatorCount)
}

func TestBuildPosts_Empty(t *testing.T) {
	res := BuildPosts(engine.PostsPayload{}, postsLinkedInStyle())
	assert.Equal(t, "", res.Query)
	assert.Equal(t, 0, res.OperatorCount)
	assert.Equal(t, engine.BadgeSafe, res.Badge)
}

func TestBuildPostsSimplified_AlwaysSafe(t *testing.T) {
	res := BuildPostsSimplified(engine.PostsPayload{
		Keywords:         []string{"golang", "backend"},
		HiringIntent:     true,
		OpenToWorkIntent: true,
		RemoteIntent:     true,
		ExcludePhrases:   []string{"crypto"},
		LocationText:     "Cairo",
	}, postsLinkedInStyle())

	assert.Equal(t, engine.BadgeSafe, res.Badge)
	assert.Equal(t, 0, res.OperatorCount)
	// One representative literal per enabled toggle.
	assert.Equal(t, []string{`"we are hiring"`, `"open to work"`, "remote"}, res.InjectedPhrases)
	assert.Contains(t, res.Query, "-crypto")
	assert.NotContains(t, res.Query, " AND ")
	assert.NotContains(t, res.Query, " OR ")
}

func TestQuotePhrase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"remote team", `"remote team"`},
		{`"already quoted"`, `"already quoted"`},
		{"single", `"single"`},
		{"", ""},
	}
	for _, tt := range tests {
		if got := quotePhrase(tt.in); got != tt.want {
			t.Errorf("quotePhrase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
