package aigen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusDisabledWithoutGateway(t *testing.T) {
	svc := NewService(nil, "", nil)

	status := svc.Status()
	assert.False(t, status.Enabled)
	assert.Empty(t, status.Model)
}

func TestDisabledServiceUsesFallbacks(t *testing.T) {
	svc := NewService(nil, "", nil)
	ctx := context.Background()

	desc, err := svc.GenerateDescription(ctx, "space rockets")
	require.NoError(t, err)
	assert.Contains(t, desc, "space rockets")

	tags, err := svc.GenerateTags(ctx, "space rockets")
	require.NoError(t, err)
	assert.Contains(t, tags, "space rockets")

	thumbs, err := svc.GenerateThumbnailIdeas(ctx, "space rockets")
	require.NoError(t, err)
	assert.Len(t, thumbs, 4)

	ideas, err := svc.GenerateContentIdeas(ctx, "science")
	require.NoError(t, err)
	assert.Len(t, ideas, 5)
}

func TestFallbacksAreDeterministic(t *testing.T) {
	assert.Equal(t, FallbackDescription("minecraft"), FallbackDescription("minecraft"))
	assert.Equal(t, FallbackTags("minecraft builds"), FallbackTags("minecraft builds"))
	assert.Equal(t, FallbackThumbnailIdeas("minecraft"), FallbackThumbnailIdeas("minecraft"))
	assert.Equal(t, FallbackContentIdeas("gaming"), FallbackContentIdeas("gaming"))
}

func TestFallbackContentIdeasUnknownCategory(t *testing.T) {
	assert.Equal(t, defaultIdeas, FallbackContentIdeas(""))
	assert.Equal(t, defaultIdeas, FallbackContentIdeas("underwater basket weaving"))
	assert.Equal(t, ideasByCategory["gaming"], FallbackContentIdeas("GAMING"))
}

func TestFallbackDescriptionEmptyTopic(t *testing.T) {
	desc := FallbackDescription("   ")
	assert.Contains(t, desc, "something awesome")
}

func TestSplitLines(t *testing.T) {
	input := "- first idea\n\n2. second idea\n* third idea\nfourth idea\nfifth idea\nsixth idea"
	out := splitLines(input, 5)
	require.Len(t, out, 5)
	assert.Equal(t, "first idea", out[0])
	assert.Equal(t, "second idea", out[1])
	assert.Equal(t, "third idea", out[2])
}
