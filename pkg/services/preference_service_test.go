package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceService_DefaultsToEnabled(t *testing.T) {
	client := setupTestDB(t)
	svc := NewPreferenceService(client)
	ctx := context.Background()

	enabled, err := svc.AutoSuggestEnabled(ctx, "ws-1", "user-1", "seo_article", "suggestion")
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestPreferenceService_OptOutAndBack(t *testing.T) {
	client := setupTestDB(t)
	svc := NewPreferenceService(client)
	ctx := context.Background()

	require.NoError(t, svc.SetAutoSuggest(ctx, "ws-1", "user-1", "seo_article", "suggestion", false))

	enabled, err := svc.AutoSuggestEnabled(ctx, "ws-1", "user-1", "seo_article", "suggestion")
	require.NoError(t, err)
	assert.False(t, enabled)

	// Other packs are unaffected
	enabled, err = svc.AutoSuggestEnabled(ctx, "ws-1", "user-1", "podcast_episode", "suggestion")
	require.NoError(t, err)
	assert.True(t, enabled)

	// Upsert flips the same row back
	require.NoError(t, svc.SetAutoSuggest(ctx, "ws-1", "user-1", "seo_article", "suggestion", true))
	enabled, err = svc.AutoSuggestEnabled(ctx, "ws-1", "user-1", "seo_article", "suggestion")
	require.NoError(t, err)
	assert.True(t, enabled)
}
