package services

import (
	"context"
	"testing"

	"github.com/cortexops/playbookd/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactService_VersionChain(t *testing.T) {
	client := setupTestDB(t)
	svc := NewArtifactService(client)
	ctx := context.Background()

	v1, err := svc.CreateArtifact(ctx, models.CreateArtifactRequest{
		WorkspaceID:  "ws-1",
		ExecutionID:  "exec-1",
		PlaybookCode: "seo_article",
		ArtifactType: "draft",
		Title:        "Coffee article",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, v1.Version)
	assert.True(t, v1.IsLatest)

	v2, err := svc.CreateArtifact(ctx, models.CreateArtifactRequest{
		WorkspaceID:  "ws-1",
		ExecutionID:  "exec-2",
		PlaybookCode: "seo_article",
		ArtifactType: "draft",
		Title:        "Coffee article, revised",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, v2.Version)
	assert.True(t, v2.IsLatest)

	// Previous version lost the marker
	prev, err := svc.GetArtifact(ctx, v1.ID)
	require.NoError(t, err)
	assert.False(t, prev.IsLatest)

	// A different chain starts at version 1 again
	other, err := svc.CreateArtifact(ctx, models.CreateArtifactRequest{
		WorkspaceID:  "ws-1",
		ExecutionID:  "exec-3",
		PlaybookCode: "seo_article",
		ArtifactType: "checklist",
		Title:        "Launch checklist",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, other.Version)

	latest, err := svc.ListLatestByWorkspace(ctx, "ws-1", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, latest.TotalCount)
}

func TestArtifactService_ListByExecution(t *testing.T) {
	client := setupTestDB(t)
	svc := NewArtifactService(client)
	ctx := context.Background()

	_, err := svc.CreateArtifact(ctx, models.CreateArtifactRequest{
		WorkspaceID:  "ws-1",
		ExecutionID:  "exec-1",
		PlaybookCode: "podcast_episode",
		ArtifactType: "audio",
		Title:        "Episode 12",
	})
	require.NoError(t, err)

	resp, err := svc.ListByExecution(ctx, "exec-1")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalCount)

	empty, err := svc.ListByExecution(ctx, "exec-none")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.TotalCount)
}

func TestArtifactService_Validation(t *testing.T) {
	client := setupTestDB(t)
	svc := NewArtifactService(client)
	ctx := context.Background()

	_, err := svc.CreateArtifact(ctx, models.CreateArtifactRequest{
		WorkspaceID: "ws-1",
		ExecutionID: "exec-1",
	})
	assert.True(t, IsValidationError(err))
}
