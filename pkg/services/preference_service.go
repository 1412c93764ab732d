package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cortexops/playbookd/ent"
	"github.com/cortexops/playbookd/ent/suggestionpreference"
	"github.com/google/uuid"
)

// PreferenceService tracks per-user suggestion opt-outs.
type PreferenceService struct {
	client *ent.Client
}

// NewPreferenceService creates a new PreferenceService
func NewPreferenceService(client *ent.Client) *PreferenceService {
	return &PreferenceService{client: client}
}

// AutoSuggestEnabled reports whether suggestions of this pack and task
// type may be created for the user. Defaults to true with no record.
func (s *PreferenceService) AutoSuggestEnabled(ctx context.Context, workspaceID, userID, packID, taskType string) (bool, error) {
	pref, err := s.client.SuggestionPreference.Query().
		Where(
			suggestionpreference.WorkspaceIDEQ(workspaceID),
			suggestionpreference.UserIDEQ(userID),
			suggestionpreference.PackIDEQ(packID),
			suggestionpreference.TaskTypeEQ(taskType),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return true, nil
		}
		return false, fmt.Errorf("failed to query suggestion preference: %w", err)
	}
	return pref.AutoSuggestEnabled, nil
}

// SetAutoSuggest upserts the preference record
func (s *PreferenceService) SetAutoSuggest(ctx context.Context, workspaceID, userID, packID, taskType string, enabled bool) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.SuggestionPreference.Create().
		SetID(uuid.New().String()).
		SetWorkspaceID(workspaceID).
		SetUserID(userID).
		SetPackID(packID).
		SetTaskType(taskType).
		SetAutoSuggestEnabled(enabled).
		SetUpdatedAt(time.Now()).
		OnConflictColumns(
			suggestionpreference.FieldWorkspaceID,
			suggestionpreference.FieldUserID,
			suggestionpreference.FieldPackID,
			suggestionpreference.FieldTaskType,
		).
		SetAutoSuggestEnabled(enabled).
		SetUpdatedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to upsert suggestion preference: %w", err)
	}
	return nil
}
