package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/aliskhannn/git-tutor/internal/storage"
)

// ProgressRepository persists which reference cards a learner has viewed,
// as a JSON array stored under a single key.
type ProgressRepository struct {
	kv KV
}

// NewProgressRepository creates a new ProgressRepository over kv.
func NewProgressRepository(kv KV) *ProgressRepository {
	return &ProgressRepository{kv: kv}
}

// Viewed returns the viewed card ids in the order they were first viewed.
// A missing or unreadable value is treated as no progress.
func (r *ProgressRepository) Viewed(ctx context.Context) ([]string, error) {
	raw, err := r.kv.Get(ctx, learningProgressKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("get viewed: %w", err)
	}

	var ids []string
	if err = json.Unmarshal([]byte(raw), &ids); err != nil {
		return []string{}, nil
	}
	if ids == nil {
		ids = []string{}
	}

	return ids, nil
}

// MarkViewed records a card as viewed. It reports false if the card was
// already recorded.
func (r *ProgressRepository) MarkViewed(ctx context.Context, cardID string) (bool, error) {
	ids, err := r.Viewed(ctx)
	if err != nil {
		return false, err
	}

	if slices.Contains(ids, cardID) {
		return false, nil
	}
	ids = append(ids, cardID)

	raw, err := json.Marshal(ids)
	if err != nil {
		return false, fmt.Errorf("mark viewed: %w", err)
	}
	if err = r.kv.Set(ctx, learningProgressKey, string(raw)); err != nil {
		return false, fmt.Errorf("mark viewed: %w", err)
	}

	return true, nil
}

// Reset removes all viewed cards.
func (r *ProgressRepository) Reset(ctx context.Context) error {
	if err := r.kv.Delete(ctx, learningProgressKey); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}

	return nil
}
