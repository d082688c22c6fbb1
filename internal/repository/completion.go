package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aliskhannn/git-tutor/internal/domain/entities"
	"github.com/aliskhannn/git-tutor/internal/storage"
)

var ErrCompletionNotFound = errors.New("completion record not found")

const completedFlag = "true"

// CompletionRepository persists per-module quiz results in a KV store.
//
// Each module uses a completion flag and a score key, plus the badge keys
// for total and completion time. Absent or malformed values read as
// "not completed".
type CompletionRepository struct {
	kv KV
}

// NewCompletionRepository creates a new CompletionRepository over kv.
func NewCompletionRepository(kv KV) *CompletionRepository {
	return &CompletionRepository{kv: kv}
}

// RecordCompletion creates or overwrites the completion record of a module.
// The flag is written last so an interrupted write reads as not completed.
// Backends implementing BatchKV write all keys in one transaction.
func (r *CompletionRepository) RecordCompletion(ctx context.Context, moduleID string, score, total int) error {
	rec := entities.NewCompletionRecord(moduleID, score, total)

	pairs := []KeyValue{
		{Key: quizScoreKey(moduleID), Value: strconv.Itoa(rec.Score)},
		{Key: quizTotalKey(moduleID), Value: strconv.Itoa(rec.Total)},
		{Key: quizCompletedAtKey(moduleID), Value: rec.CompletedAt.UTC().Format(time.RFC3339)},
		{Key: quizCompletedKey(moduleID), Value: completedFlag},
	}

	if batch, ok := r.kv.(BatchKV); ok {
		if err := batch.SetMany(ctx, pairs); err != nil {
			return fmt.Errorf("record completion: %w", err)
		}
		return nil
	}

	for _, p := range pairs {
		if err := r.kv.Set(ctx, p.Key, p.Value); err != nil {
			return fmt.Errorf("record completion: %w", err)
		}
	}

	return nil
}

// Get retrieves the completion record of a module.
// Returns ErrCompletionNotFound if the module has no valid record.
func (r *CompletionRepository) Get(ctx context.Context, moduleID string) (*entities.CompletionRecord, error) {
	flag, err := r.get(ctx, quizCompletedKey(moduleID))
	if err != nil {
		return nil, fmt.Errorf("get completion: %w", err)
	}
	if flag != completedFlag {
		return nil, ErrCompletionNotFound
	}

	rawScore, err := r.get(ctx, quizScoreKey(moduleID))
	if err != nil {
		return nil, fmt.Errorf("get completion: %w", err)
	}
	score, err := strconv.Atoi(rawScore)
	if err != nil || score < 0 {
		return nil, ErrCompletionNotFound
	}

	rec := &entities.CompletionRecord{
		ModuleID:  moduleID,
		Completed: true,
		Score:     score,
	}

	// Badge data is optional.
	rawTotal, err := r.get(ctx, quizTotalKey(moduleID))
	if err != nil {
		return nil, fmt.Errorf("get completion: %w", err)
	}
	if total, convErr := strconv.Atoi(rawTotal); convErr == nil && total > 0 {
		rec.Total = total
	}

	rawAt, err := r.get(ctx, quizCompletedAtKey(moduleID))
	if err != nil {
		return nil, fmt.Errorf("get completion: %w", err)
	}
	if at, parseErr := time.Parse(time.RFC3339, rawAt); parseErr == nil {
		rec.CompletedAt = &at
	}

	return rec, nil
}

// IsCompleted reports whether the module has a valid completion record.
func (r *CompletionRepository) IsCompleted(ctx context.Context, moduleID string) (bool, error) {
	_, err := r.Get(ctx, moduleID)
	if err != nil {
		if errors.Is(err, ErrCompletionNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// GetScore returns the stored score of a module. The boolean is false when
// the module is not completed.
func (r *CompletionRepository) GetScore(ctx context.Context, moduleID string) (int, bool, error) {
	rec, err := r.Get(ctx, moduleID)
	if err != nil {
		if errors.Is(err, ErrCompletionNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}

	return rec.Score, true, nil
}

// Clear removes the completion record of a module.
// The flag goes first so a partial clear already reads as not completed.
func (r *CompletionRepository) Clear(ctx context.Context, moduleID string) error {
	keys := []string{
		quizCompletedKey(moduleID),
		quizScoreKey(moduleID),
		quizTotalKey(moduleID),
		quizCompletedAtKey(moduleID),
	}

	for _, k := range keys {
		if err := r.kv.Delete(ctx, k); err != nil {
			return fmt.Errorf("clear completion: %w", err)
		}
	}

	return nil
}

// get returns the value under key, or "" if the key is absent.
func (r *CompletionRepository) get(ctx context.Context, key string) (string, error) {
	v, err := r.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return v, nil
}
