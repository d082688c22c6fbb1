package service

import (
	"context"
	"fmt"
	"math"
)

// BadgeStatus is the state shown on a module badge.
type BadgeStatus string

const (
	BadgeNotStarted BadgeStatus = "not started"
	BadgeInProgress BadgeStatus = "in progress"
	BadgeCompleted  BadgeStatus = "completed"
)

// Badge summarises one module for the module list.
type Badge struct {
	ModuleID string
	Title    string
	Status   BadgeStatus
	Score    int
	Total    int
}

// Label returns "score/total" for completed modules and the status otherwise.
func (b Badge) Label() string {
	if b.Status == BadgeCompleted {
		return fmt.Sprintf("%d/%d", b.Score, b.Total)
	}
	return string(b.Status)
}

// ProgressService aggregates quiz completion across the catalog.
type ProgressService struct {
	catalog     Catalog
	completions CompletionRepository
	sessions    SessionStorage
}

func NewProgressService(catalog Catalog, completions CompletionRepository, sessions SessionStorage) *ProgressService {
	return &ProgressService{
		catalog:     catalog,
		completions: completions,
		sessions:    sessions,
	}
}

// OverallProgress returns the rounded percentage of completed modules.
func (s *ProgressService) OverallProgress(ctx context.Context) (int, error) {
	total := s.catalog.Count()
	if total == 0 {
		return 0, nil
	}

	completed := 0
	for _, m := range s.catalog.Modules() {
		done, err := s.completions.IsCompleted(ctx, m.ID)
		if err != nil {
			return 0, fmt.Errorf("overall progress: %w", err)
		}
		if done {
			completed++
		}
	}

	return roundPercent(completed, total), nil
}

// Badges returns one badge per module in catalog order.
func (s *ProgressService) Badges(ctx context.Context) ([]Badge, error) {
	modules := s.catalog.Modules()
	badges := make([]Badge, 0, len(modules))

	for _, m := range modules {
		b := Badge{
			ModuleID: m.ID,
			Title:    m.Title,
			Status:   BadgeNotStarted,
			Total:    m.Len(),
		}

		done, err := s.completions.IsCompleted(ctx, m.ID)
		if err != nil {
			return nil, fmt.Errorf("badges: %w", err)
		}

		switch {
		case done:
			rec, err := s.completions.Get(ctx, m.ID)
			if err != nil {
				return nil, fmt.Errorf("badges: %w", err)
			}
			b.Status = BadgeCompleted
			b.Score = rec.Score
			if rec.Total > 0 {
				b.Total = rec.Total
			}
		case s.hasSession(m.ID):
			b.Status = BadgeInProgress
		}

		badges = append(badges, b)
	}

	return badges, nil
}

func (s *ProgressService) hasSession(moduleID string) bool {
	_, ok := s.sessions.Get(moduleID)
	return ok
}

func roundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
