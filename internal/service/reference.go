package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/aliskhannn/git-tutor/internal/domain/entities"
)

var ErrUnknownCommand = errors.New("no reference entry for command")

// LearningProgress counts the reference cards a learner has opened.
type LearningProgress struct {
	Viewed     int
	Total      int
	Percentage int
}

// CommandEntry is a reference entry with its viewed mark.
type CommandEntry struct {
	Info   entities.CommandInfo
	Viewed bool
}

// ReferenceService serves the git command reference and tracks which
// entries have been opened.
type ReferenceService struct {
	commands CommandRepository
	progress ProgressRepository
	logger   *zap.Logger
}

func NewReferenceService(commands CommandRepository, progress ProgressRepository, logger *zap.Logger) *ReferenceService {
	return &ReferenceService{
		commands: commands,
		progress: progress,
		logger:   logger,
	}
}

// Lookup returns the reference entry for command.
func (s *ReferenceService) Lookup(command string) (entities.CommandInfo, bool) {
	return s.commands.Lookup(command)
}

// Open returns the reference entry for command and marks it viewed.
func (s *ReferenceService) Open(ctx context.Context, command string) (entities.CommandInfo, error) {
	info, ok := s.commands.Lookup(command)
	if !ok {
		return entities.CommandInfo{}, fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}

	added, err := s.progress.MarkViewed(ctx, info.Name)
	if err != nil {
		return entities.CommandInfo{}, fmt.Errorf("open reference: %w", err)
	}
	if added {
		s.logger.Debug("reference card viewed", zap.String("command", info.Name))
	}

	return info, nil
}

// Commands lists every entry in table order.
func (s *ReferenceService) Commands(ctx context.Context) ([]CommandEntry, error) {
	viewed, err := s.progress.Viewed(ctx)
	if err != nil {
		return nil, fmt.Errorf("list commands: %w", err)
	}

	all := s.commands.All()
	entries := make([]CommandEntry, 0, len(all))
	for _, c := range all {
		entries = append(entries, CommandEntry{
			Info:   c,
			Viewed: slices.Contains(viewed, c.Name),
		})
	}

	return entries, nil
}

// Progress returns how many reference entries have been opened. Stored ids
// that are no longer in the table are not counted.
func (s *ReferenceService) Progress(ctx context.Context) (LearningProgress, error) {
	viewed, err := s.progress.Viewed(ctx)
	if err != nil {
		return LearningProgress{}, fmt.Errorf("learning progress: %w", err)
	}

	n := 0
	for _, id := range viewed {
		if _, ok := s.commands.Lookup(id); ok {
			n++
		}
	}
	total := len(s.commands.All())

	return LearningProgress{
		Viewed:     n,
		Total:      total,
		Percentage: roundPercent(n, total),
	}, nil
}

// Reset forgets every opened reference entry.
func (s *ReferenceService) Reset(ctx context.Context) error {
	if err := s.progress.Reset(ctx); err != nil {
		return err
	}

	s.logger.Info("learning progress reset")
	return nil
}
