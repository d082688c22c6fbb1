package terminal

import (
	"context"

	"github.com/aliskhannn/git-tutor/internal/domain/entities"
	"github.com/aliskhannn/git-tutor/internal/service"
)

type QuizService interface {
	Dispatch(ctx context.Context, a service.Action) (*service.Outcome, error)
	Snapshot(moduleID string) (entities.QuizSession, bool)
}

type ProgressService interface {
	OverallProgress(ctx context.Context) (int, error)
	Badges(ctx context.Context) ([]service.Badge, error)
}

type ReferenceService interface {
	Open(ctx context.Context, command string) (entities.CommandInfo, error)
	Commands(ctx context.Context) ([]service.CommandEntry, error)
	Progress(ctx context.Context) (service.LearningProgress, error)
	Reset(ctx context.Context) error
}
