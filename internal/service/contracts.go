package service

import (
	"context"

	"github.com/aliskhannn/git-tutor/internal/domain/entities"
)

// Catalog is the read-only table of quiz modules.
type Catalog interface {
	GetModule(id string) (entities.Module, bool)
	Modules() []entities.Module
	Count() int
}

// CompletionRepository persists per-module quiz results.
type CompletionRepository interface {
	RecordCompletion(ctx context.Context, moduleID string, score, total int) error
	Get(ctx context.Context, moduleID string) (*entities.CompletionRecord, error)
	IsCompleted(ctx context.Context, moduleID string) (bool, error)
	Clear(ctx context.Context, moduleID string) error
}

// SessionStorage keeps in-progress quiz sessions by module ID.
type SessionStorage interface {
	Store(session *entities.QuizSession)
	Get(moduleID string) (*entities.QuizSession, bool)
	Delete(moduleID string)
}

// ProgressRepository persists the reference cards a learner has viewed.
type ProgressRepository interface {
	Viewed(ctx context.Context) ([]string, error)
	MarkViewed(ctx context.Context, cardID string) (bool, error)
	Reset(ctx context.Context) error
}

// CommandRepository is the read-only git command reference.
type CommandRepository interface {
	Lookup(command string) (entities.CommandInfo, bool)
	All() []entities.CommandInfo
}
