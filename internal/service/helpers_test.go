package service

import (
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/aliskhannn/git-tutor/internal/domain/entities"
	"github.com/aliskhannn/git-tutor/internal/repository"
	"github.com/aliskhannn/git-tutor/internal/storage"
)

// testModule builds a module with n questions. Question i has four options
// and its correct option is i%4.
func testModule(id string, n int) entities.Module {
	m := entities.Module{ID: id, Title: "Module " + id}
	for i := 0; i < n; i++ {
		m.Questions = append(m.Questions, entities.Question{
			Prompt:      fmt.Sprintf("question %d", i),
			Options:     []string{"a", "b", "c", "d"},
			Correct:     i % 4,
			Explanation: fmt.Sprintf("explanation %d", i),
		})
	}
	return m
}

type fixture struct {
	kv          *storage.MemoryKV
	catalog     *repository.CatalogRepository
	completions *repository.CompletionRepository
	sessions    *storage.QuizStorage
	quiz        *QuizService
	progress    *ProgressService
}

func newFixture(t *testing.T, modules ...entities.Module) *fixture {
	t.Helper()

	catalog, err := repository.NewCatalog(modules)
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}

	kv := storage.NewMemoryKV()
	completions := repository.NewCompletionRepository(kv)
	sessions := storage.NewQuizStorage()

	return &fixture{
		kv:          kv,
		catalog:     catalog,
		completions: completions,
		sessions:    sessions,
		quiz:        NewQuizService(catalog, completions, sessions, zap.NewNop()),
		progress:    NewProgressService(catalog, completions, sessions),
	}
}
