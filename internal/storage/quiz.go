package storage

import (
	"sync"

	"github.com/aliskhannn/git-tutor/internal/domain/entities"
)

// QuizStorage provides in-memory storage for in-progress quiz sessions by module ID.
type QuizStorage struct {
	mu       sync.RWMutex
	sessions map[string]*entities.QuizSession
}

// NewQuizStorage creates a new QuizStorage.
func NewQuizStorage() *QuizStorage {
	return &QuizStorage{
		sessions: make(map[string]*entities.QuizSession),
	}
}

// Store saves the session for its module, replacing any previous one.
func (s *QuizStorage) Store(session *entities.QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ModuleID] = session
}

// Get retrieves the session for a given module ID.
func (s *QuizStorage) Get(moduleID string) (*entities.QuizSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[moduleID]
	return session, ok
}

// Delete removes the session for a given module ID.
func (s *QuizStorage) Delete(moduleID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, moduleID)
}
