package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/git-tutor/internal/domain/entities"
	"github.com/aliskhannn/git-tutor/internal/repository"
)

var (
	ErrUnknownModule      = errors.New("unknown quiz module")
	ErrNoActiveSession    = errors.New("no quiz in progress for module")
	ErrQuestionNotVisible = errors.New("question is not the visible one")
	ErrOptionOutOfRange   = errors.New("option index out of range")
	ErrInvalidDelta       = errors.New("navigation delta must be -1 or +1")
)

// Mode tells the presenter what drives a module's rendering.
type Mode string

const (
	ModeInProgress Mode = "in_progress"
	ModeCompleted  Mode = "completed"
)

// QuestionView is what the presenter needs to draw the visible question.
type QuestionView struct {
	ModuleID string
	Title    string
	Index    int
	Total    int
	Prompt   string
	Options  []string
	// Selected is nil until an option is chosen for this question.
	Selected *int
	Answered int
	IsFirst  bool
	IsLast   bool
	// Exactly one of ShowNext and ShowSubmit is set.
	ShowNext   bool
	ShowSubmit bool
}

// CompletionView describes a module that has a stored result.
type CompletionView struct {
	ModuleID    string
	Title       string
	Score       int
	Total       int
	Percentage  float64
	Tier        Tier
	CompletedAt *time.Time
}

// View is the rendering of a module. Exactly one of Question and Completion
// is set, matching Mode.
type View struct {
	Mode       Mode
	Question   *QuestionView
	Completion *CompletionView
}

// QuizService runs quiz sessions: start, answer, navigate, submit, retry.
type QuizService struct {
	catalog     Catalog
	completions CompletionRepository
	sessions    SessionStorage
	logger      *zap.Logger
}

// NewQuizService creates a new quiz service.
func NewQuizService(
	catalog Catalog,
	completions CompletionRepository,
	sessions SessionStorage,
	logger *zap.Logger,
) *QuizService {
	return &QuizService{
		catalog:     catalog,
		completions: completions,
		sessions:    sessions,
		logger:      logger,
	}
}

// Start opens a module. A completed module returns its stored result and no
// session is created. Otherwise an existing session is resumed or a fresh one
// is allocated on the first question.
func (s *QuizService) Start(ctx context.Context, moduleID string) (*View, error) {
	module, err := s.module(moduleID)
	if err != nil {
		return nil, err
	}

	rec, err := s.completions.Get(ctx, moduleID)
	if err != nil && !errors.Is(err, repository.ErrCompletionNotFound) {
		return nil, fmt.Errorf("start quiz: %w", err)
	}
	if rec != nil {
		s.sessions.Delete(moduleID)
		return completedView(module, rec), nil
	}

	session, ok := s.sessions.Get(moduleID)
	if !ok {
		session = entities.NewQuizSession(moduleID, module.Len())
		s.sessions.Store(session)

		s.logger.Info("quiz started",
			zap.String("module_id", moduleID),
			zap.String("session_id", session.ID.String()),
		)
	}

	return questionView(module, session), nil
}

// SelectAnswer records option as the answer to the visible question,
// replacing any earlier choice. Invalid input leaves the session unchanged.
func (s *QuizService) SelectAnswer(_ context.Context, moduleID string, questionIndex, option int) (*View, error) {
	module, session, err := s.active(moduleID)
	if err != nil {
		return nil, err
	}

	if questionIndex != session.CurrentIndex {
		return nil, fmt.Errorf("%w: question %d, visible %d", ErrQuestionNotVisible, questionIndex, session.CurrentIndex)
	}
	if option < 0 || option >= len(module.Questions[questionIndex].Options) {
		return nil, fmt.Errorf("%w: %d", ErrOptionOutOfRange, option)
	}

	session.Select(questionIndex, option)
	s.sessions.Store(session)

	return questionView(module, session), nil
}

// Navigate moves the visible question by delta, which must be -1 or +1.
// Moving past either end is a no-op.
func (s *QuizService) Navigate(_ context.Context, moduleID string, delta int) (*View, error) {
	if delta != -1 && delta != 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDelta, delta)
	}

	module, session, err := s.active(moduleID)
	if err != nil {
		return nil, err
	}

	if !session.Move(delta) {
		s.logger.Debug("navigation clamped",
			zap.String("module_id", moduleID),
			zap.Int("index", session.CurrentIndex),
			zap.Int("delta", delta),
		)
	}
	s.sessions.Store(session)

	return questionView(module, session), nil
}

// Submit scores the session, stores the completion record and ends the
// session. With unanswered questions it returns an *IncompleteAnswersError
// and the session is kept as is.
func (s *QuizService) Submit(ctx context.Context, moduleID string) (*Result, error) {
	module, session, err := s.active(moduleID)
	if err != nil {
		return nil, err
	}

	res, err := Score(module, session.Answers)
	if err != nil {
		return nil, err
	}

	if err = s.completions.RecordCompletion(ctx, moduleID, res.Score, res.Total); err != nil {
		return nil, fmt.Errorf("submit quiz: %w", err)
	}
	s.sessions.Delete(moduleID)

	s.logger.Info("quiz submitted",
		zap.String("module_id", moduleID),
		zap.String("session_id", session.ID.String()),
		zap.Int("score", res.Score),
		zap.Int("total", res.Total),
		zap.String("tier", string(res.Tier)),
	)

	return res, nil
}

// Retry clears the stored result of a module and starts it again.
func (s *QuizService) Retry(ctx context.Context, moduleID string) (*View, error) {
	if _, err := s.module(moduleID); err != nil {
		return nil, err
	}

	if err := s.completions.Clear(ctx, moduleID); err != nil {
		return nil, fmt.Errorf("retry quiz: %w", err)
	}
	s.sessions.Delete(moduleID)

	s.logger.Info("quiz reset", zap.String("module_id", moduleID))

	return s.Start(ctx, moduleID)
}

// View returns the current rendering of a module without changing it.
// A module that is neither in progress nor completed has nothing to show.
func (s *QuizService) View(ctx context.Context, moduleID string) (*View, error) {
	module, err := s.module(moduleID)
	if err != nil {
		return nil, err
	}

	if session, ok := s.sessions.Get(moduleID); ok {
		return questionView(module, session), nil
	}

	rec, err := s.completions.Get(ctx, moduleID)
	if err != nil {
		if errors.Is(err, repository.ErrCompletionNotFound) {
			return nil, ErrNoActiveSession
		}
		return nil, fmt.Errorf("view quiz: %w", err)
	}

	return completedView(module, rec), nil
}

// Snapshot returns a copy of the module's session, if one is in progress.
func (s *QuizService) Snapshot(moduleID string) (entities.QuizSession, bool) {
	session, ok := s.sessions.Get(moduleID)
	if !ok {
		return entities.QuizSession{}, false
	}
	return *session.Clone(), true
}

func (s *QuizService) module(moduleID string) (entities.Module, error) {
	module, ok := s.catalog.GetModule(moduleID)
	if !ok {
		s.logger.Warn("unknown quiz module", zap.String("module_id", moduleID))
		return entities.Module{}, fmt.Errorf("%w: %q", ErrUnknownModule, moduleID)
	}
	return module, nil
}

// active returns the module and its in-progress session.
func (s *QuizService) active(moduleID string) (entities.Module, *entities.QuizSession, error) {
	module, err := s.module(moduleID)
	if err != nil {
		return entities.Module{}, nil, err
	}

	session, ok := s.sessions.Get(moduleID)
	if !ok {
		return entities.Module{}, nil, fmt.Errorf("%w: %q", ErrNoActiveSession, moduleID)
	}

	return module, session, nil
}

func questionView(module entities.Module, session *entities.QuizSession) *View {
	q := module.Questions[session.CurrentIndex]

	qv := &QuestionView{
		ModuleID:   module.ID,
		Title:      module.Title,
		Index:      session.CurrentIndex,
		Total:      session.Total(),
		Prompt:     q.Prompt,
		Options:    append([]string(nil), q.Options...),
		Answered:   session.Total() - session.UnansweredCount(),
		IsFirst:    session.IsFirst(),
		IsLast:     session.IsLast(),
		ShowNext:   !session.IsLast(),
		ShowSubmit: session.IsLast(),
	}
	if opt, ok := session.Selected(session.CurrentIndex); ok {
		qv.Selected = &opt
	}

	return &View{Mode: ModeInProgress, Question: qv}
}

func completedView(module entities.Module, rec *entities.CompletionRecord) *View {
	// Records written before badge data existed fall back to the catalog size.
	total := rec.Total
	if total == 0 {
		total = module.Len()
	}
	pct := percentage(rec.Score, total)

	return &View{
		Mode: ModeCompleted,
		Completion: &CompletionView{
			ModuleID:    module.ID,
			Title:       module.Title,
			Score:       rec.Score,
			Total:       total,
			Percentage:  pct,
			Tier:        TierFor(pct),
			CompletedAt: rec.CompletedAt,
		},
	}
}
