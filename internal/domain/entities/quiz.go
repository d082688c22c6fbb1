package entities

import (
	"time"

	"github.com/google/uuid"
)

// Unanswered marks an answer slot the learner has not filled yet.
const Unanswered = -1

// QuizSession holds the in-progress state of one module's quiz.
// It tracks which question is visible and the option chosen for each question.
type QuizSession struct {
	ID           uuid.UUID // session ID used to correlate log entries
	ModuleID     string    // module the session belongs to
	CurrentIndex int       // index of the visible question
	Answers      []int     // chosen option per question, Unanswered if not set
	StartedAt    time.Time // timestamp when the session was created
}

// NewQuizSession creates a session positioned on the first question with
// every answer slot unset.
func NewQuizSession(moduleID string, totalQuestions int) *QuizSession {
	answers := make([]int, totalQuestions)
	for i := range answers {
		answers[i] = Unanswered
	}

	return &QuizSession{
		ID:           uuid.New(),
		ModuleID:     moduleID,
		CurrentIndex: 0,
		Answers:      answers,
		StartedAt:    time.Now(),
	}
}

// Total returns the number of answer slots.
func (qs *QuizSession) Total() int {
	return len(qs.Answers)
}

// IsFirst reports whether the first question is visible.
func (qs *QuizSession) IsFirst() bool {
	return qs.CurrentIndex == 0
}

// IsLast reports whether the last question is visible.
func (qs *QuizSession) IsLast() bool {
	return qs.CurrentIndex == len(qs.Answers)-1
}

// Move shifts the visible question by delta. Targets outside the question
// range leave the session untouched and Move returns false.
func (qs *QuizSession) Move(delta int) bool {
	target := qs.CurrentIndex + delta
	if target < 0 || target >= len(qs.Answers) {
		return false
	}

	qs.CurrentIndex = target
	return true
}

// Select stores option as the answer to question, replacing any earlier choice.
func (qs *QuizSession) Select(question, option int) {
	qs.Answers[question] = option
}

// Selected returns the option chosen for question and whether one was chosen.
func (qs *QuizSession) Selected(question int) (int, bool) {
	if question < 0 || question >= len(qs.Answers) {
		return Unanswered, false
	}

	a := qs.Answers[question]
	return a, a != Unanswered
}

// UnansweredCount returns how many answer slots are still unset.
func (qs *QuizSession) UnansweredCount() int {
	n := 0
	for _, a := range qs.Answers {
		if a == Unanswered {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the session.
func (qs *QuizSession) Clone() *QuizSession {
	cp := *qs
	cp.Answers = append([]int(nil), qs.Answers...)
	return &cp
}
