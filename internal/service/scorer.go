package service

import (
	"errors"
	"fmt"

	"github.com/aliskhannn/git-tutor/internal/domain/entities"
)

var (
	ErrIncompleteAnswers   = errors.New("not all questions are answered")
	ErrAnswerCountMismatch = errors.New("answer count does not match question count")
)

// IncompleteAnswersError is returned when a quiz is submitted with unset
// answer slots. It matches ErrIncompleteAnswers.
type IncompleteAnswersError struct {
	Unanswered int
}

func (e *IncompleteAnswersError) Error() string {
	return fmt.Sprintf("%s: %d unanswered", ErrIncompleteAnswers, e.Unanswered)
}

func (e *IncompleteAnswersError) Is(target error) bool {
	return target == ErrIncompleteAnswers
}

// QuestionResult is the review line for one question.
type QuestionResult struct {
	Prompt        string
	IsCorrect     bool
	ChosenOption  string
	CorrectOption string
	Explanation   string
}

// Result is the outcome of scoring a module.
type Result struct {
	ModuleID    string
	Title       string
	Score       int
	Total       int
	Percentage  float64
	PerQuestion []QuestionResult
	Tier        Tier
}

// Score grades answers against module. Every answer slot must be set.
// Score does not modify its inputs.
func Score(module entities.Module, answers []int) (*Result, error) {
	if len(answers) != module.Len() {
		return nil, fmt.Errorf("%w: %d answers for %d questions", ErrAnswerCountMismatch, len(answers), module.Len())
	}

	unanswered := 0
	for _, a := range answers {
		if a == entities.Unanswered {
			unanswered++
		}
	}
	if unanswered > 0 {
		return nil, &IncompleteAnswersError{Unanswered: unanswered}
	}

	res := &Result{
		ModuleID:    module.ID,
		Title:       module.Title,
		Total:       module.Len(),
		PerQuestion: make([]QuestionResult, 0, module.Len()),
	}

	for i, q := range module.Questions {
		correct := q.IsCorrect(answers[i])
		if correct {
			res.Score++
		}

		res.PerQuestion = append(res.PerQuestion, QuestionResult{
			Prompt:        q.Prompt,
			IsCorrect:     correct,
			ChosenOption:  q.OptionText(answers[i]),
			CorrectOption: q.CorrectOption(),
			Explanation:   q.Explanation,
		})
	}

	res.Percentage = percentage(res.Score, res.Total)
	res.Tier = TierFor(res.Percentage)

	return res, nil
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
