package service

import (
	"errors"
	"slices"
	"testing"

	"github.com/aliskhannn/git-tutor/internal/domain/entities"
)

func TestScore_AllCorrect(t *testing.T) {
	m := testModule("m", 4)

	res, err := Score(m, []int{0, 1, 2, 3})
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if res.Score != 4 || res.Percentage != 100 || res.Tier != TierExcellent {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.PerQuestion[2].Explanation != "explanation 2" {
		t.Fatalf("expected explanation to be carried, got %q", res.PerQuestion[2].Explanation)
	}
}

func TestScore_IncompleteLeavesAnswersUntouched(t *testing.T) {
	m := testModule("m", 3)
	answers := []int{0, entities.Unanswered, entities.Unanswered}
	before := slices.Clone(answers)

	_, err := Score(m, answers)

	var incomplete *IncompleteAnswersError
	if !errors.As(err, &incomplete) || incomplete.Unanswered != 2 {
		t.Fatalf("expected 2 unanswered, got %v", err)
	}
	if !errors.Is(err, ErrIncompleteAnswers) {
		t.Fatalf("expected error to match ErrIncompleteAnswers")
	}
	if !slices.Equal(before, answers) {
		t.Fatalf("answers were modified: %v", answers)
	}
}

func TestScore_AnswerCountMismatch(t *testing.T) {
	if _, err := Score(testModule("m", 3), []int{0, 1}); !errors.Is(err, ErrAnswerCountMismatch) {
		t.Fatalf("expected ErrAnswerCountMismatch, got %v", err)
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		pct  float64
		want Tier
	}{
		{100, TierExcellent},
		{90, TierExcellent},
		{89.9, TierGood},
		{70, TierGood},
		{69, TierAverage},
		{50, TierAverage},
		{49.9, TierNeedsWork},
		{0, TierNeedsWork},
	}

	for _, tt := range tests {
		if got := TierFor(tt.pct); got != tt.want {
			t.Fatalf("TierFor(%v) = %s, want %s", tt.pct, got, tt.want)
		}
		if tt.want.Message() == "" {
			t.Fatalf("tier %s has no message", tt.want)
		}
	}
}
