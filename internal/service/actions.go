package service

import (
	"context"
	"fmt"
)

// ActionKind names a quiz interaction.
type ActionKind string

const (
	ActionStart    ActionKind = "start"
	ActionSelect   ActionKind = "select"
	ActionNavigate ActionKind = "navigate"
	ActionSubmit   ActionKind = "submit"
	ActionRetry    ActionKind = "retry"
	ActionView     ActionKind = "view"
)

// Action is one discrete quiz interaction. Fields not used by Kind are ignored.
type Action struct {
	Kind          ActionKind
	ModuleID      string
	QuestionIndex int
	OptionIndex   int
	Delta         int
}

// Outcome is the result of dispatching an action. Submit fills Result, every
// other action fills View.
type Outcome struct {
	View   *View
	Result *Result
}

// Dispatch applies a to the module it names.
func (s *QuizService) Dispatch(ctx context.Context, a Action) (*Outcome, error) {
	var (
		view *View
		err  error
	)

	switch a.Kind {
	case ActionStart:
		view, err = s.Start(ctx, a.ModuleID)
	case ActionSelect:
		view, err = s.SelectAnswer(ctx, a.ModuleID, a.QuestionIndex, a.OptionIndex)
	case ActionNavigate:
		view, err = s.Navigate(ctx, a.ModuleID, a.Delta)
	case ActionRetry:
		view, err = s.Retry(ctx, a.ModuleID)
	case ActionView:
		view, err = s.View(ctx, a.ModuleID)
	case ActionSubmit:
		res, err := s.Submit(ctx, a.ModuleID)
		if err != nil {
			return nil, err
		}
		return &Outcome{Result: res}, nil
	default:
		return nil, fmt.Errorf("unknown action: %q", a.Kind)
	}

	if err != nil {
		return nil, err
	}

	return &Outcome{View: view}, nil
}
