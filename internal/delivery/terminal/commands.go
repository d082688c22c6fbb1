package terminal

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/aliskhannn/git-tutor/internal/service"
)

type command struct {
	name string
	args string
}

// parseCommand splits a line into a lowercased command name and the rest of
// the line.
func parseCommand(line string) command {
	line = strings.TrimSpace(line)
	if line == "" {
		return command{}
	}

	name, args, _ := strings.Cut(line, " ")
	return command{
		name: strings.ToLower(name),
		args: strings.TrimSpace(args),
	}
}

func isOptionLetter(s string) bool {
	return len(s) == 1 && s[0] >= 'a' && s[0] <= 'e'
}

// parseOption accepts a 1-based option number or a letter a..e and returns the
// 0-based option index.
func parseOption(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if isOptionLetter(s) {
		return int(s[0] - 'a'), true
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n - 1, true
}

func (h *Handler) modulesHandler() HandlerFunc {
	return func(ctx context.Context) error {
		badges, err := h.progressService.Badges(ctx)
		if err != nil {
			return err
		}

		overall, err := h.progressService.OverallProgress(ctx)
		if err != nil {
			return err
		}

		h.println(renderModules(badges, overall))
		return nil
	}
}

func (h *Handler) startHandler(arg string) HandlerFunc {
	return func(ctx context.Context) error {
		if arg == "" {
			h.println(msgUsageStart)
			return nil
		}

		moduleID, err := h.resolveModule(ctx, arg)
		if err != nil {
			return err
		}

		out, err := h.quizService.Dispatch(ctx, service.Action{Kind: service.ActionStart, ModuleID: moduleID})
		if err != nil {
			return h.handleQuizError(err, moduleID)
		}

		h.current = moduleID
		h.render(out)
		return nil
	}
}

// resolveModule maps a 1-based module number from the "modules" list to its id.
// Anything else is taken as an id.
func (h *Handler) resolveModule(ctx context.Context, arg string) (string, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return arg, nil
	}

	badges, err := h.progressService.Badges(ctx)
	if err != nil {
		return "", err
	}
	if n < 1 || n > len(badges) {
		return arg, nil
	}

	return badges[n-1].ModuleID, nil
}

func (h *Handler) answerHandler(arg string) HandlerFunc {
	return func(ctx context.Context) error {
		if h.current == "" {
			h.println(msgNoQuizSelected)
			return nil
		}

		option, ok := parseOption(arg)
		if !ok {
			h.println(msgInvalidOption)
			return nil
		}

		session, ok := h.quizService.Snapshot(h.current)
		if !ok {
			h.println(msgNoActiveQuiz)
			return nil
		}

		return h.dispatch(ctx, service.Action{
			Kind:          service.ActionSelect,
			ModuleID:      h.current,
			QuestionIndex: session.CurrentIndex,
			OptionIndex:   option,
		})
	}
}

func (h *Handler) navigateHandler(delta int) HandlerFunc {
	return func(ctx context.Context) error {
		if h.current == "" {
			h.println(msgNoQuizSelected)
			return nil
		}

		return h.dispatch(ctx, service.Action{Kind: service.ActionNavigate, ModuleID: h.current, Delta: delta})
	}
}

func (h *Handler) submitHandler() HandlerFunc {
	return func(ctx context.Context) error {
		if h.current == "" {
			h.println(msgNoQuizSelected)
			return nil
		}

		return h.dispatch(ctx, service.Action{Kind: service.ActionSubmit, ModuleID: h.current})
	}
}

func (h *Handler) retryHandler(arg string) HandlerFunc {
	return func(ctx context.Context) error {
		moduleID := h.current
		if arg != "" {
			resolved, err := h.resolveModule(ctx, arg)
			if err != nil {
				return err
			}
			moduleID = resolved
		}
		if moduleID == "" {
			h.println(msgNoQuizSelected)
			return nil
		}

		out, err := h.quizService.Dispatch(ctx, service.Action{Kind: service.ActionRetry, ModuleID: moduleID})
		if err != nil {
			return h.handleQuizError(err, moduleID)
		}

		h.current = moduleID
		h.render(out)
		return nil
	}
}

func (h *Handler) progressHandler() HandlerFunc {
	return func(ctx context.Context) error {
		overall, err := h.progressService.OverallProgress(ctx)
		if err != nil {
			return err
		}

		badges, err := h.progressService.Badges(ctx)
		if err != nil {
			return err
		}

		learning, err := h.referenceService.Progress(ctx)
		if err != nil {
			return err
		}

		h.println(renderProgress(overall, badges, learning))
		return nil
	}
}

func (h *Handler) infoHandler(arg string) HandlerFunc {
	return func(ctx context.Context) error {
		if arg == "" {
			h.println(msgUsageInfo)
			return nil
		}

		info, err := h.referenceService.Open(ctx, arg)
		if err != nil {
			if errors.Is(err, service.ErrUnknownCommand) {
				h.printf(msgUnknownReference+"\n", arg)
				return nil
			}
			return err
		}

		h.println(renderCommandInfo(info))
		return nil
	}
}

func (h *Handler) commandsHandler() HandlerFunc {
	return func(ctx context.Context) error {
		entries, err := h.referenceService.Commands(ctx)
		if err != nil {
			return err
		}

		h.println(renderCommandList(entries))
		return nil
	}
}

func (h *Handler) resetProgressHandler() HandlerFunc {
	return func(ctx context.Context) error {
		if err := h.referenceService.Reset(ctx); err != nil {
			return err
		}

		h.println(msgProgressReset)
		return nil
	}
}

// dispatch runs a quiz action on the current module and prints the outcome.
func (h *Handler) dispatch(ctx context.Context, a service.Action) error {
	out, err := h.quizService.Dispatch(ctx, a)
	if err != nil {
		return h.handleQuizError(err, a.ModuleID)
	}

	h.render(out)
	return nil
}

// handleQuizError prints a message for errors the user can act on and returns
// the rest to the error middleware.
func (h *Handler) handleQuizError(err error, moduleID string) error {
	var incomplete *service.IncompleteAnswersError

	switch {
	case errors.As(err, &incomplete):
		h.printf(msgIncompleteAnswers+"\n", incomplete.Unanswered)
	case errors.Is(err, service.ErrUnknownModule):
		h.printf(msgUnknownModule+"\n", moduleID)
	case errors.Is(err, service.ErrNoActiveSession):
		h.println(msgNoActiveQuiz)
	case errors.Is(err, service.ErrOptionOutOfRange):
		h.println(msgOptionOutOfRange)
	default:
		return err
	}

	return nil
}

func (h *Handler) render(out *service.Outcome) {
	switch {
	case out.Result != nil:
		h.println(renderResult(out.Result))
	case out.View != nil && out.View.Question != nil:
		h.println(renderQuestion(out.View.Question))
	case out.View != nil && out.View.Completion != nil:
		h.println(renderCompletion(out.View.Completion))
	}
}
