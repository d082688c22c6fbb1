package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Handler reads commands line by line and prints the quiz screens.
type Handler struct {
	in     io.Reader
	out    io.Writer
	logger *zap.Logger

	quizService      QuizService
	progressService  ProgressService
	referenceService ReferenceService

	// current is the module the quiz commands apply to.
	current string
}

func NewHandler(
	in io.Reader,
	out io.Writer,
	logger *zap.Logger,
	quizService QuizService,
	progressService ProgressService,
	referenceService ReferenceService,
) *Handler {
	return &Handler{
		in:               in,
		out:              out,
		logger:           logger,
		quizService:      quizService,
		progressService:  progressService,
		referenceService: referenceService,
	}
}

// Run processes input until "quit", end of input or ctx is done.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("terminal handler started")
	defer h.logger.Info("terminal handler stopped")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(lines)

		sc := bufio.NewScanner(h.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}
		errs <- sc.Err()
	}()

	h.println(msgWelcome)
	h.prompt()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := <-errs; err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				return nil
			}
			if !h.handleLine(ctx, line) {
				h.println(msgBye)
				return nil
			}
			h.prompt()
		}
	}
}

// handleLine runs one command. It returns false when the user asked to quit.
func (h *Handler) handleLine(ctx context.Context, line string) bool {
	cmd := parseCommand(line)
	if cmd.name == "" {
		return true
	}

	h.logger.Debug("command received",
		zap.String("command", cmd.name),
		zap.String("args", cmd.args),
	)

	var fn HandlerFunc

	switch cmd.name {
	case "quit", "exit":
		return false

	case "help":
		h.println(msgHelp)
		return true

	case "modules":
		fn = h.modulesHandler()

	case "start":
		fn = h.startHandler(cmd.args)

	case "answer":
		fn = h.answerHandler(cmd.args)

	case "next":
		fn = h.navigateHandler(1)

	case "prev", "previous":
		fn = h.navigateHandler(-1)

	case "submit":
		fn = h.submitHandler()

	case "retry":
		fn = h.retryHandler(cmd.args)

	case "progress":
		fn = h.progressHandler()

	case "info":
		fn = h.infoHandler(cmd.args)

	case "commands":
		fn = h.commandsHandler()

	case "reset-progress":
		fn = h.resetProgressHandler()

	default:
		if isOptionLetter(cmd.name) && cmd.args == "" {
			fn = h.answerHandler(cmd.name)
			break
		}
		h.println(msgUnknownCommand)
		return true
	}

	_ = h.withErrorHandling(fn)(ctx)
	return true
}

func (h *Handler) prompt() {
	h.printf("%s", msgPrompt)
}

func (h *Handler) println(s string) {
	h.printf("%s\n", s)
}

func (h *Handler) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(h.out, format, args...); err != nil {
		h.logger.Error("failed to write output",
			zap.Error(err),
		)
	}
}
