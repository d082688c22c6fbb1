package terminal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/aliskhannn/git-tutor/internal/domain/entities"
	"github.com/aliskhannn/git-tutor/internal/repository"
	"github.com/aliskhannn/git-tutor/internal/service"
	"github.com/aliskhannn/git-tutor/internal/storage"
)

func newTestHandler(t *testing.T, script string, out *bytes.Buffer) (*Handler, *repository.CompletionRepository) {
	t.Helper()

	catalog, err := repository.NewCatalog([]entities.Module{
		{
			ID:    "basics",
			Title: "Basics",
			Questions: []entities.Question{
				{Prompt: "Which command shows history?", Options: []string{"git log", "git add"}, Correct: 0},
				{Prompt: "Which command stages files?", Options: []string{"git log", "git add", "git rm"}, Correct: 1},
			},
		},
		{
			ID:    "remote",
			Title: "Remote",
			Questions: []entities.Question{
				{Prompt: "Which command downloads?", Options: []string{"git fetch", "git push"}, Correct: 0},
			},
		},
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}

	cmds, err := repository.NewCommandTable([]entities.CommandInfo{
		{
			Name:        "git log",
			Description: "Show commit logs",
			Synopsis:    "git log [options]",
			Options:     []entities.CommandOption{{Flag: "--oneline", Desc: "One line per commit"}},
			Examples:    []entities.CommandExample{{Desc: "Compact history", Code: "git log --oneline"}},
		},
		{Name: "git add", Description: "Add file contents to the index", Synopsis: "git add <path>"},
	})
	if err != nil {
		t.Fatalf("commands: %v", err)
	}

	kv := storage.NewMemoryKV()
	completions := repository.NewCompletionRepository(kv)
	sessions := storage.NewQuizStorage()
	logger := zap.NewNop()

	h := NewHandler(
		strings.NewReader(script),
		out,
		logger,
		service.NewQuizService(catalog, completions, sessions, logger),
		service.NewProgressService(catalog, completions, sessions),
		service.NewReferenceService(cmds, repository.NewProgressRepository(kv), logger),
	)

	return h, completions
}

func TestHandler_QuizRoundTrip(t *testing.T) {
	script := strings.Join([]string{
		"start basics",
		"b",
		"answer 1",
		"submit",
		"next",
		"answer 4",
		"answer 2",
		"next",
		"submit",
		"start basics",
		"modules",
		"retry",
		"quit",
		"help",
	}, "\n")

	var out bytes.Buffer
	h, completions := newTestHandler(t, script, &out)

	if err := h.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Basics: question 1 of 2 (0 answered)",
		" * a) git log",
		"Please answer all questions. You have 1 unanswered question(s).",
		"That option does not exist for this question.",
		"Basics: 2/2 (100%)",
		"Excellent! You're a Git master!",
		"Basics: completed with 2/2 (100%)",
		"basics",
		"2/2",
		"Overall: 50% complete",
		"Bye!",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}

	if strings.Contains(got, "Commands:") {
		t.Fatalf("input after quit must not be processed")
	}

	// Retry cleared the stored result.
	if done, _ := completions.IsCompleted(context.Background(), "basics"); done {
		t.Fatalf("expected retry to clear the record")
	}
}

func TestHandler_StartByNumberAndUnknownModule(t *testing.T) {
	script := "start 2\nstart nope\nanswer a\n"

	var out bytes.Buffer
	h, _ := newTestHandler(t, script, &out)

	if err := h.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Remote: question 1 of 1") {
		t.Fatalf("expected module 2 to start:\n%s", got)
	}
	if !strings.Contains(got, `There is no quiz module "nope"`) {
		t.Fatalf("expected unknown module message:\n%s", got)
	}
	// The failed start keeps the previous module selected.
	if !strings.Contains(got, " * a) git fetch") {
		t.Fatalf("expected answer on the remote module:\n%s", got)
	}
}

func TestHandler_ReferenceAndLearningProgress(t *testing.T) {
	script := strings.Join([]string{
		"info git log",
		"info git frobnicate",
		"commands",
		"progress",
		"reset-progress",
		"progress",
		"answer 1",
		"dance",
	}, "\n")

	var out bytes.Buffer
	h, _ := newTestHandler(t, script, &out)

	if err := h.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Usage: git log [options]",
		"--oneline",
		"# Compact history",
		`No reference entry for "git frobnicate"`,
		" v git log",
		"50% (1/2 commands viewed)",
		"Learning progress cleared.",
		"0% (0/2 commands viewed)",
		"No quiz selected.",
		"Unknown command.",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

type failingQuiz struct{}

func (failingQuiz) Dispatch(context.Context, service.Action) (*service.Outcome, error) {
	return nil, errors.New("disk full")
}

func (failingQuiz) Snapshot(string) (entities.QuizSession, bool) {
	return entities.QuizSession{}, false
}

func TestHandler_InfrastructureErrorShowsGenericMessage(t *testing.T) {
	var out bytes.Buffer
	h, _ := newTestHandler(t, "start basics\n", &out)
	h.quizService = failingQuiz{}

	if err := h.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if !strings.Contains(out.String(), msgInternalError) {
		t.Fatalf("expected generic error message:\n%s", out.String())
	}
}

func TestHandler_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	h, _ := newTestHandler(t, "", &out)
	h.in = blockingReader{}

	if err := h.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

// blockingReader never returns data.
type blockingReader struct{}

func (blockingReader) Read([]byte) (int, error) {
	select {}
}

func TestParseOption(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1", 0, true},
		{"5", 4, true},
		{"c", 2, true},
		{"E", 4, true},
		{"0", 0, false},
		{"f", 0, false},
		{"two", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseOption(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Fatalf("parseOption(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBuildProgressBar(t *testing.T) {
	if got := buildProgressBar(1, 4, 8); got != "[██░░░░░░]" {
		t.Fatalf("unexpected bar %q", got)
	}
	if got := buildProgressBar(0, 0, 4); got != "[░░░░]" {
		t.Fatalf("unexpected bar for empty total %q", got)
	}
}
