package terminal

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/git-tutor/internal/domain/entities"
	"github.com/aliskhannn/git-tutor/internal/service"
)

func renderQuestion(q *service.QuestionView) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s: question %d of %d (%d answered)\n\n", q.Title, q.Index+1, q.Total, q.Answered)
	fmt.Fprintf(&sb, "%s\n", q.Prompt)

	for i, opt := range q.Options {
		mark := " "
		if q.Selected != nil && *q.Selected == i {
			mark = markSelected
		}
		fmt.Fprintf(&sb, " %s %c) %s\n", mark, 'a'+i, opt)
	}

	sb.WriteString("\n")
	var actions []string
	if !q.IsFirst {
		actions = append(actions, "prev")
	}
	if q.ShowNext {
		actions = append(actions, "next")
	}
	if q.ShowSubmit {
		actions = append(actions, "submit")
	}
	fmt.Fprintf(&sb, "[%s]", strings.Join(actions, "] ["))

	return sb.String()
}

func renderResult(r *service.Result) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s: %d/%d (%.0f%%)\n", r.Title, r.Score, r.Total, r.Percentage)
	fmt.Fprintf(&sb, "%s\n\n", r.Tier.Message())

	for i, q := range r.PerQuestion {
		mark := markCorrect
		if !q.IsCorrect {
			mark = markWrong
		}
		fmt.Fprintf(&sb, "%s Q%d. %s\n", mark, i+1, q.Prompt)
		fmt.Fprintf(&sb, "    Your answer: %s\n", q.ChosenOption)
		if !q.IsCorrect {
			fmt.Fprintf(&sb, "    Correct: %s\n", q.CorrectOption)
		}
		if q.Explanation != "" {
			fmt.Fprintf(&sb, "    %s\n", q.Explanation)
		}
	}

	sb.WriteString("\n")
	sb.WriteString(msgRetryHint)

	return sb.String()
}

func renderCompletion(c *service.CompletionView) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s: completed with %d/%d (%.0f%%)", c.Title, c.Score, c.Total, c.Percentage)
	if c.CompletedAt != nil {
		fmt.Fprintf(&sb, " on %s", c.CompletedAt.Local().Format("2006-01-02 15:04"))
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s\n", c.Tier.Message())
	sb.WriteString(msgRetryHint)

	return sb.String()
}

func renderModules(badges []service.Badge, overall int) string {
	var sb strings.Builder

	sb.WriteString("Quiz modules:\n")
	for i, b := range badges {
		fmt.Fprintf(&sb, "  %d. %-22s %-20s %s\n", i+1, b.ModuleID, b.Title, b.Label())
	}
	fmt.Fprintf(&sb, "\nOverall: %d%% complete", overall)

	return sb.String()
}

func renderProgress(overall int, badges []service.Badge, learning service.LearningProgress) string {
	var sb strings.Builder

	completed := 0
	for _, b := range badges {
		if b.Status == service.BadgeCompleted {
			completed++
		}
	}

	fmt.Fprintf(&sb, "Quizzes:  %s %d%% (%d/%d)\n",
		buildProgressBar(completed, len(badges), progressBarLength), overall, completed, len(badges))
	for _, b := range badges {
		fmt.Fprintf(&sb, "  %-20s %s\n", b.Title, b.Label())
	}

	fmt.Fprintf(&sb, "\nLearning: %s %d%% (%d/%d commands viewed)",
		buildProgressBar(learning.Viewed, learning.Total, progressBarLength),
		learning.Percentage, learning.Viewed, learning.Total)

	return sb.String()
}

func renderCommandInfo(c entities.CommandInfo) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\n%s\n\n", c.Name, c.Description)
	fmt.Fprintf(&sb, "Usage: %s\n", c.Synopsis)

	if len(c.Options) > 0 {
		sb.WriteString("\nOptions:\n")
		for _, o := range c.Options {
			fmt.Fprintf(&sb, "  %-24s %s\n", o.Flag, o.Desc)
		}
	}

	if len(c.Examples) > 0 {
		sb.WriteString("\nExamples:\n")
		for _, e := range c.Examples {
			if e.Desc != "" {
				fmt.Fprintf(&sb, "  # %s\n", e.Desc)
			}
			fmt.Fprintf(&sb, "  %s\n", e.Code)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func renderCommandList(entries []service.CommandEntry) string {
	var sb strings.Builder

	sb.WriteString("Command reference (\"info <command>\" to open):\n")
	for _, e := range entries {
		mark := " "
		if e.Viewed {
			mark = markViewed
		}
		fmt.Fprintf(&sb, " %s %-18s %s\n", mark, e.Info.Name, e.Info.Description)
	}

	return strings.TrimRight(sb.String(), "\n")
}
