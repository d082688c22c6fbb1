// messages.go contains the fixed texts printed by the terminal front end.

package terminal

// Error messages.
const (
	msgInternalError     = "Something went wrong. Check the log and try again."
	msgUnknownCommand    = "Unknown command. Type \"help\" for the list of commands."
	msgUnknownModule     = "There is no quiz module %q. Type \"modules\" to list them."
	msgUnknownReference  = "No reference entry for %q. Type \"commands\" to list them."
	msgNoQuizSelected    = "No quiz selected. Use \"start <module>\" first."
	msgNoActiveQuiz      = "This quiz is already completed. Type \"retry\" to take it again."
	msgInvalidOption     = "Choose an option by number or letter, for example \"answer 2\" or \"b\"."
	msgOptionOutOfRange  = "That option does not exist for this question."
	msgIncompleteAnswers = "Please answer all questions. You have %d unanswered question(s)."
	msgUsageStart        = "Usage: start <module>"
	msgUsageInfo         = "Usage: info <git command>, for example \"info git rebase\""
)

// Informational messages.
const (
	msgWelcome       = "Git tutor. Type \"help\" for the list of commands."
	msgProgressReset = "Learning progress cleared. Quiz results are kept."
	msgRetryHint     = "Type \"retry\" to take this quiz again."
	msgBye           = "Bye!"
	msgPrompt        = "> "
)

const msgHelp = `Commands:
  modules                list quiz modules with their status
  start <module>         start or resume a quiz (id or number)
  answer <n> | a..e      choose an option for the visible question
  next, prev             move between questions
  submit                 grade the quiz
  retry [module]         clear the result and start over
  progress               show quiz and learning progress
  info <git command>     show the reference entry for a command
  commands               list reference entries
  reset-progress         clear learning progress
  help                   show this help
  quit                   exit`

const (
	markSelected = "*"
	markCorrect  = "+"
	markWrong    = "x"
	markViewed   = "v"
)

const progressBarLength = 20
