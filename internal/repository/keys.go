package repository

import "fmt"

// learningProgressKey stores the JSON array of viewed reference cards.
const learningProgressKey = "gitLearningProgress"

// quizCompletedKey returns the key for a module's completion flag.
func quizCompletedKey(moduleID string) string {
	return fmt.Sprintf("gitQuiz:%s:completed", moduleID)
}

// quizScoreKey returns the key for a module's score.
func quizScoreKey(moduleID string) string {
	return fmt.Sprintf("gitQuiz:%s:score", moduleID)
}

// quizTotalKey returns the badge key holding the question count at submission.
func quizTotalKey(moduleID string) string {
	return fmt.Sprintf("gitQuiz:%s:total", moduleID)
}

// quizCompletedAtKey returns the badge key holding the submission timestamp.
func quizCompletedAtKey(moduleID string) string {
	return fmt.Sprintf("gitQuiz:%s:completedAt", moduleID)
}
