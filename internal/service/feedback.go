package service

// Tier grades a quiz result for the results screen.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierAverage   Tier = "average"
	TierNeedsWork Tier = "needs-work"
)

var tierMessages = map[Tier]string{
	TierExcellent: "Excellent! You're a Git master!",
	TierGood:      "Good job! Keep practicing!",
	TierAverage:   "Not bad! Review the section again.",
	TierNeedsWork: "Keep learning! You'll get there!",
}

// TierFor returns the tier for a percentage in [0, 100].
func TierFor(percentage float64) Tier {
	switch {
	case percentage >= 90:
		return TierExcellent
	case percentage >= 70:
		return TierGood
	case percentage >= 50:
		return TierAverage
	default:
		return TierNeedsWork
	}
}

// Message returns the feedback line shown with the tier.
func (t Tier) Message() string {
	return tierMessages[t]
}
