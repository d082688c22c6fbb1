// Package entities contains domain entities used across the application.
package entities

// Question is one multiple-choice question of a quiz module.
// Questions are defined in the compiled-in catalog and never change at runtime.
type Question struct {
	Prompt  string   `yaml:"prompt" validate:"required"`
	Options []string `yaml:"options" validate:"min=2,max=5,dive,required"`
	// Correct is the 0-based index of the correct option.
	Correct int `yaml:"correct" validate:"gte=0"`
	// Explanation is optional text shown when the answer is reviewed.
	Explanation string `yaml:"explanation,omitempty"`
}

// IsCorrect reports whether option is the correct option index.
func (q Question) IsCorrect(option int) bool {
	return option == q.Correct
}

// CorrectOption returns the text of the correct option.
func (q Question) CorrectOption() string {
	return q.OptionText(q.Correct)
}

// OptionText returns the text of the option at index i, or an empty string
// if i is out of range.
func (q Question) OptionText(i int) string {
	if i < 0 || i >= len(q.Options) {
		return ""
	}
	return q.Options[i]
}

// Module is a named, ordered set of quiz questions covering one topic.
type Module struct {
	ID        string     `yaml:"id" validate:"required"`
	Title     string     `yaml:"title" validate:"required"`
	Questions []Question `yaml:"questions" validate:"min=1,dive"`
}

// Len returns the number of questions in the module.
func (m Module) Len() int {
	return len(m.Questions)
}
