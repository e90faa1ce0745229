package domain

// ExerciseType identifies how an exercise is presented and graded.
type ExerciseType string

const (
	TypeSelect    ExerciseType = "select"
	TypeType      ExerciseType = "type"
	TypeTranslate ExerciseType = "translate"
	TypeListen    ExerciseType = "listen"
)

// Option is one choice of a select exercise.
type Option struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	IsCorrect bool   `json:"is_correct" yaml:"correct"`
}

// Exercise is a single gradable prompt within a lesson.
//
// Select exercises carry Options and are graded by option id; all other
// types are graded against Answer as normalized free text.
type Exercise struct {
	ID       string       `json:"id" yaml:"id"`
	Type     ExerciseType `json:"type" yaml:"type"`
	Prompt   string       `json:"prompt" yaml:"prompt"`
	Answer   string       `json:"answer" yaml:"answer"`
	Options  []Option     `json:"options,omitempty" yaml:"options"`
	AudioKey string       `json:"audio_key,omitempty" yaml:"audio"`
}

// OptionByID returns the option with the given id, or nil if no option
// matches. A nil result always grades as incorrect.
func (e *Exercise) OptionByID(id string) *Option {
	for i := range e.Options {
		if e.Options[i].ID == id {
			return &e.Options[i]
		}
	}
	return nil
}

// Lesson is an ordered, named collection of exercises. Lessons are
// immutable once loaded from the catalog; the exercise order is the
// presentation order.
type Lesson struct {
	ID        string     `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Exercises []Exercise `json:"exercises" yaml:"exercises"`
}

// Phrase is one entry of the greetings phrasebook.
type Phrase struct {
	ID          string `json:"id" yaml:"id"`
	Text        string `json:"text" yaml:"text"`
	Translation string `json:"translation" yaml:"translation"`
	AudioKey    string `json:"audio_key,omitempty" yaml:"audio"`
}
