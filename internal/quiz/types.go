package quiz

// QuestionCount is the fixed size of every synthesized question set.
const QuestionCount = 5

// OptionCount is the fixed number of options per question.
const OptionCount = 4

// Difficulty is the resolved tier a question set is generated at.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// StyleHint adjusts question phrasing to the learner's preferred modality.
type StyleHint string

const (
	// StyleVisual favors picture-able phrasing ("imagine 3 rows of 4 apples").
	StyleVisual StyleHint = "visual"

	// StyleAuditory favors spoken-rhythm phrasing, suited to read-aloud.
	StyleAuditory StyleHint = "auditory"
)

// Question is one multiple-choice question. Questions are created fresh for
// each attempt and live only inside the attempt record that used them.
type Question struct {
	ID   string
	Text string

	// Options always has exactly OptionCount entries.
	Options []string

	// Correct is the index of the right option, in [0, OptionCount).
	Correct int

	// Explanation is the worked solution shown after an answer.
	Explanation string

	// Difficulty is the resolved tier this question was served at,
	// regardless of whether it came from the provider or the fallback bank.
	Difficulty Difficulty
}

// Performance summarizes the learner's history. The host maintains it; the
// quiz core only reads it when resolving difficulty.
type Performance struct {
	// AvgQuizScore is the average attempt percentage, 0-100.
	AvgQuizScore float64

	// AvgTimeOnTask is the average seconds spent per attempt.
	AvgTimeOnTask float64

	// ConfidenceLevel ranges 1.0 (struggling) to 5.0 (confident).
	ConfidenceLevel float64
}
