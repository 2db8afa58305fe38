package quiz

import (
	"fmt"
	"strings"

	"github.com/avani/mathflow/internal/content"
)

const systemPrompt = `You are a math tutor writing quiz questions for children with dyslexia.

Rules:
- Write exactly 5 multiple-choice questions for the given lesson and difficulty.
- Use short sentences and plain ASCII text. No LaTeX, no Unicode math symbols.
- Each question has exactly 4 options. Exactly one option is correct.
- Distractors should reflect common mistakes, not random values.
- Keep every explanation to two or three short sentences a child can follow.
- Emit every question in exactly this format, nothing else:

QUESTION: <question text on one line>
A) <option>
B) <option>
C) <option>
D) <option>
CORRECT: <letter A-D>
EXPLANATION: <one line>`

// buildQuizMessage constructs the user message for question set synthesis.
func buildQuizMessage(lesson content.Lesson, difficulty Difficulty, hint StyleHint) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Lesson: %s\n", lesson.Title)
	fmt.Fprintf(&b, "Description: %s\n", lesson.Description)
	fmt.Fprintf(&b, "Topics: %s\n", strings.Join(lesson.Topics, ", "))
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)

	switch hint {
	case StyleAuditory:
		b.WriteString("Style: phrase questions so they read well aloud, with a steady spoken rhythm.\n")
	default:
		b.WriteString("Style: phrase questions around things the learner can picture, like rows, groups, and shapes.\n")
	}

	fmt.Fprintf(&b, "\nWrite %d questions now.", QuestionCount)
	return b.String()
}

const explainSystemPrompt = `You are a gentle math tutor helping a child with dyslexia who just answered a question wrong.

Rules:
- Be encouraging. Never scold, never say "wrong" harshly.
- Use short, simple sentences in plain ASCII text.
- First say what the correct answer is, then explain it in one or two steps.
- End with one short encouraging line.`

// buildExplainMessage constructs the user message for a remediation request.
func buildExplainMessage(q Question, chosen int, lesson content.Lesson) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Lesson topic: %s\n", strings.Join(lesson.Topics, ", "))
	fmt.Fprintf(&b, "Question: %s\n", q.Text)
	fmt.Fprintf(&b, "Correct answer: %s\n", q.Options[q.Correct])
	if chosen >= 0 && chosen < len(q.Options) {
		fmt.Fprintf(&b, "The child chose: %s\n", q.Options[chosen])
	}
	b.WriteString("\nExplain why the correct answer is right, in a way that helps the child next time.")
	return b.String()
}
