package quiz

import (
	"strings"

	"github.com/google/uuid"

	"github.com/avani/mathflow/internal/content"
)

// The fallback bank keeps the quiz working when generation is unavailable
// or malformed. Selection scans lesson topics for keywords in a fixed
// priority order; the algebra set is the default.

type bankQuestion struct {
	text        string
	options     []string
	correct     int
	explanation string
}

type bank struct {
	keywords  []string
	questions []bankQuestion
}

var fallbackBanks = []bank{
	{
		keywords: []string{"addition", "counting", "sums", "skip counting"},
		questions: []bankQuestion{
			{
				text:        "What is 7 + 5?",
				options:     []string{"11", "12", "13", "10"},
				correct:     1,
				explanation: "Start at 7 and count up 5 more: 8, 9, 10, 11, 12.",
			},
			{
				text:        "What is 14 + 3?",
				options:     []string{"17", "16", "18", "13"},
				correct:     0,
				explanation: "14 and 3 more is 17. Count: 15, 16, 17.",
			},
			{
				text:        "Count by 5s. What comes after 10, 15, 20?",
				options:     []string{"22", "30", "25", "21"},
				correct:     2,
				explanation: "Counting by 5s adds 5 each time. 20 plus 5 is 25.",
			},
			{
				text:        "What is 9 + 9?",
				options:     []string{"16", "19", "17", "18"},
				correct:     3,
				explanation: "Doubles are handy to remember. 9 + 9 = 18.",
			},
			{
				text:        "Which pair adds up to 10?",
				options:     []string{"6 and 4", "5 and 4", "7 and 2", "8 and 3"},
				correct:     0,
				explanation: "6 + 4 = 10. The other pairs make 9 or 11.",
			},
		},
	},
	{
		keywords: []string{"fraction", "fractions", "halves", "sharing"},
		questions: []bankQuestion{
			{
				text:        "A pizza is cut into 4 equal slices. You eat 1. What fraction did you eat?",
				options:     []string{"1/2", "1/4", "1/3", "3/4"},
				correct:     1,
				explanation: "One slice out of 4 equal slices is 1/4.",
			},
			{
				text:        "Which is bigger: 1/2 or 1/3?",
				options:     []string{"1/2", "1/3", "They are equal", "Cannot tell"},
				correct:     0,
				explanation: "Halves are bigger pieces than thirds, so 1/2 is bigger.",
			},
			{
				text:        "What is half of 8?",
				options:     []string{"2", "6", "4", "3"},
				correct:     2,
				explanation: "Half means split into 2 equal groups. 8 split in 2 is 4 and 4.",
			},
			{
				text:        "Two children share 6 apples fairly. How many does each get?",
				options:     []string{"2", "4", "6", "3"},
				correct:     3,
				explanation: "Fair sharing means equal groups. 6 apples for 2 children is 3 each.",
			},
			{
				text:        "Which fraction means the whole thing?",
				options:     []string{"4/4", "1/4", "2/4", "3/4"},
				correct:     0,
				explanation: "4 parts out of 4 parts is everything, so 4/4 is the whole.",
			},
		},
	},
	{
		// Default set: simple missing-number algebra.
		keywords: nil,
		questions: []bankQuestion{
			{
				text:        "What number makes this true? 3 + ? = 10",
				options:     []string{"6", "7", "8", "13"},
				correct:     1,
				explanation: "Think: 3 and how many more make 10? 3 + 7 = 10.",
			},
			{
				text:        "What number makes this true? ? - 2 = 5",
				options:     []string{"7", "3", "5", "10"},
				correct:     0,
				explanation: "Work backwards: 5 + 2 = 7, so 7 - 2 = 5.",
			},
			{
				text:        "The pattern is 2, 4, 6, 8. What comes next?",
				options:     []string{"9", "12", "10", "11"},
				correct:     2,
				explanation: "The pattern adds 2 each time. 8 plus 2 is 10.",
			},
			{
				text:        "What number makes this true? 2 x ? = 12",
				options:     []string{"4", "5", "8", "6"},
				correct:     3,
				explanation: "2 groups of 6 make 12, so the missing number is 6.",
			},
			{
				text:        "The pattern is 20, 15, 10. What comes next?",
				options:     []string{"5", "0", "8", "9"},
				correct:     0,
				explanation: "The pattern takes away 5 each time. 10 take away 5 is 5.",
			},
		},
	},
}

// bankFor picks the fallback bank for a lesson by scanning its topics for
// each bank's keywords, in bank priority order.
func bankFor(lesson content.Lesson) bank {
	for _, b := range fallbackBanks {
		if b.keywords == nil {
			continue
		}
		for _, topic := range lesson.Topics {
			topic = strings.ToLower(topic)
			for _, kw := range b.keywords {
				if strings.Contains(topic, kw) {
					return b
				}
			}
		}
	}
	return fallbackBanks[len(fallbackBanks)-1]
}

// fallbackQuestions materializes n questions from the lesson's bank, tagged
// with the resolved difficulty. Cycles if n exceeds the bank size.
func fallbackQuestions(lesson content.Lesson, difficulty Difficulty, n int) []Question {
	b := bankFor(lesson)
	out := make([]Question, 0, n)
	for i := 0; i < n; i++ {
		bq := b.questions[i%len(b.questions)]
		opts := make([]string, len(bq.options))
		copy(opts, bq.options)
		out = append(out, Question{
			ID:          uuid.NewString(),
			Text:        bq.text,
			Options:     opts,
			Correct:     bq.correct,
			Explanation: bq.explanation,
			Difficulty:  difficulty,
		})
	}
	return out
}
