package quiz

import (
	"context"

	"github.com/google/uuid"

	"github.com/avani/mathflow/internal/content"
	"github.com/avani/mathflow/internal/llm"
)

// Synthesizer turns a lesson and a resolved difficulty into a validated
// question set. It never fails: generation problems of any kind degrade to
// the fallback bank, and the learner always gets a complete quiz.
type Synthesizer struct {
	provider llm.Provider
	cfg      Config
}

// NewSynthesizer creates a Synthesizer. A nil provider is valid and means
// every set comes from the fallback bank.
func NewSynthesizer(provider llm.Provider, cfg Config) *Synthesizer {
	return &Synthesizer{provider: provider, cfg: cfg}
}

// Synthesize returns exactly QuestionCount questions for the lesson at the
// given difficulty. Accepted generated questions come first; the fallback
// bank pads any shortfall. Every question is tagged with the difficulty.
func (s *Synthesizer) Synthesize(ctx context.Context, lesson content.Lesson, difficulty Difficulty, hint StyleHint) []Question {
	questions := s.generate(ctx, lesson, difficulty, hint)

	if len(questions) > QuestionCount {
		questions = questions[:QuestionCount]
	}
	if missing := QuestionCount - len(questions); missing > 0 {
		questions = append(questions, fallbackQuestions(lesson, difficulty, missing)...)
	}
	return questions
}

// generate runs one provider call and returns the accepted questions,
// possibly none. Provider absence and call failure both yield nil.
func (s *Synthesizer) generate(ctx context.Context, lesson content.Lesson, difficulty Difficulty, hint StyleHint) []Question {
	if s.provider == nil {
		return nil
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizMessage(lesson, difficulty, hint)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil
	}

	questions := accepted(parseBlocks(string(resp.Content)))
	for i := range questions {
		questions[i].ID = uuid.NewString()
		questions[i].Difficulty = difficulty
	}
	return questions
}
