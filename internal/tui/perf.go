package tui

import (
	"github.com/avani/mathflow/internal/progress"
	"github.com/avani/mathflow/internal/quiz"
)

// derivePerformance summarizes a learner's history for difficulty
// resolution. An empty history maps to a neutral profile so the first
// attempt always runs at the lesson's baseline tier.
func derivePerformance(attempts []progress.Attempt) quiz.Performance {
	if len(attempts) == 0 {
		return quiz.Performance{
			AvgQuizScore:    70,
			AvgTimeOnTask:   0,
			ConfidenceLevel: 3.0,
		}
	}

	overall := progress.Overall(attempts)
	passRate := float64(overall.Passed) / float64(overall.Attempts)

	return quiz.Performance{
		AvgQuizScore:    overall.AveragePercent,
		AvgTimeOnTask:   float64(overall.TimeSpentSecs) / float64(overall.Attempts),
		ConfidenceLevel: 1.0 + 4.0*passRate,
	}
}
