package quiz

import "github.com/avani/mathflow/internal/content"

// baselineTier maps a lesson's baseline difficulty to a quiz tier.
func baselineTier(d content.Difficulty) Difficulty {
	switch d {
	case content.Advanced:
		return Hard
	case content.Intermediate:
		return Medium
	default:
		return Easy
	}
}

// Resolve adjusts a lesson's baseline tier by the learner's performance.
// A struggling learner (low score OR low confidence) steps down one tier;
// a strong learner (high score AND high confidence) steps up one tier.
// Exactly one step per call, clamped to [Easy, Hard]. Pure.
func Resolve(perf Performance, baseline content.Difficulty) Difficulty {
	tier := baselineTier(baseline)

	switch {
	case perf.AvgQuizScore < 60 || perf.ConfidenceLevel < 3.0:
		return stepDown(tier)
	case perf.AvgQuizScore > 85 && perf.ConfidenceLevel > 4.0:
		return stepUp(tier)
	default:
		return tier
	}
}

func stepDown(d Difficulty) Difficulty {
	switch d {
	case Hard:
		return Medium
	default:
		return Easy
	}
}

func stepUp(d Difficulty) Difficulty {
	switch d {
	case Easy:
		return Medium
	default:
		return Hard
	}
}
