package quiz

import (
	"testing"

	"github.com/avani/mathflow/internal/content"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		perf     Performance
		baseline content.Difficulty
		want     Difficulty
	}{
		{
			name:     "struggling steps down from advanced",
			perf:     Performance{AvgQuizScore: 50, ConfidenceLevel: 2.5},
			baseline: content.Advanced,
			want:     Medium,
		},
		{
			name:     "strong steps up from beginner",
			perf:     Performance{AvgQuizScore: 90, ConfidenceLevel: 4.5},
			baseline: content.Beginner,
			want:     Medium,
		},
		{
			name:     "steady stays at baseline",
			perf:     Performance{AvgQuizScore: 75, ConfidenceLevel: 3.5},
			baseline: content.Intermediate,
			want:     Medium,
		},
		{
			name:     "low confidence alone steps down",
			perf:     Performance{AvgQuizScore: 80, ConfidenceLevel: 2.0},
			baseline: content.Intermediate,
			want:     Easy,
		},
		{
			name:     "low score alone steps down",
			perf:     Performance{AvgQuizScore: 40, ConfidenceLevel: 4.5},
			baseline: content.Intermediate,
			want:     Easy,
		},
		{
			name:     "high score without high confidence stays",
			perf:     Performance{AvgQuizScore: 95, ConfidenceLevel: 3.5},
			baseline: content.Intermediate,
			want:     Medium,
		},
		{
			name:     "step down clamps at easy",
			perf:     Performance{AvgQuizScore: 10, ConfidenceLevel: 1.0},
			baseline: content.Beginner,
			want:     Easy,
		},
		{
			name:     "step up clamps at hard",
			perf:     Performance{AvgQuizScore: 99, ConfidenceLevel: 5.0},
			baseline: content.Advanced,
			want:     Hard,
		},
		{
			name:     "boundary values stay at baseline",
			perf:     Performance{AvgQuizScore: 60, ConfidenceLevel: 3.0},
			baseline: content.Intermediate,
			want:     Medium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.perf, tt.baseline)
			if got != tt.want {
				t.Errorf("Resolve(%+v, %s) = %s, want %s", tt.perf, tt.baseline, got, tt.want)
			}
		})
	}
}

func TestResolveIsOneStepAtMost(t *testing.T) {
	// Even an extreme profile moves exactly one tier per call.
	perf := Performance{AvgQuizScore: 0, ConfidenceLevel: 1.0}
	if got := Resolve(perf, content.Advanced); got != Medium {
		t.Errorf("Resolve from advanced = %s, want medium (single step)", got)
	}
}
