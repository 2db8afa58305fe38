package tui

import (
	"testing"

	"github.com/avani/mathflow/internal/progress"
)

func TestDerivePerformanceEmptyHistory(t *testing.T) {
	perf := derivePerformance(nil)
	if perf.AvgQuizScore != 70 {
		t.Errorf("avg score = %v, want 70", perf.AvgQuizScore)
	}
	if perf.ConfidenceLevel != 3.0 {
		t.Errorf("confidence = %v, want 3.0", perf.ConfidenceLevel)
	}
}

func TestDerivePerformance(t *testing.T) {
	attempts := []progress.Attempt{
		{Score: 4, MaxScore: 5, Passed: true, TimeSpentSecs: 100},
		{Score: 2, MaxScore: 5, Passed: false, TimeSpentSecs: 140},
	}

	perf := derivePerformance(attempts)
	if perf.AvgQuizScore != 60 {
		t.Errorf("avg score = %v, want 60", perf.AvgQuizScore)
	}
	if perf.AvgTimeOnTask != 120 {
		t.Errorf("avg time = %v, want 120", perf.AvgTimeOnTask)
	}
	// 1 pass out of 2: confidence 1.0 + 4.0*0.5 = 3.0.
	if perf.ConfidenceLevel != 3.0 {
		t.Errorf("confidence = %v, want 3.0", perf.ConfidenceLevel)
	}
}

func TestDerivePerformanceAllPassed(t *testing.T) {
	attempts := []progress.Attempt{
		{Score: 5, MaxScore: 5, Passed: true, TimeSpentSecs: 90},
	}
	perf := derivePerformance(attempts)
	if perf.ConfidenceLevel != 5.0 {
		t.Errorf("confidence = %v, want 5.0", perf.ConfidenceLevel)
	}
	if perf.AvgQuizScore != 100 {
		t.Errorf("avg score = %v, want 100", perf.AvgQuizScore)
	}
}
