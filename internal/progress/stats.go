package progress

import (
	"math"
	"sort"
	"time"

	"github.com/avani/mathflow/internal/content"
)

// Aggregations are pure functions recomputed from the full history on each
// call. Callers fetch the history once and derive whichever views they
// need; two calls over the same history always produce identical results.

// OverallStats summarizes a user's whole history.
type OverallStats struct {
	Attempts       int
	AveragePercent float64
	Passed         int
	Failed         int
	TimeSpentSecs  int
}

// Overall aggregates across all attempts.
func Overall(attempts []Attempt) OverallStats {
	var s OverallStats
	var sum float64

	for _, a := range attempts {
		s.Attempts++
		sum += a.Percent()
		if a.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
		s.TimeSpentSecs += a.TimeSpentSecs
	}

	if s.Attempts > 0 {
		s.AveragePercent = round2(sum / float64(s.Attempts))
	}
	return s
}

// LessonStats summarizes one lesson's attempts.
type LessonStats struct {
	LessonID       string
	Attempts       int
	AveragePercent float64
	BestPercent    float64
	WorstPercent   float64
	Passed         int
	LastCompleted  time.Time
}

// ByLesson groups attempts by lesson, sorted by lesson ID.
func ByLesson(attempts []Attempt) []LessonStats {
	byID := map[string]*LessonStats{}
	sums := map[string]float64{}

	for _, a := range attempts {
		ls := byID[a.LessonID]
		if ls == nil {
			ls = &LessonStats{LessonID: a.LessonID, WorstPercent: 100}
			byID[a.LessonID] = ls
		}
		pct := a.Percent()
		ls.Attempts++
		sums[a.LessonID] += pct
		ls.BestPercent = math.Max(ls.BestPercent, pct)
		ls.WorstPercent = math.Min(ls.WorstPercent, pct)
		if a.Passed {
			ls.Passed++
		}
		if a.CompletedAt.After(ls.LastCompleted) {
			ls.LastCompleted = a.CompletedAt
		}
	}

	out := make([]LessonStats, 0, len(byID))
	for id, ls := range byID {
		ls.AveragePercent = round2(sums[id] / float64(ls.Attempts))
		out = append(out, *ls)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LessonID < out[j].LessonID })
	return out
}

// CourseStats summarizes attempts joined through lesson → course.
type CourseStats struct {
	CourseID       string
	Title          string
	Attempts       int
	Lessons        int // distinct lessons attempted
	AveragePercent float64
	BestPercent    float64
	Passed         int
	TimeSpentSecs  int
}

// ByCourse groups attempts by course, sorted by course ID. Course titles
// come from the catalog; unknown courses keep an empty title.
func ByCourse(attempts []Attempt) []CourseStats {
	byID := map[string]*CourseStats{}
	sums := map[string]float64{}
	lessonSets := map[string]map[string]bool{}

	for _, a := range attempts {
		cs := byID[a.CourseID]
		if cs == nil {
			cs = &CourseStats{CourseID: a.CourseID}
			if c, err := content.GetCourse(a.CourseID); err == nil {
				cs.Title = c.Title
			}
			byID[a.CourseID] = cs
			lessonSets[a.CourseID] = map[string]bool{}
		}
		pct := a.Percent()
		cs.Attempts++
		sums[a.CourseID] += pct
		cs.BestPercent = math.Max(cs.BestPercent, pct)
		if a.Passed {
			cs.Passed++
		}
		cs.TimeSpentSecs += a.TimeSpentSecs
		lessonSets[a.CourseID][a.LessonID] = true
	}

	out := make([]CourseStats, 0, len(byID))
	for id, cs := range byID {
		cs.AveragePercent = round2(sums[id] / float64(cs.Attempts))
		cs.Lessons = len(lessonSets[id])
		out = append(out, *cs)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CourseID < out[j].CourseID })
	return out
}

// RecentAttempt is an attempt enriched with catalog titles for display.
type RecentAttempt struct {
	Attempt
	LessonTitle string
	CourseTitle string
}

// RecentAttempts returns the n most recent attempts by completion time,
// descending, with ties keeping insertion order.
func RecentAttempts(attempts []Attempt, n int) []RecentAttempt {
	sorted := make([]Attempt, len(attempts))
	copy(sorted, attempts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CompletedAt.After(sorted[j].CompletedAt)
	})

	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}

	out := make([]RecentAttempt, 0, n)
	for _, a := range sorted[:n] {
		ra := RecentAttempt{Attempt: a}
		if l, err := content.GetLesson(a.LessonID); err == nil {
			ra.LessonTitle = l.Title
		}
		if c, err := content.GetCourse(a.CourseID); err == nil {
			ra.CourseTitle = c.Title
		}
		out = append(out, ra)
	}
	return out
}

// Trend reports the average-percentage delta of the latest window attempts
// against the window before it. Positive means improving. Returns 0 when
// there are not enough attempts for two windows.
func Trend(attempts []Attempt, window int) float64 {
	if window <= 0 || len(attempts) < 2*window {
		return 0
	}

	latest := attempts[len(attempts)-window:]
	prior := attempts[len(attempts)-2*window : len(attempts)-window]

	return round2(avgPercent(latest) - avgPercent(prior))
}

func avgPercent(attempts []Attempt) float64 {
	var sum float64
	for _, a := range attempts {
		sum += a.Percent()
	}
	return sum / float64(len(attempts))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
