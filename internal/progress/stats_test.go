package progress

import (
	"testing"
	"time"
)

func attemptAt(lessonID, courseID string, score, max int, passed bool, completedAt time.Time) Attempt {
	return Attempt{
		ID:            lessonID + completedAt.String(),
		UserID:        "avani",
		LessonID:      lessonID,
		CourseID:      courseID,
		Questions:     nil,
		Answers:       []int{0, 0, 0, 0, 0},
		Score:         score,
		MaxScore:      max,
		Passed:        passed,
		StartedAt:     completedAt.Add(-time.Minute),
		CompletedAt:   completedAt,
		TimeSpentSecs: 60,
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		score, max int
		want       float64
	}{
		{5, 5, 100},
		{3, 5, 60},
		{0, 5, 0},
		{1, 3, 33.33},
		{0, 0, 0},
	}
	for _, tt := range tests {
		a := Attempt{Score: tt.score, MaxScore: tt.max}
		if got := a.Percent(); got != tt.want {
			t.Errorf("Percent(%d/%d) = %v, want %v", tt.score, tt.max, got, tt.want)
		}
	}
}

func TestOverall(t *testing.T) {
	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	attempts := []Attempt{
		attemptAt("l1", "c1", 4, 5, true, base),                  // 80%
		attemptAt("l1", "c1", 3, 5, true, base.Add(time.Hour)),   // 60%
		attemptAt("l2", "c1", 5, 5, true, base.Add(2*time.Hour)), // 100%
	}

	s := Overall(attempts)
	if s.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", s.Attempts)
	}
	if s.AveragePercent != 80 {
		t.Errorf("average = %v, want 80", s.AveragePercent)
	}
	if s.Passed != 3 || s.Failed != 0 {
		t.Errorf("passed/failed = %d/%d, want 3/0", s.Passed, s.Failed)
	}
	if s.TimeSpentSecs != 180 {
		t.Errorf("time = %d, want 180", s.TimeSpentSecs)
	}
}

func TestOverallEmpty(t *testing.T) {
	s := Overall(nil)
	if s.Attempts != 0 || s.AveragePercent != 0 {
		t.Errorf("empty overall = %+v", s)
	}
}

func TestByLesson(t *testing.T) {
	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	attempts := []Attempt{
		attemptAt("l2", "c1", 2, 5, false, base),
		attemptAt("l1", "c1", 4, 5, true, base.Add(time.Hour)),
		attemptAt("l1", "c1", 5, 5, true, base.Add(2*time.Hour)),
	}

	stats := ByLesson(attempts)
	if len(stats) != 2 {
		t.Fatalf("lessons = %d, want 2", len(stats))
	}

	// Sorted by lesson ID.
	l1 := stats[0]
	if l1.LessonID != "l1" {
		t.Fatalf("first lesson = %s, want l1", l1.LessonID)
	}
	if l1.Attempts != 2 {
		t.Errorf("l1 attempts = %d, want 2", l1.Attempts)
	}
	if l1.AveragePercent != 90 {
		t.Errorf("l1 average = %v, want 90", l1.AveragePercent)
	}
	if l1.BestPercent != 100 || l1.WorstPercent != 80 {
		t.Errorf("l1 best/worst = %v/%v, want 100/80", l1.BestPercent, l1.WorstPercent)
	}
	if l1.Passed != 2 {
		t.Errorf("l1 passed = %d, want 2", l1.Passed)
	}
	if !l1.LastCompleted.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("l1 last completed = %v", l1.LastCompleted)
	}

	l2 := stats[1]
	if l2.WorstPercent != 40 || l2.BestPercent != 40 {
		t.Errorf("l2 best/worst = %v/%v, want 40/40", l2.BestPercent, l2.WorstPercent)
	}
}

func TestByLessonDeterministic(t *testing.T) {
	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	attempts := []Attempt{
		attemptAt("l1", "c1", 4, 5, true, base),
		attemptAt("l2", "c1", 3, 5, true, base),
	}

	first := ByLesson(attempts)
	second := ByLesson(attempts)
	if len(first) != len(second) {
		t.Fatal("length differs between calls")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("entry %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestByCourse(t *testing.T) {
	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	attempts := []Attempt{
		attemptAt("counting-groups", "number-foundations", 4, 5, true, base),
		attemptAt("addition-basics", "number-foundations", 3, 5, true, base.Add(time.Hour)),
		attemptAt("mystery-lesson", "mystery-course", 1, 5, false, base.Add(2*time.Hour)),
	}

	stats := ByCourse(attempts)
	if len(stats) != 2 {
		t.Fatalf("courses = %d, want 2", len(stats))
	}

	// Sorted by course ID: mystery-course first.
	unknown := stats[0]
	if unknown.CourseID != "mystery-course" {
		t.Fatalf("first course = %s", unknown.CourseID)
	}
	if unknown.Title != "" {
		t.Errorf("unknown course title = %q, want empty", unknown.Title)
	}

	nf := stats[1]
	if nf.CourseID != "number-foundations" {
		t.Fatalf("second course = %s", nf.CourseID)
	}
	if nf.Title == "" {
		t.Error("catalog course should resolve a title")
	}
	if nf.Attempts != 2 || nf.Lessons != 2 {
		t.Errorf("attempts/lessons = %d/%d, want 2/2", nf.Attempts, nf.Lessons)
	}
	if nf.AveragePercent != 70 {
		t.Errorf("average = %v, want 70", nf.AveragePercent)
	}
	if nf.TimeSpentSecs != 120 {
		t.Errorf("time = %d, want 120", nf.TimeSpentSecs)
	}
}

func TestRecentAttempts(t *testing.T) {
	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	attempts := []Attempt{
		attemptAt("addition-basics", "number-foundations", 3, 5, true, base),
		attemptAt("counting-groups", "number-foundations", 4, 5, true, base.Add(2*time.Hour)),
		attemptAt("fraction-shares", "parts-and-patterns", 5, 5, true, base.Add(time.Hour)),
	}

	recent := RecentAttempts(attempts, 2)
	if len(recent) != 2 {
		t.Fatalf("recent = %d, want 2", len(recent))
	}
	if recent[0].LessonID != "counting-groups" {
		t.Errorf("recent[0] = %s, want counting-groups", recent[0].LessonID)
	}
	if recent[1].LessonID != "fraction-shares" {
		t.Errorf("recent[1] = %s, want fraction-shares", recent[1].LessonID)
	}
	if recent[0].LessonTitle == "" {
		t.Error("catalog lesson should resolve a title")
	}

	// n larger than history returns everything.
	if got := RecentAttempts(attempts, 10); len(got) != 3 {
		t.Errorf("recent(10) = %d, want 3", len(got))
	}

	// Zero or negative n returns nothing.
	if got := RecentAttempts(attempts, 0); len(got) != 0 {
		t.Errorf("recent(0) = %d, want 0", len(got))
	}
	if got := RecentAttempts(attempts, -1); len(got) != 0 {
		t.Errorf("recent(-1) = %d, want 0", len(got))
	}
}

func TestRecentAttemptsTieKeepsInsertionOrder(t *testing.T) {
	at := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	a1 := attemptAt("l1", "c1", 3, 5, true, at)
	a1.ID = "first"
	a2 := attemptAt("l2", "c1", 4, 5, true, at)
	a2.ID = "second"

	recent := RecentAttempts([]Attempt{a1, a2}, 2)
	if recent[0].ID != "first" || recent[1].ID != "second" {
		t.Errorf("tie order = %s, %s; want first, second", recent[0].ID, recent[1].ID)
	}
}

func TestTrend(t *testing.T) {
	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	mk := func(scores ...int) []Attempt {
		out := make([]Attempt, len(scores))
		for i, s := range scores {
			out[i] = attemptAt("l1", "c1", s, 5, s >= 3, base.Add(time.Duration(i)*time.Hour))
		}
		return out
	}

	// Prior window [2,3] = 50%, latest [4,5] = 90%: +40.
	if got := Trend(mk(2, 3, 4, 5), 2); got != 40 {
		t.Errorf("trend = %v, want 40", got)
	}

	// Declining.
	if got := Trend(mk(5, 5, 2, 2), 2); got != -60 {
		t.Errorf("trend = %v, want -60", got)
	}

	// Not enough history.
	if got := Trend(mk(5, 5, 5), 2); got != 0 {
		t.Errorf("trend with short history = %v, want 0", got)
	}
	if got := Trend(mk(5, 5), 0); got != 0 {
		t.Errorf("trend with zero window = %v, want 0", got)
	}
}

func TestNextAttemptNumber(t *testing.T) {
	if got := NextAttemptNumber(nil); got != 1 {
		t.Errorf("next for empty = %d, want 1", got)
	}
	prior := []Attempt{{AttemptNumber: 1}, {AttemptNumber: 2}}
	if got := NextAttemptNumber(prior); got != 3 {
		t.Errorf("next = %d, want 3", got)
	}
}
