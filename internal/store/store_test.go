package store

import (
	"context"
	"testing"
	"time"

	"github.com/avani/mathflow/internal/llm"
	"github.com/avani/mathflow/internal/progress"
	"github.com/avani/mathflow/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testAttempt(userID, lessonID string, num int, completedAt time.Time) progress.Attempt {
	return progress.Attempt{
		ID:            lessonID + "-" + userID + "-" + time.Duration(num).String(),
		UserID:        userID,
		LessonID:      lessonID,
		CourseID:      "number-foundations",
		AttemptNumber: num,
		Questions: []quiz.Question{
			{
				ID:          "q1",
				Text:        "What is 2 + 3?",
				Options:     []string{"4", "5", "6", "7"},
				Correct:     1,
				Explanation: "2 and 3 together make 5.",
				Difficulty:  quiz.Medium,
			},
		},
		Answers:       []int{1},
		Score:         1,
		MaxScore:      1,
		Passed:        true,
		StartedAt:     completedAt.Add(-30 * time.Second),
		CompletedAt:   completedAt,
		TimeSpentSecs: 30,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestLedgerAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	ledger := s.Ledger()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		a := testAttempt("avani", "addition-basics", i+1, base.Add(time.Duration(i)*time.Minute))
		if err := ledger.Append(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := ledger.ByUser(ctx, "avani")
	if err != nil {
		t.Fatalf("by user: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("attempts = %d, want 3", len(got))
	}

	// Insertion order, attempt numbers intact.
	for i, a := range got {
		if a.AttemptNumber != i+1 {
			t.Errorf("attempt[%d].AttemptNumber = %d, want %d", i, a.AttemptNumber, i+1)
		}
	}

	// Embedded question set round-trips.
	if len(got[0].Questions) != 1 {
		t.Fatalf("questions = %d, want 1", len(got[0].Questions))
	}
	q := got[0].Questions[0]
	if q.Text != "What is 2 + 3?" {
		t.Errorf("question text = %q", q.Text)
	}
	if q.Correct != 1 {
		t.Errorf("correct = %d, want 1", q.Correct)
	}
	if len(q.Options) != 4 {
		t.Errorf("options = %d, want 4", len(q.Options))
	}
}

func TestLedgerByUserAndLesson(t *testing.T) {
	s := openTestStore(t)
	ledger := s.Ledger()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	if err := ledger.Append(ctx, testAttempt("avani", "addition-basics", 1, base)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := ledger.Append(ctx, testAttempt("avani", "fraction-shares", 1, base.Add(time.Minute))); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := ledger.Append(ctx, testAttempt("avani", "addition-basics", 2, base.Add(2*time.Minute))); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := ledger.ByUserAndLesson(ctx, "avani", "addition-basics")
	if err != nil {
		t.Fatalf("by user and lesson: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("attempts = %d, want 2", len(got))
	}
	if got[0].AttemptNumber != 1 || got[1].AttemptNumber != 2 {
		t.Errorf("attempt numbers = %d, %d, want 1, 2", got[0].AttemptNumber, got[1].AttemptNumber)
	}

	// Other users never leak in.
	got, err = ledger.ByUserAndLesson(ctx, "someone-else", "addition-basics")
	if err != nil {
		t.Fatalf("by user and lesson (other): %v", err)
	}
	if len(got) != 0 {
		t.Errorf("attempts for other user = %d, want 0", len(got))
	}
}

func TestLedgerRecent(t *testing.T) {
	s := openTestStore(t)
	ledger := s.Ledger()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 4; i++ {
		a := testAttempt("avani", "counting-groups", i+1, base.Add(time.Duration(i)*time.Minute))
		if err := ledger.Append(ctx, a); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := ledger.Recent(ctx, "avani", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("recent = %d, want 2", len(got))
	}
	if got[0].AttemptNumber != 4 {
		t.Errorf("recent[0].AttemptNumber = %d, want 4", got[0].AttemptNumber)
	}
	if got[1].AttemptNumber != 3 {
		t.Errorf("recent[1].AttemptNumber = %d, want 3", got[1].AttemptNumber)
	}
}

func TestEventRepoAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, llm.LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku-4-5",
		Purpose:      "quiz-gen",
		InputTokens:  120,
		OutputTokens: 480,
		LatencyMs:    900,
		Success:      true,
		RequestBody:  "[system] generate questions",
		ResponseBody: "QUESTION: ...",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, llm.QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	e := events[0]
	if e.Provider != "anthropic" {
		t.Errorf("provider = %q", e.Provider)
	}
	if e.InputTokens != 120 || e.OutputTokens != 480 {
		t.Errorf("tokens = %d/%d, want 120/480", e.InputTokens, e.OutputTokens)
	}
	if !e.Success {
		t.Error("expected success")
	}

	got, err := repo.GetLLMEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil event")
	}
	if got.ResponseBody != "QUESTION: ..." {
		t.Errorf("response body = %q", got.ResponseBody)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestEventRepoQueryLimitAndOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendLLMRequest(ctx, llm.LLMRequestEventData{
			Provider:    "openai",
			Model:       "gpt-4o-mini",
			Purpose:     "remediation",
			InputTokens: i,
			Success:     true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, llm.QueryOpts{Limit: 3})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("events = %d, want 3", len(events))
	}
	// Most recent first.
	if events[0].InputTokens != 4 {
		t.Errorf("events[0].InputTokens = %d, want 4", events[0].InputTokens)
	}
}

func TestEventRepoUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []llm.LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "quiz-gen", InputTokens: 100, OutputTokens: 400, LatencyMs: 800, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "quiz-gen", InputTokens: 100, OutputTokens: 600, LatencyMs: 1200, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5", Purpose: "remediation", InputTokens: 50, OutputTokens: 100, LatencyMs: 400, Success: true},
	}
	for i, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	// Ordered by purpose: quiz-gen, remediation.
	qg := byPurpose[0]
	if qg.Purpose != "quiz-gen" {
		t.Fatalf("purpose = %q, want quiz-gen", qg.Purpose)
	}
	if qg.Calls != 2 {
		t.Errorf("calls = %d, want 2", qg.Calls)
	}
	if qg.OutputTokens != 1000 {
		t.Errorf("output tokens = %d, want 1000", qg.OutputTokens)
	}
	if qg.AvgLatencyMs != 1000 {
		t.Errorf("avg latency = %d, want 1000", qg.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 {
		t.Fatalf("models = %d, want 1", len(byModel))
	}
	if byModel[0].Calls != 3 {
		t.Errorf("calls = %d, want 3", byModel[0].Calls)
	}
	if byModel[0].InputTokens != 250 {
		t.Errorf("input tokens = %d, want 250", byModel[0].InputTokens)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"attempt_events", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
