package store

import (
	"context"
	"fmt"

	"github.com/avani/mathflow/ent"
	"github.com/avani/mathflow/ent/attemptevent"
	"github.com/avani/mathflow/ent/schema"
	"github.com/avani/mathflow/internal/progress"
	"github.com/avani/mathflow/internal/quiz"
)

// attemptRepo implements progress.Ledger backed by ent. Attempts are
// append-only rows ordered by the global sequence counter.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) Append(ctx context.Context, a progress.Attempt) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(a.ID).
		SetUserID(a.UserID).
		SetLessonID(a.LessonID).
		SetCourseID(a.CourseID).
		SetAttemptNumber(a.AttemptNumber).
		SetQuestions(toRecords(a.Questions)).
		SetAnswers(a.Answers).
		SetScore(a.Score).
		SetMaxScore(a.MaxScore).
		SetPassed(a.Passed).
		SetStartedAt(a.StartedAt).
		SetCompletedAt(a.CompletedAt).
		SetTimeSpentSecs(a.TimeSpentSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *attemptRepo) ByUser(ctx context.Context, userID string) ([]progress.Attempt, error) {
	rows, err := r.client.AttemptEvent.Query().
		Where(attemptevent.UserID(userID)).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts by user: %w", err)
	}
	return toAttempts(rows), nil
}

func (r *attemptRepo) ByUserAndLesson(ctx context.Context, userID, lessonID string) ([]progress.Attempt, error) {
	rows, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.UserID(userID),
			attemptevent.LessonID(lessonID),
		).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts by lesson: %w", err)
	}
	return toAttempts(rows), nil
}

func (r *attemptRepo) Recent(ctx context.Context, userID string, n int) ([]progress.Attempt, error) {
	q := r.client.AttemptEvent.Query().
		Where(attemptevent.UserID(userID)).
		Order(
			ent.Desc(attemptevent.FieldCompletedAt),
			ent.Desc(attemptevent.FieldSequence),
		)
	if n > 0 {
		q = q.Limit(n)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}
	return toAttempts(rows), nil
}

func toAttempts(rows []*ent.AttemptEvent) []progress.Attempt {
	out := make([]progress.Attempt, len(rows))
	for i, e := range rows {
		out[i] = progress.Attempt{
			ID:            e.AttemptID,
			UserID:        e.UserID,
			LessonID:      e.LessonID,
			CourseID:      e.CourseID,
			AttemptNumber: e.AttemptNumber,
			Questions:     fromRecords(e.Questions),
			Answers:       e.Answers,
			Score:         e.Score,
			MaxScore:      e.MaxScore,
			Passed:        e.Passed,
			StartedAt:     e.StartedAt,
			CompletedAt:   e.CompletedAt,
			TimeSpentSecs: e.TimeSpentSecs,
		}
	}
	return out
}

func toRecords(qs []quiz.Question) []schema.QuestionRecord {
	out := make([]schema.QuestionRecord, len(qs))
	for i, q := range qs {
		out[i] = schema.QuestionRecord{
			ID:          q.ID,
			Text:        q.Text,
			Options:     q.Options,
			Correct:     q.Correct,
			Explanation: q.Explanation,
			Difficulty:  string(q.Difficulty),
		}
	}
	return out
}

func fromRecords(recs []schema.QuestionRecord) []quiz.Question {
	out := make([]quiz.Question, len(recs))
	for i, r := range recs {
		out[i] = quiz.Question{
			ID:          r.ID,
			Text:        r.Text,
			Options:     r.Options,
			Correct:     r.Correct,
			Explanation: r.Explanation,
			Difficulty:  quiz.Difficulty(r.Difficulty),
		}
	}
	return out
}
