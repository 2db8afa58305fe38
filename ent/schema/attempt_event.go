package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one finalized quiz attempt. The question set and the
// learner's answers are embedded so the history stays complete even though
// question sets are regenerated per attempt.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// QuestionRecord is the serialized form of one served question.
type QuestionRecord struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Explanation string   `json:"explanation"`
	Difficulty  string   `json:"difficulty"`
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Comment("UUID of the attempt"),
		field.String("user_id").
			NotEmpty().
			Comment("Learner this attempt belongs to"),
		field.String("lesson_id").
			NotEmpty().
			Comment("Lesson the quiz was for"),
		field.String("course_id").
			NotEmpty().
			Comment("Course grouping of the lesson"),
		field.Int("attempt_number").
			Positive().
			Comment("1-based, strictly increasing per user+lesson"),
		field.JSON("questions", []QuestionRecord{}).
			Comment("The exact question set served"),
		field.JSON("answers", []int{}).
			Comment("Selected option index per question, -1 for unanswered"),
		field.Int("score").
			Min(0).
			Comment("Count of correct answers"),
		field.Int("max_score").
			Positive().
			Comment("Number of questions"),
		field.Bool("passed").
			Comment("score >= lesson pass score"),
		field.Time("started_at").
			Comment("When the question loop began"),
		field.Time("completed_at").
			Comment("When the attempt was finalized"),
		field.Int("time_spent_secs").
			Min(0).
			Comment("Whole seconds from start to finalization"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "lesson_id"),
		index.Fields("completed_at"),
	}
}
