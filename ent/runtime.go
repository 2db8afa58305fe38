// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/avani/mathflow/ent/attemptevent"
	"github.com/avani/mathflow/ent/llmrequestevent"
	"github.com/avani/mathflow/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[0].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescUserID is the schema descriptor for user_id field.
	attempteventDescUserID := attempteventFields[1].Descriptor()
	// attemptevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attemptevent.UserIDValidator = attempteventDescUserID.Validators[0].(func(string) error)
	// attempteventDescLessonID is the schema descriptor for lesson_id field.
	attempteventDescLessonID := attempteventFields[2].Descriptor()
	// attemptevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	attemptevent.LessonIDValidator = attempteventDescLessonID.Validators[0].(func(string) error)
	// attempteventDescCourseID is the schema descriptor for course_id field.
	attempteventDescCourseID := attempteventFields[3].Descriptor()
	// attemptevent.CourseIDValidator is a validator for the "course_id" field. It is called by the builders before save.
	attemptevent.CourseIDValidator = attempteventDescCourseID.Validators[0].(func(string) error)
	// attempteventDescAttemptNumber is the schema descriptor for attempt_number field.
	attempteventDescAttemptNumber := attempteventFields[4].Descriptor()
	// attemptevent.AttemptNumberValidator is a validator for the "attempt_number" field. It is called by the builders before save.
	attemptevent.AttemptNumberValidator = attempteventDescAttemptNumber.Validators[0].(func(int) error)
	// attempteventDescScore is the schema descriptor for score field.
	attempteventDescScore := attempteventFields[7].Descriptor()
	// attemptevent.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	attemptevent.ScoreValidator = attempteventDescScore.Validators[0].(func(int) error)
	// attempteventDescMaxScore is the schema descriptor for max_score field.
	attempteventDescMaxScore := attempteventFields[8].Descriptor()
	// attemptevent.MaxScoreValidator is a validator for the "max_score" field. It is called by the builders before save.
	attemptevent.MaxScoreValidator = attempteventDescMaxScore.Validators[0].(func(int) error)
	// attempteventDescTimeSpentSecs is the schema descriptor for time_spent_secs field.
	attempteventDescTimeSpentSecs := attempteventFields[12].Descriptor()
	// attemptevent.TimeSpentSecsValidator is a validator for the "time_spent_secs" field. It is called by the builders before save.
	attemptevent.TimeSpentSecsValidator = attempteventDescTimeSpentSecs.Validators[0].(func(int) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
}
