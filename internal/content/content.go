package content

import "fmt"

// Difficulty is a lesson's baseline difficulty, set by course content.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// DefaultPassScore is the number of correct answers (out of 5) required to
// pass a lesson unless the lesson overrides it.
const DefaultPassScore = 3

// Lesson is a read-only course content record. The quiz core never mutates
// lessons; it only reads them when building a question set.
type Lesson struct {
	ID          string
	CourseID    string
	Title       string
	Description string

	// Topics is the ordered list of topic keywords for this lesson.
	// Used for prompt construction and fallback bank selection.
	Topics []string

	// DurationMin is the suggested lesson duration in minutes.
	DurationMin int

	Difficulty Difficulty

	// PassScore is the minimum quiz score (correct answers) to pass.
	PassScore int
}

// Course groups lessons.
type Course struct {
	ID          string
	Title       string
	Description string
}

// GetLesson looks up a lesson by ID.
func GetLesson(id string) (Lesson, error) {
	for _, l := range lessonSeed {
		if l.ID == id {
			return l, nil
		}
	}
	return Lesson{}, fmt.Errorf("unknown lesson: %q", id)
}

// GetCourse looks up a course by ID.
func GetCourse(id string) (Course, error) {
	for _, c := range courseSeed {
		if c.ID == id {
			return c, nil
		}
	}
	return Course{}, fmt.Errorf("unknown course: %q", id)
}

// Lessons returns all lessons in catalog order.
func Lessons() []Lesson {
	out := make([]Lesson, len(lessonSeed))
	copy(out, lessonSeed)
	return out
}

// Courses returns all courses in catalog order.
func Courses() []Course {
	out := make([]Course, len(courseSeed))
	copy(out, courseSeed)
	return out
}

// LessonsForCourse returns the lessons of a course in catalog order.
func LessonsForCourse(courseID string) []Lesson {
	var out []Lesson
	for _, l := range lessonSeed {
		if l.CourseID == courseID {
			out = append(out, l)
		}
	}
	return out
}
