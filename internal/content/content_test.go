package content

import "testing"

func TestGetLesson(t *testing.T) {
	l, err := GetLesson("addition-basics")
	if err != nil {
		t.Fatalf("get lesson: %v", err)
	}
	if l.Title == "" {
		t.Error("lesson missing title")
	}
	if l.CourseID == "" {
		t.Error("lesson missing course")
	}
	if l.PassScore <= 0 {
		t.Errorf("pass score = %d", l.PassScore)
	}
	if len(l.Topics) == 0 {
		t.Error("lesson has no topics")
	}

	if _, err := GetLesson("no-such-lesson"); err == nil {
		t.Error("expected error for unknown lesson")
	}
}

func TestGetCourse(t *testing.T) {
	c, err := GetCourse("number-foundations")
	if err != nil {
		t.Fatalf("get course: %v", err)
	}
	if c.Title == "" {
		t.Error("course missing title")
	}

	if _, err := GetCourse("no-such-course"); err == nil {
		t.Error("expected error for unknown course")
	}
}

func TestCatalogConsistency(t *testing.T) {
	lessons := Lessons()
	if len(lessons) == 0 {
		t.Fatal("empty lesson catalog")
	}

	seen := map[string]bool{}
	for _, l := range lessons {
		if seen[l.ID] {
			t.Errorf("duplicate lesson ID %q", l.ID)
		}
		seen[l.ID] = true

		// Every lesson belongs to a catalog course.
		if _, err := GetCourse(l.CourseID); err != nil {
			t.Errorf("lesson %q references unknown course %q", l.ID, l.CourseID)
		}

		switch l.Difficulty {
		case Beginner, Intermediate, Advanced:
		default:
			t.Errorf("lesson %q has invalid difficulty %q", l.ID, l.Difficulty)
		}

		if l.PassScore <= 0 || l.PassScore > 5 {
			t.Errorf("lesson %q pass score = %d", l.ID, l.PassScore)
		}
	}
}

func TestLessonsForCourse(t *testing.T) {
	for _, c := range Courses() {
		lessons := LessonsForCourse(c.ID)
		if len(lessons) == 0 {
			t.Errorf("course %q has no lessons", c.ID)
		}
		for _, l := range lessons {
			if l.CourseID != c.ID {
				t.Errorf("lesson %q in wrong course result", l.ID)
			}
		}
	}

	if got := LessonsForCourse("no-such-course"); len(got) != 0 {
		t.Errorf("unknown course returned %d lessons", len(got))
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	first := Lessons()
	first[0].Title = "mutated"

	second := Lessons()
	if second[0].Title == "mutated" {
		t.Error("Lessons() exposes internal slice")
	}
}
