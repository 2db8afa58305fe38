package content

// Static catalog seed. Lessons are written for dyslexic learners: short
// descriptions, concrete topic words, no dense symbol runs.

var courseSeed = []Course{
	{
		ID:          "number-foundations",
		Title:       "Number Foundations",
		Description: "Counting, addition, and subtraction with friendly numbers.",
	},
	{
		ID:          "parts-and-patterns",
		Title:       "Parts and Patterns",
		Description: "Fractions, sharing, and simple patterns with unknowns.",
	},
}

var lessonSeed = []Lesson{
	{
		ID:          "counting-groups",
		CourseID:    "number-foundations",
		Title:       "Counting in Groups",
		Description: "Count objects in groups of 2, 5, and 10.",
		Topics:      []string{"counting", "skip counting", "groups"},
		DurationMin: 15,
		Difficulty:  Beginner,
		PassScore:   DefaultPassScore,
	},
	{
		ID:          "addition-basics",
		CourseID:    "number-foundations",
		Title:       "Addition Basics",
		Description: "Add one and two digit numbers without regrouping.",
		Topics:      []string{"addition", "sums", "number line"},
		DurationMin: 20,
		Difficulty:  Beginner,
		PassScore:   DefaultPassScore,
	},
	{
		ID:          "subtraction-stories",
		CourseID:    "number-foundations",
		Title:       "Subtraction Stories",
		Description: "Take away and find the difference in short word problems.",
		Topics:      []string{"subtraction", "difference", "word problems"},
		DurationMin: 20,
		Difficulty:  Intermediate,
		PassScore:   DefaultPassScore,
	},
	{
		ID:          "fraction-shares",
		CourseID:    "parts-and-patterns",
		Title:       "Fair Shares",
		Description: "Halves, thirds, and quarters by sharing things out.",
		Topics:      []string{"fractions", "halves", "sharing"},
		DurationMin: 25,
		Difficulty:  Intermediate,
		PassScore:   DefaultPassScore,
	},
	{
		ID:          "missing-numbers",
		CourseID:    "parts-and-patterns",
		Title:       "Missing Numbers",
		Description: "Find the unknown number that makes a statement true.",
		Topics:      []string{"algebra", "patterns", "unknowns"},
		DurationMin: 25,
		Difficulty:  Advanced,
		PassScore:   DefaultPassScore,
	},
}
