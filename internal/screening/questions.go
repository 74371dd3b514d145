// Package screening holds the multiple-choice technical screening test and
// its grading. Candidates who pass the resume stage take this test; the
// combined score decides whether they reach HR review.
package screening

// Question is one multiple-choice item. The correct answer index is never
// serialized to candidates.
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"-"`
}

// TestDurationSeconds is the time allotted for the full test.
const TestDurationSeconds = 25 * 60

var questions = []Question{
	{
		ID:       1,
		Question: "What is the primary purpose of unit testing?",
		Options: []string{
			"To test the entire application",
			"To test individual components in isolation",
			"To test user interface",
			"To test database connections",
		},
		Correct: 1,
	},
	{
		ID:       2,
		Question: "Which HTTP status code indicates a successful request?",
		Options:  []string{"404", "500", "200", "301"},
		Correct:  2,
	},
	{
		ID:       3,
		Question: "What does API stand for?",
		Options: []string{
			"Application Programming Interface",
			"Advanced Programming Integration",
			"Automated Program Interaction",
			"Application Process Integration",
		},
		Correct: 0,
	},
	{
		ID:       4,
		Question: "In Agile methodology, what is a Sprint?",
		Options:  []string{"A type of testing", "A time-boxed iteration", "A project milestone", "A team meeting"},
		Correct:  1,
	},
	{
		ID:       5,
		Question: "What is the purpose of version control systems like Git?",
		Options: []string{
			"To compile code",
			"To track changes in code over time",
			"To test applications",
			"To deploy applications",
		},
		Correct: 1,
	},
	{
		ID:       6,
		Question: "What is the difference between smoke testing and sanity testing?",
		Options: []string{
			"No difference, they are the same",
			"Smoke testing is broader, sanity testing is narrow and focused",
			"Sanity testing is broader, smoke testing is narrow",
			"Both are performed only on production",
		},
		Correct: 1,
	},
	{
		ID:       7,
		Question: "Which automation tool is primarily used for web application testing?",
		Options:  []string{"JUnit", "Selenium", "Postman", "Jenkins"},
		Correct:  1,
	},
	{
		ID:       8,
		Question: "What is a test case?",
		Options: []string{
			"A bug report",
			"A set of conditions to determine if a system works correctly",
			"A testing tool",
			"A type of documentation",
		},
		Correct: 1,
	},
	{
		ID:       9,
		Question: "In testing, what does UAT stand for?",
		Options: []string{
			"Unit Acceptance Testing",
			"User Acceptance Testing",
			"Unified Application Testing",
			"Universal Access Testing",
		},
		Correct: 1,
	},
	{
		ID:       10,
		Question: "What is regression testing?",
		Options: []string{
			"Testing new features only",
			"Re-testing the entire application from scratch",
			"Testing to ensure existing functionality works after changes",
			"Testing for performance issues",
		},
		Correct: 2,
	},
	{
		ID:       11,
		Question: "Which testing type focuses on the application's ability to handle expected load?",
		Options:  []string{"Functional testing", "Security testing", "Performance testing", "Usability testing"},
		Correct:  2,
	},
	{
		ID:       12,
		Question: "What is a defect life cycle?",
		Options: []string{
			"The time taken to fix a bug",
			"The process a defect goes through from discovery to closure",
			"The number of defects in a release",
			"The cost of fixing defects",
		},
		Correct: 1,
	},
	{
		ID:       13,
		Question: "In API testing, what does POST method typically do?",
		Options:  []string{"Retrieve data", "Update existing data", "Create new data", "Delete data"},
		Correct:  2,
	},
	{
		ID:       14,
		Question: "What is boundary value analysis?",
		Options: []string{
			"Testing only maximum values",
			"Testing values at the boundaries of input domains",
			"Testing random values",
			"Testing only minimum values",
		},
		Correct: 1,
	},
	{
		ID:       15,
		Question: "Which tool is commonly used for API testing?",
		Options:  []string{"Selenium", "Postman", "JMeter", "TestNG"},
		Correct:  1,
	},
}

// Questions returns the full bank in presentation order.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}
