package screening

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestions_BankShape(t *testing.T) {
	bank := Questions()

	require.Len(t, bank, 15)
	for _, q := range bank {
		assert.NotEmpty(t, q.Question)
		assert.Len(t, q.Options, 4)
		assert.GreaterOrEqual(t, q.Correct, 0)
		assert.Less(t, q.Correct, len(q.Options))
	}
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	bank := Questions()
	bank[0].Question = "tampered"

	assert.NotEqual(t, "tampered", Questions()[0].Question)
}

func TestQuestions_CorrectIndexNotSerialized(t *testing.T) {
	data, err := json.Marshal(Questions()[0])

	require.NoError(t, err)
	assert.NotContains(t, string(data), "correct")
}

func TestGrade_AllCorrect(t *testing.T) {
	answers := map[int]int{}
	for _, q := range questions {
		answers[q.ID] = q.Correct
	}

	assert.Equal(t, 100, Grade(answers))
}

func TestGrade_NoAnswers(t *testing.T) {
	assert.Equal(t, 0, Grade(map[int]int{}))
}

func TestGrade_PartialCredit(t *testing.T) {
	answers := map[int]int{}
	for _, q := range questions[:9] {
		answers[q.ID] = q.Correct
	}
	// A wrong answer earns nothing.
	answers[questions[9].ID] = (questions[9].Correct + 1) % 4

	// 9 of 15 correct is 60 points.
	assert.Equal(t, 60, Grade(answers))
}

func TestGrade_UnknownQuestionIDsIgnored(t *testing.T) {
	assert.Equal(t, 0, Grade(map[int]int{999: 1}))
}
