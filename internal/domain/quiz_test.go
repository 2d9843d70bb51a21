package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionCheck_MultipleChoice(t *testing.T) {
	q := Question{Type: QuestionMultipleChoice, CorrectAnswer: "b"}

	correct, gradable := q.Check("b")
	assert.True(t, correct)
	assert.True(t, gradable)

	correct, _ = q.Check("B")
	assert.False(t, correct, "MCQ answers are compared exactly")
}

func TestQuestionCheck_FillBlankIsCaseAndSpaceInsensitive(t *testing.T) {
	q := Question{Type: QuestionFillBlank, CorrectAnswer: "Paris"}

	correct, gradable := q.Check("  paris ")
	assert.True(t, correct)
	assert.True(t, gradable)

	correct, _ = q.Check("London")
	assert.False(t, correct)
}

func TestQuestionCheck_ShortAnswerKeywordThreshold(t *testing.T) {
	// Three expected words: ceil(3 * 0.7) = 3, so all must appear.
	q := Question{Type: QuestionShortAnswer, CorrectAnswer: "goroutines are lightweight"}

	correct, gradable := q.Check("I think goroutines are very lightweight threads")
	assert.True(t, correct)
	assert.True(t, gradable)

	correct, _ = q.Check("goroutines are heavy")
	assert.False(t, correct)
}

func TestQuestionCheck_ShortAnswerEmptyExpected(t *testing.T) {
	q := Question{Type: QuestionShortAnswer, CorrectAnswer: ""}
	correct, gradable := q.Check("anything")
	assert.False(t, correct)
	assert.True(t, gradable)
}

func TestQuestionCheck_EssayIsNotGradable(t *testing.T) {
	q := Question{Type: QuestionEssay, CorrectAnswer: "anything"}
	_, gradable := q.Check("a long essay")
	assert.False(t, gradable)
}

func TestGradeQuiz(t *testing.T) {
	questions := []Question{
		{Type: QuestionMultipleChoice, CorrectAnswer: "a", Points: 2},
		{Type: QuestionTrueFalse, CorrectAnswer: "True"}, // zero points counts as one
		{Type: QuestionEssay, CorrectAnswer: "", Points: 5},
	}

	grade := GradeQuiz(questions, []string{"a", "False", "essay text"}, 30)
	assert.Equal(t, 8, grade.TotalPoints)
	assert.Equal(t, 2, grade.EarnedPoints)
	assert.Equal(t, 25, grade.Percentage)
	assert.False(t, grade.Passed)
	require.Len(t, grade.Answers, 3)
	assert.True(t, grade.Answers[0].IsCorrect)
	assert.Equal(t, 2, grade.Answers[0].PointsEarned)
	assert.False(t, grade.Answers[2].IsCorrect)
	assert.Zero(t, grade.Answers[2].PointsEarned)
}

func TestGradeQuiz_MissingAnswersCountAsWrong(t *testing.T) {
	questions := []Question{
		{Type: QuestionTrueFalse, CorrectAnswer: "True", Points: 1},
		{Type: QuestionTrueFalse, CorrectAnswer: "True", Points: 1},
	}

	grade := GradeQuiz(questions, []string{"True"}, 50)
	assert.Equal(t, 1, grade.EarnedPoints)
	assert.Equal(t, 50, grade.Percentage)
	assert.True(t, grade.Passed)
}

func TestGradeQuiz_NoQuestions(t *testing.T) {
	grade := GradeQuiz(nil, nil, 70)
	assert.Zero(t, grade.TotalPoints)
	assert.Zero(t, grade.Percentage)
	assert.False(t, grade.Passed)
	assert.Empty(t, grade.Answers)
}

func TestQuizQuestionUnmarshal_NumericAnswerBecomesCorrect(t *testing.T) {
	var q QuizQuestion
	require.NoError(t, json.Unmarshal([]byte(`{"type":"True/False","question":"q","options":["True","False"],"answer":1}`), &q))
	require.NotNil(t, q.Correct)
	assert.Equal(t, 1, *q.Correct)
	assert.Empty(t, q.Answer)
}

func TestQuizQuestionUnmarshal_TextAnswerIsKept(t *testing.T) {
	var q QuizQuestion
	require.NoError(t, json.Unmarshal([]byte(`{"type":"Short Answer","question":"q","answer":"implicit contracts"}`), &q))
	assert.Nil(t, q.Correct)
	assert.Equal(t, "implicit contracts", q.Answer)
}

func TestQuizQuestionUnmarshal_CorrectWinsOverAnswer(t *testing.T) {
	var q QuizQuestion
	require.NoError(t, json.Unmarshal([]byte(`{"question":"q","correct":2,"answer":0}`), &q))
	require.NotNil(t, q.Correct)
	assert.Equal(t, 2, *q.Correct)
}
