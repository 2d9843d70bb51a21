package domain

import (
	"encoding/json"
	"math"
	"strings"
)

// GeneratedQuiz is the transient output of quiz or final-test generation.
type GeneratedQuiz struct {
	Questions []QuizQuestion `json:"questions"`
}

// EmptyQuiz is the degrade-to-default result when generation fails.
func EmptyQuiz() *GeneratedQuiz {
	return &GeneratedQuiz{Questions: []QuizQuestion{}}
}

// QuizQuestion is one generated question. For MCQ questions Correct is a
// 0-based index into Options; for True/False Options is ["True","False"] and
// Correct is 0 or 1.
type QuizQuestion struct {
	Type     string   `json:"type"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
	Correct  *int     `json:"correct,omitempty"`
	Answer   string   `json:"answer,omitempty"`
}

// UnmarshalJSON tolerates LLM output that uses "answer" where "correct" was
// requested: a numeric answer is coerced into Correct, anything else is kept
// as the free-text Answer.
func (q *QuizQuestion) UnmarshalJSON(data []byte) error {
	type alias struct {
		Type     string          `json:"type"`
		Question string          `json:"question"`
		Options  []string        `json:"options"`
		Correct  *int            `json:"correct"`
		Answer   json.RawMessage `json:"answer"`
	}
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	q.Type = a.Type
	q.Question = a.Question
	q.Options = a.Options
	q.Correct = a.Correct
	if len(a.Answer) > 0 {
		var n int
		if err := json.Unmarshal(a.Answer, &n); err == nil {
			if q.Correct == nil {
				q.Correct = &n
			}
		} else {
			var s string
			if err := json.Unmarshal(a.Answer, &s); err == nil {
				q.Answer = s
			} else {
				q.Answer = string(a.Answer)
			}
		}
	}
	return nil
}

// ShortAnswerEvaluation is the result of LLM-based short answer grading.
type ShortAnswerEvaluation struct {
	Score       float64  `json:"score"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
}

// FallbackEvaluation is returned when the evaluation call or parse fails.
func FallbackEvaluation() *ShortAnswerEvaluation {
	return &ShortAnswerEvaluation{
		Score:       0,
		Feedback:    "Could not evaluate answer. Please try again later.",
		Suggestions: []string{},
	}
}

// QuestionType enumerates the gradable question kinds.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple-choice"
	QuestionTrueFalse      QuestionType = "true-false"
	QuestionFillBlank      QuestionType = "fill-blank"
	QuestionShortAnswer    QuestionType = "short-answer"
	QuestionEssay          QuestionType = "essay"
)

// shortAnswerMatchRatio is the fraction of expected keywords a short answer
// must contain to count as correct. A tunable heuristic, not a validated
// pedagogical threshold.
const shortAnswerMatchRatio = 0.7

// Question is a persisted, gradable quiz question.
type Question struct {
	Type          QuestionType `json:"type"`
	Question      string       `json:"question"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correctAnswer"`
	Points        int          `json:"points"`
}

// Check grades a user answer. gradable is false for essay questions, which
// require manual review.
func (q *Question) Check(userAnswer string) (correct bool, gradable bool) {
	switch q.Type {
	case QuestionMultipleChoice, QuestionTrueFalse:
		return userAnswer == q.CorrectAnswer, true
	case QuestionFillBlank:
		return strings.EqualFold(strings.TrimSpace(userAnswer), strings.TrimSpace(q.CorrectAnswer)), true
	case QuestionShortAnswer:
		userWords := strings.Fields(strings.ToLower(userAnswer))
		correctWords := strings.Fields(strings.ToLower(q.CorrectAnswer))
		if len(correctWords) == 0 {
			return false, true
		}
		expected := make(map[string]bool, len(correctWords))
		for _, w := range correctWords {
			expected[w] = true
		}
		matches := 0
		for _, w := range userWords {
			if expected[w] {
				matches++
			}
		}
		need := int(math.Ceil(float64(len(correctWords)) * shortAnswerMatchRatio))
		return matches >= need, true
	case QuestionEssay:
		return false, false
	default:
		return false, true
	}
}

// GradedAnswer records how one submitted answer was scored.
type GradedAnswer struct {
	QuestionIndex int    `json:"questionIndex"`
	Answer        string `json:"answer"`
	IsCorrect     bool   `json:"isCorrect"`
	PointsEarned  int    `json:"pointsEarned"`
}

// QuizGrade is the aggregate result of grading a quiz attempt.
type QuizGrade struct {
	EarnedPoints int            `json:"earnedPoints"`
	TotalPoints  int            `json:"totalPoints"`
	Percentage   int            `json:"percentage"`
	Passed       bool           `json:"passed"`
	Answers      []GradedAnswer `json:"answers"`
}

// GradeQuiz scores a full attempt. Questions with zero points count as one
// point. Ungradable questions earn nothing.
func GradeQuiz(questions []Question, answers []string, passingScore int) *QuizGrade {
	grade := &QuizGrade{Answers: make([]GradedAnswer, 0, len(questions))}
	for i, q := range questions {
		points := q.Points
		if points <= 0 {
			points = 1
		}
		grade.TotalPoints += points

		var userAnswer string
		if i < len(answers) {
			userAnswer = answers[i]
		}
		correct, gradable := q.Check(userAnswer)
		earned := 0
		if gradable && correct {
			earned = points
		}
		grade.EarnedPoints += earned
		grade.Answers = append(grade.Answers, GradedAnswer{
			QuestionIndex: i,
			Answer:        userAnswer,
			IsCorrect:     correct,
			PointsEarned:  earned,
		})
	}
	if grade.TotalPoints > 0 {
		grade.Percentage = int(math.Round(float64(grade.EarnedPoints) / float64(grade.TotalPoints) * 100))
	}
	grade.Passed = grade.Percentage >= passingScore
	return grade
}
