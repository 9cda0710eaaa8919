package grading_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"learnhub_backend/internal/grading"
	"learnhub_backend/internal/model"
)

func intp(i int) *int { return &i }

func choiceQuestion(id uint, correct int, points int) model.Question {
	q := model.Question{
		Text:         "pick one",
		Kind:         model.KindMultipleChoice,
		Options:      model.StringList{"a", "b", "c", "d"},
		CorrectIndex: intp(correct),
		Points:       points,
	}
	q.ID = id
	return q
}

func shortAnswerQuestion(id uint, answer string) model.Question {
	q := model.Question{
		Text:        "capital of France",
		Kind:        model.KindShortAnswer,
		CorrectText: answer,
		Points:      1,
	}
	q.ID = id
	return q
}

func makeQuiz(questions ...model.Question) *model.Quiz {
	return &model.Quiz{
		Title:        "test quiz",
		Questions:    questions,
		TotalPoints:  grading.TotalPoints(questions),
		PassingScore: 60,
	}
}

func answers(vals ...interface{}) []json.RawMessage {
	out := make([]json.RawMessage, len(vals))
	for i, v := range vals {
		b, _ := json.Marshal(v)
		out[i] = b
	}
	return out
}

func TestEvaluate_AllCorrect(t *testing.T) {
	quiz := makeQuiz(choiceQuestion(1, 1, 1), choiceQuestion(2, 3, 1))

	res, err := grading.Evaluate(quiz, answers(1, 3))
	require.NoError(t, err)
	require.Equal(t, 2, res.Score)
	require.Equal(t, 100, res.Percentage)
	require.True(t, res.Passed)
}

func TestEvaluate_PartiallyCorrect(t *testing.T) {
	quiz := makeQuiz(choiceQuestion(1, 1, 1), choiceQuestion(2, 3, 1))

	res, err := grading.Evaluate(quiz, answers(1, 0))
	require.NoError(t, err)
	require.Equal(t, 1, res.Score)
	require.Equal(t, 50, res.Percentage)
	require.False(t, res.Passed)
}

func TestEvaluate_SkippedQuestion(t *testing.T) {
	quiz := makeQuiz(choiceQuestion(1, 1, 1), choiceQuestion(2, 3, 1))

	res, err := grading.Evaluate(quiz, answers(1))
	require.NoError(t, err)
	require.Equal(t, 1, res.Score)
	require.Equal(t, 50, res.Percentage)
	require.False(t, res.Passed)

	// The skipped question still appears in the evaluated answers.
	require.Len(t, res.Answers, 2)
	require.False(t, res.Answers[1].IsCorrect)
	require.Zero(t, res.Answers[1].PointsEarned)
}

func TestEvaluate_NullAnswerIsSkipped(t *testing.T) {
	quiz := makeQuiz(choiceQuestion(1, 0, 1))

	res, err := grading.Evaluate(quiz, []json.RawMessage{json.RawMessage("null")})
	require.NoError(t, err)
	require.Zero(t, res.Score)
	require.False(t, res.Answers[0].IsCorrect)
}

func TestEvaluate_ShortAnswerIsCaseSensitive(t *testing.T) {
	quiz := makeQuiz(shortAnswerQuestion(1, "Paris"))

	res, err := grading.Evaluate(quiz, answers("Paris"))
	require.NoError(t, err)
	require.Equal(t, 1, res.Score)
	require.Equal(t, 100, res.Percentage)
	require.True(t, res.Passed)

	res, err = grading.Evaluate(quiz, answers("paris"))
	require.NoError(t, err)
	require.Zero(t, res.Score)
	require.Zero(t, res.Percentage)
	require.False(t, res.Passed)
}

func TestEvaluate_EmptyQuiz(t *testing.T) {
	quiz := makeQuiz()
	require.Zero(t, quiz.TotalPoints)

	res, err := grading.Evaluate(quiz, nil)
	require.NoError(t, err)
	require.Zero(t, res.Percentage)
	require.False(t, res.Passed)
}

func TestEvaluate_OutOfBoundsCorrectIndexFailsClosed(t *testing.T) {
	q := choiceQuestion(1, 9, 1)
	quiz := makeQuiz(q)

	// Even echoing back the stored index scores zero.
	res, err := grading.Evaluate(quiz, answers(9))
	require.NoError(t, err)
	require.Zero(t, res.Score)
	require.False(t, res.Answers[0].IsCorrect)
}

func TestEvaluate_WrongAnswerShapeScoresZero(t *testing.T) {
	quiz := makeQuiz(choiceQuestion(1, 1, 1), shortAnswerQuestion(2, "Paris"))

	// A string where an index is expected, and an index where a string is.
	res, err := grading.Evaluate(quiz, answers("1", 4))
	require.NoError(t, err)
	require.Zero(t, res.Score)
}

func TestEvaluate_TooManyAnswersRejected(t *testing.T) {
	quiz := makeQuiz(choiceQuestion(1, 1, 1))

	_, err := grading.Evaluate(quiz, answers(1, 2))
	require.ErrorIs(t, err, grading.ErrTooManyAnswers)
}

func TestEvaluate_WeightedPointsAndBounds(t *testing.T) {
	quiz := makeQuiz(
		choiceQuestion(1, 0, 3),
		choiceQuestion(2, 1, 2),
		shortAnswerQuestion(3, "go"),
	)
	require.Equal(t, 6, quiz.TotalPoints)

	res, err := grading.Evaluate(quiz, answers(0, 2, "go"))
	require.NoError(t, err)
	require.Equal(t, 4, res.Score)
	require.GreaterOrEqual(t, res.Score, 0)
	require.LessOrEqual(t, res.Score, quiz.TotalPoints)
	require.Equal(t, 67, res.Percentage) // round(4/6*100)
	require.True(t, res.Passed)
}

func TestEvaluate_OrderPreserved(t *testing.T) {
	quiz := makeQuiz(choiceQuestion(11, 0, 1), choiceQuestion(22, 1, 1), choiceQuestion(33, 2, 1))

	res, err := grading.Evaluate(quiz, answers(0))
	require.NoError(t, err)
	require.Len(t, res.Answers, len(quiz.Questions))
	for i, q := range quiz.Questions {
		require.Equal(t, q.ID, res.Answers[i].QuestionID)
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	quiz := makeQuiz(choiceQuestion(1, 1, 2), shortAnswerQuestion(2, "Paris"))
	in := answers(1, "paris")

	first, err := grading.Evaluate(quiz, in)
	require.NoError(t, err)
	second, err := grading.Evaluate(quiz, in)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEvaluate_PassExactlyAtThreshold(t *testing.T) {
	quiz := makeQuiz(choiceQuestion(1, 0, 3), choiceQuestion(2, 0, 2))
	quiz.PassingScore = 60

	res, err := grading.Evaluate(quiz, answers(0, 1))
	require.NoError(t, err)
	require.Equal(t, 60, res.Percentage)
	require.True(t, res.Passed)
}

func TestTotalPoints(t *testing.T) {
	qs := []model.Question{
		{Points: 3},
		{Points: 0}, // unset points count as 1
		{Points: 1},
	}
	require.Equal(t, 5, grading.TotalPoints(qs))
	require.Zero(t, grading.TotalPoints(nil))
}
