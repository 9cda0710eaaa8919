package service

import (
	"testing"

	"learnhub_backend/internal/model"

	"github.com/stretchr/testify/require"
)

func TestBuildQuestionsDefaultsPoints(t *testing.T) {
	idx := 1
	questions := buildQuestions([]QuestionRequest{
		{Text: "a", Kind: "multiple-choice", Options: []string{"w", "x", "y", "z"}, CorrectIndex: &idx},
		{Text: "b", Kind: "short-answer", CorrectText: "go", Points: 3},
	})

	require.Len(t, questions, 2)
	require.Equal(t, 1, questions[0].Points)
	require.Equal(t, 3, questions[1].Points)
	require.Equal(t, 0, questions[0].Position)
	require.Equal(t, 1, questions[1].Position)
}

func TestStudentQuizHidesAnswers(t *testing.T) {
	idx := 2
	quiz := &model.Quiz{
		Title:        "Basics",
		TotalPoints:  3,
		PassingScore: 60,
		Questions: []model.Question{
			{
				Text:         "pick one",
				Kind:         model.KindMultipleChoice,
				Options:      model.StringList{"a", "b", "c", "d"},
				CorrectIndex: &idx,
				Points:       2,
			},
			{
				Text:        "type it",
				Kind:        model.KindShortAnswer,
				CorrectText: "secret",
				Points:      1,
			},
		},
	}

	view := toStudentQuiz(quiz)
	require.Len(t, view.Questions, 2)
	require.Equal(t, quiz.TotalPoints, view.TotalPoints)

	// Option text and points survive; nothing in the view carries the
	// correct answer.
	require.Equal(t, []string{"a", "b", "c", "d"}, view.Questions[0].Options)
	require.Equal(t, 2, view.Questions[0].Points)
	require.Empty(t, view.Questions[1].Options)
}
