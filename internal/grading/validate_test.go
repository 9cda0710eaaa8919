package grading_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"learnhub_backend/internal/grading"
	"learnhub_backend/internal/model"
)

func TestValidateQuestion(t *testing.T) {
	tests := map[string]struct {
		question model.Question
		wantErr  string
	}{
		"valid multiple-choice": {
			question: model.Question{
				Text:         "q",
				Kind:         model.KindMultipleChoice,
				Options:      model.StringList{"a", "b", "c", "d"},
				CorrectIndex: intp(2),
				Points:       1,
			},
		},
		"valid true-false": {
			question: model.Question{
				Text:         "q",
				Kind:         model.KindTrueFalse,
				Options:      model.StringList{"True", "False"},
				CorrectIndex: intp(0),
				Points:       2,
			},
		},
		"valid short-answer": {
			question: model.Question{
				Text:        "q",
				Kind:        model.KindShortAnswer,
				CorrectText: "Paris",
				Points:      1,
			},
		},
		"blank text": {
			question: model.Question{
				Text:        "   ",
				Kind:        model.KindShortAnswer,
				CorrectText: "x",
				Points:      1,
			},
			wantErr: "text",
		},
		"unknown kind": {
			question: model.Question{Text: "q", Kind: "essay", Points: 1},
			wantErr:  "kind",
		},
		"multiple-choice with too few options": {
			question: model.Question{
				Text:         "q",
				Kind:         model.KindMultipleChoice,
				Options:      model.StringList{"a", "b", "c"},
				CorrectIndex: intp(0),
				Points:       1,
			},
			wantErr: "options",
		},
		"blank options do not count": {
			question: model.Question{
				Text:         "q",
				Kind:         model.KindMultipleChoice,
				Options:      model.StringList{"a", "b", "c", "  "},
				CorrectIndex: intp(0),
				Points:       1,
			},
			wantErr: "options",
		},
		"true-false with one option": {
			question: model.Question{
				Text:         "q",
				Kind:         model.KindTrueFalse,
				Options:      model.StringList{"True"},
				CorrectIndex: intp(0),
				Points:       1,
			},
			wantErr: "options",
		},
		"missing correct index": {
			question: model.Question{
				Text:    "q",
				Kind:    model.KindTrueFalse,
				Options: model.StringList{"True", "False"},
				Points:  1,
			},
			wantErr: "correctIndex",
		},
		"correct index out of bounds": {
			question: model.Question{
				Text:         "q",
				Kind:         model.KindMultipleChoice,
				Options:      model.StringList{"a", "b", "c", "d"},
				CorrectIndex: intp(4),
				Points:       1,
			},
			wantErr: "correctIndex",
		},
		"short-answer without answer": {
			question: model.Question{
				Text:   "q",
				Kind:   model.KindShortAnswer,
				Points: 1,
			},
			wantErr: "correctText",
		},
		"zero points": {
			question: model.Question{
				Text:        "q",
				Kind:        model.KindShortAnswer,
				CorrectText: "x",
				Points:      0,
			},
			wantErr: "points",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			err := grading.ValidateQuestion(&tc.question)
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *grading.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Equal(t, tc.wantErr, verr.Field)
		})
	}
}

func TestValidateQuiz(t *testing.T) {
	valid := func() *model.Quiz {
		return &model.Quiz{
			Title:           "Basics",
			PassingScore:    60,
			DurationMinutes: 30,
			Questions: []model.Question{
				{
					Text:         "q1",
					Kind:         model.KindTrueFalse,
					Options:      model.StringList{"True", "False"},
					CorrectIndex: intp(1),
					Points:       1,
				},
			},
		}
	}

	require.NoError(t, grading.ValidateQuiz(valid()))

	q := valid()
	q.Title = " "
	require.Error(t, grading.ValidateQuiz(q))

	q = valid()
	q.PassingScore = 101
	require.Error(t, grading.ValidateQuiz(q))

	q = valid()
	q.DurationMinutes = 0
	require.Error(t, grading.ValidateQuiz(q))

	q = valid()
	q.Questions[0].Points = -1
	err := grading.ValidateQuiz(q)
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "question 1:"))
}
