package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobprep-bd/backend/internal/app"
	"github.com/jobprep-bd/backend/internal/domain/question"
)

func validDraft() question.Draft {
	return question.Draft{
		QuestionText:       "বাংলাদেশের জাতীয় ফুল কোনটি?",
		Options:            []string{"গোলাপ", "শাপলা", "জবা", "বেলী"},
		CorrectAnswerIndex: 1,
		Category:           question.CategoryBCS,
		SubCategory:        "সাধারণ জ্ঞান",
		Year:               "2024",
	}
}

func TestAddQuestion_PrependsNewestFirst(t *testing.T) {
	s, st := newState(t, nil)
	ctx := context.Background()

	q, err := s.AddQuestion(ctx, validDraft())
	require.NoError(t, err)
	assert.NotEmpty(t, q.ID)
	assert.NotZero(t, q.CreatedAt)

	bank := s.Questions()
	require.Len(t, bank, 4)
	assert.Equal(t, q.ID, bank[0].ID, "new question must come first")

	// Written through immediately.
	stored, err := st.LoadQuestions(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 4)
}

func TestAddQuestion_Validation(t *testing.T) {
	s, _ := newState(t, nil)

	d := validDraft()
	d.CorrectAnswerIndex = 7
	_, err := s.AddQuestion(context.Background(), d)
	assert.ErrorIs(t, err, question.ErrAnswerOutOfRange)
	assert.Len(t, s.Questions(), 3, "failed add must not touch the bank")
}

func TestAddThenDeleteQuestion_NetNoOp(t *testing.T) {
	s, _ := newState(t, nil)
	ctx := context.Background()

	q, err := s.AddQuestion(ctx, validDraft())
	require.NoError(t, err)
	require.NoError(t, s.DeleteQuestion(ctx, q.ID))

	bank := s.Questions()
	assert.Len(t, bank, 3)
	for _, got := range bank {
		assert.NotEqual(t, q.ID, got.ID)
	}
}

func TestDeleteQuestion_UnknownIDNoOp(t *testing.T) {
	s, _ := newState(t, nil)

	require.NoError(t, s.DeleteQuestion(context.Background(), "missing"))
	assert.Len(t, s.Questions(), 3)
}

func TestDeleteQuestion_LeavesBookmarkDangling(t *testing.T) {
	s, _ := newState(t, []question.Question{
		mkQuestion("q1", question.CategoryBCS, "বাংলা", "2023"),
	})
	ctx := context.Background()

	_, err := s.ToggleBookmark(ctx, "q1")
	require.NoError(t, err)
	require.NoError(t, s.DeleteQuestion(ctx, "q1"))

	// The bookmark id survives; the view just resolves to nothing.
	assert.True(t, s.Profile().IsBookmarked("q1"))
	s.ShowBookmarks()
	assert.Empty(t, s.Snapshot().Active)
}

func TestAddSubCategory(t *testing.T) {
	s, st := newState(t, nil)
	ctx := context.Background()

	require.NoError(t, s.AddSubCategory(ctx, question.CategoryBank, "Data Interpretation"))
	require.NoError(t, s.AddSubCategory(ctx, question.CategoryBank, "Data Interpretation"))

	count := 0
	for _, name := range s.SubCategories()[question.CategoryBank] {
		if name == "Data Interpretation" {
			count++
		}
	}
	assert.Equal(t, 1, count, "duplicate add must be idempotent")

	stored, err := st.LoadSubCategories(ctx)
	require.NoError(t, err)
	assert.Contains(t, stored[question.CategoryBank], "Data Interpretation")
}

func TestAddSubCategory_Invalid(t *testing.T) {
	s, _ := newState(t, nil)
	ctx := context.Background()

	assert.ErrorIs(t, s.AddSubCategory(ctx, "SSC", "বাংলা"), app.ErrUnknownCategory)
	assert.ErrorIs(t, s.AddSubCategory(ctx, question.CategoryBCS, ""), app.ErrEmptySubCategory)
}

func TestDeleteSubCategory_OrphansQuestions(t *testing.T) {
	s, _ := newState(t, []question.Question{
		mkQuestion("q1", question.CategoryBCS, "বাংলা", "2023"),
	})
	ctx := context.Background()

	require.NoError(t, s.DeleteSubCategory(ctx, question.CategoryBCS, "বাংলা"))

	assert.NotContains(t, s.SubCategories()[question.CategoryBCS], "বাংলা")
	// Tagged questions stay in the bank untouched.
	require.Len(t, s.Questions(), 1)
	assert.Equal(t, "বাংলা", s.Questions()[0].SubCategory)
}

func TestAddQuestion_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	s1, err := app.New(ctx, st, testLogger())
	require.NoError(t, err)
	q, err := s1.AddQuestion(ctx, validDraft())
	require.NoError(t, err)

	s2, err := app.New(ctx, st, testLogger())
	require.NoError(t, err)
	bank := s2.Questions()
	require.Len(t, bank, 4)
	assert.Equal(t, q.ID, bank[0].ID)
}
