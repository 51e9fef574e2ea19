package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobprep-bd/backend/internal/domain/profile"
	"github.com/jobprep-bd/backend/internal/domain/question"
	"github.com/jobprep-bd/backend/internal/domain/subcategory"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoad_AbsentNamespace(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.LoadQuestions(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.LoadSubCategories(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.LoadProfile(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuestions_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	questions := []question.Question{
		{
			ID:                 "q1",
			QuestionText:       "Which one is the correct spelling?",
			Options:            []string{"Lietenant", "Lieutenant"},
			CorrectAnswerIndex: 1,
			Category:           question.CategoryBCS,
			SubCategory:        "ইংরেজি",
			Year:               "2022",
			CreatedAt:          1700000000000,
		},
	}

	require.NoError(t, s.SaveQuestions(ctx, questions))

	loaded, err := s.LoadQuestions(ctx)
	require.NoError(t, err)
	assert.Equal(t, questions, loaded)
}

func TestSave_OverwritesWholeNamespace(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := []question.Question{{ID: "q1", QuestionText: "one", Options: []string{"a", "b"}, Category: question.CategoryBCS}}
	second := []question.Question{{ID: "q2", QuestionText: "two", Options: []string{"a", "b"}, Category: question.CategoryBank}}

	require.NoError(t, s.SaveQuestions(ctx, first))
	require.NoError(t, s.SaveQuestions(ctx, second))

	loaded, err := s.LoadQuestions(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "q2", loaded[0].ID)
}

func TestSubCategories_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	m := subcategory.Map{
		question.CategoryBCS:  {"বাংলা", "ইংরেজি"},
		question.CategoryBank: {"English"},
	}

	require.NoError(t, s.SaveSubCategories(ctx, m))

	loaded, err := s.LoadSubCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, m, loaded)
}

func TestProfile_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	score, total := 2, 2
	p := &profile.Profile{
		UID:         "guest",
		Email:       "guest@jobprep.bd",
		DisplayName: "পরীক্ষার্থী (অতিথি)",
		Bookmarks:   []string{"q1"},
		Activity: []profile.Activity{
			{Type: profile.ActivityQuiz, Label: "ইংরেজি কুইজ", Timestamp: 1700000000000, Score: &score, Total: &total},
		},
	}

	require.NoError(t, s.SaveProfile(ctx, p))

	loaded, err := s.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}

func TestLoad_MalformedPayload(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.db.Exec(
		"INSERT INTO app_state (namespace, payload, updated_at) VALUES (?, ?, ?)",
		NamespaceQuestions, "{not json", 0,
	)
	require.NoError(t, err)

	_, err = s.LoadQuestions(ctx)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestNamespaces_Independent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveProfile(ctx, profile.Guest()))

	// A written user namespace must not make the others appear.
	_, err := s.LoadQuestions(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.LoadSubCategories(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}
