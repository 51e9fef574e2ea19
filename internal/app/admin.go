package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jobprep-bd/backend/internal/domain/question"
)

// The admin editor: create/delete over the question bank and the subcategory
// map. There is no update-in-place — corrections are delete plus recreate.

var ErrEmptySubCategory = errors.New("subcategory name cannot be empty")

// AddQuestion assigns a fresh id and timestamp and prepends the question, so
// the bank stays newest-first.
func (s *State) AddQuestion(ctx context.Context, d question.Draft) (question.Question, error) {
	q, err := question.New(d)
	if err != nil {
		return question.Question{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.questions = append([]question.Question{q}, s.questions...)
	if err := s.store.SaveQuestions(ctx, s.questions); err != nil {
		return question.Question{}, err
	}
	return q, nil
}

// DeleteQuestion removes the question with the matching id; unknown ids are a
// no-op. Bookmarks referencing the id are deliberately left dangling — the
// bookmark view simply returns fewer results. A cascade here would be a
// behavior change.
func (s *State) DeleteQuestion(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]question.Question, 0, len(s.questions))
	for _, q := range s.questions {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	if len(kept) == len(s.questions) {
		return nil
	}
	s.questions = kept
	return s.store.SaveQuestions(ctx, s.questions)
}

// AddSubCategory appends a subcategory name to a category's list. Adding an
// existing name is a no-op, so the call is idempotent.
func (s *State) AddSubCategory(ctx context.Context, cat question.Category, name string) error {
	if !cat.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}
	if name == "" {
		return ErrEmptySubCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.subCats.Add(cat, name) {
		return nil
	}
	return s.store.SaveSubCategories(ctx, s.subCats)
}

// DeleteSubCategory removes a name from a category's list. Questions already
// tagged with it are not retagged; they become unreachable from the
// subcategory list but stay in the bank.
func (s *State) DeleteSubCategory(ctx context.Context, cat question.Category, name string) error {
	if !cat.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.subCats.Remove(cat, name)
	return s.store.SaveSubCategories(ctx, s.subCats)
}
