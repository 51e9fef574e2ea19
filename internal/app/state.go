// Package app owns the whole application state: the question bank, the
// subcategory map, the user profile, and the derived quiz/browse session.
// Every mutation goes through a State method; the presentation layer keeps no
// state of its own beyond ephemeral input.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/jobprep-bd/backend/internal/domain/profile"
	"github.com/jobprep-bd/backend/internal/domain/question"
	"github.com/jobprep-bd/backend/internal/domain/subcategory"
	"github.com/jobprep-bd/backend/internal/seed"
	"github.com/jobprep-bd/backend/internal/store"
)

var (
	// ErrNoQuestions is the advisory returned when a quiz is started on a
	// subcategory with no matching questions. Navigation state is untouched.
	ErrNoQuestions = errors.New("no questions in this subcategory")

	ErrUnknownCategory  = errors.New("unknown category")
	ErrQuestionNotFound = errors.New("question not found")
)

// Store is the persistence the state object depends on. Each Save overwrites
// the whole aggregate of its namespace.
type Store interface {
	LoadQuestions(ctx context.Context) ([]question.Question, error)
	SaveQuestions(ctx context.Context, questions []question.Question) error
	LoadSubCategories(ctx context.Context) (subcategory.Map, error)
	SaveSubCategories(ctx context.Context, m subcategory.Map) error
	LoadProfile(ctx context.Context) (*profile.Profile, error)
	SaveProfile(ctx context.Context, p *profile.Profile) error
}

// State is the single owner of all mutable application state. A mutex keeps
// the one-logical-writer model: every operation runs to completion, including
// its synchronous write-back, before the next one starts.
type State struct {
	mu     sync.Mutex
	store  Store
	logger *slog.Logger

	// The three persisted root aggregates.
	questions []question.Question // newest-first
	subCats   subcategory.Map
	user      *profile.Profile

	// Navigation and quiz session state, derived and ephemeral.
	view                View
	selectedCategory    question.Category
	selectedSubCategory string
	selectedYear        string

	active     []question.Question
	currentIdx int
	score      int
	finished   bool
}

// New loads the three namespaces, falling back to seed data where a namespace
// is absent. A malformed stored value is treated like absence: the default is
// used and a warning logged, rather than failing startup over bad local data.
func New(ctx context.Context, s Store, logger *slog.Logger) (*State, error) {
	st := &State{
		store:  s,
		logger: logger,
		view:   ViewHome,
	}

	questions, err := s.LoadQuestions(ctx)
	switch {
	case err == nil:
		st.questions = questions
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrMalformed):
		st.logFallback(store.NamespaceQuestions, err)
		st.questions = seed.Questions()
		if err := s.SaveQuestions(ctx, st.questions); err != nil {
			return nil, fmt.Errorf("seed questions: %w", err)
		}
	default:
		return nil, fmt.Errorf("load questions: %w", err)
	}

	subCats, err := s.LoadSubCategories(ctx)
	switch {
	case err == nil:
		st.subCats = subCats
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrMalformed):
		st.logFallback(store.NamespaceSubCategories, err)
		st.subCats = seed.SubCategories()
		if err := s.SaveSubCategories(ctx, st.subCats); err != nil {
			return nil, fmt.Errorf("seed subcategories: %w", err)
		}
	default:
		return nil, fmt.Errorf("load subcategories: %w", err)
	}
	// Stored maps may predate a category; every key must exist.
	st.subCats.Normalize()

	user, err := s.LoadProfile(ctx)
	switch {
	case err == nil:
		st.user = user
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrMalformed):
		st.logFallback(store.NamespaceUser, err)
		st.user = seed.Profile()
		if err := s.SaveProfile(ctx, st.user); err != nil {
			return nil, fmt.Errorf("seed profile: %w", err)
		}
	default:
		return nil, fmt.Errorf("load profile: %w", err)
	}

	return st, nil
}

func (s *State) logFallback(namespace string, err error) {
	if errors.Is(err, store.ErrMalformed) {
		s.logger.Warn("stored value unreadable, using default", "namespace", namespace, "error", err)
	}
}

// ── Session controller ──────────────────────────────────────────────────────

// SelectCategory sets the selected category and moves to the subcategory list.
func (s *State) SelectCategory(cat question.Category) error {
	if !cat.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedCategory = cat
	s.view = ViewSubCategoryList
	return nil
}

// StartQuiz filters the bank to the selected category and given subcategory,
// shuffles the result and resets the running session. With zero matches it
// returns ErrNoQuestions and leaves every piece of navigation state as it was.
// Re-entering on the same subcategory reshuffles and restarts from zero.
func (s *State) StartQuiz(subCategory string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var filtered []question.Question
	for _, q := range s.questions {
		if q.Category == s.selectedCategory && q.SubCategory == subCategory {
			filtered = append(filtered, q)
		}
	}
	if len(filtered) == 0 {
		return ErrNoQuestions
	}

	rand.Shuffle(len(filtered), func(i, j int) {
		filtered[i], filtered[j] = filtered[j], filtered[i]
	})

	s.active = filtered
	s.currentIdx = 0
	s.score = 0
	s.finished = false
	s.selectedSubCategory = subCategory
	s.view = ViewQuiz
	return nil
}

// ShowYearlyQuestions filters the bank by year label, preserving bank order,
// and records a STUDY activity entry.
func (s *State) ShowYearlyQuestions(ctx context.Context, year string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var filtered []question.Question
	for _, q := range s.questions {
		if q.Year == year {
			filtered = append(filtered, q)
		}
	}

	s.active = filtered
	s.selectedYear = year
	s.view = ViewYearList

	if s.user == nil {
		return nil
	}
	s.user.Record(profile.Activity{
		Type:      profile.ActivityStudy,
		Label:     fmt.Sprintf("%s সালের প্রশ্ন স্টাডি", year),
		Timestamp: time.Now().UnixMilli(),
	})
	return s.store.SaveProfile(ctx, s.user)
}

// ShowBookmarks filters the bank to the profile's bookmarked ids. No-op when
// there is no active profile.
func (s *State) ShowBookmarks() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}
	var filtered []question.Question
	for _, q := range s.questions {
		if s.user.IsBookmarked(q.ID) {
			filtered = append(filtered, q)
		}
	}
	s.active = filtered
	s.view = ViewBookmarks
}

// ToggleBookmark flips bookmark membership for a question id and reports the
// resulting membership. Two calls in a row restore the original set.
func (s *State) ToggleBookmark(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return false, nil
	}
	bookmarked := s.user.ToggleBookmark(id)
	return bookmarked, s.store.SaveProfile(ctx, s.user)
}

// Advance reports the answer of the current question and moves to the next
// one. Reaching the end of the active list does not finish the quiz; that is
// a distinct explicit signal.
func (s *State) Advance(isCorrect bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if isCorrect {
		s.score++
	}
	s.currentIdx++
}

// Finish marks the quiz finished and records a QUIZ activity entry with the
// final score. Without a selected subcategory nothing is recorded.
func (s *State) Finish(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.finished = true
	if s.user == nil || s.selectedSubCategory == "" {
		return nil
	}
	score, total := s.score, len(s.active)
	s.user.Record(profile.Activity{
		Type:      profile.ActivityQuiz,
		Label:     s.selectedSubCategory + " কুইজ",
		Timestamp: time.Now().UnixMilli(),
		Score:     &score,
		Total:     &total,
	})
	return s.store.SaveProfile(ctx, s.user)
}

// GoHome returns to the dashboard. Selection state is kept, as the original
// navigation does.
func (s *State) GoHome() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = ViewHome
}

// OpenAdmin switches to the admin panel. The isAdmin capability check happens
// at the routing boundary, not here.
func (s *State) OpenAdmin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = ViewAdmin
}

// ── Snapshots ───────────────────────────────────────────────────────────────

// Snapshot is a consistent copy of everything the presentation layer renders.
type Snapshot struct {
	View                View
	SelectedCategory    question.Category
	SelectedSubCategory string
	SelectedYear        string

	Active     []question.Question
	CurrentIdx int
	Score      int
	Finished   bool

	User          *profile.Profile
	SubCategories subcategory.Map
}

// Snapshot returns a deep copy of the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		View:                s.view,
		SelectedCategory:    s.selectedCategory,
		SelectedSubCategory: s.selectedSubCategory,
		SelectedYear:        s.selectedYear,
		Active:              slices.Clone(s.active),
		CurrentIdx:          s.currentIdx,
		Score:               s.score,
		Finished:            s.finished,
		User:                s.user.Clone(),
		SubCategories:       s.subCats.Clone(),
	}
}

// Questions returns the full bank, newest-first.
func (s *State) Questions() []question.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.questions)
}

// Profile returns a copy of the current user profile.
func (s *State) Profile() *profile.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone()
}

// SubCategories returns a copy of the subcategory map.
func (s *State) SubCategories() subcategory.Map {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subCats.Clone()
}
