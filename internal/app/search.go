package app

import (
	"slices"
	"strings"

	"github.com/jobprep-bd/backend/internal/domain/question"
)

// maxSearchResults caps the dropdown shown while typing.
const maxSearchResults = 10

// Search returns up to maxSearchResults questions whose text or subcategory
// contains the query, case-insensitively. An empty or blank query matches
// nothing. Purely derived — no state changes.
func (s *State) Search(query string) []question.Question {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var results []question.Question
	for _, q := range s.questions {
		if strings.Contains(strings.ToLower(q.QuestionText), query) ||
			strings.Contains(strings.ToLower(q.SubCategory), query) {
			results = append(results, q)
			if len(results) == maxSearchResults {
				break
			}
		}
	}
	return results
}

// OpenSearchResult shows a single question from the search dropdown on the
// year-list screen, mirroring how the original presents a picked result.
func (s *State) OpenSearchResult(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, q := range s.questions {
		if q.ID == id {
			s.active = []question.Question{q}
			s.view = ViewYearList
			return nil
		}
	}
	return ErrQuestionNotFound
}

// Years lists the distinct year labels present in the bank, newest label
// first. Labels are strings, so the order is lexicographic descending.
func (s *State) Years() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	var years []string
	for _, q := range s.questions {
		if !seen[q.Year] {
			seen[q.Year] = true
			years = append(years, q.Year)
		}
	}
	slices.SortFunc(years, func(a, b string) int {
		return strings.Compare(b, a)
	})
	return years
}
