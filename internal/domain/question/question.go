package question

import (
	"errors"
	"fmt"
	"time"

	"github.com/jobprep-bd/backend/internal/id"
)

// Category is the top-level exam track. The set is closed: questions outside
// of it are rejected at creation time.
type Category string

const (
	CategoryBCS     Category = "BCS"
	CategoryBank    Category = "BANK"
	CategoryPrimary Category = "PRIMARY"
	CategoryOther   Category = "OTHER"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryBCS, CategoryBank, CategoryPrimary, CategoryOther}

func (c Category) Valid() bool {
	switch c {
	case CategoryBCS, CategoryBank, CategoryPrimary, CategoryOther:
		return true
	}
	return false
}

// Question is one exam question. Records are never mutated in place —
// corrections are delete plus recreate. The JSON field names are the persisted
// storage contract and must not change.
type Question struct {
	ID                 string   `json:"id"`
	QuestionText       string   `json:"questionText"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation"`
	Category           Category `json:"category"`
	SubCategory        string   `json:"subCategory"`
	Year               string   `json:"year"`
	CreatedAt          int64    `json:"createdAt"` // unix milliseconds
}

// Draft carries the author-supplied fields of a new question; id and
// createdAt are assigned on creation.
type Draft struct {
	QuestionText       string
	Options            []string
	CorrectAnswerIndex int
	Explanation        string
	Category           Category
	SubCategory        string
	Year               string
}

var (
	ErrEmptyText        = errors.New("question text cannot be empty")
	ErrTooFewOptions    = errors.New("question needs at least two options")
	ErrAnswerOutOfRange = errors.New("correct answer index out of range")
)

// New builds a Question from a draft, assigning a fresh id and the current
// timestamp.
func New(d Draft) (Question, error) {
	q := Question{
		ID:                 id.New(),
		QuestionText:       d.QuestionText,
		Options:            d.Options,
		CorrectAnswerIndex: d.CorrectAnswerIndex,
		Explanation:        d.Explanation,
		Category:           d.Category,
		SubCategory:        d.SubCategory,
		Year:               d.Year,
		CreatedAt:          time.Now().UnixMilli(),
	}
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// Validate checks the structural invariants of a question.
func (q Question) Validate() error {
	if q.QuestionText == "" {
		return ErrEmptyText
	}
	if len(q.Options) < 2 {
		return ErrTooFewOptions
	}
	if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
		return ErrAnswerOutOfRange
	}
	if !q.Category.Valid() {
		return fmt.Errorf("unknown category %q", q.Category)
	}
	return nil
}
