package subcategory_test

import (
	"slices"
	"testing"

	"github.com/jobprep-bd/backend/internal/domain/question"
	"github.com/jobprep-bd/backend/internal/domain/subcategory"
)

func TestAdd(t *testing.T) {
	m := subcategory.Map{question.CategoryBCS: {"বাংলা"}}

	if !m.Add(question.CategoryBCS, "ইংরেজি") {
		t.Error("expected Add to report a change")
	}

	want := []string{"বাংলা", "ইংরেজি"}
	if !slices.Equal(m[question.CategoryBCS], want) {
		t.Errorf("expected %v, got %v", want, m[question.CategoryBCS])
	}
}

func TestAdd_DuplicateIsNoOp(t *testing.T) {
	m := subcategory.Map{question.CategoryBCS: {"বাংলা"}}

	if m.Add(question.CategoryBCS, "বাংলা") {
		t.Error("expected duplicate Add to be a no-op")
	}

	count := 0
	for _, s := range m[question.CategoryBCS] {
		if s == "বাংলা" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected name to appear exactly once, got %d", count)
	}
}

func TestRemove(t *testing.T) {
	m := subcategory.Map{question.CategoryBank: {"English", "Computing", "English"}}

	m.Remove(question.CategoryBank, "English")

	want := []string{"Computing"}
	if !slices.Equal(m[question.CategoryBank], want) {
		t.Errorf("expected %v, got %v", want, m[question.CategoryBank])
	}
}

func TestRemove_MissingIsNoOp(t *testing.T) {
	m := subcategory.Map{question.CategoryBank: {"English"}}

	m.Remove(question.CategoryBank, "Mathematics")

	if len(m[question.CategoryBank]) != 1 {
		t.Errorf("expected list unchanged, got %v", m[question.CategoryBank])
	}
}

func TestNormalize(t *testing.T) {
	m := subcategory.Map{question.CategoryBCS: {"বাংলা"}}

	m.Normalize()

	for _, cat := range question.Categories {
		if _, ok := m[cat]; !ok {
			t.Errorf("expected key %q after Normalize", cat)
		}
	}
	if len(m[question.CategoryOther]) != 0 {
		t.Errorf("expected empty list for missing category, got %v", m[question.CategoryOther])
	}
}

func TestClone_Independent(t *testing.T) {
	m := subcategory.Map{question.CategoryBCS: {"বাংলা"}}

	clone := m.Clone()
	clone.Add(question.CategoryBCS, "গণিত")

	if len(m[question.CategoryBCS]) != 1 {
		t.Errorf("expected original untouched, got %v", m[question.CategoryBCS])
	}
}
