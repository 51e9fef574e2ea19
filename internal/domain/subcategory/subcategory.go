package subcategory

import (
	"slices"

	"github.com/jobprep-bd/backend/internal/domain/question"
)

// Map holds the ordered subcategory names of every category. Insertion order
// is display order. Every category key is always present, even when its list
// is empty.
type Map map[question.Category][]string

// Normalize fills in missing category keys with empty lists. Called after
// loading from storage so consumers never have to nil-check a category.
func (m Map) Normalize() {
	for _, cat := range question.Categories {
		if _, ok := m[cat]; !ok {
			m[cat] = []string{}
		}
	}
}

// Add appends name to the category's list. Duplicates are a no-op; the
// returned bool reports whether the map changed.
func (m Map) Add(cat question.Category, name string) bool {
	if slices.Contains(m[cat], name) {
		return false
	}
	m[cat] = append(slices.Clone(m[cat]), name)
	return true
}

// Remove filters out every entry exactly matching name. Questions already
// tagged with the removed subcategory are not touched — they stay retrievable
// by category+subcategory filter but drop off the subcategory list.
func (m Map) Remove(cat question.Category, name string) {
	kept := make([]string, 0, len(m[cat]))
	for _, s := range m[cat] {
		if s != name {
			kept = append(kept, s)
		}
	}
	m[cat] = kept
}

// Clone returns a deep copy, used when handing state out to the presentation
// layer.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for cat, subs := range m {
		out[cat] = slices.Clone(subs)
	}
	return out
}
