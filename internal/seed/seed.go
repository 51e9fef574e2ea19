// Package seed holds the initial content used when a storage namespace has
// never been written.
package seed

import (
	"time"

	"github.com/jobprep-bd/backend/internal/domain/profile"
	"github.com/jobprep-bd/backend/internal/domain/question"
	"github.com/jobprep-bd/backend/internal/domain/subcategory"
)

// CategoryInfo is display metadata for a top-level exam track.
type CategoryInfo struct {
	ID    question.Category `json:"id"`
	Label string            `json:"label"`
}

// Categories returns the fixed category list with their Bengali labels.
func Categories() []CategoryInfo {
	return []CategoryInfo{
		{ID: question.CategoryBCS, Label: "বিসিএস (BCS)"},
		{ID: question.CategoryBank, Label: "ব্যাংক জব (Bank)"},
		{ID: question.CategoryPrimary, Label: "প্রাথমিক শিক্ষক (Primary)"},
		{ID: question.CategoryOther, Label: "অন্যান্য (Other)"},
	}
}

// SubCategories returns the initial subcategory map.
func SubCategories() subcategory.Map {
	return subcategory.Map{
		question.CategoryBCS:     {"বাংলা", "ইংরেজি", "গণিত", "সাধারণ জ্ঞান", "বিজ্ঞান"},
		question.CategoryBank:    {"English", "Mathematics", "General Knowledge", "Computing", "Bengali"},
		question.CategoryPrimary: {"বাংলা", "ইংরেজি", "গণিত", "সাধারণ জ্ঞান"},
		question.CategoryOther:   {"জেনারেল প্রশ্ন", "মডেল টেস্ট"},
	}
}

// Questions returns the example question set shipped with a fresh install.
func Questions() []question.Question {
	now := time.Now().UnixMilli()
	return []question.Question{
		{
			ID:                 "1",
			QuestionText:       "বাংলাদেশের সংবিধান কত তারিখে প্রবর্তিত হয়?",
			Options:            []string{"৪ নভেম্বর ১৯৭২", "১৬ ডিসেম্বর ১৯৭২", "১০ জানুয়ারি ১৯৭২", "২৬ মার্চ ১৯৭২"},
			CorrectAnswerIndex: 1,
			Explanation:        "১৬ ডিসেম্বর ১৯৭২ থেকে বাংলাদেশের সংবিধান কার্যকর বা প্রবর্তিত হয়।",
			Category:           question.CategoryBCS,
			SubCategory:        "সাধারণ জ্ঞান",
			Year:               "2023",
			CreatedAt:          now,
		},
		{
			ID:                 "2",
			QuestionText:       "Which one is the correct spelling?",
			Options:            []string{"Lietenant", "Lieutanent", "Lieutenant", "Lieutenent"},
			CorrectAnswerIndex: 2,
			Explanation:        "The correct spelling is Lieutenant. It means a deputy or substitute.",
			Category:           question.CategoryBCS,
			SubCategory:        "ইংরেজি",
			Year:               "2022",
			CreatedAt:          now,
		},
		{
			ID:                 "3",
			QuestionText:       "The headquarter of ADB is located in-",
			Options:            []string{"Bangkok", "Tokyo", "Manila", "Jakarta"},
			CorrectAnswerIndex: 2,
			Explanation:        "Asian Development Bank (ADB) is headquartered in Manila, Philippines.",
			Category:           question.CategoryBank,
			SubCategory:        "General Knowledge",
			Year:               "2021",
			CreatedAt:          now,
		},
	}
}

// Profile returns the guest profile used when no user namespace exists.
func Profile() *profile.Profile {
	return profile.Guest()
}
