package api

import (
	"net/http"
	"time"

	"github.com/jobprep-bd/backend/internal/domain/question"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExportQuestion struct {
	QuestionText       string   `json:"question_text"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correct_answer_index"`
	Explanation        string   `json:"explanation"`
	Category           string   `json:"category"`
	SubCategory        string   `json:"sub_category"`
	Year               string   `json:"year"`
}

type ExportData struct {
	Version       string              `json:"version"`
	ExportedAt    string              `json:"exported_at"`
	SubCategories map[string][]string `json:"sub_categories"`
	Questions     []ExportQuestion    `json:"questions"`
}

type ImportResult struct {
	QuestionsCreated     int `json:"questions_created"`
	QuestionsSkipped     int `json:"questions_skipped"`
	SubCategoriesCreated int `json:"sub_categories_created"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /export
func (h *Handler) exportAll(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w) {
		return
	}

	questions := h.state.Questions()
	exportData := ExportData{
		Version:       "1.0",
		ExportedAt:    time.Now().UTC().Format(time.RFC3339),
		SubCategories: toStringKeys(h.state.SubCategories()),
		Questions:     make([]ExportQuestion, len(questions)),
	}
	for i, q := range questions {
		exportData.Questions[i] = ExportQuestion{
			QuestionText:       q.QuestionText,
			Options:            q.Options,
			CorrectAnswerIndex: q.CorrectAnswerIndex,
			Explanation:        q.Explanation,
			Category:           string(q.Category),
			SubCategory:        q.SubCategory,
			Year:               q.Year,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=jobprep-export.json")
	respondJSON(w, http.StatusOK, exportData)
}

// POST /import
func (h *Handler) importAll(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w) {
		return
	}
	ctx := r.Context()

	var importData ExportData
	if !decodeJSON(w, r, &importData) {
		return
	}

	result := ImportResult{}

	for cat, subs := range importData.SubCategories {
		for _, name := range subs {
			err := h.state.AddSubCategory(ctx, question.Category(cat), name)
			if err != nil {
				h.logger.Error("failed to import subcategory", "category", cat, "name", name, "error", err)
				continue
			}
			result.SubCategoriesCreated++
		}
	}

	// Imported questions run through the normal admin path and get fresh ids.
	for _, q := range importData.Questions {
		_, err := h.state.AddQuestion(ctx, question.Draft{
			QuestionText:       q.QuestionText,
			Options:            q.Options,
			CorrectAnswerIndex: q.CorrectAnswerIndex,
			Explanation:        q.Explanation,
			Category:           question.Category(q.Category),
			SubCategory:        q.SubCategory,
			Year:               q.Year,
		})
		if err != nil {
			h.logger.Error("failed to import question", "error", err)
			result.QuestionsSkipped++
			continue
		}
		result.QuestionsCreated++
	}

	respondJSON(w, http.StatusCreated, result)
}
