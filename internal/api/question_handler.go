package api

import (
	"errors"
	"net/http"

	"github.com/jobprep-bd/backend/internal/domain/question"
)

// ── Request / Response types ────────────────────────────────────────────────

type AddQuestionRequest struct {
	QuestionText       string   `json:"question_text"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correct_answer_index"`
	Explanation        string   `json:"explanation"`
	Category           string   `json:"category"`
	SubCategory        string   `json:"sub_category"`
	Year               string   `json:"year"`
}

func (r *AddQuestionRequest) Validate() error {
	if r.QuestionText == "" {
		return errors.New("question_text is required")
	}
	if len(r.Options) < 2 {
		return errors.New("at least two options are required")
	}
	if r.CorrectAnswerIndex < 0 || r.CorrectAnswerIndex >= len(r.Options) {
		return errors.New("correct_answer_index out of range")
	}
	if !question.Category(r.Category).Valid() {
		return errors.New("category must be one of BCS, BANK, PRIMARY, OTHER")
	}
	return nil
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /admin/questions
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w) {
		return
	}
	// Already newest-first: additions prepend.
	respondJSON(w, http.StatusOK, h.state.Questions())
}

// POST /admin/questions
func (h *Handler) addQuestion(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w) {
		return
	}
	var req AddQuestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	q, err := h.state.AddQuestion(r.Context(), question.Draft{
		QuestionText:       req.QuestionText,
		Options:            req.Options,
		CorrectAnswerIndex: req.CorrectAnswerIndex,
		Explanation:        req.Explanation,
		Category:           question.Category(req.Category),
		SubCategory:        req.SubCategory,
		Year:               req.Year,
	})
	if h.handleAppError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, q)
}

// DELETE /admin/questions/{questionID}
func (h *Handler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w) {
		return
	}
	// Deleting an unknown id is a no-op, and bookmarks pointing at the id are
	// left dangling on purpose.
	if h.handleAppError(w, h.state.DeleteQuestion(r.Context(), r.PathValue("questionID"))) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ── Subcategory admin ───────────────────────────────────────────────────────

type AddSubCategoryRequest struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

func (r *AddSubCategoryRequest) Validate() error {
	if !question.Category(r.Category).Valid() {
		return errors.New("category must be one of BCS, BANK, PRIMARY, OTHER")
	}
	if r.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

// POST /admin/subcategories
func (h *Handler) addSubCategory(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w) {
		return
	}
	var req AddSubCategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if h.handleAppError(w, h.state.AddSubCategory(r.Context(), question.Category(req.Category), req.Name)) {
		return
	}
	respondJSON(w, http.StatusCreated, SubCategoriesResponse{
		SubCategories: toStringKeys(h.state.SubCategories()),
	})
}

// DELETE /admin/subcategories/{category}/{name}
func (h *Handler) deleteSubCategory(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w) {
		return
	}
	cat := question.Category(r.PathValue("category"))
	// Questions tagged with the removed name are not retagged; they stay in
	// the bank but drop off the subcategory list.
	if h.handleAppError(w, h.state.DeleteSubCategory(r.Context(), cat, r.PathValue("name"))) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
