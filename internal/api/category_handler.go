package api

import (
	"net/http"

	"github.com/jobprep-bd/backend/internal/domain/subcategory"
	"github.com/jobprep-bd/backend/internal/seed"
)

// ── Response types ──────────────────────────────────────────────────────────

type CategoryResponse struct {
	ID    string `json:"id" example:"BCS"`
	Label string `json:"label" example:"বিসিএস (BCS)"`
}

type SubCategoriesResponse struct {
	SubCategories map[string][]string `json:"sub_categories"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listCategories returns the fixed exam tracks with display labels.
// @Summary      List categories
// @Tags         Categories
// @Produce      json
// @Success      200  {array}  CategoryResponse
// @Router       /categories [get]
func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	cats := seed.Categories()
	response := make([]CategoryResponse, len(cats))
	for i, c := range cats {
		response[i] = CategoryResponse{
			ID:    string(c.ID),
			Label: c.Label,
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// listSubCategories returns the current subcategory map, in display order.
// @Summary      List subcategories per category
// @Tags         Categories
// @Produce      json
// @Success      200  {object}  SubCategoriesResponse
// @Router       /subcategories [get]
func (h *Handler) listSubCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, SubCategoriesResponse{
		SubCategories: toStringKeys(h.state.SubCategories()),
	})
}

func toStringKeys(m subcategory.Map) map[string][]string {
	out := make(map[string][]string, len(m))
	for cat, subs := range m {
		out[string(cat)] = subs
	}
	return out
}
