package api

import (
	"errors"
	"net/http"

	"github.com/jobprep-bd/backend/internal/app"
	"github.com/jobprep-bd/backend/internal/domain/profile"
	"github.com/jobprep-bd/backend/internal/domain/question"
	"github.com/jobprep-bd/backend/internal/domain/subcategory"
)

// ── Request / Response types ────────────────────────────────────────────────

// StateResponse is everything the rendering layer consumes: the current view,
// selection state, the active question list and the running quiz counters.
type StateResponse struct {
	View                string              `json:"view" example:"QUIZ"`
	SelectedCategory    string              `json:"selected_category,omitempty" example:"BCS"`
	SelectedSubCategory string              `json:"selected_sub_category,omitempty" example:"ইংরেজি"`
	SelectedYear        string              `json:"selected_year,omitempty" example:"2023"`
	ActiveQuestions     []question.Question `json:"active_questions"`
	CurrentIdx          int                 `json:"current_idx" example:"0"`
	UserScore           int                 `json:"user_score" example:"0"`
	QuizFinished        bool                `json:"quiz_finished" example:"false"`
	User                *profile.Profile    `json:"user"`
	SubCategories       subcategory.Map     `json:"sub_categories"`
}

func stateResponse(snap app.Snapshot) StateResponse {
	active := snap.Active
	if active == nil {
		active = []question.Question{}
	}
	return StateResponse{
		View:                string(snap.View),
		SelectedCategory:    string(snap.SelectedCategory),
		SelectedSubCategory: snap.SelectedSubCategory,
		SelectedYear:        snap.SelectedYear,
		ActiveQuestions:     active,
		CurrentIdx:          snap.CurrentIdx,
		UserScore:           snap.Score,
		QuizFinished:        snap.Finished,
		User:                snap.User,
		SubCategories:       snap.SubCategories,
	}
}

type StartQuizRequest struct {
	SubCategory string `json:"sub_category" example:"ইংরেজি"`
}

func (r *StartQuizRequest) Validate() error {
	if r.SubCategory == "" {
		return errors.New("sub_category is required")
	}
	return nil
}

type SubmitAnswerRequest struct {
	Correct bool `json:"correct"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getState returns the full rendering state.
// @Summary      Current application state
// @Tags         State
// @Produce      json
// @Success      200  {object}  StateResponse
// @Router       /state [get]
func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, stateResponse(h.state.Snapshot()))
}

// POST /navigate/home
func (h *Handler) goHome(w http.ResponseWriter, r *http.Request) {
	h.state.GoHome()
	respondJSON(w, http.StatusOK, stateResponse(h.state.Snapshot()))
}

// POST /navigate/admin
func (h *Handler) openAdmin(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w) {
		return
	}
	h.state.OpenAdmin()
	respondJSON(w, http.StatusOK, stateResponse(h.state.Snapshot()))
}

// selectCategory picks an exam track and moves to its subcategory list.
// @Summary      Select a category
// @Tags         Session
// @Produce      json
// @Param        category  path  string  true  "category id (BCS, BANK, PRIMARY, OTHER)"
// @Success      200  {object}  StateResponse
// @Failure      400  {object}  map[string]string
// @Router       /categories/{category}/select [post]
func (h *Handler) selectCategory(w http.ResponseWriter, r *http.Request) {
	cat := question.Category(r.PathValue("category"))
	if h.handleAppError(w, h.state.SelectCategory(cat)) {
		return
	}
	respondJSON(w, http.StatusOK, stateResponse(h.state.Snapshot()))
}

// startQuiz shuffles the matching questions and starts a scored run.
// @Summary      Start a quiz
// @Description  Filters the bank by the selected category and given subcategory, shuffles, and resets index and score. With no matching questions the screen stays put and an advisory is returned.
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      StartQuizRequest  true  "subcategory to quiz on"
// @Success      200   {object}  StateResponse
// @Failure      409   {object}  map[string]string  "no questions in this subcategory"
// @Router       /quiz/start [post]
func (h *Handler) startQuiz(w http.ResponseWriter, r *http.Request) {
	var req StartQuizRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if h.handleAppError(w, h.state.StartQuiz(req.SubCategory)) {
		return
	}
	respondJSON(w, http.StatusOK, stateResponse(h.state.Snapshot()))
}

// submitAnswer reports the current question's result and advances. Reaching
// the last question does not finish the quiz; completion is explicit.
// @Summary      Answer the current question
// @Tags         Session
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitAnswerRequest  true  "whether the picked option was correct"
// @Success      200   {object}  StateResponse
// @Router       /quiz/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.state.Advance(req.Correct)
	respondJSON(w, http.StatusOK, stateResponse(h.state.Snapshot()))
}

// completeQuiz marks the run finished and records the QUIZ activity entry.
// @Summary      Finish the quiz
// @Tags         Session
// @Produce      json
// @Success      200  {object}  StateResponse
// @Router       /quiz/complete [post]
func (h *Handler) completeQuiz(w http.ResponseWriter, r *http.Request) {
	if h.handleAppError(w, h.state.Finish(r.Context())) {
		return
	}
	respondJSON(w, http.StatusOK, stateResponse(h.state.Snapshot()))
}

type YearsResponse struct {
	Years []string `json:"years"`
}

// GET /years
func (h *Handler) listYears(w http.ResponseWriter, r *http.Request) {
	years := h.state.Years()
	if years == nil {
		years = []string{}
	}
	respondJSON(w, http.StatusOK, YearsResponse{Years: years})
}

// studyYear opens the year-wise question list and logs a STUDY activity.
// @Summary      Study a year's questions
// @Tags         Session
// @Produce      json
// @Param        year  path  string  true  "year label"
// @Success      200  {object}  StateResponse
// @Router       /years/{year}/study [post]
func (h *Handler) studyYear(w http.ResponseWriter, r *http.Request) {
	if h.handleAppError(w, h.state.ShowYearlyQuestions(r.Context(), r.PathValue("year"))) {
		return
	}
	respondJSON(w, http.StatusOK, stateResponse(h.state.Snapshot()))
}

// GET /bookmarks
func (h *Handler) showBookmarks(w http.ResponseWriter, r *http.Request) {
	h.state.ShowBookmarks()
	respondJSON(w, http.StatusOK, stateResponse(h.state.Snapshot()))
}

type ToggleBookmarkResponse struct {
	QuestionID string `json:"question_id"`
	Bookmarked bool   `json:"bookmarked"`
}

// toggleBookmark flips bookmark membership for one question.
// @Summary      Toggle a bookmark
// @Tags         Session
// @Produce      json
// @Param        questionID  path  string  true  "question id"
// @Success      200  {object}  ToggleBookmarkResponse
// @Router       /bookmarks/{questionID}/toggle [post]
func (h *Handler) toggleBookmark(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("questionID")
	bookmarked, err := h.state.ToggleBookmark(r.Context(), id)
	if h.handleAppError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, ToggleBookmarkResponse{
		QuestionID: id,
		Bookmarked: bookmarked,
	})
}

type SearchResponse struct {
	Results []question.Question `json:"results"`
}

// search runs the live dropdown search: case-insensitive substring over
// question text and subcategory, capped at 10 results.
// @Summary      Search questions
// @Tags         Session
// @Produce      json
// @Param        q  query  string  true  "search text"
// @Success      200  {object}  SearchResponse
// @Router       /search [get]
func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	results := h.state.Search(r.URL.Query().Get("q"))
	if results == nil {
		results = []question.Question{}
	}
	respondJSON(w, http.StatusOK, SearchResponse{Results: results})
}

// POST /search/{questionID}/open
func (h *Handler) openSearchResult(w http.ResponseWriter, r *http.Request) {
	if h.handleAppError(w, h.state.OpenSearchResult(r.PathValue("questionID"))) {
		return
	}
	respondJSON(w, http.StatusOK, stateResponse(h.state.Snapshot()))
}
