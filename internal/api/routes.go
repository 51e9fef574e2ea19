// internal/api/routes.go
package api

import "net/http"

// RegisterRoutes wires every operation of the application state onto the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Navigation and rendering state
	mux.HandleFunc("GET /state", h.getState)
	mux.HandleFunc("POST /navigate/home", h.goHome)
	mux.HandleFunc("POST /navigate/admin", h.openAdmin)

	// Categories and subcategories
	mux.HandleFunc("GET /categories", h.listCategories)
	mux.HandleFunc("POST /categories/{category}/select", h.selectCategory)
	mux.HandleFunc("GET /subcategories", h.listSubCategories)

	// Quiz session
	mux.HandleFunc("POST /quiz/start", h.startQuiz)
	mux.HandleFunc("POST /quiz/answers", h.submitAnswer)
	mux.HandleFunc("POST /quiz/complete", h.completeQuiz)

	// Year-wise study
	mux.HandleFunc("GET /years", h.listYears)
	mux.HandleFunc("POST /years/{year}/study", h.studyYear)

	// Bookmarks
	mux.HandleFunc("GET /bookmarks", h.showBookmarks)
	mux.HandleFunc("POST /bookmarks/{questionID}/toggle", h.toggleBookmark)

	// Search
	mux.HandleFunc("GET /search", h.search)
	mux.HandleFunc("POST /search/{questionID}/open", h.openSearchResult)

	// Profile and mock auth
	mux.HandleFunc("GET /profile", h.getProfile)
	mux.HandleFunc("POST /auth/login", h.login)
	mux.HandleFunc("POST /auth/logout", h.logout)

	// Admin editor
	mux.HandleFunc("GET /admin/questions", h.listQuestions)
	mux.HandleFunc("POST /admin/questions", h.addQuestion)
	mux.HandleFunc("DELETE /admin/questions/{questionID}", h.deleteQuestion)
	mux.HandleFunc("POST /admin/subcategories", h.addSubCategory)
	mux.HandleFunc("DELETE /admin/subcategories/{category}/{name}", h.deleteSubCategory)

	// Export / import
	mux.HandleFunc("GET /export", h.exportAll)
	mux.HandleFunc("POST /import", h.importAll)
}
