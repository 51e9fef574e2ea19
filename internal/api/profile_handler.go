package api

import (
	"net/http"

	"github.com/jobprep-bd/backend/internal/domain/profile"
)

// Mock auth, matching the original product: no credentials, no tokens. Login
// promotes to an admin profile, logout drops back to guest.

type ProfileResponse struct {
	UID         string             `json:"uid" example:"guest"`
	Email       string             `json:"email" example:"guest@jobprep.bd"`
	DisplayName string             `json:"display_name"`
	IsAdmin     bool               `json:"is_admin" example:"false"`
	Bookmarks   []string           `json:"bookmarks"`
	Activity    []profile.Activity `json:"activity"`
}

func profileResponse(p *profile.Profile) ProfileResponse {
	return ProfileResponse{
		UID:         p.UID,
		Email:       p.Email,
		DisplayName: p.DisplayName,
		IsAdmin:     p.IsAdmin,
		Bookmarks:   p.Bookmarks,
		Activity:    p.Activity,
	}
}

// getProfile returns the active profile with bookmarks and activity log.
// @Summary      Current profile
// @Tags         Profile
// @Produce      json
// @Success      200  {object}  ProfileResponse
// @Router       /profile [get]
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, profileResponse(h.state.Profile()))
}

// POST /auth/login
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	p, err := h.state.Login(r.Context())
	if h.handleAppError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, profileResponse(p))
}

// POST /auth/logout
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	p, err := h.state.Logout(r.Context())
	if h.handleAppError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, profileResponse(p))
}
