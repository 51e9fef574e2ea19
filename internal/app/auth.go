package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/jobprep-bd/backend/internal/domain/profile"
)

// Mock authentication: there are no credentials and no tokens. Login promotes
// the current session to an admin profile, logout drops back to the guest
// profile. Both land on HOME.

// Login mints an admin profile with a fresh opaque uid, carrying over the
// current bookmarks and activity.
func (s *State) Login(ctx context.Context) (*profile.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin := &profile.Profile{
		UID:         uuid.NewString(),
		Email:       "admin@jobprep.bd",
		DisplayName: "অ্যাডমিন ইউজার",
		IsAdmin:     true,
		Bookmarks:   []string{},
		Activity:    []profile.Activity{},
	}
	if s.user != nil {
		admin.Bookmarks = s.user.Bookmarks
		admin.Activity = s.user.Activity
	}

	s.user = admin
	s.view = ViewHome
	if err := s.store.SaveProfile(ctx, s.user); err != nil {
		return nil, err
	}
	return s.user.Clone(), nil
}

// Logout resets to a fresh guest profile, discarding bookmarks and activity
// of the authenticated session.
func (s *State) Logout(ctx context.Context) (*profile.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = profile.Guest()
	s.view = ViewHome
	if err := s.store.SaveProfile(ctx, s.user); err != nil {
		return nil, err
	}
	return s.user.Clone(), nil
}
