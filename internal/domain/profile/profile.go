package profile

import "slices"

type ActivityType string

const (
	ActivityQuiz  ActivityType = "QUIZ"
	ActivityStudy ActivityType = "STUDY"
)

// Activity is one logged user action, shown on the dashboard. Score and Total
// are set only for QUIZ entries.
type Activity struct {
	Type      ActivityType `json:"type"`
	Label     string       `json:"label"`
	Timestamp int64        `json:"timestamp"` // unix milliseconds
	Score     *int         `json:"score,omitempty"`
	Total     *int         `json:"total,omitempty"`
}

// MaxActivity caps the activity log; older entries are silently dropped.
const MaxActivity = 10

// GuestUID marks the default unauthenticated profile.
const GuestUID = "guest"

// Profile is the current session's identity and history. Bookmarks hold
// question ids with membership semantics — ordered, no duplicates, order not
// meaningful. The JSON field names are the persisted storage contract.
type Profile struct {
	UID         string     `json:"uid"`
	Email       string     `json:"email"`
	DisplayName string     `json:"displayName"`
	IsAdmin     bool       `json:"isAdmin"`
	Bookmarks   []string   `json:"bookmarks"`
	Activity    []Activity `json:"activity"`
}

// Guest returns the default profile used when no session exists.
func Guest() *Profile {
	return &Profile{
		UID:         GuestUID,
		Email:       "guest@jobprep.bd",
		DisplayName: "পরীক্ষার্থী (অতিথি)",
		IsAdmin:     false,
		Bookmarks:   []string{},
		Activity:    []Activity{},
	}
}

// IsGuest reports whether this is the unauthenticated sentinel profile.
func (p *Profile) IsGuest() bool {
	return p.UID == GuestUID
}

// IsBookmarked reports membership of a question id in the bookmark set.
func (p *Profile) IsBookmarked(id string) bool {
	return slices.Contains(p.Bookmarks, id)
}

// ToggleBookmark flips bookmark membership for the given question id and
// reports whether the id is bookmarked afterwards. Calling it twice in a row
// restores the original set.
func (p *Profile) ToggleBookmark(id string) bool {
	if p.IsBookmarked(id) {
		kept := make([]string, 0, len(p.Bookmarks))
		for _, b := range p.Bookmarks {
			if b != id {
				kept = append(kept, b)
			}
		}
		p.Bookmarks = kept
		return false
	}
	p.Bookmarks = append(p.Bookmarks, id)
	return true
}

// Record prepends an activity entry, evicting the oldest entries beyond
// MaxActivity.
func (p *Profile) Record(a Activity) {
	p.Activity = append([]Activity{a}, p.Activity...)
	if len(p.Activity) > MaxActivity {
		p.Activity = p.Activity[:MaxActivity]
	}
}

// Clone returns a deep copy for handing out to the presentation layer.
func (p *Profile) Clone() *Profile {
	out := *p
	out.Bookmarks = slices.Clone(p.Bookmarks)
	out.Activity = slices.Clone(p.Activity)
	return &out
}
