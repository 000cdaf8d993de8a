package models

// RSVPStatus is a guest's response state for an activity.
type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "pending"
	RSVPAttending RSVPStatus = "attending"
	RSVPDeclined  RSVPStatus = "declined"
)

// RSVP records a guest's response to an activity invitation. Activity cost
// extrapolation counts RSVPs with status "attending".
type RSVP struct {
	ID         string     `json:"id"`
	GuestID    string     `json:"guestId"`
	ActivityID string     `json:"activityId"`
	Status     RSVPStatus `json:"status"`

	// GuestCount covers plus-ones; nil means 1.
	GuestCount *int `json:"guestCount"`

	Notes *string `json:"notes"`

	// RespondedAt is set the first time Status leaves "pending".
	RespondedAt *int64 `json:"respondedAt"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// CreateRSVPInput is the payload for recording an RSVP.
type CreateRSVPInput struct {
	GuestID    string     `json:"guestId"`
	ActivityID string     `json:"activityId"`
	Status     RSVPStatus `json:"status"`
	GuestCount *int       `json:"guestCount"`
	Notes      *string    `json:"notes"`
}

// UpdateRSVPInput carries optional field edits.
type UpdateRSVPInput struct {
	Status     *RSVPStatus     `json:"status"`
	GuestCount *int            `json:"guestCount"`
	Notes      *NullableString `json:"notes"`
}

// ValidRSVPStatus reports whether s is a known RSVP status.
func ValidRSVPStatus(s RSVPStatus) bool {
	switch s {
	case RSVPPending, RSVPAttending, RSVPDeclined:
		return true
	}
	return false
}
