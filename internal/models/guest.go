package models

import "encoding/json"

// AgeType classifies a guest for catering and pricing purposes.
type AgeType string

const (
	AgeAdult  AgeType = "adult"
	AgeChild  AgeType = "child"
	AgeSenior AgeType = "senior"
)

// GuestType records which parts of the celebration a guest is invited to.
type GuestType string

const (
	GuestWedding        GuestType = "wedding_guest"
	GuestWeddingParty   GuestType = "wedding_party"
	GuestPreweddingOnly GuestType = "prewedding_only"
	GuestPostwedding    GuestType = "postwedding_only"
	GuestUnknown        GuestType = "unknown"
)

// ValidAgeType reports whether a is a known age type.
func ValidAgeType(a AgeType) bool {
	switch a {
	case AgeAdult, AgeChild, AgeSenior:
		return true
	}
	return false
}

// ValidGuestType reports whether g is a known guest type.
func ValidGuestType(g GuestType) bool {
	switch g {
	case GuestWedding, GuestWeddingParty, GuestPreweddingOnly, GuestPostwedding, GuestUnknown:
		return true
	}
	return false
}

// Guest represents an invited person.
//
// Pointer fields are nullable: they serialize to empty strings in CSV and to
// null in JSON. Dates (arrival, departure, invitation sent, RSVP deadline)
// are ISO "2006-01-02" strings.
type Guest struct {
	// ID is the unique identifier for the guest (UUID format).
	ID string `json:"id"`

	// GroupID links guests who were invited together (a family or couple).
	GroupID string `json:"groupId"`

	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`

	AgeType   AgeType   `json:"ageType"`
	GuestType GuestType `json:"guestType"`

	DietaryRestrictions *string `json:"dietaryRestrictions"`

	// PlusOneName is set when the guest may bring a companion.
	PlusOneName      *string `json:"plusOneName"`
	PlusOneAttending bool    `json:"plusOneAttending"`

	ArrivalDate   *string `json:"arrivalDate"`
	DepartureDate *string `json:"departureDate"`
	AirportCode   *string `json:"airportCode"`
	FlightNumber  *string `json:"flightNumber"`

	InvitationSent     bool    `json:"invitationSent"`
	InvitationSentDate *string `json:"invitationSentDate"`
	RSVPDeadline       *string `json:"rsvpDeadline"`

	Notes *string `json:"notes"`

	// CreatedAt and UpdatedAt are Unix timestamps maintained by the store.
	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// CreateGuestInput is the payload for creating a guest. The same shape is
// produced by the CSV import path, one value per data row.
type CreateGuestInput struct {
	GroupID             string    `json:"groupId"`
	FirstName           string    `json:"firstName"`
	LastName            string    `json:"lastName"`
	Email               *string   `json:"email"`
	Phone               *string   `json:"phone"`
	AgeType             AgeType   `json:"ageType"`
	GuestType           GuestType `json:"guestType"`
	DietaryRestrictions *string   `json:"dietaryRestrictions"`
	PlusOneName         *string   `json:"plusOneName"`
	PlusOneAttending    bool      `json:"plusOneAttending"`
	ArrivalDate         *string   `json:"arrivalDate"`
	DepartureDate       *string   `json:"departureDate"`
	AirportCode         *string   `json:"airportCode"`
	FlightNumber        *string   `json:"flightNumber"`
	InvitationSent      bool      `json:"invitationSent"`
	InvitationSentDate  *string   `json:"invitationSentDate"`
	RSVPDeadline        *string   `json:"rsvpDeadline"`
	Notes               *string   `json:"notes"`
}

// UpdateGuestInput carries optional field updates; nil pointers mean "leave
// unchanged" for value fields. Nullable text fields use NullableString so an
// update can distinguish "set to null" from "leave unchanged".
type UpdateGuestInput struct {
	GroupID             *string         `json:"groupId"`
	FirstName           *string         `json:"firstName"`
	LastName            *string         `json:"lastName"`
	Email               *NullableString `json:"email"`
	Phone               *NullableString `json:"phone"`
	AgeType             *AgeType        `json:"ageType"`
	GuestType           *GuestType      `json:"guestType"`
	DietaryRestrictions *NullableString `json:"dietaryRestrictions"`
	PlusOneName         *NullableString `json:"plusOneName"`
	PlusOneAttending    *bool           `json:"plusOneAttending"`
	ArrivalDate         *NullableString `json:"arrivalDate"`
	DepartureDate       *NullableString `json:"departureDate"`
	AirportCode         *NullableString `json:"airportCode"`
	FlightNumber        *NullableString `json:"flightNumber"`
	InvitationSent      *bool           `json:"invitationSent"`
	InvitationSentDate  *NullableString `json:"invitationSentDate"`
	RSVPDeadline        *NullableString `json:"rsvpDeadline"`
	Notes               *NullableString `json:"notes"`
}

// NullableString wraps an optional string so updates can set a column to null.
type NullableString struct {
	Value *string
}

// UnmarshalJSON accepts either a string or null.
func (n *NullableString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

// MarshalJSON emits the wrapped value or null.
func (n NullableString) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}
