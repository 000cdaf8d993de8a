package models

// Event is a scheduled wedding event every guest is expected at (ceremony,
// reception, farewell brunch). Unlike activities, events carry no per-person
// cost; their expenses are tracked through vendors.
type Event struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Date        string  `json:"date"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	LocationID  *string `json:"locationId"`
	Attire      *string `json:"attire"`
	CreatedAt   int64   `json:"createdAt"`
	UpdatedAt   int64   `json:"updatedAt"`
}

// CreateEventInput is the payload for creating an event.
type CreateEventInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Date        string  `json:"date"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	LocationID  *string `json:"locationId"`
	Attire      *string `json:"attire"`
}

// UpdateEventInput carries optional field edits.
type UpdateEventInput struct {
	Name        *string         `json:"name"`
	Description *NullableString `json:"description"`
	Date        *string         `json:"date"`
	StartTime   *NullableString `json:"startTime"`
	EndTime     *NullableString `json:"endTime"`
	LocationID  *NullableString `json:"locationId"`
	Attire      *NullableString `json:"attire"`
}
