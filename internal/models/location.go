package models

// Location is a venue referenced by events and activities.
type Location struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Country     *string `json:"country"`
	Description *string `json:"description"`
	MapURL      *string `json:"mapUrl"`
	CreatedAt   int64   `json:"createdAt"`
	UpdatedAt   int64   `json:"updatedAt"`
}

// CreateLocationInput is the payload for creating a location.
type CreateLocationInput struct {
	Name        string  `json:"name"`
	Address     *string `json:"address"`
	City        *string `json:"city"`
	Country     *string `json:"country"`
	Description *string `json:"description"`
	MapURL      *string `json:"mapUrl"`
}

// UpdateLocationInput carries optional field edits.
type UpdateLocationInput struct {
	Name        *string         `json:"name"`
	Address     *NullableString `json:"address"`
	City        *NullableString `json:"city"`
	Country     *NullableString `json:"country"`
	Description *NullableString `json:"description"`
	MapURL      *NullableString `json:"mapUrl"`
}
