package models

// Accommodation is a hotel or rental property holding room blocks for guests.
type Accommodation struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	WebsiteURL  *string `json:"websiteUrl"`
	CreatedAt   int64   `json:"createdAt"`
	UpdatedAt   int64   `json:"updatedAt"`
}

// CreateAccommodationInput is the payload for creating an accommodation.
type CreateAccommodationInput struct {
	Name        string  `json:"name"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	WebsiteURL  *string `json:"websiteUrl"`
}

// UpdateAccommodationInput carries optional field edits.
type UpdateAccommodationInput struct {
	Name        *string         `json:"name"`
	Address     *NullableString `json:"address"`
	Description *NullableString `json:"description"`
	WebsiteURL  *NullableString `json:"websiteUrl"`
}

// RoomType is a bookable category of room at an accommodation.
//
// Invariant: when set, HostSubsidyPerNight <= PricePerNight.
type RoomType struct {
	ID              string  `json:"id"`
	AccommodationID string  `json:"accommodationId"`
	Name            string  `json:"name"`
	Capacity        int     `json:"capacity"`
	TotalRooms      int     `json:"totalRooms"`
	PricePerNight   float64 `json:"pricePerNight"`

	// HostSubsidyPerNight is the nightly amount the hosts cover, nil for none.
	HostSubsidyPerNight *float64 `json:"hostSubsidyPerNight"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// CreateRoomTypeInput is the payload for creating a room type.
type CreateRoomTypeInput struct {
	AccommodationID     string   `json:"accommodationId"`
	Name                string   `json:"name"`
	Capacity            int      `json:"capacity"`
	TotalRooms          int      `json:"totalRooms"`
	PricePerNight       float64  `json:"pricePerNight"`
	HostSubsidyPerNight *float64 `json:"hostSubsidyPerNight"`
}

// RoomAssignment books a guest into a room type for a date range.
//
// Invariant: CheckIn < CheckOut (strict). Dates are ISO "2006-01-02" strings;
// the checkout day is not charged.
type RoomAssignment struct {
	ID         string `json:"id"`
	RoomTypeID string `json:"roomTypeId"`
	GuestID    string `json:"guestId"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	CreatedAt  int64  `json:"createdAt"`
}

// CreateRoomAssignmentInput is the payload for assigning a guest to a room.
type CreateRoomAssignmentInput struct {
	RoomTypeID string `json:"roomTypeId"`
	GuestID    string `json:"guestId"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
}

// RoomCostInput identifies a room type and stay for cost calculation.
type RoomCostInput struct {
	RoomTypeID string `json:"roomTypeId"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
}

// RoomCost is the derived cost of a stay. Never persisted.
type RoomCost struct {
	NumberOfNights  int     `json:"numberOfNights"`
	PricePerNight   float64 `json:"pricePerNight"`
	SubsidyPerNight float64 `json:"subsidyPerNight"`
	TotalCost       float64 `json:"totalCost"`
	TotalSubsidy    float64 `json:"totalSubsidy"`
	GuestCost       float64 `json:"guestCost"`
}
