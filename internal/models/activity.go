package models

// Activity represents an optional outing guests can RSVP to (snorkeling trip,
// welcome dinner, ...). Cost and subsidy are per attending person; the
// attendee count comes from RSVPs with status "attending".
//
// Invariant: when both are set, HostSubsidy <= CostPerPerson.
type Activity struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`

	// Date is an ISO "2006-01-02" string; StartTime/EndTime are "15:04".
	Date      *string `json:"date"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`

	LocationID *string `json:"locationId"`

	// CostPerPerson is nil for free activities.
	CostPerPerson *float64 `json:"costPerPerson"`

	// HostSubsidy is the per-person amount the hosts cover, nil for none.
	HostSubsidy *float64 `json:"hostSubsidy"`

	CreatedAt int64 `json:"createdAt"`
	UpdatedAt int64 `json:"updatedAt"`
}

// CreateActivityInput is the payload for creating an activity.
type CreateActivityInput struct {
	Name          string   `json:"name"`
	Description   *string  `json:"description"`
	Date          *string  `json:"date"`
	StartTime     *string  `json:"startTime"`
	EndTime       *string  `json:"endTime"`
	LocationID    *string  `json:"locationId"`
	CostPerPerson *float64 `json:"costPerPerson"`
	HostSubsidy   *float64 `json:"hostSubsidy"`
}

// UpdateActivityInput carries optional field edits.
type UpdateActivityInput struct {
	Name          *string         `json:"name"`
	Description   *NullableString `json:"description"`
	Date          *NullableString `json:"date"`
	StartTime     *NullableString `json:"startTime"`
	EndTime       *NullableString `json:"endTime"`
	LocationID    *NullableString `json:"locationId"`
	CostPerPerson *float64        `json:"costPerPerson"`
	HostSubsidy   *float64        `json:"hostSubsidy"`
}

// ActivityCost is the derived cost contribution of one activity.
type ActivityCost struct {
	ActivityID    string  `json:"activityId"`
	Name          string  `json:"name"`
	CostPerPerson float64 `json:"costPerPerson"`
	HostSubsidy   float64 `json:"hostSubsidy"`
	AttendeeCount int     `json:"attendeeCount"`
	TotalCost     float64 `json:"totalCost"`
	TotalSubsidy  float64 `json:"totalSubsidy"`
	NetCost       float64 `json:"netCost"`
}
