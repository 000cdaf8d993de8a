package calculator

import "github.com/hmorales/wedplan/internal/models"

// ActivityCost extrapolates an activity's cost across its attending guests.
// The attendee count is the number of "attending" RSVPs, counted by the
// caller. A nil subsidy counts as zero; a nil cost yields a zero contribution.
func ActivityCost(activity *models.Activity, attendeeCount int) models.ActivityCost {
	costPerPerson := 0.0
	if activity.CostPerPerson != nil {
		costPerPerson = *activity.CostPerPerson
	}
	hostSubsidy := 0.0
	if activity.HostSubsidy != nil {
		hostSubsidy = *activity.HostSubsidy
	}

	totalCost := costPerPerson * float64(attendeeCount)
	totalSubsidy := hostSubsidy * float64(attendeeCount)

	return models.ActivityCost{
		ActivityID:    activity.ID,
		Name:          activity.Name,
		CostPerPerson: costPerPerson,
		HostSubsidy:   hostSubsidy,
		AttendeeCount: attendeeCount,
		TotalCost:     totalCost,
		TotalSubsidy:  totalSubsidy,
		NetCost:       totalCost - totalSubsidy,
	}
}
