package calculator

import (
	"math"
	"testing"

	"github.com/hmorales/wedplan/internal/models"
)

func TestActivityCost(t *testing.T) {
	tests := []struct {
		name          string
		activity      *models.Activity
		attendeeCount int
		validateFunc  func(t *testing.T, cost models.ActivityCost)
	}{
		{
			name:          "subsidized activity with four attendees",
			activity:      &models.Activity{ID: "a1", Name: "Snorkeling", CostPerPerson: ptr(50), HostSubsidy: ptr(10)},
			attendeeCount: 4,
			validateFunc: func(t *testing.T, cost models.ActivityCost) {
				if math.Abs(cost.TotalCost-200) > MoneyTolerance {
					t.Errorf("totalCost = %v, want 200", cost.TotalCost)
				}
				if math.Abs(cost.TotalSubsidy-40) > MoneyTolerance {
					t.Errorf("totalSubsidy = %v, want 40", cost.TotalSubsidy)
				}
				if math.Abs(cost.NetCost-160) > MoneyTolerance {
					t.Errorf("netCost = %v, want 160", cost.NetCost)
				}
			},
		},
		{
			name:          "no subsidy",
			activity:      &models.Activity{ID: "a2", Name: "Boat tour", CostPerPerson: ptr(75)},
			attendeeCount: 3,
			validateFunc: func(t *testing.T, cost models.ActivityCost) {
				if math.Abs(cost.TotalCost-225) > MoneyTolerance {
					t.Errorf("totalCost = %v, want 225", cost.TotalCost)
				}
				if cost.TotalSubsidy != 0 {
					t.Errorf("totalSubsidy = %v, want 0", cost.TotalSubsidy)
				}
				if math.Abs(cost.NetCost-225) > MoneyTolerance {
					t.Errorf("netCost = %v, want 225", cost.NetCost)
				}
			},
		},
		{
			name:          "zero attendees",
			activity:      &models.Activity{ID: "a3", Name: "Hike", CostPerPerson: ptr(20), HostSubsidy: ptr(5)},
			attendeeCount: 0,
			validateFunc: func(t *testing.T, cost models.ActivityCost) {
				if cost.TotalCost != 0 || cost.TotalSubsidy != 0 || cost.NetCost != 0 {
					t.Errorf("expected all zero, got %+v", cost)
				}
			},
		},
		{
			name:          "free activity",
			activity:      &models.Activity{ID: "a4", Name: "Beach day"},
			attendeeCount: 12,
			validateFunc: func(t *testing.T, cost models.ActivityCost) {
				if cost.TotalCost != 0 {
					t.Errorf("totalCost = %v, want 0", cost.TotalCost)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost := ActivityCost(tt.activity, tt.attendeeCount)
			if cost.AttendeeCount != tt.attendeeCount {
				t.Errorf("attendeeCount = %d, want %d", cost.AttendeeCount, tt.attendeeCount)
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, cost)
			}
		})
	}
}
