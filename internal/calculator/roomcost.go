package calculator

import (
	"fmt"
	"math"
	"time"

	"github.com/hmorales/wedplan/internal/models"
)

const dateLayout = "2006-01-02"

// Nights returns the number of chargeable nights between two ISO dates,
// inclusive-exclusive: the checkout day is not charged. checkIn must be
// strictly before checkOut.
func Nights(checkIn, checkOut string) (int, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return 0, fmt.Errorf("invalid check-in date %q: %w", checkIn, err)
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return 0, fmt.Errorf("invalid check-out date %q: %w", checkOut, err)
	}
	if !in.Before(out) {
		return 0, fmt.Errorf("check-in date must be before check-out date")
	}
	nights := int(math.Ceil(out.Sub(in).Hours() / 24))
	return nights, nil
}

// RoomCost computes the cost of a stay in the given room type. The subsidy
// defaults to zero when the room type has none.
func RoomCost(roomType *models.RoomType, checkIn, checkOut string) (*models.RoomCost, error) {
	nights, err := Nights(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	subsidyPerNight := 0.0
	if roomType.HostSubsidyPerNight != nil {
		subsidyPerNight = *roomType.HostSubsidyPerNight
	}

	totalCost := roomType.PricePerNight * float64(nights)
	totalSubsidy := subsidyPerNight * float64(nights)

	return &models.RoomCost{
		NumberOfNights:  nights,
		PricePerNight:   roomType.PricePerNight,
		SubsidyPerNight: subsidyPerNight,
		TotalCost:       totalCost,
		TotalSubsidy:    totalSubsidy,
		GuestCost:       totalCost - totalSubsidy,
	}, nil
}
