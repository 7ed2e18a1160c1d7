package booking

import (
	"time"

	"github.com/silverhalide/studio-api/internal/models"
)

// Fixed session grid: 2-hour slots between 09:00 and 17:00 studio-local.
const (
	SlotDuration = 2 * time.Hour
	DayStartHour = 9
	DayEndHour   = 17
)

// Slot is a transient candidate interval, never persisted.
type Slot struct {
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	IsAvailable   bool      `json:"is_available"`
	PriceModifier float64   `json:"price_modifier"`
}

type AvailabilityInput struct {
	StudioID    uint
	Start       time.Time
	End         time.Time
	SessionType string
}

// Overlaps uses the inclusive interval test: a booking touching the edge of
// a slot still consumes it.
func Overlaps(bookedStart, bookedEnd, slotStart, slotEnd time.Time) bool {
	return !bookedStart.After(slotEnd) && !bookedEnd.Before(slotStart)
}

// priceModifier is a placeholder rule: the first slot of the day is
// discounted, everything else is full price.
func priceModifier(slotStart time.Time) float64 {
	if slotStart.Hour() == DayStartHour {
		return 0.9
	}
	return 1.0
}

// DaySlots enumerates the slot grid for one calendar day in loc, marking
// each slot unavailable when it overlaps any of the given bookings.
func DaySlots(day time.Time, loc *time.Location, bookings []models.Booking) []Slot {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), DayStartHour, 0, 0, 0, loc)
	dayEnd := time.Date(day.Year(), day.Month(), day.Day(), DayEndHour, 0, 0, 0, loc)

	var slots []Slot
	for cur := dayStart; !cur.Add(SlotDuration).After(dayEnd); cur = cur.Add(SlotDuration) {
		slotStart := cur
		slotEnd := cur.Add(SlotDuration)

		available := true
		for _, b := range bookings {
			if Overlaps(b.StartTime, b.EndTime, slotStart, slotEnd) {
				available = false
				break
			}
		}

		slots = append(slots, Slot{
			StartTime:     slotStart,
			EndTime:       slotEnd,
			IsAvailable:   available,
			PriceModifier: priceModifier(slotStart),
		})
	}

	return slots
}
