package booking

import "agencysite/models"

// ResolveSlots computes occupancy for every slot definition on one date.
//
// Bookings for other dates and cancelled bookings are ignored, so callers may
// pass a wider result set than the date itself. Output follows the order of
// defs and includes full slots.
func ResolveSlots(date string, defs []models.TimeSlotDefinition, bookings []models.Booking) []models.SlotAvailability {
	booked := make(map[string]int, len(defs))
	for _, b := range bookings {
		if b.PreferredDate != date || b.Status == models.BookingStatusCancelled {
			continue
		}
		booked[b.PreferredTimeSlot]++
	}

	out := make([]models.SlotAvailability, 0, len(defs))
	for _, def := range defs {
		count := booked[def.TimeSlot]
		spots := def.Capacity - count
		if spots < 0 {
			spots = 0
		}
		out = append(out, models.SlotAvailability{
			Date:           date,
			TimeSlot:       def.TimeSlot,
			Capacity:       def.Capacity,
			BookedCount:    count,
			IsAvailable:    count < def.Capacity,
			AvailableSpots: spots,
		})
	}
	return out
}

// resolveOne returns the availability of a single slot.
func resolveOne(date string, def models.TimeSlotDefinition, bookings []models.Booking) models.SlotAvailability {
	return ResolveSlots(date, []models.TimeSlotDefinition{def}, bookings)[0]
}
