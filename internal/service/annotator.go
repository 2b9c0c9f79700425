package service

import (
	"time"

	"gearshare/internal/models"
)

// lastBookingOf picks the booking whose end is the greatest value still at
// or before now. Bookings ending after now do not qualify; no qualifying
// booking means nil.
func lastBookingOf(bookings []models.Booking, now time.Time) *models.Booking {
	var last *models.Booking
	for i := range bookings {
		b := &bookings[i]
		if b.EndDate.After(now) {
			continue
		}
		if last == nil || b.EndDate.After(last.EndDate) {
			last = b
		}
	}
	return last
}

// nextBookingOf picks the booking whose start is the smallest value still
// strictly after now, nil when none qualifies.
func nextBookingOf(bookings []models.Booking, now time.Time) *models.Booking {
	var next *models.Booking
	for i := range bookings {
		b := &bookings[i]
		if !b.StartDate.After(now) {
			continue
		}
		if next == nil || b.StartDate.Before(next.StartDate) {
			next = b
		}
	}
	return next
}
