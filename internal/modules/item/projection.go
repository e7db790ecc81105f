package item

import (
	"time"

	"shareit/internal/domain"
)

// BookingRef is the short booking summary attached to an item listing.
type BookingRef struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// LastAndNext derives the last/next booking pair for one item from its
// approved bookings. last is the booking with the greatest start before
// now (ongoing counts), next the one with the smallest start after now.
// The pair is recomputed per request since "now" advances; nothing here
// is cached.
func LastAndNext(bookings []domain.Booking, now time.Time) (last, next *BookingRef) {
	for i := range bookings {
		b := &bookings[i]
		switch {
		case b.Start.Before(now):
			if last == nil || b.Start.After(last.Start) {
				last = toBookingRef(b)
			}
		case b.Start.After(now):
			if next == nil || b.Start.Before(next.Start) {
				next = toBookingRef(b)
			}
		}
	}
	return last, next
}

func toBookingRef(b *domain.Booking) *BookingRef {
	return &BookingRef{
		ID:       b.ID,
		BookerID: b.BookerID,
		Start:    b.Start,
		End:      b.End,
	}
}
