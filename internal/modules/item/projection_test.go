package item

import (
	"math/rand"
	"testing"
	"time"

	"shareit/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var projNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func ref(id int64, start, end time.Time) domain.Booking {
	return domain.Booking{ID: id, ItemID: 1, BookerID: 2, Start: start, End: end, Status: domain.BookingApproved}
}

func TestLastAndNext_Empty(t *testing.T) {
	last, next := LastAndNext(nil, projNow)
	assert.Nil(t, last)
	assert.Nil(t, next)

	last, next = LastAndNext([]domain.Booking{}, projNow)
	assert.Nil(t, last)
	assert.Nil(t, next)
}

func TestLastAndNext_PicksNearestOnBothSides(t *testing.T) {
	bookings := []domain.Booking{
		ref(1, projNow.Add(-96*time.Hour), projNow.Add(-72*time.Hour)),
		ref(2, projNow.Add(-48*time.Hour), projNow.Add(-24*time.Hour)),
		ref(3, projNow.Add(24*time.Hour), projNow.Add(48*time.Hour)),
		ref(4, projNow.Add(72*time.Hour), projNow.Add(96*time.Hour)),
	}

	last, next := LastAndNext(bookings, projNow)

	require.NotNil(t, last)
	require.NotNil(t, next)
	assert.Equal(t, int64(2), last.ID)
	assert.Equal(t, int64(3), next.ID)
}

// A booking that spans "now" counts as the last booking: its start is in
// the past even though it has not ended.
func TestLastAndNext_OngoingBookingIsLast(t *testing.T) {
	bookings := []domain.Booking{
		ref(1, projNow.Add(-1*time.Hour), projNow.Add(1*time.Hour)),
	}

	last, next := LastAndNext(bookings, projNow)

	require.NotNil(t, last)
	assert.Equal(t, int64(1), last.ID)
	assert.Nil(t, next)
}

func TestLastAndNext_OnlyFuture(t *testing.T) {
	bookings := []domain.Booking{
		ref(1, projNow.Add(24*time.Hour), projNow.Add(48*time.Hour)),
	}

	last, next := LastAndNext(bookings, projNow)

	assert.Nil(t, last)
	require.NotNil(t, next)
	assert.Equal(t, int64(1), next.ID)
}

func TestLastAndNext_StartExactlyNowIgnored(t *testing.T) {
	bookings := []domain.Booking{
		ref(1, projNow, projNow.Add(1*time.Hour)),
	}

	last, next := LastAndNext(bookings, projNow)

	assert.Nil(t, last)
	assert.Nil(t, next)
}

// Whatever the input, last starts before now and next starts after now,
// and no candidate sits strictly between them.
func TestLastAndNext_Property(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		n := rng.Intn(10)
		bookings := make([]domain.Booking, 0, n)
		for j := 0; j < n; j++ {
			start := projNow.Add(time.Duration(rng.Intn(200)-100) * time.Hour)
			bookings = append(bookings, ref(int64(j+1), start, start.Add(time.Hour)))
		}

		last, next := LastAndNext(bookings, projNow)

		if last != nil {
			assert.True(t, last.Start.Before(projNow))
		}
		if next != nil {
			assert.True(t, next.Start.After(projNow))
		}
		for _, b := range bookings {
			if b.Start.Before(projNow) && last != nil {
				assert.False(t, b.Start.After(last.Start), "a later past start than last")
			}
			if b.Start.After(projNow) && next != nil {
				assert.False(t, b.Start.Before(next.Start), "an earlier future start than next")
			}
		}
	}
}
