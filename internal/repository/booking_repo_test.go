package repository

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"shareit/internal/database"
	"shareit/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) (*UserRepository, *ItemRepository, *BookingRepository, *CommentRepository) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	return NewUserRepository(db), NewItemRepository(db), NewBookingRepository(db), NewCommentRepository(db)
}

func seedUser(t *testing.T, users *UserRepository, name, email string) *domain.User {
	t.Helper()
	u := &domain.User{Name: name, Email: email, PasswordHash: "x"}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func seedItem(t *testing.T, items *ItemRepository, ownerID int64, name string) *domain.Item {
	t.Helper()
	i := &domain.Item{OwnerID: ownerID, Name: name, Description: name, Available: true}
	require.NoError(t, items.Create(context.Background(), i))
	return i
}

func seedBooking(t *testing.T, bookings *BookingRepository, itemID, bookerID int64, start, end time.Time, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	b := &domain.Booking{ItemID: itemID, BookerID: bookerID, Start: start, End: end, Status: status}
	require.NoError(t, bookings.Create(context.Background(), b))
	return b
}

var repoNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func TestBookingRepository_CreateAndGet(t *testing.T) {
	users, items, bookings, _ := setupDB(t)
	ctx := context.Background()

	owner := seedUser(t, users, "Alice", "alice@example.com")
	booker := seedUser(t, users, "Bob", "bob@example.com")
	drill := seedItem(t, items, owner.ID, "Drill")

	b := seedBooking(t, bookings, drill.ID, booker.ID,
		repoNow.Add(24*time.Hour), repoNow.Add(48*time.Hour), domain.BookingWaiting)
	require.NotZero(t, b.ID)

	got, err := bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, domain.BookingWaiting, got.Status)
	assert.True(t, got.Start.Equal(b.Start))
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	users, items, bookings, _ := setupDB(t)
	ctx := context.Background()

	owner := seedUser(t, users, "Alice", "alice@example.com")
	booker := seedUser(t, users, "Bob", "bob@example.com")
	drill := seedItem(t, items, owner.ID, "Drill")
	b := seedBooking(t, bookings, drill.ID, booker.ID,
		repoNow.Add(24*time.Hour), repoNow.Add(48*time.Hour), domain.BookingWaiting)

	require.NoError(t, bookings.UpdateStatus(ctx, b.ID, domain.BookingApproved))

	got, err := bookings.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingApproved, got.Status)
}

// CURRENT, PAST and FUTURE must partition ALL: with no booking starting or
// ending exactly at "now", every booking lands in exactly one bucket.
func TestBookingRepository_TemporalPartition(t *testing.T) {
	users, items, bookings, _ := setupDB(t)
	ctx := context.Background()

	owner := seedUser(t, users, "Alice", "alice@example.com")
	booker := seedUser(t, users, "Bob", "bob@example.com")
	drill := seedItem(t, items, owner.ID, "Drill")

	rng := rand.New(rand.NewSource(7))
	const total = 40
	for i := 0; i < total; i++ {
		// random interval with start < end, straddling now at random;
		// odd offsets keep the endpoints away from now itself
		startOff := rng.Intn(200) - 100
		length := rng.Intn(50) + 1
		start := repoNow.Add(time.Duration(startOff)*time.Hour + 30*time.Minute)
		seedBooking(t, bookings, drill.ID, booker.ID,
			start, start.Add(time.Duration(length)*time.Hour), domain.BookingApproved)
	}

	all, err := bookings.FindAllByBooker(ctx, booker.ID, total, 0)
	require.NoError(t, err)
	require.Len(t, all, total)

	current, err := bookings.FindCurrentByBooker(ctx, booker.ID, repoNow, total, 0)
	require.NoError(t, err)
	past, err := bookings.FindPastByBooker(ctx, booker.ID, repoNow, total, 0)
	require.NoError(t, err)
	future, err := bookings.FindFutureByBooker(ctx, booker.ID, repoNow, total, 0)
	require.NoError(t, err)

	assert.Equal(t, total, len(current)+len(past)+len(future))

	seen := make(map[int64]int)
	for _, b := range current {
		assert.True(t, b.Start.Before(repoNow) && b.End.After(repoNow), "booking %d not ongoing", b.ID)
		seen[b.ID]++
	}
	for _, b := range past {
		assert.True(t, b.End.Before(repoNow), "booking %d not past", b.ID)
		seen[b.ID]++
	}
	for _, b := range future {
		assert.True(t, b.Start.After(repoNow), "booking %d not future", b.ID)
		seen[b.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "booking %d in %d buckets", id, n)
	}
	assert.Len(t, seen, total)
}

func TestBookingRepository_OrderStartDesc(t *testing.T) {
	users, items, bookings, _ := setupDB(t)
	ctx := context.Background()

	owner := seedUser(t, users, "Alice", "alice@example.com")
	booker := seedUser(t, users, "Bob", "bob@example.com")
	drill := seedItem(t, items, owner.ID, "Drill")

	for _, off := range []int{-40, 10, -5, 70, 25} {
		start := repoNow.Add(time.Duration(off) * time.Hour)
		seedBooking(t, bookings, drill.ID, booker.ID, start, start.Add(time.Hour), domain.BookingWaiting)
	}

	got, err := bookings.FindAllByBooker(ctx, booker.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 5)
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].Start.After(got[i-1].Start), "ordering broken at %d", i)
	}
}

func TestBookingRepository_Pagination(t *testing.T) {
	users, items, bookings, _ := setupDB(t)
	ctx := context.Background()

	owner := seedUser(t, users, "Alice", "alice@example.com")
	booker := seedUser(t, users, "Bob", "bob@example.com")
	drill := seedItem(t, items, owner.ID, "Drill")

	for i := 0; i < 7; i++ {
		start := repoNow.Add(time.Duration(i+1) * time.Hour)
		seedBooking(t, bookings, drill.ID, booker.ID, start, start.Add(time.Hour), domain.BookingWaiting)
	}

	page1, err := bookings.FindAllByBooker(ctx, booker.ID, 3, 0)
	require.NoError(t, err)
	page2, err := bookings.FindAllByBooker(ctx, booker.ID, 3, 3)
	require.NoError(t, err)
	page3, err := bookings.FindAllByBooker(ctx, booker.ID, 3, 6)
	require.NoError(t, err)

	assert.Len(t, page1, 3)
	assert.Len(t, page2, 3)
	assert.Len(t, page3, 1)

	// pages are disjoint and keep the global DESC order
	assert.True(t, page2[0].Start.Before(page1[2].Start))
	assert.True(t, page3[0].Start.Before(page2[2].Start))
}

func TestBookingRepository_StatusFilter(t *testing.T) {
	users, items, bookings, _ := setupDB(t)
	ctx := context.Background()

	owner := seedUser(t, users, "Alice", "alice@example.com")
	booker := seedUser(t, users, "Bob", "bob@example.com")
	drill := seedItem(t, items, owner.ID, "Drill")

	s1 := repoNow.Add(1 * time.Hour)
	s2 := repoNow.Add(2 * time.Hour)
	s3 := repoNow.Add(3 * time.Hour)
	seedBooking(t, bookings, drill.ID, booker.ID, s1, s1.Add(time.Hour), domain.BookingWaiting)
	seedBooking(t, bookings, drill.ID, booker.ID, s2, s2.Add(time.Hour), domain.BookingRejected)
	seedBooking(t, bookings, drill.ID, booker.ID, s3, s3.Add(time.Hour), domain.BookingApproved)

	waiting, err := bookings.FindByStatusByBooker(ctx, booker.ID, domain.BookingWaiting, 10, 0)
	require.NoError(t, err)
	require.Len(t, waiting, 1)
	assert.Equal(t, domain.BookingWaiting, waiting[0].Status)

	rejected, err := bookings.FindByStatusByBooker(ctx, booker.ID, domain.BookingRejected, 10, 0)
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.Equal(t, domain.BookingRejected, rejected[0].Status)
}

// Owner-side queries go through the items join: only bookings of the
// owner's items come back, never bookings the owner made elsewhere.
func TestBookingRepository_OwnerScoping(t *testing.T) {
	users, items, bookings, _ := setupDB(t)
	ctx := context.Background()

	alice := seedUser(t, users, "Alice", "alice@example.com")
	bob := seedUser(t, users, "Bob", "bob@example.com")
	drill := seedItem(t, items, alice.ID, "Drill")
	bike := seedItem(t, items, bob.ID, "Bike")

	s1 := repoNow.Add(1 * time.Hour)
	s2 := repoNow.Add(2 * time.Hour)
	onAlices := seedBooking(t, bookings, drill.ID, bob.ID, s1, s1.Add(time.Hour), domain.BookingWaiting)
	// Alice books Bob's bike; must not appear in her owner listing
	seedBooking(t, bookings, bike.ID, alice.ID, s2, s2.Add(time.Hour), domain.BookingWaiting)

	got, err := bookings.FindAllByOwner(ctx, alice.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, onAlices.ID, got[0].ID)

	future, err := bookings.FindFutureByOwner(ctx, alice.ID, repoNow, 10, 0)
	require.NoError(t, err)
	assert.Len(t, future, 1)

	waiting, err := bookings.FindByStatusByOwner(ctx, alice.ID, domain.BookingWaiting, 10, 0)
	require.NoError(t, err)
	assert.Len(t, waiting, 1)
}

func TestBookingRepository_FindApprovedByItemIDs(t *testing.T) {
	users, items, bookings, _ := setupDB(t)
	ctx := context.Background()

	owner := seedUser(t, users, "Alice", "alice@example.com")
	booker := seedUser(t, users, "Bob", "bob@example.com")
	drill := seedItem(t, items, owner.ID, "Drill")
	tent := seedItem(t, items, owner.ID, "Tent")

	s1 := repoNow.Add(2 * time.Hour)
	s2 := repoNow.Add(1 * time.Hour)
	s3 := repoNow.Add(3 * time.Hour)
	seedBooking(t, bookings, drill.ID, booker.ID, s1, s1.Add(time.Hour), domain.BookingApproved)
	seedBooking(t, bookings, tent.ID, booker.ID, s2, s2.Add(time.Hour), domain.BookingApproved)
	// not approved, must be excluded
	seedBooking(t, bookings, drill.ID, booker.ID, s3, s3.Add(time.Hour), domain.BookingWaiting)

	got, err := bookings.FindApprovedByItemIDs(ctx, []int64{drill.ID, tent.ID})
	require.NoError(t, err)
	require.Len(t, got, 2)
	// ascending by start
	assert.True(t, got[0].Start.Before(got[1].Start))

	empty, err := bookings.FindApprovedByItemIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestBookingRepository_HasFinishedBooking(t *testing.T) {
	users, items, bookings, _ := setupDB(t)
	ctx := context.Background()

	owner := seedUser(t, users, "Alice", "alice@example.com")
	booker := seedUser(t, users, "Bob", "bob@example.com")
	stranger := seedUser(t, users, "Carol", "carol@example.com")
	drill := seedItem(t, items, owner.ID, "Drill")

	// finished booking by Bob
	seedBooking(t, bookings, drill.ID, booker.ID,
		repoNow.Add(-48*time.Hour), repoNow.Add(-24*time.Hour), domain.BookingApproved)
	// ongoing booking by Carol, has not ended
	seedBooking(t, bookings, drill.ID, stranger.ID,
		repoNow.Add(-1*time.Hour), repoNow.Add(1*time.Hour), domain.BookingApproved)

	ok, err := bookings.HasFinishedBooking(ctx, booker.ID, drill.ID, repoNow)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = bookings.HasFinishedBooking(ctx, stranger.ID, drill.ID, repoNow)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = bookings.HasFinishedBooking(ctx, owner.ID, drill.ID, repoNow)
	require.NoError(t, err)
	assert.False(t, ok)
}
