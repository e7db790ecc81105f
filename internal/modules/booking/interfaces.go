package booking

import (
	"context"
	"time"

	"shareit/internal/domain"
)

// BookingRepository is the persistence collaborator of the booking core.
// The six query shapes per role back the classification table; ordering is
// start descending and pagination applies after filtering.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error

	FindAllByBooker(ctx context.Context, bookerID int64, limit, offset int) ([]domain.Booking, error)
	FindCurrentByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]domain.Booking, error)
	FindPastByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]domain.Booking, error)
	FindFutureByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]domain.Booking, error)
	FindByStatusByBooker(ctx context.Context, bookerID int64, status domain.BookingStatus, limit, offset int) ([]domain.Booking, error)

	FindAllByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]domain.Booking, error)
	FindCurrentByOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]domain.Booking, error)
	FindPastByOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]domain.Booking, error)
	FindFutureByOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]domain.Booking, error)
	FindByStatusByOwner(ctx context.Context, ownerID int64, status domain.BookingStatus, limit, offset int) ([]domain.Booking, error)
}

// UserGate resolves requesters without pulling in the user module.
type UserGate interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// ItemGate resolves booked items and ownership.
type ItemGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	IsAvailable(ctx context.Context, id int64) (bool, error)
	OwnerHasAnyItem(ctx context.Context, ownerID int64) (bool, error)
}
