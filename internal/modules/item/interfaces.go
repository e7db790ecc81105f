package item

import (
	"context"
	"time"

	"shareit/internal/domain"
	"shareit/internal/repository"
)

type ItemRepository interface {
	Create(ctx context.Context, i *domain.Item) error
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	Update(ctx context.Context, i *domain.Item) error
	Delete(ctx context.Context, id int64) error
	GetAllByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]domain.Item, error)
	Search(ctx context.Context, text string, limit, offset int) ([]domain.Item, error)
}

type UserGate interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// BookingLookup supplies the approved bookings for the projection and the
// completed-usage check that gates comments.
type BookingLookup interface {
	FindApprovedByItemIDs(ctx context.Context, itemIDs []int64) ([]domain.Booking, error)
	HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

type CommentStore interface {
	Create(ctx context.Context, c *domain.Comment) error
	FindByItemID(ctx context.Context, itemID int64) ([]repository.CommentDetails, error)
	FindByItemIDs(ctx context.Context, itemIDs []int64) ([]repository.CommentDetails, error)
}

// RequestGate verifies the request an item claims to answer.
type RequestGate interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
