package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"shareit/internal/clock"
	"shareit/internal/domain"

	"gorm.io/gorm"
)

// listQuery binds one category to its repository queries for both roles.
// The classification table of the engine is this map, not branching logic.
type listQuery struct {
	byBooker func(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]domain.Booking, error)
	byOwner  func(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]domain.Booking, error)
}

type Service struct {
	bookings BookingRepository
	users    UserGate
	items    ItemGate
	clock    clock.Clock
	log      *slog.Logger

	queries map[Category]listQuery
}

func NewService(bookings BookingRepository, users UserGate, items ItemGate, clk clock.Clock, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}

	s := &Service{
		bookings: bookings,
		users:    users,
		items:    items,
		clock:    clk,
		log:      log,
	}

	s.queries = map[Category]listQuery{
		CategoryAll: {
			byBooker: func(ctx context.Context, id int64, _ time.Time, limit, offset int) ([]domain.Booking, error) {
				return bookings.FindAllByBooker(ctx, id, limit, offset)
			},
			byOwner: func(ctx context.Context, id int64, _ time.Time, limit, offset int) ([]domain.Booking, error) {
				return bookings.FindAllByOwner(ctx, id, limit, offset)
			},
		},
		CategoryCurrent: {
			byBooker: bookings.FindCurrentByBooker,
			byOwner:  bookings.FindCurrentByOwner,
		},
		CategoryPast: {
			byBooker: bookings.FindPastByBooker,
			byOwner:  bookings.FindPastByOwner,
		},
		CategoryFuture: {
			byBooker: bookings.FindFutureByBooker,
			byOwner:  bookings.FindFutureByOwner,
		},
		CategoryWaiting: {
			byBooker: statusQuery(bookings.FindByStatusByBooker, domain.BookingWaiting),
			byOwner:  statusQuery(bookings.FindByStatusByOwner, domain.BookingWaiting),
		},
		CategoryRejected: {
			byBooker: statusQuery(bookings.FindByStatusByBooker, domain.BookingRejected),
			byOwner:  statusQuery(bookings.FindByStatusByOwner, domain.BookingRejected),
		},
	}

	return s
}

func statusQuery(
	find func(ctx context.Context, subjectID int64, status domain.BookingStatus, limit, offset int) ([]domain.Booking, error),
	status domain.BookingStatus,
) func(ctx context.Context, subjectID int64, now time.Time, limit, offset int) ([]domain.Booking, error) {
	return func(ctx context.Context, subjectID int64, _ time.Time, limit, offset int) ([]domain.Booking, error) {
		return find(ctx, subjectID, status, limit, offset)
	}
}

// Create validates the request and persists a new WAITING booking.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest, requesterID int64) (*domain.Booking, error) {
	now := s.clock.Now()

	if err := s.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}
	if _, err := s.getItemOrNotFound(ctx, req.ItemID); err != nil {
		return nil, err
	}
	if err := validateDates(req.Start, req.End, now); err != nil {
		return nil, err
	}

	available, err := s.items.IsAvailable(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, fmt.Errorf("%w: item %d unavailable", ErrValidation, req.ItemID)
	}

	b := &domain.Booking{
		ItemID:   req.ItemID,
		BookerID: requesterID,
		Start:    req.Start,
		End:      req.End,
		Status:   domain.BookingWaiting,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	s.log.Info("booking_created",
		"booking_id", b.ID, "item_id", b.ItemID, "booker_id", b.BookerID)
	return b, nil
}

// Approve moves a WAITING booking to APPROVED or REJECTED. Only the owner
// of the booked item may do it, and only once.
func (s *Service) Approve(ctx context.Context, bookingID, ownerID int64, approved bool) (*domain.Booking, error) {
	b, err := s.getBookingOrNotFound(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	item, err := s.getItemOrNotFound(ctx, b.ItemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: access denied for user %d", ErrForbidden, ownerID)
	}

	if b.Status != domain.BookingWaiting {
		return nil, fmt.Errorf("%w: invalid request status %s", ErrValidation, b.Status)
	}

	next := domain.BookingApproved
	if !approved {
		next = domain.BookingRejected
	}
	if err := s.bookings.UpdateStatus(ctx, bookingID, next); err != nil {
		return nil, err
	}
	b.Status = next

	event := "booking_approved"
	if !approved {
		event = "booking_rejected"
	}
	s.log.Info(event, "booking_id", b.ID, "item_id", b.ItemID, "owner_id", ownerID)

	return b, nil
}

// GetByID returns the booking to its booker or to the owner of the booked
// item. Anyone else is rejected.
func (s *Service) GetByID(ctx context.Context, requesterID, bookingID int64) (*domain.Booking, error) {
	if err := s.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}

	b, err := s.getBookingOrNotFound(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	item, err := s.getItemOrNotFound(ctx, b.ItemID)
	if err != nil {
		return nil, err
	}
	if requesterID != b.BookerID && requesterID != item.OwnerID {
		return nil, fmt.Errorf("%w: access denied for user %d", ErrForbidden, requesterID)
	}

	return b, nil
}

// ListForBooker classifies the user's own bookings. "now" is sampled once
// so every predicate of the call sees the same instant.
func (s *Service) ListForBooker(ctx context.Context, bookerID int64, category Category, offset, limit int) ([]domain.Booking, error) {
	if err := s.requireUser(ctx, bookerID); err != nil {
		return nil, err
	}

	q, ok := s.queries[category]
	if !ok {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}
	return q.byBooker(ctx, bookerID, s.clock.Now(), limit, offset)
}

// ListForOwner classifies bookings on the user's items. The user must own
// at least one item.
func (s *Service) ListForOwner(ctx context.Context, ownerID int64, category Category, offset, limit int) ([]domain.Booking, error) {
	hasItems, err := s.items.OwnerHasAnyItem(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !hasItems {
		return nil, fmt.Errorf("%w: no items for user %d", ErrNotFound, ownerID)
	}

	q, ok := s.queries[category]
	if !ok {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}
	return q.byOwner(ctx, ownerID, s.clock.Now(), limit, offset)
}

func validateDates(start, end time.Time, now time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: dates must not be empty", ErrValidation)
	}
	if !start.Before(end) {
		return fmt.Errorf("%w: start must precede end", ErrValidation)
	}
	if start.Before(now) {
		return fmt.Errorf("%w: start cannot be in the past", ErrValidation)
	}
	return nil
}

func (s *Service) requireUser(ctx context.Context, userID int64) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: user with id = %d not found", ErrNotFound, userID)
	}
	return nil
}

func (s *Service) getBookingOrNotFound(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking with id = %d not found", ErrNotFound, id)
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) getItemOrNotFound(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: item with id = %d not found", ErrNotFound, id)
		}
		return nil, err
	}
	return item, nil
}
