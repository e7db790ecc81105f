package repository

import (
	"context"
	"time"

	"shareit/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	ItemID    int64     `gorm:"column:item_id;index"`
	BookerID  int64     `gorm:"column:booker_id;index"`
	Start     time.Time `gorm:"column:start_time"`
	End       time.Time `gorm:"column:end_time"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:        m.ID,
		ItemID:    m.ItemID,
		BookerID:  m.BookerID,
		Start:     m.Start,
		End:       m.End,
		Status:    domain.BookingStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:        b.ID,
		ItemID:    b.ItemID,
		BookerID:  b.BookerID,
		Start:     b.Start,
		End:       b.End,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toDomainBookings(ms []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()}).
		Error
}

// Booker-side classification queries. Ordering is always start_time DESC so
// the most recent start surfaces first regardless of bucket.

func (r *BookingRepository) FindAllByBooker(ctx context.Context, bookerID int64, limit, offset int) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("booker_id = ?", bookerID).
		Order("start_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) FindCurrentByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("booker_id = ? AND start_time < ? AND end_time > ?", bookerID, now, now).
		Order("start_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) FindPastByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("booker_id = ? AND end_time < ?", bookerID, now).
		Order("start_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) FindFutureByBooker(ctx context.Context, bookerID int64, now time.Time, limit, offset int) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("booker_id = ? AND start_time > ?", bookerID, now).
		Order("start_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) FindByStatusByBooker(ctx context.Context, bookerID int64, status domain.BookingStatus, limit, offset int) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("booker_id = ? AND status = ?", bookerID, string(status)).
		Order("start_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

// Owner-side queries join through items to scope on the item owner.

func (r *BookingRepository) FindAllByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]domain.Booking, error) {
	var ms []bookingModel
	q := `
SELECT b.* FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE i.owner_id = ?
ORDER BY b.start_time DESC
LIMIT ? OFFSET ?
`
	tx := r.db.WithContext(ctx).Raw(q, ownerID, limit, offset).Scan(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) FindCurrentByOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]domain.Booking, error) {
	var ms []bookingModel
	q := `
SELECT b.* FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE i.owner_id = ?
  AND b.start_time < ?
  AND b.end_time > ?
ORDER BY b.start_time DESC
LIMIT ? OFFSET ?
`
	tx := r.db.WithContext(ctx).Raw(q, ownerID, now, now, limit, offset).Scan(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) FindPastByOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]domain.Booking, error) {
	var ms []bookingModel
	q := `
SELECT b.* FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE i.owner_id = ?
  AND b.end_time < ?
ORDER BY b.start_time DESC
LIMIT ? OFFSET ?
`
	tx := r.db.WithContext(ctx).Raw(q, ownerID, now, limit, offset).Scan(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) FindFutureByOwner(ctx context.Context, ownerID int64, now time.Time, limit, offset int) ([]domain.Booking, error) {
	var ms []bookingModel
	q := `
SELECT b.* FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE i.owner_id = ?
  AND b.start_time > ?
ORDER BY b.start_time DESC
LIMIT ? OFFSET ?
`
	tx := r.db.WithContext(ctx).Raw(q, ownerID, now, limit, offset).Scan(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) FindByStatusByOwner(ctx context.Context, ownerID int64, status domain.BookingStatus, limit, offset int) ([]domain.Booking, error) {
	var ms []bookingModel
	q := `
SELECT b.* FROM bookings b
JOIN items i ON i.id = b.item_id
WHERE i.owner_id = ?
  AND b.status = ?
ORDER BY b.start_time DESC
LIMIT ? OFFSET ?
`
	tx := r.db.WithContext(ctx).Raw(q, ownerID, string(status), limit, offset).Scan(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

// FindApprovedByItemIDs returns the approved bookings for a batch of items,
// start ascending, for the last/next projection on item listings.
func (r *BookingRepository) FindApprovedByItemIDs(ctx context.Context, itemIDs []int64) ([]domain.Booking, error) {
	if len(itemIDs) == 0 {
		return []domain.Booking{}, nil
	}

	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("item_id IN ? AND status = ?", itemIDs, string(domain.BookingApproved)).
		Order("start_time ASC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

// HasFinishedBooking reports whether the user has a booking of the item that
// ended before now. Gates comment posting.
func (r *BookingRepository) HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("booker_id = ? AND item_id = ? AND end_time < ?", bookerID, itemID, now).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}
