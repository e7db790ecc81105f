package repository

import (
	"context"
	"strings"
	"time"

	"shareit/internal/domain"

	"gorm.io/gorm"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

type itemModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	OwnerID     int64     `gorm:"column:owner_id;index"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	Available   bool      `gorm:"column:available"`
	RequestID   *int64    `gorm:"column:request_id;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (itemModel) TableName() string { return "items" }

func toDomainItem(m itemModel) *domain.Item {
	return &domain.Item{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Description: m.Description,
		Available:   m.Available,
		RequestID:   m.RequestID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toItemModel(i *domain.Item) itemModel {
	return itemModel{
		ID:          i.ID,
		OwnerID:     i.OwnerID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		RequestID:   i.RequestID,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func (r *ItemRepository) Create(ctx context.Context, i *domain.Item) error {
	m := toItemModel(i)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*i = *toDomainItem(m)
	return nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	var m itemModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainItem(m), nil
}

func (r *ItemRepository) Update(ctx context.Context, i *domain.Item) error {
	m := toItemModel(i)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*i = *toDomainItem(m)
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&itemModel{}, id).Error
}

func (r *ItemRepository) GetAllByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]domain.Item, error) {
	var ms []itemModel
	tx := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Item, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainItem(m))
	}
	return out, nil
}

// Search matches available items by case-insensitive substring over name
// and description.
func (r *ItemRepository) Search(ctx context.Context, text string, limit, offset int) ([]domain.Item, error) {
	pattern := "%" + strings.ToLower(text) + "%"

	var ms []itemModel
	q := `
SELECT * FROM items
WHERE available = ?
  AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)
ORDER BY id ASC
LIMIT ? OFFSET ?
`
	tx := r.db.WithContext(ctx).Raw(q, true, pattern, pattern, limit, offset).Scan(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Item, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainItem(m))
	}
	return out, nil
}

// FindByRequestIDs returns the items listed in answer to a batch of
// requests, for attaching to request listings.
func (r *ItemRepository) FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]domain.Item, error) {
	if len(requestIDs) == 0 {
		return []domain.Item{}, nil
	}

	var ms []itemModel
	tx := r.db.WithContext(ctx).
		Where("request_id IN ?", requestIDs).
		Order("id ASC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Item, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainItem(m))
	}
	return out, nil
}

func (r *ItemRepository) IsAvailable(ctx context.Context, id int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&itemModel{}).
		Where("id = ? AND available = ?", id, true).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *ItemRepository) OwnerHasAnyItem(ctx context.Context, ownerID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&itemModel{}).
		Where("owner_id = ?", ownerID).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}
