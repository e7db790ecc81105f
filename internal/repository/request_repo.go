package repository

import (
	"context"
	"time"

	"shareit/internal/domain"

	"gorm.io/gorm"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

type requestModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	RequestorID int64     `gorm:"column:requestor_id;index"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (requestModel) TableName() string { return "requests" }

func toDomainRequest(m requestModel) *domain.ItemRequest {
	return &domain.ItemRequest{
		ID:          m.ID,
		RequestorID: m.RequestorID,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

func toDomainRequests(ms []requestModel) []domain.ItemRequest {
	out := make([]domain.ItemRequest, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRequest(m))
	}
	return out
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.ItemRequest) error {
	m := requestModel{
		RequestorID: req.RequestorID,
		Description: req.Description,
		CreatedAt:   req.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*req = *toDomainRequest(m)
	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	var m requestModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRequest(m), nil
}

// FindByRequestor lists the user's own requests, newest first.
func (r *RequestRepository) FindByRequestor(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error) {
	var ms []requestModel
	tx := r.db.WithContext(ctx).
		Where("requestor_id = ?", requestorID).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRequests(ms), nil
}

func (r *RequestRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.ItemRequest, error) {
	var ms []requestModel
	tx := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRequests(ms), nil
}

func (r *RequestRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&requestModel{}).Where("id = ?", id).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}
