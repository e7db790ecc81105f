package request

import (
	"context"

	"shareit/internal/domain"
)

type RequestRepository interface {
	Create(ctx context.Context, req *domain.ItemRequest) error
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
	FindByRequestor(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error)
	FindAll(ctx context.Context, limit, offset int) ([]domain.ItemRequest, error)
}

type UserGate interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// ItemFinder supplies the items listed in answer to the requests being
// displayed.
type ItemFinder interface {
	FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]domain.Item, error)
}
