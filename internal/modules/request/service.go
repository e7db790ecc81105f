package request

import (
	"context"
	"errors"
	"fmt"

	"shareit/internal/clock"
	"shareit/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	requests RequestRepository
	users    UserGate
	items    ItemFinder
	clock    clock.Clock
}

func NewService(requests RequestRepository, users UserGate, items ItemFinder, clk clock.Clock) *Service {
	return &Service{
		requests: requests,
		users:    users,
		items:    items,
		clock:    clk,
	}
}

// Create records a new item request with the creation instant stamped from
// the service clock.
func (s *Service) Create(ctx context.Context, requestorID int64, req CreateRequestRequest) (*RequestDetails, error) {
	if err := s.requireUser(ctx, requestorID); err != nil {
		return nil, err
	}

	r := &domain.ItemRequest{
		RequestorID: requestorID,
		Description: req.Description,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.requests.Create(ctx, r); err != nil {
		return nil, err
	}

	d := toRequestDetails(r)
	return &d, nil
}

// ListOwn returns the user's requests, newest first, each with the items
// listed in answer to it.
func (s *Service) ListOwn(ctx context.Context, requestorID int64) ([]RequestDetails, error) {
	if err := s.requireUser(ctx, requestorID); err != nil {
		return nil, err
	}

	requests, err := s.requests.FindByRequestor(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

// ListAll pages through every request, newest first, with items attached.
func (s *Service) ListAll(ctx context.Context, offset, limit int) ([]RequestDetails, error) {
	requests, err := s.requests.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

func (s *Service) GetByID(ctx context.Context, requestID int64) (*RequestDetails, error) {
	r, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: request with id = %d not found", ErrNotFound, requestID)
		}
		return nil, err
	}

	out, err := s.attachItems(ctx, []domain.ItemRequest{*r})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// attachItems fetches the answering items for the whole batch in one query
// and groups them by request.
func (s *Service) attachItems(ctx context.Context, requests []domain.ItemRequest) ([]RequestDetails, error) {
	ids := make([]int64, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}

	items, err := s.items.FindByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	itemsByRequest := make(map[int64][]ItemRef)
	for _, i := range items {
		if i.RequestID == nil {
			continue
		}
		itemsByRequest[*i.RequestID] = append(itemsByRequest[*i.RequestID], toItemRef(&i))
	}

	out := make([]RequestDetails, 0, len(requests))
	for idx := range requests {
		d := toRequestDetails(&requests[idx])
		if refs, ok := itemsByRequest[d.ID]; ok {
			d.Items = refs
		}
		out = append(out, d)
	}
	return out, nil
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

func toRequestDetails(r *domain.ItemRequest) RequestDetails {
	return RequestDetails{
		ID:          r.ID,
		RequestorID: r.RequestorID,
		Description: r.Description,
		Created:     r.CreatedAt,
		Items:       []ItemRef{},
	}
}

func toItemRef(i *domain.Item) ItemRef {
	ref := ItemRef{
		ID:        i.ID,
		OwnerID:   i.OwnerID,
		Name:      i.Name,
		Available: i.Available,
	}
	if i.RequestID != nil {
		ref.RequestID = *i.RequestID
	}
	return ref
}
