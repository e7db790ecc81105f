package item

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shareit/internal/clock"
	"shareit/internal/domain"
	"shareit/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	items    ItemRepository
	users    UserGate
	bookings BookingLookup
	comments CommentStore
	requests RequestGate
	clock    clock.Clock
}

func NewService(items ItemRepository, users UserGate, bookings BookingLookup, comments CommentStore, requests RequestGate, clk clock.Clock) *Service {
	return &Service{
		items:    items,
		users:    users,
		bookings: bookings,
		comments: comments,
		requests: requests,
		clock:    clk,
	}
}

func (s *Service) Create(ctx context.Context, ownerID int64, req CreateItemRequest) (*domain.Item, error) {
	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}
	if err := s.requireRequest(ctx, req.RequestID); err != nil {
		return nil, err
	}

	i := &domain.Item{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	}
	if err := s.items.Create(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *Service) Edit(ctx context.Context, ownerID, itemID int64, req UpdateItemRequest) (*domain.Item, error) {
	i, err := s.getItemOrNotFound(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if i.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: access denied for user %d", ErrForbidden, ownerID)
	}

	if req.Name != nil {
		i.Name = *req.Name
	}
	if req.Description != nil {
		i.Description = *req.Description
	}
	if req.Available != nil {
		i.Available = *req.Available
	}
	if req.RequestID != nil {
		if err := s.requireRequest(ctx, req.RequestID); err != nil {
			return nil, err
		}
		i.RequestID = req.RequestID
	}

	if err := s.items.Update(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, itemID int64) error {
	i, err := s.getItemOrNotFound(ctx, itemID)
	if err != nil {
		return err
	}
	if i.OwnerID != ownerID {
		return fmt.Errorf("%w: access denied for user %d", ErrForbidden, ownerID)
	}
	return s.items.Delete(ctx, itemID)
}

// GetByID returns one item with its comments. The last/next projection is
// an owner-listing concern and is not attached here.
func (s *Service) GetByID(ctx context.Context, itemID int64) (*ItemDetails, error) {
	i, err := s.getItemOrNotFound(ctx, itemID)
	if err != nil {
		return nil, err
	}

	rows, err := s.comments.FindByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	d := toItemDetails(i)
	d.Comments = toCommentResponses(rows)
	return d, nil
}

// ListByOwner returns the owner's items with comments and the last/next
// booking pair. The approved bookings for the whole page are fetched in
// one query and grouped by item; "now" is sampled once for the page.
func (s *Service) ListByOwner(ctx context.Context, ownerID int64, offset, limit int) ([]ItemDetails, error) {
	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}

	now := s.clock.Now()

	items, err := s.items.GetAllByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}

	itemIDs := make([]int64, 0, len(items))
	for _, i := range items {
		itemIDs = append(itemIDs, i.ID)
	}

	bookings, err := s.bookings.FindApprovedByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	bookingsByItem := make(map[int64][]domain.Booking)
	for _, b := range bookings {
		bookingsByItem[b.ItemID] = append(bookingsByItem[b.ItemID], b)
	}

	commentRows, err := s.comments.FindByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	commentsByItem := make(map[int64][]CommentResponse)
	for _, r := range commentRows {
		commentsByItem[r.ItemID] = append(commentsByItem[r.ItemID], toCommentResponse(r))
	}

	out := make([]ItemDetails, 0, len(items))
	for idx := range items {
		d := toItemDetails(&items[idx])
		d.LastBooking, d.NextBooking = LastAndNext(bookingsByItem[d.ID], now)
		if cs, ok := commentsByItem[d.ID]; ok {
			d.Comments = cs
		}
		out = append(out, *d)
	}
	return out, nil
}

// Search finds available items by substring match. A blank query returns
// an empty list without hitting the repository.
func (s *Service) Search(ctx context.Context, text string, offset, limit int) ([]domain.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []domain.Item{}, nil
	}
	return s.items.Search(ctx, text, limit, offset)
}

// PostComment stores a comment by a user who has completed a booking of
// the item. Users who never rented it, or whose booking has not ended yet,
// are rejected.
func (s *Service) PostComment(ctx context.Context, authorID, itemID int64, req CommentRequest) (*CommentResponse, error) {
	now := s.clock.Now()

	if err := s.requireUser(ctx, authorID); err != nil {
		return nil, err
	}
	if _, err := s.getItemOrNotFound(ctx, itemID); err != nil {
		return nil, err
	}

	used, err := s.bookings.HasFinishedBooking(ctx, authorID, itemID, now)
	if err != nil {
		return nil, err
	}
	if !used {
		return nil, fmt.Errorf("%w: user %d has not completed a booking of item %d", ErrValidation, authorID, itemID)
	}

	cm := &domain.Comment{
		ItemID:    itemID,
		AuthorID:  authorID,
		Text:      req.Text,
		CreatedAt: now,
	}
	if err := s.comments.Create(ctx, cm); err != nil {
		return nil, err
	}

	rows, err := s.comments.FindByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		if r.ID == cm.ID {
			resp := toCommentResponse(r)
			return &resp, nil
		}
	}
	return &CommentResponse{
		ID:       cm.ID,
		AuthorID: cm.AuthorID,
		Text:     cm.Text,
		Created:  cm.CreatedAt,
	}, nil
}

// requireRequest checks the back-reference when an item claims to answer
// an item request. nil means the item was listed freely.
func (s *Service) requireRequest(ctx context.Context, requestID *int64) error {
	if requestID == nil {
		return nil
	}
	exists, err := s.requests.Exists(ctx, *requestID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: request with id = %d not found", ErrNotFound, *requestID)
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

func (s *Service) getItemOrNotFound(ctx context.Context, id int64) (*domain.Item, error) {
	i, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: item with id = %d not found", ErrNotFound, id)
		}
		return nil, err
	}
	return i, nil
}

func toItemDetails(i *domain.Item) *ItemDetails {
	return &ItemDetails{
		ID:          i.ID,
		OwnerID:     i.OwnerID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		Comments:    []CommentResponse{},
	}
}

func toCommentResponse(r repository.CommentDetails) CommentResponse {
	return CommentResponse{
		ID:         r.ID,
		AuthorID:   r.AuthorID,
		AuthorName: r.AuthorName,
		Text:       r.Text,
		Created:    r.CreatedAt,
	}
}

func toCommentResponses(rows []repository.CommentDetails) []CommentResponse {
	out := make([]CommentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toCommentResponse(r))
	}
	return out
}
