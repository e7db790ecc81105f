package item

import "time"

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"request_id"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
	RequestID   *int64  `json:"request_id"`
}

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	AuthorID   int64     `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	Created    time.Time `json:"created"`
}

// ItemDetails is an item with its display attachments: comments always,
// the last/next booking pair only on the owner's listing.
type ItemDetails struct {
	ID          int64             `json:"id"`
	OwnerID     int64             `json:"owner_id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	LastBooking *BookingRef       `json:"last_booking,omitempty"`
	NextBooking *BookingRef       `json:"next_booking,omitempty"`
	Comments    []CommentResponse `json:"comments"`
}
