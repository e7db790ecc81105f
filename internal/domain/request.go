package domain

import "time"

// ItemRequest is a wish for an item nobody has listed yet. Owners answer it
// by listing an item that references the request.
type ItemRequest struct {
	ID          int64     `json:"id"`
	RequestorID int64     `json:"requestor_id" validate:"required"`
	Description string    `json:"description" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
}
