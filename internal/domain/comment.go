package domain

import "time"

type Comment struct {
	ID        int64     `json:"id"`
	ItemID    int64     `json:"item_id" validate:"required"`
	AuthorID  int64     `json:"author_id" validate:"required"`
	Text      string    `json:"text" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}
