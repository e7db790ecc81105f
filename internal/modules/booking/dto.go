package booking

import "time"

type CreateBookingRequest struct {
	ItemID int64     `json:"item_id" binding:"required"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
}
