package request

import "time"

type CreateRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

// ItemRef is the short item summary attached to a request: enough for the
// requestor to find and book the answering listing.
type ItemRef struct {
	ID        int64  `json:"id"`
	OwnerID   int64  `json:"owner_id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
	RequestID int64  `json:"request_id"`
}

type RequestDetails struct {
	ID          int64     `json:"id"`
	RequestorID int64     `json:"requestor_id"`
	Description string    `json:"description"`
	Created     time.Time `json:"created"`
	Items       []ItemRef `json:"items"`
}
