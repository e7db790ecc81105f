package booking

import (
	"fmt"
	"strings"
)

// Category buckets a listing of bookings relative to a single "now":
// temporal buckets (CURRENT/PAST/FUTURE) partition ALL together with the
// interval predicates, WAITING and REJECTED filter on the status field.
type Category string

const (
	CategoryAll      Category = "ALL"
	CategoryCurrent  Category = "CURRENT"
	CategoryPast     Category = "PAST"
	CategoryFuture   Category = "FUTURE"
	CategoryWaiting  Category = "WAITING"
	CategoryRejected Category = "REJECTED"
)

// ParseCategory resolves a request string to a Category. Empty input means
// ALL. Unknown values are rejected at the boundary, before the service.
func ParseCategory(s string) (Category, error) {
	if strings.TrimSpace(s) == "" {
		return CategoryAll, nil
	}

	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case CategoryAll, CategoryCurrent, CategoryPast, CategoryFuture, CategoryWaiting, CategoryRejected:
		return c, nil
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrValidation, s)
}
