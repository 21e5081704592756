package common

import (
	"errors"
	"fmt"
)

var (
	// ErrPageTooSmall is returned when the requested page number is below 1.
	ErrPageTooSmall = errors.New("page number must be at least 1")

	// ErrNoItems is returned when there is nothing to paginate at all.
	ErrNoItems = errors.New("no items to paginate")
)

// FinalPageError is returned when the requested page lies beyond the final
// page. It carries the final page number so callers can report it.
type FinalPageError struct {
	TotalPages int
}

func (e *FinalPageError) Error() string {
	return fmt.Sprintf("final page is %d", e.TotalPages)
}

// PageWindow describes a validated page of a collection. Skip and Limit feed
// directly into an OFFSET/LIMIT query; the remaining fields are navigation
// metadata for the client.
type PageWindow struct {
	Skip            int  `json:"-"`
	Limit           int  `json:"-"`
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// Paginate validates a page number against the collection size and computes
// the query window for it. pageSize must be a positive constant chosen by the
// caller.
func Paginate(page, totalItems, pageSize int) (*PageWindow, error) {
	if pageSize < 1 {
		return nil, fmt.Errorf("invalid page size %d", pageSize)
	}

	if page < 1 {
		return nil, ErrPageTooSmall
	}

	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages == 0 {
		return nil, ErrNoItems
	}

	if page > totalPages {
		return nil, &FinalPageError{TotalPages: totalPages}
	}

	return &PageWindow{
		Skip:            (page - 1) * pageSize,
		Limit:           pageSize,
		CurrentPage:     page,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page-1 >= 1,
	}, nil
}
