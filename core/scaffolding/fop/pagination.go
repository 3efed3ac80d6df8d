package fop

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Default page values.
const (
	DefaultPageSize   = 50
	DefaultPageNumber = 1
)

// ErrInvalidPage is returned for a page size below 1 or a page number below 1.
var ErrInvalidPage = errors.New("invalid page")

// Page represents a requested page of an offset paginated listing.
type Page struct {
	Size   int
	Number int
}

// DefaultPage returns the first page of DefaultPageSize items.
func DefaultPage() Page {
	return Page{
		Size:   DefaultPageSize,
		Number: DefaultPageNumber,
	}
}

// Validate rejects non-positive sizes and page numbers, and pages whose
// offset does not fit in an int.
func (p Page) Validate() error {
	if p.Size <= 0 {
		return fmt.Errorf("%w: size %d, must be larger than 0", ErrInvalidPage, p.Size)
	}
	if p.Number < 1 {
		return fmt.Errorf("%w: number %d, must be 1 or larger", ErrInvalidPage, p.Number)
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return fmt.Errorf("%w: number %d out of range for size %d", ErrInvalidPage, p.Number, p.Size)
	}
	return nil
}

// Offset is the number of rows skipped before this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// ParsePage builds a Page from query string values, falling back to the
// defaults for empty inputs.
func ParsePage(size string, number string) (Page, error) {
	page := DefaultPage()

	if size != "" {
		v, err := strconv.Atoi(size)
		if err != nil {
			return Page{}, fmt.Errorf("page size conversion: %w", err)
		}
		page.Size = v
	}

	if number != "" {
		v, err := strconv.Atoi(number)
		if err != nil {
			return Page{}, fmt.Errorf("page number conversion: %w", err)
		}
		page.Number = v
	}

	if err := page.Validate(); err != nil {
		return Page{}, err
	}
	return page, nil
}

// PageResult is one page of items plus the metadata needed to walk the rest.
type PageResult[T any] struct {
	Items      []T   `json:"items"`
	PageSize   int   `json:"pageSize"`
	PageNumber int   `json:"pageNumber"`
	TotalCount int64 `json:"totalCount"`
}

// TotalPages is the number of pages needed to hold TotalCount items.
func (r PageResult[T]) TotalPages() int {
	if r.PageSize <= 0 || r.TotalCount == 0 {
		return 0
	}
	return int((r.TotalCount + int64(r.PageSize) - 1) / int64(r.PageSize))
}

// HasNext reports whether a later page exists.
func (r PageResult[T]) HasNext() bool {
	return r.PageNumber < r.TotalPages()
}

// HasPrev reports whether an earlier page exists.
func (r PageResult[T]) HasPrev() bool {
	return r.PageNumber > 1
}
