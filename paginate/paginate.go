// Package paginate slices an ordered sequence into fixed-size pages.
package paginate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPage indicates a page number below 1.
	ErrInvalidPage = errors.New("page must be a positive integer")
	// ErrInvalidPageSize indicates a page size below 1.
	ErrInvalidPageSize = errors.New("page size must be a positive integer")
)

// IndexRange returns the half-open index range [start, end) of page for
// the given page size. Pages are numbered from 1.
func IndexRange(page, size int) (start, end int) {
	start = (page - 1) * size
	return start, start + size
}

// Page returns the rows of page. A page starting past the end of rows is
// empty, and the last page may be shorter than size. The returned slice
// shares its backing array with rows.
func Page[T any](rows []T, page, size int) ([]T, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPage, page)
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, size)
	}

	// Compare page numbers before multiplying so a huge page cannot
	// overflow into a valid-looking start index.
	if len(rows) == 0 || page-1 > (len(rows)-1)/size {
		return []T{}, nil
	}

	start := (page - 1) * size
	return rows[start : start+min(size, len(rows)-start)], nil
}
