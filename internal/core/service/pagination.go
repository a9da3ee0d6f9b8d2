package service

import (
	"fmt"

	"github.com/willsblog/microblog-api/internal/core/domain"
)

// maxPageSize caps how many posts a single page may return.
const maxPageSize = 100

// normalizePage validates 1-indexed pagination parameters and returns the
// offset of the first row. pageSize is clamped to maxPageSize.
func normalizePage(page, pageSize int) (offset, limit int, err error) {
	if page <= 0 {
		return 0, 0, fmt.Errorf("page must be >= 1: %w", domain.ErrInvalidArgument)
	}
	if pageSize <= 0 {
		return 0, 0, fmt.Errorf("page size must be >= 1: %w", domain.ErrInvalidArgument)
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return (page - 1) * pageSize, pageSize, nil
}
