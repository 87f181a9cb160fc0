package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arjunrv/mentorhub/internal/app/models/dto"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	DefaultPage     = 1 // page numbers are 1-based
)

// ClampPagination normalizes raw page/limit values to the allowed ranges:
// limit is clamped to [1, MaxPageSize] (default when out of range), page is
// floored to 1.
func ClampPagination(page, limit int) (int, int) {
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if page < 1 {
		page = DefaultPage
	}
	return page, limit
}

// CalculateOffsetLimit calculates the offset and limit for SQL queries based
// on 1-based page index.
func CalculateOffsetLimit(page, limit int) (offset uint64, clamped int) {
	page, clamped = ClampPagination(page, limit)
	offset = uint64((page - 1) * clamped)
	return offset, clamped
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page should be the 1-based page number.
func NewPaginationInfo(totalItems int64, page, limit int) dto.PaginationInfo {
	page, limit = ClampPagination(page, limit)

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	} else if page == 1 {
		totalPages = 1
	}

	currentPage := page
	if totalPages > 0 && currentPage > totalPages {
		currentPage = totalPages
	}

	return dto.PaginationInfo{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		PageSize:    limit,
		TotalItems:  totalItems,
	}
}

// ParsePaginationParams extracts and validates pagination parameters from the request
func ParsePaginationParams(c *gin.Context) (page, limit int) {
	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		page = DefaultPage
	}

	limitStr := c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize))
	limit, err = strconv.Atoi(limitStr)
	if err != nil {
		limit = DefaultPageSize
	}

	return ClampPagination(page, limit)
}
