// Package pagination parses page/limit query params and applies them to
// GORM list queries.
package pagination

import (
	"strconv"

	"github.com/copperstate/realty-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Query holds parsed pagination parameters.
type Query struct {
	Page  int
	Limit int
}

// FromContext extracts and validates pagination params from the request.
func FromContext(c *gin.Context) Query {
	page := parseIntOr(c.DefaultQuery("page", "1"), DefaultPage)
	limit := parseIntOr(c.DefaultQuery("limit", "10"), DefaultLimit)

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Query{Page: page, Limit: limit}
}

// Meta computes pagination metadata for a total count.
func Meta(q Query, total int64) response.Pagination {
	pages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return response.Pagination{
		Page:  q.Page,
		Limit: q.Limit,
		Total: total,
		Pages: pages,
	}
}

// Paginate applies skip/limit to a GORM query and returns pagination metadata.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (response.Pagination, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return response.Pagination{}, err
	}

	skip := (q.Page - 1) * q.Limit
	if err := db.Offset(skip).Limit(q.Limit).Find(dest).Error; err != nil {
		return response.Pagination{}, err
	}

	return Meta(q, total), nil
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
