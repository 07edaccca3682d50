package persistence

import (
	"regexp"
	"strings"

	"github.com/craftkart/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// Order-by values are interpolated into SQL, so anything that is not a plain
// column identifier is discarded rather than escaped.
var safeColumnRegex = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// applyPaging applies the filter's pagination and ordering to the query.
// Ordering falls back to newest-first when no safe column is requested.
func applyPaging(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := filter.OrderBy
	if !safeColumnRegex.MatchString(orderBy) {
		orderBy = "created_at"
	}
	dir := "DESC"
	if strings.ToLower(filter.OrderDir) == "asc" {
		dir = "ASC"
	}
	return query.Order(orderBy + " " + dir)
}
