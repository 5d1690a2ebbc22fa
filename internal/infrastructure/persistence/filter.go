package persistence

import (
	"fmt"
	"strings"

	"github.com/feedygotech/laundry-backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applyPagination applies page-based offset and limit from the filter
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	return query.Offset((page - 1) * pageSize).Limit(pageSize)
}

// applyOrdering applies the filter's ordering, falling back to created_at
// descending. Column names are validated against the allowed set to keep
// user input out of the ORDER BY clause.
func applyOrdering(query *gorm.DB, filter shared.Filter, allowed ...string) *gorm.DB {
	column := "created_at"
	for _, a := range allowed {
		if filter.OrderBy == a {
			column = a
			break
		}
	}
	dir := "DESC"
	if strings.EqualFold(filter.OrderDir, "asc") {
		dir = "ASC"
	}
	return query.Order(fmt.Sprintf("%s %s", column, dir))
}

// normalizedPage returns the page and page size actually used for a query
func normalizedPage(filter shared.Filter) (int, int) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	return page, pageSize
}
