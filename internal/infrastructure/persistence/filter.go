package persistence

import (
	"fmt"

	"github.com/shoply/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// Allowed sort columns per entity. Sorting is restricted to an allow-list
// so a filter can never inject arbitrary SQL into ORDER BY.
var (
	storeSortFields = map[string]bool{
		"name":       true,
		"created_at": true,
		"updated_at": true,
	}
	productSortFields = map[string]bool{
		"name":           true,
		"price":          true,
		"stock_quantity": true,
		"created_at":     true,
		"updated_at":     true,
	}
	orderSortFields = map[string]bool{
		"created_at":   true,
		"updated_at":   true,
		"total_amount": true,
		"status":       true,
	}
)

// applyFilter applies pagination and sorting from the filter to the query
func applyFilter(query *gorm.DB, filter shared.Filter, sortFields map[string]bool) *gorm.DB {
	orderBy := filter.OrderBy
	if orderBy == "" || !sortFields[orderBy] {
		orderBy = "created_at"
	}
	dir := "DESC"
	if filter.OrderDir == "asc" {
		dir = "ASC"
	}

	return query.
		Order(fmt.Sprintf("%s %s", orderBy, dir)).
		Offset(filter.Offset()).
		Limit(filter.Limit())
}
