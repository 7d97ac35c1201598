package repository

import (
	"strings"

	"github.com/pluscontrol/plus-control-api/pkg/pagination"
	"gorm.io/gorm"
)

// SearchScope matches term case-insensitively against any of the columns.
// Column names must come from code, never from the request.
func SearchScope(term string, columns ...string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(columns) == 0 {
			return db
		}
		like := "%" + strings.ToLower(term) + "%"
		clauses := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, col := range columns {
			clauses[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = like
		}
		return db.Where(strings.Join(clauses, " OR "), args...)
	}
}

// PaginateScope applies offset and limit after validating params.
func PaginateScope(params *pagination.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if params == nil {
			return db
		}
		params.Validate()
		return db.Offset(params.Offset()).Limit(params.PerPage)
	}
}

// orderClause builds a safe ORDER BY from a whitelist, falling back to def.
func orderClause(sortBy, sortOrder string, allowed map[string]bool, def string) string {
	if !allowed[sortBy] {
		sortBy = def
	}
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	return sortBy + " " + dir
}
