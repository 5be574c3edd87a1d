package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// stringFilters applies fuzzy filters for resources that carry a name
// and a note. Empty values that are explicitly set in the query string
// match the zero value instead of being ignored.
func stringFilters(db, query *gorm.DB, setFields []string, name, note, search string) *gorm.DB {
	if name != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where("name = ''")
	}

	if note != "" {
		query = query.Where("note LIKE ?", fmt.Sprintf("%%%s%%", note))
	} else if slices.Contains(setFields, "Note") {
		query = query.Where("note = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where("note LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("name LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}

// nameFilters is the variant of stringFilters for resources that only
// carry a name.
func nameFilters(query *gorm.DB, setFields []string, name, search string) *gorm.DB {
	if name != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where("name = ''")
	}

	if search != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", search))
	}

	return query
}

// labelFilters is the transaction variant of stringFilters. Search only
// looks at the label, matching the filter engine's case-insensitive
// label substring semantics (LIKE is case-insensitive for ASCII in
// SQLite).
func labelFilters(query *gorm.DB, setFields []string, label, description, search string) *gorm.DB {
	if label != "" {
		query = query.Where("label LIKE ?", fmt.Sprintf("%%%s%%", label))
	} else if slices.Contains(setFields, "Label") {
		query = query.Where("label = ''")
	}

	if description != "" {
		query = query.Where("description LIKE ?", fmt.Sprintf("%%%s%%", description))
	} else if slices.Contains(setFields, "Description") {
		query = query.Where("description = ''")
	}

	if search != "" {
		query = query.Where("label LIKE ?", fmt.Sprintf("%%%s%%", search))
	}

	return query
}
