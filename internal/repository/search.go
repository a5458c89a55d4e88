package repository

import (
	"strings"

	"gorm.io/gorm"
)

// likePattern turns a search term into a case-insensitive substring pattern.
func likePattern(query string) string {
	return "%" + strings.ToLower(query) + "%"
}

// asText casts a column to a string type in the connected dialect.
func asText(db *gorm.DB, column string) string {
	if db.Dialector.Name() == "mysql" {
		return "CAST(" + column + " AS CHAR)"
	}
	return "CAST(" + column + " AS TEXT)"
}
