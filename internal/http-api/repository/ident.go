package repository

import (
	"strconv"

	"gorm.io/gorm"
)

// Ident is a tagged identifier: either a numeric id or a natural-key slug.
// Repositories branch on the tag instead of inspecting runtime types.
type Ident struct {
	id   int64
	slug string
	byID bool
}

// ByID builds an Ident addressing a row by its numeric primary key.
func ByID(id int64) Ident {
	return Ident{id: id, byID: true}
}

// BySlug builds an Ident addressing a row by its unique slug column.
func BySlug(slug string) Ident {
	return Ident{slug: slug}
}

// ParseIdent derives an Ident from a path parameter: a parsable integer is
// treated as an id, anything else as a slug.
func ParseIdent(param string) Ident {
	if id, err := strconv.ParseInt(param, 10, 64); err == nil {
		return ByID(id)
	}
	return BySlug(param)
}

func (i Ident) where(db *gorm.DB, slugColumn string) *gorm.DB {
	if i.byID {
		return db.Where("id = ?", i.id)
	}
	return db.Where(slugColumn+" = ?", i.slug)
}
