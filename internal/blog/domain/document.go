package domain

import (
	"regexp"
	"time"
)

// Collection names a document collection.
type Collection string

const (
	Authors    Collection = "authors"
	Articles   Collection = "articles"
	Categories Collection = "categories"
)

// Collections lists every collection the API serves.
var Collections = []Collection{Authors, Articles, Categories}

func (c Collection) String() string { return string(c) }

// Valid reports whether c is a known collection.
func (c Collection) Valid() bool {
	switch c {
	case Authors, Articles, Categories:
		return true
	}
	return false
}

// Document is a schemaless JSON object stored in a collection. Data never
// contains the id; it lives beside the payload.
type Document struct {
	ID         string
	Collection Collection
	Data       map[string]any
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Filter matches documents whose top-level Field equals Value.
type Filter struct {
	Field string
	Value string
}

var fieldName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidFieldName reports whether name can be used as a top-level document
// field. Drivers splice field names into JSON paths so this is enforced
// before any query runs.
func ValidFieldName(name string) bool {
	return fieldName.MatchString(name)
}
