package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is a node in the catalog's category tree. Deleting a parent
// cascades to its children at the storage layer.
type Category struct {
	ID        uuid.UUID
	Name      string
	Slug      string     // Unique URL-safe identifier.
	ParentID  *uuid.UUID // Nil for a root category.
	Icon      string     // URL of the category icon.
	CreatedAt time.Time
}

// Brand groups products under a manufacturer label. Deleting a brand nulls
// the reference on its products instead of deleting them.
type Brand struct {
	ID          uuid.UUID
	Name        string
	Slug        string // Unique URL-safe identifier.
	Logo        string
	Description string
	IsFeatured  bool
	CreatedAt   time.Time
}
