// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// Category groups inventory items. Items hold the foreign key.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name string) *Category {
	now := time.Now().UTC()

	return &Category{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
