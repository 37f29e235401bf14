package entity

import "time"

// Source is where an item was acquired (supplier, flea market, consignor...).
type Source struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSource creates a new Source entity.
func NewSource(name string) *Source {
	now := time.Now().UTC()

	return &Source{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
