package model

import (
	"time"

	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// SourceModel represents the sources table in the database.
type SourceModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SourceModel.
func (SourceModel) TableName() string {
	return "sources"
}

// ToEntity converts a SourceModel to a domain Source entity.
func (m *SourceModel) ToEntity() entity.Source {
	return entity.Source{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// SourceFromEntity creates a SourceModel from a domain Source entity.
func SourceFromEntity(source *entity.Source) *SourceModel {
	return &SourceModel{
		ID:        source.ID,
		Name:      source.Name,
		CreatedAt: source.CreatedAt,
		UpdatedAt: source.UpdatedAt,
	}
}
