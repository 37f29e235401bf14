package dto

import (
	"time"

	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// CreateSourceRequest represents the request body for source creation.
type CreateSourceRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// SourceResponse represents a single source in API responses.
type SourceResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SourceListResponse represents the response for listing sources.
type SourceListResponse struct {
	Sources []SourceResponse `json:"sources"`
}

// ToSourceResponse converts a domain Source entity to a SourceResponse DTO.
func ToSourceResponse(src *entity.Source) SourceResponse {
	return SourceResponse{
		ID:        src.ID,
		Name:      src.Name,
		CreatedAt: src.CreatedAt,
		UpdatedAt: src.UpdatedAt,
	}
}

// ToSourceListResponse converts sources to a SourceListResponse.
func ToSourceListResponse(sources []entity.Source) SourceListResponse {
	response := SourceListResponse{
		Sources: make([]SourceResponse, len(sources)),
	}
	for i := range sources {
		response.Sources[i] = ToSourceResponse(&sources[i])
	}
	return response
}
