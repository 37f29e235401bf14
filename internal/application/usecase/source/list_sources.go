package source

import (
	"context"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
)

// ListSourcesOutput represents the output of listing sources.
type ListSourcesOutput struct {
	Sources []entity.Source
}

// ListSourcesUseCase handles listing sources logic.
type ListSourcesUseCase struct {
	sourceRepo adapter.SourceRepository
}

// NewListSourcesUseCase creates a new ListSourcesUseCase instance.
func NewListSourcesUseCase(sourceRepo adapter.SourceRepository) *ListSourcesUseCase {
	return &ListSourcesUseCase{
		sourceRepo: sourceRepo,
	}
}

// Execute performs the source listing.
func (uc *ListSourcesUseCase) Execute(ctx context.Context) (*ListSourcesOutput, error) {
	sources, err := uc.sourceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return &ListSourcesOutput{Sources: sources}, nil
}
