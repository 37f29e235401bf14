// Package source contains use cases for item sources (where stock was acquired).
package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
)

// MaxSourceNameLength is the maximum allowed length for source names.
const MaxSourceNameLength = 50

// CreateSourceInput represents the input for source creation.
type CreateSourceInput struct {
	Name string
}

// CreateSourceOutput represents the output of source creation.
type CreateSourceOutput struct {
	Source *entity.Source
}

// CreateSourceUseCase handles source creation logic.
type CreateSourceUseCase struct {
	sourceRepo adapter.SourceRepository
}

// NewCreateSourceUseCase creates a new CreateSourceUseCase instance.
func NewCreateSourceUseCase(sourceRepo adapter.SourceRepository) *CreateSourceUseCase {
	return &CreateSourceUseCase{
		sourceRepo: sourceRepo,
	}
}

// Execute performs the source creation.
func (uc *CreateSourceUseCase) Execute(ctx context.Context, input CreateSourceInput) (*CreateSourceOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewSourceError(
			domainerror.ErrCodeSourceNameRequired,
			"source name is required",
			domainerror.ErrSourceNameRequired,
		)
	}
	if len(name) > MaxSourceNameLength {
		return nil, domainerror.NewSourceError(
			domainerror.ErrCodeSourceNameTooLong,
			fmt.Sprintf("source name must not exceed %d characters", MaxSourceNameLength),
			domainerror.ErrSourceNameTooLong,
		)
	}

	exists, err := uc.sourceRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check source name existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewSourceError(
			domainerror.ErrCodeSourceNameExists,
			"a source with this name already exists",
			domainerror.ErrSourceNameExists,
		)
	}

	source := entity.NewSource(name)
	if err := uc.sourceRepo.Create(ctx, source); err != nil {
		return nil, fmt.Errorf("failed to create source: %w", err)
	}

	return &CreateSourceOutput{Source: source}, nil
}
