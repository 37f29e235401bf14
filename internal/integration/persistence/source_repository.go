package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/inventory-tracker/backend/internal/application/adapter"
	"github.com/inventory-tracker/backend/internal/domain/entity"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
	"github.com/inventory-tracker/backend/internal/integration/persistence/model"
)

// sourceRepository implements the adapter.SourceRepository interface.
type sourceRepository struct {
	db *gorm.DB
}

// NewSourceRepository creates a new source repository instance.
func NewSourceRepository(db *gorm.DB) adapter.SourceRepository {
	return &sourceRepository{
		db: db,
	}
}

// Create creates a new source in the database.
func (r *sourceRepository) Create(ctx context.Context, source *entity.Source) error {
	sourceModel := model.SourceFromEntity(source)
	if err := r.db.WithContext(ctx).Create(sourceModel).Error; err != nil {
		return err
	}
	source.ID = sourceModel.ID
	return nil
}

// FindByID retrieves a source by its ID.
func (r *sourceRepository) FindByID(ctx context.Context, id int64) (*entity.Source, error) {
	var sourceModel model.SourceModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&sourceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSourceNotFound
		}
		return nil, result.Error
	}
	source := sourceModel.ToEntity()
	return &source, nil
}

// FindAll retrieves all sources ordered by name.
func (r *sourceRepository) FindAll(ctx context.Context) ([]entity.Source, error) {
	var sourceModels []model.SourceModel
	if err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&sourceModels).Error; err != nil {
		return nil, err
	}

	sources := make([]entity.Source, len(sourceModels))
	for i := range sourceModels {
		sources[i] = sourceModels[i].ToEntity()
	}
	return sources, nil
}

// ExistsByName checks if a source with the given name exists.
func (r *sourceRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.SourceModel{}).
		Where("name = ?", name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
