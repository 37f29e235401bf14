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

// itemRepository implements the adapter.ItemRepository interface.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository instance.
func NewItemRepository(db *gorm.DB) adapter.ItemRepository {
	return &itemRepository{
		db: db,
	}
}

// Create creates a new item in the database.
func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	itemModel := model.ItemFromEntity(item)
	result := r.db.WithContext(ctx).Create(itemModel)
	if result.Error != nil {
		return result.Error
	}
	item.ID = itemModel.ID
	return nil
}

// FindByID retrieves an item by its ID.
func (r *itemRepository) FindByID(ctx context.Context, id int64) (*entity.Item, error) {
	var itemModel model.ItemModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrItemNotFound
		}
		return nil, result.Error
	}
	item := itemModel.ToEntity()
	return &item, nil
}

// FindAll retrieves items matching the filter, ordered by ID.
func (r *itemRepository) FindAll(ctx context.Context, filter adapter.ItemFilter) ([]entity.Item, error) {
	query := r.db.WithContext(ctx).Model(&model.ItemModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.SourceID != nil {
		query = query.Where("source_id = ?", *filter.SourceID)
	}

	var itemModels []model.ItemModel
	if err := query.Order("id ASC").Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]entity.Item, len(itemModels))
	for i := range itemModels {
		items[i] = itemModels[i].ToEntity()
	}
	return items, nil
}

// Update updates an existing item in the database.
func (r *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	itemModel := model.ItemFromEntity(item)
	result := r.db.WithContext(ctx).Save(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an item from the database.
func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.ItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrItemNotFound
	}
	return nil
}
