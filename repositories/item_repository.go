package repositories

import (
	"context"

	"grocery-recipe/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// IItemRepository FindByID/Updateは対象が存在しない場合 (nil, nil) を返す
type IItemRepository interface {
	FindByEmail(ctx context.Context, email string) ([]models.Item, error)
	FindByID(ctx context.Context, itemID string) (*models.Item, error)
	Create(ctx context.Context, newItem models.Item) (*models.Item, error)
	Update(ctx context.Context, item models.Item) (*models.Item, error)
	Delete(ctx context.Context, itemID string) error
}

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) IItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, newItem models.Item) (*models.Item, error) {
	result := r.db.WithContext(ctx).Create(&newItem)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "could not insert item")
	}
	return &newItem, nil
}

// Delete 存在しないIDでもエラーにしない
func (r *ItemRepository) Delete(ctx context.Context, itemID string) error {
	result := r.db.WithContext(ctx).Delete(&models.Item{}, "id = ?", itemID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "could not delete item")
	}
	return nil
}

func (r *ItemRepository) FindByEmail(ctx context.Context, email string) ([]models.Item, error) {
	items := []models.Item{}
	result := r.db.WithContext(ctx).Where("email = ?", email).Find(&items)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "could not list items")
	}
	return items, nil
}

func (r *ItemRepository) FindByID(ctx context.Context, itemID string) (*models.Item, error) {
	var item models.Item
	result := r.db.WithContext(ctx).First(&item, "id = ?", itemID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(result.Error, "could not find item")
	}
	return &item, nil
}

func (r *ItemRepository) Update(ctx context.Context, item models.Item) (*models.Item, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	// モデルのフックは空のItemに対して走ってしまうのでスキップする
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{SkipHooks: true}).
		Model(&models.Item{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"itemname": item.ItemName,
			"category": item.Category,
			"quantity": item.Quantity,
			"email":    item.Email,
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "could not update item")
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &item, nil
}
