package services

import (
	"context"

	"grocery-recipe/dto"
	"grocery-recipe/models"
	"grocery-recipe/repositories"

	"github.com/pkg/errors"
)

type IItemService interface {
	FindByEmail(ctx context.Context, email string) ([]models.Item, error)
	Create(ctx context.Context, createItemInput dto.CreateItemInput) (*models.Item, error)
	Update(ctx context.Context, itemID string, updateItemInput dto.UpdateItemInput) (*models.Item, error)
	Delete(ctx context.Context, itemID string) error
}

type ItemService struct {
	repository repositories.IItemRepository
}

func NewItemService(repository repositories.IItemRepository) IItemService {
	return &ItemService{repository: repository}
}

func (s *ItemService) FindByEmail(ctx context.Context, email string) ([]models.Item, error) {
	return s.repository.FindByEmail(ctx, email)
}

func (s *ItemService) Create(ctx context.Context, createItemInput dto.CreateItemInput) (*models.Item, error) {
	if createItemInput.Quantity == nil {
		return nil, errors.Wrap(models.ErrValidation, "item: quantity is required")
	}
	newItem := models.Item{
		ItemName: createItemInput.ItemName,
		Category: createItemInput.Category,
		Quantity: float64(*createItemInput.Quantity),
		Email:    createItemInput.Email,
	}
	return s.repository.Create(ctx, newItem)
}

// Update 対象が存在しなければ (nil, nil) を返す。呼び出し側は404にしない
func (s *ItemService) Update(ctx context.Context, itemID string, updateItemInput dto.UpdateItemInput) (*models.Item, error) {
	targetItem, err := s.repository.FindByID(ctx, itemID)
	if err != nil || targetItem == nil {
		return nil, err
	}

	if updateItemInput.ItemName != nil {
		targetItem.ItemName = *updateItemInput.ItemName
	}
	if updateItemInput.Category != nil {
		targetItem.Category = *updateItemInput.Category
	}
	if updateItemInput.Quantity != nil {
		targetItem.Quantity = float64(*updateItemInput.Quantity)
	}
	if updateItemInput.Email != nil {
		targetItem.Email = *updateItemInput.Email
	}
	return s.repository.Update(ctx, *targetItem)
}

func (s *ItemService) Delete(ctx context.Context, itemID string) error {
	return s.repository.Delete(ctx, itemID)
}
