package services_test

import (
	"context"
	"testing"

	"grocery-recipe/dto"
	"grocery-recipe/models"
	"grocery-recipe/repositories"
	"grocery-recipe/services"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quantity(v float64) *dto.Number {
	n := dto.Number(v)
	return &n
}

func strPtr(s string) *string { return &s }

func TestItemServiceCreate(t *testing.T) {
	service := services.NewItemService(repositories.NewItemRepository(setupSQLite(t)))
	ctx := context.Background()

	item, err := service.Create(ctx, dto.CreateItemInput{ItemName: "Egg", Category: "Dairy", Quantity: quantity(6), Email: "a@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)

	_, err = service.Create(ctx, dto.CreateItemInput{ItemName: "Egg", Category: "Dairy", Email: "a@example.com"})
	assert.True(t, errors.Is(err, models.ErrValidation))

	items, err := service.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestItemServiceUpdate(t *testing.T) {
	service := services.NewItemService(repositories.NewItemRepository(setupSQLite(t)))
	ctx := context.Background()

	item, err := service.Create(ctx, dto.CreateItemInput{ItemName: "Egg", Category: "Dairy", Quantity: quantity(6), Email: "a@example.com"})
	require.NoError(t, err)

	updated, err := service.Update(ctx, item.ID, dto.UpdateItemInput{Quantity: quantity(12)})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 12.0, updated.Quantity)
	assert.Equal(t, "Egg", updated.ItemName)

	_, err = service.Update(ctx, item.ID, dto.UpdateItemInput{ItemName: strPtr("  ")})
	assert.True(t, errors.Is(err, models.ErrValidation))

	missing, err := service.Update(ctx, "does-not-exist", dto.UpdateItemInput{Quantity: quantity(1)})
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestItemServiceDelete(t *testing.T) {
	service := services.NewItemService(repositories.NewItemRepository(setupSQLite(t)))
	ctx := context.Background()

	item, err := service.Create(ctx, dto.CreateItemInput{ItemName: "Egg", Category: "Dairy", Quantity: quantity(6), Email: "a@example.com"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, item.ID))
	require.NoError(t, service.Delete(ctx, item.ID))

	items, err := service.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Empty(t, items)
}
