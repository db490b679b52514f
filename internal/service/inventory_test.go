package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storeops/inventory-api/internal/domain"
	"github.com/storeops/inventory-api/internal/repository"
)

type fakeInventoryRepository struct {
	items  map[uint]domain.Inventory
	nextID uint
}

func newFakeInventoryRepository() *fakeInventoryRepository {
	return &fakeInventoryRepository{
		items:  make(map[uint]domain.Inventory),
		nextID: 1,
	}
}

func (f *fakeInventoryRepository) Create(_ context.Context, inventory domain.Inventory) (domain.Inventory, error) {
	inventory.ID = f.nextID
	f.nextID++
	f.items[inventory.ID] = inventory

	return inventory, nil
}

func (f *fakeInventoryRepository) FindByID(_ context.Context, id uint) (domain.Inventory, error) {
	found, ok := f.items[id]
	if !ok {
		return domain.Inventory{}, repository.ErrInventoryNotFound
	}

	return found, nil
}

func (f *fakeInventoryRepository) Update(_ context.Context, inventory domain.Inventory) (domain.Inventory, error) {
	if _, ok := f.items[inventory.ID]; !ok {
		return domain.Inventory{}, repository.ErrInventoryNotFound
	}
	f.items[inventory.ID] = inventory

	return inventory, nil
}

func (f *fakeInventoryRepository) Delete(_ context.Context, id uint) error {
	delete(f.items, id)

	return nil
}

func (f *fakeInventoryRepository) List(_ context.Context, filter repository.ListFilter) ([]domain.Inventory, error) {
	matches := make([]domain.Inventory, 0)
	for _, item := range f.items {
		if filter.Name != "" && item.Name != filter.Name {
			continue
		}
		if filter.QuantityMin != nil && item.Quantity < *filter.QuantityMin {
			continue
		}
		if filter.QuantityMax != nil && item.Quantity > *filter.QuantityMax {
			continue
		}
		if filter.Condition != "" && item.Condition != filter.Condition {
			continue
		}
		if filter.StockLevel != "" && item.StockLevel != filter.StockLevel {
			continue
		}
		matches = append(matches, item)
	}

	return matches, nil
}

func seedInventory(t *testing.T, svc *InventoryService, name string, quantity int, condition domain.Condition, stockLevel domain.StockLevel) domain.Inventory {
	t.Helper()

	created, err := svc.CreateInventory(context.Background(), domain.Inventory{
		Name:       name,
		Quantity:   quantity,
		Condition:  condition,
		StockLevel: stockLevel,
	})
	require.NoError(t, err)

	return created
}

func TestInventoryService_CreateAndGet(t *testing.T) {
	svc := NewInventoryService(newFakeInventoryRepository())

	created := seedInventory(t, svc, "CocaCola", 0, domain.ConditionNew, domain.StockLevelOutOfStock)
	assert.NotZero(t, created.ID)

	found, err := svc.GetInventory(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

func TestInventoryService_GetMissing(t *testing.T) {
	svc := NewInventoryService(newFakeInventoryRepository())

	_, err := svc.GetInventory(context.Background(), 42)
	assert.ErrorIs(t, err, ErrInventoryNotFound)
}

func TestInventoryService_Update(t *testing.T) {
	svc := NewInventoryService(newFakeInventoryRepository())

	created := seedInventory(t, svc, "CocaCola", 10, domain.ConditionNew, domain.StockLevelInStock)

	created.Name = "Coke"
	created.Quantity = 20
	updated, err := svc.UpdateInventory(context.Background(), created)
	require.NoError(t, err)
	assert.Equal(t, "Coke", updated.Name)
	assert.Equal(t, 20, updated.Quantity)

	found, err := svc.GetInventory(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, found)
}

func TestInventoryService_UpdateMissing(t *testing.T) {
	svc := NewInventoryService(newFakeInventoryRepository())

	_, err := svc.UpdateInventory(context.Background(), domain.Inventory{
		ID:         99,
		Name:       "Ghost",
		Quantity:   1,
		Condition:  domain.ConditionNew,
		StockLevel: domain.StockLevelInStock,
	})
	assert.ErrorIs(t, err, ErrInventoryNotFound)
}

func TestInventoryService_DeleteIsIdempotent(t *testing.T) {
	svc := NewInventoryService(newFakeInventoryRepository())

	created := seedInventory(t, svc, "Water", 5, domain.ConditionNew, domain.StockLevelLowStock)

	require.NoError(t, svc.DeleteInventory(context.Background(), created.ID))
	require.NoError(t, svc.DeleteInventory(context.Background(), created.ID))

	_, err := svc.GetInventory(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrInventoryNotFound)
}

func TestInventoryService_List(t *testing.T) {
	svc := NewInventoryService(newFakeInventoryRepository())

	seedInventory(t, svc, "CocaCola", 0, domain.ConditionNew, domain.StockLevelOutOfStock)
	seedInventory(t, svc, "Water", 5, domain.ConditionNew, domain.StockLevelLowStock)
	seedInventory(t, svc, "Monster", 10, domain.ConditionNew, domain.StockLevelInStock)
	seedInventory(t, svc, "iPad", 15, domain.ConditionUsed, domain.StockLevelInStock)

	t.Run("no filters returns everything", func(t *testing.T) {
		all, err := svc.ListInventories(context.Background(), repository.ListFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})

	t.Run("filter by condition", func(t *testing.T) {
		matches, err := svc.ListInventories(context.Background(), repository.ListFilter{
			Condition: domain.ConditionNew,
		})
		require.NoError(t, err)
		require.Len(t, matches, 3)
		for _, item := range matches {
			assert.Equal(t, domain.ConditionNew, item.Condition)
		}
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		min := 5
		matches, err := svc.ListInventories(context.Background(), repository.ListFilter{
			QuantityMin: &min,
			Condition:   domain.ConditionNew,
		})
		require.NoError(t, err)
		require.Len(t, matches, 2)
		for _, item := range matches {
			assert.GreaterOrEqual(t, item.Quantity, 5)
			assert.Equal(t, domain.ConditionNew, item.Condition)
		}
	})
}

func TestInventoryService_Restock(t *testing.T) {
	svc := NewInventoryService(newFakeInventoryRepository())

	monster := seedInventory(t, svc, "Monster", 10, domain.ConditionNew, domain.StockLevelInStock)
	ipad := seedInventory(t, svc, "iPad", 15, domain.ConditionUsed, domain.StockLevelInStock)
	cocaCola := seedInventory(t, svc, "CocaCola", 0, domain.ConditionNew, domain.StockLevelOutOfStock)

	t.Run("replenish", func(t *testing.T) {
		restocked, err := svc.RestockInventory(context.Background(), monster.ID, 5)
		require.NoError(t, err)
		assert.Equal(t, 15, restocked.Quantity)
	})

	t.Run("consume", func(t *testing.T) {
		restocked, err := svc.RestockInventory(context.Background(), ipad.ID, -5)
		require.NoError(t, err)
		assert.Equal(t, 10, restocked.Quantity)
	})

	t.Run("consume to exactly zero", func(t *testing.T) {
		restocked, err := svc.RestockInventory(context.Background(), ipad.ID, -10)
		require.NoError(t, err)
		assert.Equal(t, 0, restocked.Quantity)
	})

	t.Run("would go negative", func(t *testing.T) {
		_, err := svc.RestockInventory(context.Background(), cocaCola.ID, -1)
		require.ErrorIs(t, err, ErrInvalidRestock)

		// Stored quantity is unchanged after the failure.
		found, err := svc.GetInventory(context.Background(), cocaCola.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, found.Quantity)
	})

	t.Run("missing item", func(t *testing.T) {
		_, err := svc.RestockInventory(context.Background(), 404, 1)
		assert.ErrorIs(t, err, ErrInventoryNotFound)
	})
}
