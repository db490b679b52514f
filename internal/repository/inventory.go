package repository

import (
	"context"
	"fmt"

	"github.com/storeops/inventory-api/internal/domain"
	"github.com/storeops/inventory-api/internal/repository/dao"
)

var (
	ErrInventoryNotFound = dao.ErrInventoryNotFound
	ErrNegativeQuantity  = dao.ErrNegativeQuantity
)

type InventoryDAO interface {
	Insert(ctx context.Context, inventory dao.Inventory) (dao.Inventory, error)
	FindByID(ctx context.Context, id uint) (dao.Inventory, error)
	Update(ctx context.Context, inventory dao.Inventory) (dao.Inventory, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter dao.InventoryFilter) ([]dao.Inventory, error)
}

// ListFilter is the AND-combination of active search filters.
// Nil/empty fields impose no constraint.
type ListFilter struct {
	Name        string
	QuantityMin *int
	QuantityMax *int
	Condition   domain.Condition
	StockLevel  domain.StockLevel
}

type InventoryRepository struct {
	dao InventoryDAO
}

func NewInventoryRepository(dao InventoryDAO) *InventoryRepository {
	return &InventoryRepository{
		dao: dao,
	}
}

func (r *InventoryRepository) Create(ctx context.Context, inventory domain.Inventory) (domain.Inventory, error) {
	created, err := r.dao.Insert(ctx, dao.Inventory{
		Name:       inventory.Name,
		Quantity:   inventory.Quantity,
		Condition:  string(inventory.Condition),
		StockLevel: string(inventory.StockLevel),
	})
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *InventoryRepository) FindByID(ctx context.Context, id uint) (domain.Inventory, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *InventoryRepository) Update(ctx context.Context, inventory domain.Inventory) (domain.Inventory, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(inventory))
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *InventoryRepository) List(ctx context.Context, filter ListFilter) ([]domain.Inventory, error) {
	found, err := r.dao.List(ctx, dao.InventoryFilter{
		Name:        filter.Name,
		QuantityMin: filter.QuantityMin,
		QuantityMax: filter.QuantityMax,
		Condition:   string(filter.Condition),
		StockLevel:  string(filter.StockLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	inventories := make([]domain.Inventory, 0, len(found))
	for _, item := range found {
		inventories = append(inventories, r.daoToDomain(item))
	}

	return inventories, nil
}

func (r *InventoryRepository) domainToDao(i domain.Inventory) dao.Inventory {
	return dao.Inventory{
		ID:         i.ID,
		Name:       i.Name,
		Quantity:   i.Quantity,
		Condition:  string(i.Condition),
		StockLevel: string(i.StockLevel),
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

func (r *InventoryRepository) daoToDomain(i dao.Inventory) domain.Inventory {
	return domain.Inventory{
		ID:         i.ID,
		Name:       i.Name,
		Quantity:   i.Quantity,
		Condition:  domain.Condition(i.Condition),
		StockLevel: domain.StockLevel(i.StockLevel),
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}
