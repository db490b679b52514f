package service

import (
	"context"
	"fmt"

	"github.com/storeops/inventory-api/internal/domain"
	"github.com/storeops/inventory-api/internal/repository"
)

var (
	ErrInventoryNotFound = repository.ErrInventoryNotFound
	ErrNegativeQuantity  = repository.ErrNegativeQuantity
	ErrInvalidRestock    = domain.ErrInvalidRestock
)

type InventoryRepository interface {
	Create(ctx context.Context, inventory domain.Inventory) (domain.Inventory, error)
	FindByID(ctx context.Context, id uint) (domain.Inventory, error)
	Update(ctx context.Context, inventory domain.Inventory) (domain.Inventory, error)
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter repository.ListFilter) ([]domain.Inventory, error)
}

type InventoryService struct {
	repo InventoryRepository
}

func NewInventoryService(repo InventoryRepository) *InventoryService {
	return &InventoryService{
		repo: repo,
	}
}

func (s *InventoryService) CreateInventory(ctx context.Context, inventory domain.Inventory) (domain.Inventory, error) {
	created, err := s.repo.Create(ctx, inventory)
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *InventoryService) GetInventory(ctx context.Context, id uint) (domain.Inventory, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return found, nil
}

// UpdateInventory replaces every mutable field of the stored item.
func (s *InventoryService) UpdateInventory(ctx context.Context, inventory domain.Inventory) (domain.Inventory, error) {
	updated, err := s.repo.Update(ctx, inventory)
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *InventoryService) DeleteInventory(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *InventoryService) ListInventories(ctx context.Context, filter repository.ListFilter) ([]domain.Inventory, error) {
	inventories, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return inventories, nil
}

// RestockInventory applies a signed quantity delta as a read-modify-write.
// Concurrent restocks of the same row are serialized by the store's own
// row-level isolation.
func (s *InventoryService) RestockInventory(ctx context.Context, id uint, delta int) (domain.Inventory, error) {
	found, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	restocked, err := found.Restock(delta)
	if err != nil {
		return domain.Inventory{}, err
	}

	updated, err := s.repo.Update(ctx, restocked)
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}
