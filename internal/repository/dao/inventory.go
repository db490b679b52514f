package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInventoryNotFound = errors.New("inventory not found")
	ErrNegativeQuantity  = errors.New("quantity must not be negative")
)

type Inventory struct {
	ID uint `gorm:"primaryKey"`

	Name       string `gorm:"not null"`
	Quantity   int    `gorm:"not null;check:quantity >= 0"`
	Condition  string `gorm:"not null"`
	StockLevel string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// InventoryFilter narrows List results. Zero-valued fields impose no
// constraint; active fields combine with AND.
type InventoryFilter struct {
	Name        string
	QuantityMin *int
	QuantityMax *int
	Condition   string
	StockLevel  string
}

type InventoryDAO struct {
	db *gorm.DB
}

func NewInventoryDAO(db *gorm.DB) *InventoryDAO {
	return &InventoryDAO{
		db: db,
	}
}

func (d *InventoryDAO) Insert(ctx context.Context, inventory Inventory) (Inventory, error) {
	result := d.db.WithContext(ctx).Create(&inventory)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.CheckViolation {
			return Inventory{}, ErrNegativeQuantity
		}

		return Inventory{}, result.Error
	}

	return inventory, nil
}

func (d *InventoryDAO) FindByID(ctx context.Context, id uint) (Inventory, error) {
	var inventory Inventory

	result := d.db.WithContext(ctx).First(&inventory, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Inventory{}, ErrInventoryNotFound
		}

		return Inventory{}, result.Error
	}

	return inventory, nil
}

func (d *InventoryDAO) Update(ctx context.Context, inventory Inventory) (Inventory, error) {
	result := d.db.WithContext(ctx).
		Model(&Inventory{}).
		Where("id = ?", inventory.ID).
		Updates(map[string]interface{}{
			"name":        inventory.Name,
			"quantity":    inventory.Quantity,
			"condition":   inventory.Condition,
			"stock_level": inventory.StockLevel,
		})
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.CheckViolation {
			return Inventory{}, ErrNegativeQuantity
		}

		return Inventory{}, result.Error
	}

	if result.RowsAffected == 0 {
		return Inventory{}, ErrInventoryNotFound
	}

	return d.FindByID(ctx, inventory.ID)
}

// Delete is idempotent. Removing an ID that is already absent is not an error.
func (d *InventoryDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Inventory{}, id)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

func (d *InventoryDAO) List(ctx context.Context, filter InventoryFilter) ([]Inventory, error) {
	tx := d.db.WithContext(ctx).Model(&Inventory{})

	if filter.Name != "" {
		tx = tx.Where("name = ?", filter.Name)
	}
	if filter.QuantityMin != nil {
		tx = tx.Where("quantity >= ?", *filter.QuantityMin)
	}
	if filter.QuantityMax != nil {
		tx = tx.Where("quantity <= ?", *filter.QuantityMax)
	}
	if filter.Condition != "" {
		tx = tx.Where("condition = ?", filter.Condition)
	}
	if filter.StockLevel != "" {
		tx = tx.Where("stock_level = ?", filter.StockLevel)
	}

	var inventories []Inventory
	if err := tx.Find(&inventories).Error; err != nil {
		return nil, err
	}

	return inventories, nil
}
