package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidRestock = errors.New("restock would make quantity negative")

// Condition describes the physical state of an inventory item.
type Condition string

const (
	ConditionNew     Condition = "NEW"
	ConditionOpenBox Condition = "OPENBOX"
	ConditionUsed    Condition = "USED"
)

// ParseCondition is the single translation point from the wire string form.
func ParseCondition(s string) (Condition, error) {
	switch Condition(s) {
	case ConditionNew, ConditionOpenBox, ConditionUsed:
		return Condition(s), nil
	}

	return "", fmt.Errorf("invalid value for condition: %q", s)
}

// StockLevel is a shelf-availability label set by the caller.
// It is not derived from quantity.
type StockLevel string

const (
	StockLevelInStock    StockLevel = "IN_STOCK"
	StockLevelLowStock   StockLevel = "LOW_STOCK"
	StockLevelOutOfStock StockLevel = "OUT_OF_STOCK"
)

// ParseStockLevel is the single translation point from the wire string form.
func ParseStockLevel(s string) (StockLevel, error) {
	switch StockLevel(s) {
	case StockLevelInStock, StockLevelLowStock, StockLevelOutOfStock:
		return StockLevel(s), nil
	}

	return "", fmt.Errorf("invalid value for stock_level: %q", s)
}

type Inventory struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	Quantity   int        `json:"quantity"`
	Condition  Condition  `json:"condition"`
	StockLevel StockLevel `json:"stock_level"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Restock applies a signed delta to the quantity. A positive delta
// replenishes, a negative one consumes. The quantity never goes below zero.
func (i Inventory) Restock(delta int) (Inventory, error) {
	newQuantity := i.Quantity + delta
	if newQuantity < 0 {
		return Inventory{}, fmt.Errorf("restocking by %d: %w", delta, ErrInvalidRestock)
	}

	i.Quantity = newQuantity

	return i, nil
}
