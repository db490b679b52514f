package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/storeops/inventory-api/internal/domain"
)

// Item names must have no leading or trailing whitespace.
var nameRegex = regexp2.MustCompile(`^\S(.*\S)?$`, regexp2.None)

func validateName(value interface{}) error {
	name, _ := value.(string)

	matched, err := nameRegex.MatchString(name)
	if err != nil || !matched {
		return errors.New("must not have leading or trailing whitespace")
	}

	return nil
}

type CreateInventoryRequest struct {
	Name       string `json:"name"`
	Quantity   *int   `json:"quantity"`
	Condition  string `json:"condition"`
	StockLevel string `json:"stock_level"`
}

func (req *CreateInventoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 63), validation.By(validateName)),
		validation.Field(&req.Quantity, validation.NotNil, validation.Min(0)),
		validation.Field(&req.Condition, validation.Required),
		validation.Field(&req.StockLevel, validation.Required),
	)
}

// ToDomain parses the enumerated wire strings. Membership failures
// surface here, not in the validation rules above.
func (req *CreateInventoryRequest) ToDomain() (domain.Inventory, error) {
	condition, err := domain.ParseCondition(req.Condition)
	if err != nil {
		return domain.Inventory{}, err
	}

	stockLevel, err := domain.ParseStockLevel(req.StockLevel)
	if err != nil {
		return domain.Inventory{}, err
	}

	return domain.Inventory{
		Name:       req.Name,
		Quantity:   *req.Quantity,
		Condition:  condition,
		StockLevel: stockLevel,
	}, nil
}

type UpdateInventoryRequest struct {
	Name       string `json:"name"`
	Quantity   *int   `json:"quantity"`
	Condition  string `json:"condition"`
	StockLevel string `json:"stock_level"`

	// Available is accepted for backward compatibility with older
	// clients but is not persisted.
	Available *bool `json:"available"`
}

func (req *UpdateInventoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 63), validation.By(validateName)),
		validation.Field(&req.Quantity, validation.NotNil, validation.Min(0)),
		validation.Field(&req.Condition, validation.Required),
		validation.Field(&req.StockLevel, validation.Required),
	)
}

func (req *UpdateInventoryRequest) ToDomain() (domain.Inventory, error) {
	condition, err := domain.ParseCondition(req.Condition)
	if err != nil {
		return domain.Inventory{}, err
	}

	stockLevel, err := domain.ParseStockLevel(req.StockLevel)
	if err != nil {
		return domain.Inventory{}, err
	}

	return domain.Inventory{
		Name:       req.Name,
		Quantity:   *req.Quantity,
		Condition:  condition,
		StockLevel: stockLevel,
	}, nil
}

// ListInventoryQuery carries the optional search filters. Filters
// combine with AND; an absent filter imposes no constraint.
type ListInventoryQuery struct {
	Name        string `form:"name"`
	QuantityMin *int   `form:"quantity_min"`
	QuantityMax *int   `form:"quantity_max"`
	Condition   string `form:"condition"`
	StockLevel  string `form:"stock_level"`
}
