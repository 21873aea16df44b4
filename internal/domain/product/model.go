package product

import (
	ierr "github.com/puntoventa/puntoventa/internal/errors"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry available at the register. Quantity is the
// displayed stock figure only; the system does not track inventory
// movements.
type Product struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(14,2)"`
	Quantity    decimal.Decimal `json:"quantity" gorm:"type:numeric(14,3)"`

	types.BaseModel
}

// TableName returns the table name for the product
func (p *Product) TableName() string {
	return "products"
}

// Validate validates the product
func (p *Product) Validate() error {
	if p.Description == "" {
		return ierr.NewError("missing description").
			WithHint("Product description is required").
			Mark(ierr.ErrValidation)
	}
	if p.Price.IsNegative() {
		return ierr.NewError("invalid price").
			WithHint("Product price must not be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
