package dto

import (
	"time"

	"github.com/puntoventa/puntoventa/internal/domain/product"
	"github.com/puntoventa/puntoventa/internal/types"
	"github.com/puntoventa/puntoventa/internal/validator"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Code        string          `json:"code"`
	Description string          `json:"description" validate:"required"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Quantity    decimal.Decimal `json:"quantity"`
}

func (r *CreateProductRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateProductRequest) ToProduct() *product.Product {
	return &product.Product{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRODUCT),
		Code:        r.Code,
		Description: r.Description,
		Unit:        r.Unit,
		Price:       r.Price,
		Quantity:    r.Quantity,
	}
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Code        *string          `json:"code,omitempty"`
	Description *string          `json:"description,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
}

// Apply copies the set fields onto the product
func (r *UpdateProductRequest) Apply(p *product.Product) {
	if r.Code != nil {
		p.Code = *r.Code
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Unit != nil {
		p.Unit = *r.Unit
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Quantity != nil {
		p.Quantity = *r.Quantity
	}
}

// ProductResponse represents a product
type ProductResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code,omitempty"`
	Description string          `json:"description"`
	Unit        string          `json:"unit,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    decimal.Decimal `json:"quantity"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func NewProductResponse(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Description: p.Description,
		Unit:        p.Unit,
		Price:       p.Price,
		Quantity:    p.Quantity,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ListProductsResponse is the product catalog
type ListProductsResponse struct {
	Items []*ProductResponse `json:"items"`
	Total int                `json:"total"`
}
