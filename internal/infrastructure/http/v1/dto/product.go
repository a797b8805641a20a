package dto

import (
	"warebill/internal/core/types"
	"warebill/internal/domain/catalogs/product"
)

// --- Request DTOs ---

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Code      string      `json:"code"`
	Name      string      `json:"name" binding:"required"`
	SKU       string      `json:"sku" binding:"required"`
	UnitPrice types.Money `json:"unitPrice"`
	WeightKg  float64     `json:"weightKg"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity() *product.Product {
	p := product.NewProduct(r.Code, r.Name, r.SKU)
	p.UnitPrice = r.UnitPrice
	p.WeightKg = r.WeightKg
	return p
}

// UpdateProductRequest is the request body for updating a product.
type UpdateProductRequest struct {
	Code      string      `json:"code"`
	Name      string      `json:"name" binding:"required"`
	SKU       string      `json:"sku" binding:"required"`
	UnitPrice types.Money `json:"unitPrice"`
	WeightKg  float64     `json:"weightKg"`
	Active    bool        `json:"active"`
	Version   int         `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateProductRequest) ApplyTo(p *product.Product) {
	p.Code = r.Code
	p.Name = r.Name
	p.SKU = r.SKU
	p.UnitPrice = r.UnitPrice
	p.WeightKg = r.WeightKg
	p.Active = r.Active
	p.Version = r.Version
}

// --- Response DTOs ---

// ProductResponse is the response body for a product.
type ProductResponse struct {
	BaseResponse
	Code      string      `json:"code"`
	Name      string      `json:"name"`
	SKU       string      `json:"sku"`
	UnitPrice types.Money `json:"unitPrice"`
	WeightKg  float64     `json:"weightKg"`
	Active    bool        `json:"active"`
}

// FromProduct converts domain entity to response DTO.
func FromProduct(p *product.Product) ProductResponse {
	return ProductResponse{
		BaseResponse: FromBaseCatalog(p.BaseCatalog),
		Code:         p.Code,
		Name:         p.Name,
		SKU:          p.SKU,
		UnitPrice:    p.UnitPrice,
		WeightKg:     p.WeightKg,
		Active:       p.Active,
	}
}
