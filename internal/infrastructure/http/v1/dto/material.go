package dto

import (
	"warebill/internal/core/types"
	"warebill/internal/domain/catalogs/material"
)

// CreateMaterialRequest is the request body for creating a material.
type CreateMaterialRequest struct {
	Code     string      `json:"code"`
	Name     string      `json:"name" binding:"required"`
	Unit     string      `json:"unit" binding:"required"`
	UnitCost types.Money `json:"unitCost"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateMaterialRequest) ToEntity() *material.Material {
	m := material.NewMaterial(r.Code, r.Name, r.Unit)
	m.UnitCost = r.UnitCost
	return m
}

// UpdateMaterialRequest is the request body for updating a material.
type UpdateMaterialRequest struct {
	Code     string      `json:"code"`
	Name     string      `json:"name" binding:"required"`
	Unit     string      `json:"unit" binding:"required"`
	UnitCost types.Money `json:"unitCost"`
	Active   bool        `json:"active"`
	Version  int         `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateMaterialRequest) ApplyTo(m *material.Material) {
	m.Code = r.Code
	m.Name = r.Name
	m.Unit = r.Unit
	m.UnitCost = r.UnitCost
	m.Active = r.Active
	m.Version = r.Version
}

// MaterialResponse is the response body for a material.
type MaterialResponse struct {
	BaseResponse
	Code     string      `json:"code"`
	Name     string      `json:"name"`
	Unit     string      `json:"unit"`
	UnitCost types.Money `json:"unitCost"`
	Active   bool        `json:"active"`
}

// FromMaterial converts domain entity to response DTO.
func FromMaterial(m *material.Material) MaterialResponse {
	return MaterialResponse{
		BaseResponse: FromBaseCatalog(m.BaseCatalog),
		Code:         m.Code,
		Name:         m.Name,
		Unit:         m.Unit,
		UnitCost:     m.UnitCost,
		Active:       m.Active,
	}
}
