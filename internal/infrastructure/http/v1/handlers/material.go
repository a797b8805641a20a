package handlers

import (
	"warebill/internal/domain/catalogs/material"
	"warebill/internal/infrastructure/http/v1/dto"
)

// MaterialHTTPHandler keeps handler signatures short.
type MaterialHTTPHandler = CatalogHandler[
	*material.Material,
	dto.CreateMaterialRequest,
	dto.UpdateMaterialRequest,
]

// NewMaterialHandler hides generic handler setup from the router.
func NewMaterialHandler(
	base *BaseHandler,
	service *material.Service,
) *MaterialHTTPHandler {
	config := CatalogHandlerConfig[
		*material.Material,
		dto.CreateMaterialRequest,
		dto.UpdateMaterialRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "material",

		MapCreateDTO: func(req dto.CreateMaterialRequest) *material.Material {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateMaterialRequest, existing *material.Material) *material.Material {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(entity *material.Material) any {
			return dto.FromMaterial(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
