package handlers

import (
	"warebill/internal/domain/catalogs/product"
	"warebill/internal/infrastructure/http/v1/dto"
)

// ProductHTTPHandler keeps handler signatures short.
type ProductHTTPHandler = CatalogHandler[
	*product.Product,
	dto.CreateProductRequest,
	dto.UpdateProductRequest,
]

// NewProductHandler hides generic handler setup from the router.
func NewProductHandler(
	base *BaseHandler,
	service *product.Service,
) *ProductHTTPHandler {
	config := CatalogHandlerConfig[
		*product.Product,
		dto.CreateProductRequest,
		dto.UpdateProductRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "product",

		MapCreateDTO: func(req dto.CreateProductRequest) *product.Product {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateProductRequest, existing *product.Product) *product.Product {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(entity *product.Product) any {
			return dto.FromProduct(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
