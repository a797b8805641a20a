package handlers

import (
	"warebill/internal/domain/catalogs/service_type"
	"warebill/internal/infrastructure/http/v1/dto"
)

// ServiceTypeHTTPHandler keeps handler signatures short.
type ServiceTypeHTTPHandler = CatalogHandler[
	*service_type.ServiceType,
	dto.CreateServiceTypeRequest,
	dto.UpdateServiceTypeRequest,
]

// NewServiceTypeHandler hides generic handler setup from the router.
func NewServiceTypeHandler(
	base *BaseHandler,
	service *service_type.Service,
) *ServiceTypeHTTPHandler {
	config := CatalogHandlerConfig[
		*service_type.ServiceType,
		dto.CreateServiceTypeRequest,
		dto.UpdateServiceTypeRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "service_type",

		MapCreateDTO: func(req dto.CreateServiceTypeRequest) *service_type.ServiceType {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateServiceTypeRequest, existing *service_type.ServiceType) *service_type.ServiceType {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(entity *service_type.ServiceType) any {
			return dto.FromServiceType(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
