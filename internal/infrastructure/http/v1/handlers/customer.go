package handlers

import (
	"warebill/internal/domain/catalogs/customer"
	"warebill/internal/infrastructure/http/v1/dto"
)

// CustomerHTTPHandler keeps handler signatures short.
type CustomerHTTPHandler = CatalogHandler[
	*customer.Customer,
	dto.CreateCustomerRequest,
	dto.UpdateCustomerRequest,
]

// NewCustomerHandler hides generic handler setup from the router.
func NewCustomerHandler(
	base *BaseHandler,
	service *customer.Service,
) *CustomerHTTPHandler {
	config := CatalogHandlerConfig[
		*customer.Customer,
		dto.CreateCustomerRequest,
		dto.UpdateCustomerRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "customer",

		MapCreateDTO: func(req dto.CreateCustomerRequest) *customer.Customer {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateCustomerRequest, existing *customer.Customer) *customer.Customer {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(entity *customer.Customer) any {
			return dto.FromCustomer(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
