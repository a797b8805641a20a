package dto

import (
	"warebill/internal/core/types"
	"warebill/internal/domain/catalogs/service_type"
)

// CreateServiceTypeRequest is the request body for creating a service type.
type CreateServiceTypeRequest struct {
	Code        string                 `json:"code"`
	Name        string                 `json:"name" binding:"required"`
	Basis       service_type.RateBasis `json:"basis" binding:"required"`
	DefaultRate types.Money            `json:"defaultRate"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateServiceTypeRequest) ToEntity() *service_type.ServiceType {
	st := service_type.NewServiceType(r.Code, r.Name, r.Basis)
	st.DefaultRate = r.DefaultRate
	return st
}

// UpdateServiceTypeRequest is the request body for updating a service type.
type UpdateServiceTypeRequest struct {
	Code        string                 `json:"code"`
	Name        string                 `json:"name" binding:"required"`
	Basis       service_type.RateBasis `json:"basis" binding:"required"`
	DefaultRate types.Money            `json:"defaultRate"`
	Active      bool                   `json:"active"`
	Version     int                    `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateServiceTypeRequest) ApplyTo(st *service_type.ServiceType) {
	st.Code = r.Code
	st.Name = r.Name
	st.Basis = r.Basis
	st.DefaultRate = r.DefaultRate
	st.Active = r.Active
	st.Version = r.Version
}

// ServiceTypeResponse is the response body for a service type.
type ServiceTypeResponse struct {
	BaseResponse
	Code        string                 `json:"code"`
	Name        string                 `json:"name"`
	Basis       service_type.RateBasis `json:"basis"`
	DefaultRate types.Money            `json:"defaultRate"`
	Active      bool                   `json:"active"`
}

// FromServiceType converts domain entity to response DTO.
func FromServiceType(st *service_type.ServiceType) ServiceTypeResponse {
	return ServiceTypeResponse{
		BaseResponse: FromBaseCatalog(st.BaseCatalog),
		Code:         st.Code,
		Name:         st.Name,
		Basis:        st.Basis,
		DefaultRate:  st.DefaultRate,
		Active:       st.Active,
	}
}
