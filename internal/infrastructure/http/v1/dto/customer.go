package dto

import (
	"warebill/internal/domain/catalogs/customer"
)

// --- Request DTOs ---

// CreateCustomerRequest is the request body for creating a customer.
type CreateCustomerRequest struct {
	Code           string  `json:"code"`
	Name           string  `json:"name" binding:"required"`
	ContactName    *string `json:"contactName"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	BillingAddress *string `json:"billingAddress"`
	TaxID          *string `json:"taxId"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateCustomerRequest) ToEntity() *customer.Customer {
	c := customer.NewCustomer(r.Code, r.Name)
	c.ContactName = r.ContactName
	c.Email = r.Email
	c.Phone = r.Phone
	c.BillingAddress = r.BillingAddress
	c.TaxID = r.TaxID
	return c
}

// UpdateCustomerRequest is the request body for updating a customer.
type UpdateCustomerRequest struct {
	Code           string  `json:"code"`
	Name           string  `json:"name" binding:"required"`
	ContactName    *string `json:"contactName"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	BillingAddress *string `json:"billingAddress"`
	TaxID          *string `json:"taxId"`
	Active         bool    `json:"active"`
	Version        int     `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateCustomerRequest) ApplyTo(c *customer.Customer) {
	c.Code = r.Code
	c.Name = r.Name
	c.ContactName = r.ContactName
	c.Email = r.Email
	c.Phone = r.Phone
	c.BillingAddress = r.BillingAddress
	c.TaxID = r.TaxID
	c.Active = r.Active
	c.Version = r.Version
}

// --- Response DTOs ---

// CustomerResponse is the response body for a customer.
type CustomerResponse struct {
	BaseResponse
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	ContactName    *string `json:"contactName,omitempty"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	BillingAddress *string `json:"billingAddress,omitempty"`
	TaxID          *string `json:"taxId,omitempty"`
	Active         bool    `json:"active"`
}

// FromCustomer converts domain entity to response DTO.
func FromCustomer(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		BaseResponse:   FromBaseCatalog(c.BaseCatalog),
		Code:           c.Code,
		Name:           c.Name,
		ContactName:    c.ContactName,
		Email:          c.Email,
		Phone:          c.Phone,
		BillingAddress: c.BillingAddress,
		TaxID:          c.TaxID,
		Active:         c.Active,
	}
}
