package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"warebill/internal/core/apperror"
	"warebill/internal/core/id"
	"warebill/internal/domain"
	"warebill/internal/domain/documents/order"
	"warebill/internal/infrastructure/http/v1/dto"
)

// OrderHandler handles HTTP requests for Order documents.
type OrderHandler struct {
	*BaseDocumentHandler[*order.Order, dto.CreateOrderRequest, dto.UpdateOrderRequest]
	service *order.Service
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(base *BaseHandler, service *order.Service) *OrderHandler {
	cfg := BaseDocumentHandlerConfig[*order.Order, dto.CreateOrderRequest, dto.UpdateOrderRequest]{
		Service:    service,
		EntityName: "order",
		MapCreateDTO: func(req dto.CreateOrderRequest) *order.Order {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateOrderRequest, existing *order.Order) *order.Order {
			req.ApplyTo(existing)
			return existing
		},
		MapToDTO: func(entity *order.Order) any {
			return dto.FromOrder(entity)
		},
	}

	return &OrderHandler{
		BaseDocumentHandler: NewBaseDocumentHandler(base, cfg),
		service:             service,
	}
}

// List handles GET /orders with order-specific filters.
func (h *OrderHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := order.ListFilter{
		ListFilter: domain.DefaultListFilter(),
	}
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "-date")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	if customerID := c.Query("customerId"); customerID != "" {
		parsed, err := id.Parse(customerID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid customerId format"))
			return
		}
		filter.CustomerID = &parsed
	}

	if status := c.Query("status"); status != "" {
		s := order.Status(status)
		filter.Status = &s
	}

	if from := c.Query("dateFrom"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid dateFrom format (expected YYYY-MM-DD)"))
			return
		}
		filter.DateFrom = &t
	}

	if to := c.Query("dateTo"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid dateTo format (expected YYYY-MM-DD)"))
			return
		}
		filter.DateTo = &t
	}

	result, err := h.service.List(ctx, filter)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, item := range result.Items {
		items[i] = dto.FromOrder(item)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// UpdateStatus handles POST /orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateOrderStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.UpdateStatus(ctx, docID, req.Status); err != nil {
		h.Error(c, err)
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromOrder(doc))
}
