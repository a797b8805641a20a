package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"warebill/internal/core/apperror"
	"warebill/internal/core/id"
	"warebill/internal/domain"
	"warebill/internal/domain/documents/shipment"
	"warebill/internal/infrastructure/http/v1/dto"
)

// ShipmentHandler handles HTTP requests for Shipment documents.
// Shipments are immutable once created, so there is no update DTO.
type ShipmentHandler struct {
	*BaseHandler
	service *shipment.Service
}

// NewShipmentHandler creates a new shipment handler.
func NewShipmentHandler(base *BaseHandler, service *shipment.Service) *ShipmentHandler {
	return &ShipmentHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Create handles POST /shipments.
func (h *ShipmentHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateShipmentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	doc := req.ToEntity()

	if err := h.service.Create(ctx, doc); err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromShipment(doc))
}

// Get handles GET /shipments/:id.
func (h *ShipmentHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	doc, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromShipment(doc))
}

// Delete handles DELETE /shipments/:id.
func (h *ShipmentHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	docID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.service.Delete(ctx, docID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List handles GET /shipments with shipment-specific filters.
func (h *ShipmentHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	filter := shipment.ListFilter{
		ListFilter: domain.DefaultListFilter(),
	}
	filter.Search = c.Query("search")
	filter.Limit = h.ParseIntQuery(c, "limit", 50)
	filter.Offset = h.ParseIntQuery(c, "offset", 0)
	filter.OrderBy = c.DefaultQuery("orderBy", "-date")
	filter.IncludeDeleted = c.Query("includeDeleted") == "true"

	if orderID := c.Query("orderId"); orderID != "" {
		parsed, err := id.Parse(orderID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid orderId format"))
			return
		}
		filter.OrderID = &parsed
	}

	if carrier := c.Query("carrier"); carrier != "" {
		filter.Carrier = &carrier
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
		items[i] = dto.FromShipment(item)
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}
