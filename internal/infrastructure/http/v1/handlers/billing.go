package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"warebill/internal/core/apperror"
	"warebill/internal/core/id"
	"warebill/internal/domain/billing"
	"warebill/internal/infrastructure/http/v1/dto"
)

const dateLayout = "2006-01-02"

// BillingHandler handles billing report generation and rate assignments.
type BillingHandler struct {
	*BaseHandler
	reports      *billing.ReportService
	assignments  *billing.AssignmentService
	maxRangeDays int
}

// NewBillingHandler creates a new billing handler.
// maxRangeDays caps the report period length; zero disables the cap.
func NewBillingHandler(
	base *BaseHandler,
	reports *billing.ReportService,
	assignments *billing.AssignmentService,
	maxRangeDays int,
) *BillingHandler {
	return &BillingHandler{
		BaseHandler:  base,
		reports:      reports,
		assignments:  assignments,
		maxRangeDays: maxRangeDays,
	}
}

// Generate handles POST /billing/reports/generate.
// Preview reports return a JSON envelope; file formats return the
// rendered document as an attachment.
func (h *BillingHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.GenerateReportRequest
	if !h.BindJSON(c, &req) {
		return
	}

	format, err := billing.ParseFormat(defaultFormat(req.OutputFormat))
	if err != nil {
		h.Error(c, err)
		return
	}

	customerID, err := id.Parse(req.Customer)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid customer id").WithDetail("field", "customer"))
		return
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid start_date format (expected YYYY-MM-DD)").
			WithDetail("field", "start_date"))
		return
	}

	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid end_date format (expected YYYY-MM-DD)").
			WithDetail("field", "end_date"))
		return
	}

	if end.Before(start) {
		h.Error(c, apperror.NewValidation("end_date must not be before start_date").
			WithDetail("start_date", req.StartDate).
			WithDetail("end_date", req.EndDate))
		return
	}

	if h.maxRangeDays > 0 {
		days := int(end.Sub(start).Hours()/24) + 1
		if days > h.maxRangeDays {
			h.Error(c, apperror.NewValidation("report period exceeds the allowed range").
				WithDetail("days", days).
				WithDetail("max_days", h.maxRangeDays))
			return
		}
	}

	out, err := h.reports.Generate(ctx, billing.GenerateRequest{
		CustomerID: customerID,
		StartDate:  start,
		EndDate:    end,
		Format:     format,
	})
	if err != nil {
		h.Error(c, err)
		return
	}

	if out.Format == billing.FormatPreview {
		c.JSON(http.StatusOK, dto.NewPreviewEnvelope(out, req.StartDate, req.EndDate))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	c.Data(http.StatusOK, out.ContentType, out.FileContent)
}

// ListReports handles GET /billing/reports.
func (h *BillingHandler) ListReports(c *gin.Context) {
	ctx := c.Request.Context()

	f := billing.ReportListFilter{
		Limit:  h.ParseIntQuery(c, "limit", 50),
		Offset: h.ParseIntQuery(c, "offset", 0),
	}

	if customerID := c.Query("customerId"); customerID != "" {
		parsed, err := id.Parse(customerID)
		if err != nil {
			h.Error(c, apperror.NewValidation("invalid customerId format"))
			return
		}
		f.CustomerID = &parsed
	}

	reports, err := h.reports.List(ctx, f)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(reports))
	for i, report := range reports {
		resp, err := dto.FromReport(report, false)
		if err != nil {
			h.Error(c, err)
			return
		}
		items[i] = resp
	}

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: int64(len(items)),
		Limit:      f.Limit,
		Offset:     f.Offset,
	})
}

// GetReport handles GET /billing/reports/:id.
func (h *BillingHandler) GetReport(c *gin.Context) {
	ctx := c.Request.Context()

	reportID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	report, err := h.reports.GetByID(ctx, reportID)
	if err != nil {
		h.Error(c, err)
		return
	}

	resp, err := dto.FromReport(report, true)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteReport handles DELETE /billing/reports/:id.
func (h *BillingHandler) DeleteReport(c *gin.Context) {
	ctx := c.Request.Context()

	reportID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.reports.Delete(ctx, reportID); err != nil {
		h.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignService handles POST /billing/customers/:id/services.
func (h *BillingHandler) AssignService(c *gin.Context) {
	ctx := c.Request.Context()

	customerID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.AssignServiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	serviceTypeID, err := id.Parse(req.ServiceTypeID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid service type id").WithDetail("field", "serviceTypeId"))
		return
	}

	cs, err := h.assignments.Assign(ctx, customerID, serviceTypeID, req.Rate)
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromAssignment(cs))
}

// ListAssignments handles GET /billing/customers/:id/services.
func (h *BillingHandler) ListAssignments(c *gin.Context) {
	ctx := c.Request.Context()

	customerID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	activeOnly := c.Query("activeOnly") == "true"

	assignments, err := h.assignments.ListForCustomer(ctx, customerID, activeOnly)
	if err != nil {
		h.Error(c, err)
		return
	}

	items := lo.Map(assignments, func(cs *billing.CustomerService, _ int) any {
		return dto.FromAssignment(cs)
	})

	c.JSON(http.StatusOK, dto.ListResponse{
		Items:      items,
		TotalCount: int64(len(items)),
		Limit:      len(items),
	})
}

// UpdateRate handles PUT /billing/services/:id/rate.
func (h *BillingHandler) UpdateRate(c *gin.Context) {
	ctx := c.Request.Context()

	csID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	var req dto.UpdateRateRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.assignments.UpdateRate(ctx, csID, req.Rate); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "rate updated")
}

// DeactivateAssignment handles POST /billing/services/:id/deactivate.
func (h *BillingHandler) DeactivateAssignment(c *gin.Context) {
	ctx := c.Request.Context()

	csID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format"))
		return
	}

	if err := h.assignments.Deactivate(ctx, csID); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "assignment deactivated")
}

func defaultFormat(s string) string {
	if s == "" {
		return string(billing.FormatPreview)
	}
	return s
}
