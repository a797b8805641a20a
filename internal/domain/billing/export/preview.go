package export

import (
	"time"

	"github.com/shopspring/decimal"

	"warebill/internal/domain/billing"
)

// RenderPreview builds the on-screen representation of a report: the raw
// order charges plus per-service totals aggregated across all orders.
func RenderPreview(data *billing.ReportData, generatedAt time.Time) (*billing.Output, error) {
	totals := make(map[string]decimal.Decimal)
	for _, order := range data.Orders {
		for _, svc := range order.Services {
			amount, err := decimal.NewFromString(svc.Amount)
			if err != nil {
				continue
			}
			totals[svc.ServiceName] = totals[svc.ServiceName].Add(amount)
		}
	}

	serviceTotals := make(map[string]string, len(totals))
	for name, sum := range totals {
		serviceTotals[name] = sum.StringFixed(2)
	}

	preview := &billing.PreviewData{
		Orders:        data.Orders,
		ServiceTotals: serviceTotals,
		TotalAmount:   data.TotalAmount,
		Metadata: billing.Metadata{
			GeneratedAt: generatedStamp(generatedAt),
			RecordCount: len(data.Orders),
		},
	}

	return &billing.Output{
		Format:  billing.FormatPreview,
		Preview: preview,
	}, nil
}
