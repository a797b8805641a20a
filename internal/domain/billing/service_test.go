package billing

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warebill/internal/core/apperror"
	appctx "warebill/internal/core/context"
	"warebill/internal/core/id"
	"warebill/internal/domain/catalogs/customer"
	"warebill/pkg/numerator"
)

type stubCalculator struct {
	data  *ReportData
	calls int
}

func (c *stubCalculator) Calculate(ctx context.Context, customerID id.ID, start, end time.Time) (*ReportData, error) {
	c.calls++
	return c.data, nil
}

type stubCustomers struct {
	cust  *customer.Customer
	calls int
}

func (s *stubCustomers) GetByID(ctx context.Context, customerID id.ID) (*customer.Customer, error) {
	s.calls++
	if s.cust == nil {
		return nil, apperror.NewNotFound("customer", customerID.String())
	}
	return s.cust, nil
}

type stubReports struct {
	created []*BillingReport
}

func (s *stubReports) Create(ctx context.Context, report *BillingReport) error {
	s.created = append(s.created, report)
	return nil
}

func (s *stubReports) GetByID(ctx context.Context, reportID id.ID) (*BillingReport, error) {
	return nil, apperror.NewNotFound("billing report", reportID.String())
}

func (s *stubReports) Delete(ctx context.Context, reportID id.ID) error { return nil }

func (s *stubReports) List(ctx context.Context, f ReportListFilter) ([]*BillingReport, error) {
	return nil, nil
}

// previewRenderer is a minimal renderer for pipeline tests; the real
// renderers live in the export package.
func previewRenderer(data *ReportData, generatedAt time.Time) (*Output, error) {
	return &Output{
		Format: FormatPreview,
		Preview: &PreviewData{
			Orders:      data.Orders,
			TotalAmount: data.TotalAmount,
		},
	}, nil
}

func newTestService(calc *stubCalculator, customers *stubCustomers, reports *stubReports) *ReportService {
	return NewReportService(
		calc,
		NewValidator(),
		NewSizeEstimator(DefaultMaxReportSize),
		NewReportCache(newMapStore(), time.Minute),
		map[Format]Renderer{FormatPreview: previewRenderer},
		customers,
		reports,
		nil, // numbering is exercised only on persisted runs
		nil,
	)
}

func testCustomer() *customer.Customer {
	c := customer.NewCustomer("CUS-00001", "Acme Retail Ltd")
	return c
}

func TestGenerate_UnsupportedFormatHasNoSideEffects(t *testing.T) {
	calc := &stubCalculator{data: validReportData()}
	customers := &stubCustomers{cust: testCustomer()}
	svc := newTestService(calc, customers, &stubReports{})

	_, err := svc.Generate(context.Background(), GenerateRequest{
		CustomerID: id.New(),
		StartDate:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
		Format:     Format("xml"),
	})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnsupportedFormat, appErr.Code)

	// The format is rejected before anything else runs.
	assert.Zero(t, customers.calls)
	assert.Zero(t, calc.calls)
}

func TestGenerate_UnknownCustomer(t *testing.T) {
	calc := &stubCalculator{data: validReportData()}
	svc := newTestService(calc, &stubCustomers{}, &stubReports{})

	_, err := svc.Generate(context.Background(), GenerateRequest{
		CustomerID: id.New(),
		StartDate:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
		Format:     FormatPreview,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Zero(t, calc.calls)
}

func TestGenerate_PreviewIsCached(t *testing.T) {
	calc := &stubCalculator{data: validReportData()}
	customers := &stubCustomers{cust: testCustomer()}
	svc := newTestService(calc, customers, &stubReports{})

	req := GenerateRequest{
		CustomerID: id.New(),
		StartDate:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
		Format:     FormatPreview,
	}

	first, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, first.Preview)
	assert.Equal(t, "Acme Retail Ltd", first.CustomerName)
	assert.Equal(t, 1, calc.calls)

	// Second identical request is served from cache.
	second, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, calc.calls)
	assert.Same(t, first.Preview, second.Preview)
}

func TestGenerate_DifferentPeriodMissesCache(t *testing.T) {
	calc := &stubCalculator{data: validReportData()}
	customers := &stubCustomers{cust: testCustomer()}
	svc := newTestService(calc, customers, &stubReports{})

	custID := id.New()
	base := GenerateRequest{
		CustomerID: custID,
		StartDate:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
		Format:     FormatPreview,
	}

	_, err := svc.Generate(context.Background(), base)
	require.NoError(t, err)

	shifted := base
	shifted.EndDate = time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)
	_, err = svc.Generate(context.Background(), shifted)
	require.NoError(t, err)

	assert.Equal(t, 2, calc.calls)
}

func TestGenerate_AnonymousRunSkipsPersistence(t *testing.T) {
	calc := &stubCalculator{data: validReportData()}
	customers := &stubCustomers{cust: testCustomer()}
	reports := &stubReports{}
	svc := newTestService(calc, customers, reports)

	_, err := svc.Generate(context.Background(), GenerateRequest{
		CustomerID: id.New(),
		StartDate:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
		Format:     FormatPreview,
	})
	require.NoError(t, err)
	assert.Empty(t, reports.created)
}

// fakeSequenceRow satisfies pgx.Row for the numbering queries the
// persistence path issues.
type fakeSequenceRow struct {
	next int64
}

func (r fakeSequenceRow) Scan(dest ...any) error {
	*(dest[0].(*int64)) = r.next
	return nil
}

type fakeSequenceQuerier struct {
	next int64
}

func (q *fakeSequenceQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q.next++
	return fakeSequenceRow{next: q.next}
}

func TestGenerate_AuthenticatedRunPersistsOnce(t *testing.T) {
	calc := &stubCalculator{data: validReportData()}
	customers := &stubCustomers{cust: testCustomer()}
	reports := &stubReports{}

	svc := NewReportService(
		calc,
		NewValidator(),
		NewSizeEstimator(DefaultMaxReportSize),
		NewReportCache(newMapStore(), time.Minute),
		map[Format]Renderer{FormatPreview: previewRenderer},
		customers,
		reports,
		numerator.New(&fakeSequenceQuerier{}),
		passthroughTx{},
	)

	custID := id.New()
	ctx := appctx.WithUser(context.Background(), &appctx.UserContext{
		UserID: "op-1",
		Email:  "ops@example.com",
	})

	_, err := svc.Generate(ctx, GenerateRequest{
		CustomerID: custID,
		StartDate:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
		Format:     FormatPreview,
	})
	require.NoError(t, err)

	require.Len(t, reports.created, 1)
	stored := reports.created[0]
	assert.Equal(t, custID, stored.CustomerID)
	assert.Contains(t, stored.Number, "RPT-")
	assert.Equal(t, validReportData().TotalAmount, stored.TotalAmount.StringFixed(2))

	data, err := stored.GetData()
	require.NoError(t, err)
	assert.Equal(t, validReportData(), data)
}

func TestGenerate_InconsistentDataRejected(t *testing.T) {
	bad := validReportData()
	bad.TotalAmount = "999.99"

	calc := &stubCalculator{data: bad}
	customers := &stubCustomers{cust: testCustomer()}
	svc := newTestService(calc, customers, &stubReports{})

	_, err := svc.Generate(context.Background(), GenerateRequest{
		CustomerID: id.New(),
		StartDate:  time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC),
		Format:     FormatPreview,
	})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeReportIntegrity, appErr.Code)
}
