package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"warebill/internal/core/id"
	"warebill/internal/domain"
	"warebill/internal/domain/documents/order"
	"warebill/internal/infrastructure/storage/postgres"
)

const (
	ordersTable     = "doc_orders"
	orderLinesTable = "doc_order_lines"
)

// OrderRepo implements order.Repository.
type OrderRepo struct {
	*BaseDocumentRepo[*order.Order]
	batch *postgres.BatchInserter
}

// NewOrderRepo creates a new order repository.
func NewOrderRepo(txm *postgres.TxManager) *OrderRepo {
	return &OrderRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*order.Order](
			txm,
			ordersTable,
			postgres.ExtractDBColumns[order.Order](),
			func() *order.Order { return &order.Order{} },
		),
		batch: postgres.NewBatchInserter(txm),
	}
}

func (r *OrderRepo) GetLines(ctx context.Context, docID id.ID) ([]order.Line, error) {
	q := r.Builder().
		Select("line_id", "line_no", "product_id", "quantity", "unit_price", "amount").
		From(orderLinesTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []order.Line
	if err := pgxscan.Select(ctx, r.Querier(ctx), &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get lines: %w", err)
	}

	return lines, nil
}

func (r *OrderRepo) SaveLines(ctx context.Context, docID id.ID, lines []order.Line) error {
	querier := r.Querier(ctx)

	deleteSQL := "DELETE FROM " + orderLinesTable + " WHERE document_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing lines: %w", err)
	}

	if len(lines) == 0 {
		return nil
	}

	lineColumns := []string{"line_id", "document_id", "line_no", "product_id", "quantity", "unit_price", "amount"}
	rows := make([][]any, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []any{line.LineID, docID, line.LineNo, line.ProductID, line.Quantity, line.UnitPrice, line.Amount})
	}

	if _, err := r.batch.CopyFromSlice(ctx, orderLinesTable, lineColumns, rows); err != nil {
		return fmt.Errorf("insert lines: %w", err)
	}

	return nil
}

func (r *OrderRepo) List(ctx context.Context, f order.ListFilter) (domain.ListResult[*order.Order], error) {
	q := r.BaseSelect()

	if !f.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}

	if f.CustomerID != nil {
		q = q.Where(squirrel.Eq{"customer_id": *f.CustomerID})
	}

	if f.Status != nil {
		q = q.Where(squirrel.Eq{"status": *f.Status})
	}

	if f.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"date": *f.DateFrom})
	}

	if f.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"date": *f.DateTo})
	}

	if f.Search != "" {
		q = q.Where(squirrel.ILike{"number": "%" + f.Search + "%"})
	}

	return r.ListQuery(ctx, q, f.ListFilter)
}
