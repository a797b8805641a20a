package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// BatchInserter performs bulk inserts over the COPY protocol. Orders
// carry their lines as a full-replace table part, so line saves are
// always a bulk write.
type BatchInserter struct {
	txManager *TxManager
}

// NewBatchInserter creates a new batch inserter.
func NewBatchInserter(txManager *TxManager) *BatchInserter {
	return &BatchInserter{txManager: txManager}
}

// CopyFromSlice bulk-inserts rows into table. Each row must match
// columns positionally. The call must run inside a transaction opened
// by the tx manager.
//
// Example:
//
//	rows := [][]any{{lineID, docID, 1, productID, qty, price, amount}}
//	n, err := inserter.CopyFromSlice(ctx, "doc_order_lines", lineColumns, rows)
func (b *BatchInserter) CopyFromSlice(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	tx := b.txManager.GetTx(ctx)
	if tx == nil {
		return 0, fmt.Errorf("CopyFromSlice requires transaction context")
	}

	return tx.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
}
