package document_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"warebill/internal/domain"
	"warebill/internal/domain/documents/shipment"
	"warebill/internal/infrastructure/storage/postgres"
)

const shipmentsTable = "doc_shipments"

// ShipmentRepo implements shipment.Repository.
type ShipmentRepo struct {
	*BaseDocumentRepo[*shipment.Shipment]
}

// NewShipmentRepo creates a new shipment repository.
func NewShipmentRepo(txm *postgres.TxManager) *ShipmentRepo {
	return &ShipmentRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*shipment.Shipment](
			txm,
			shipmentsTable,
			postgres.ExtractDBColumns[shipment.Shipment](),
			func() *shipment.Shipment { return &shipment.Shipment{} },
		),
	}
}

func (r *ShipmentRepo) List(ctx context.Context, f shipment.ListFilter) (domain.ListResult[*shipment.Shipment], error) {
	q := r.BaseSelect()

	if !f.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}

	if f.OrderID != nil {
		q = q.Where(squirrel.Eq{"order_id": *f.OrderID})
	}

	if f.Carrier != nil {
		q = q.Where(squirrel.Eq{"carrier": *f.Carrier})
	}

	if f.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"shipped_at": *f.DateFrom})
	}

	if f.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"shipped_at": *f.DateTo})
	}

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"number": pattern},
			squirrel.ILike{"tracking_number": pattern},
		})
	}

	return r.ListQuery(ctx, q, f.ListFilter)
}
