package catalog_repo

import (
	"warebill/internal/domain/catalogs/material"
	"warebill/internal/infrastructure/storage/postgres"
)

const materialTable = "cat_materials"

// MaterialRepo implements material.Repository.
type MaterialRepo struct {
	*BaseCatalogRepo[*material.Material]
}

// NewMaterialRepo creates a new material repository.
func NewMaterialRepo(txm *postgres.TxManager) *MaterialRepo {
	return &MaterialRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*material.Material](
			txm,
			materialTable,
			postgres.ExtractDBColumns[material.Material](),
			func() *material.Material { return &material.Material{} },
		),
	}
}
