package catalog_repo

import (
	"warebill/internal/domain/catalogs/service_type"
	"warebill/internal/infrastructure/storage/postgres"
)

const serviceTypeTable = "cat_service_types"

// ServiceTypeRepo implements service_type.Repository.
type ServiceTypeRepo struct {
	*BaseCatalogRepo[*service_type.ServiceType]
}

// NewServiceTypeRepo creates a new service type repository.
func NewServiceTypeRepo(txm *postgres.TxManager) *ServiceTypeRepo {
	return &ServiceTypeRepo{
		BaseCatalogRepo: NewBaseCatalogRepo[*service_type.ServiceType](
			txm,
			serviceTypeTable,
			postgres.ExtractDBColumns[service_type.ServiceType](),
			func() *service_type.ServiceType { return &service_type.ServiceType{} },
		),
	}
}
