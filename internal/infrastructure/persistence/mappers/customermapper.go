package mappers

import (
	"time"

	"devicedesk/internal/domain/customer"
	"devicedesk/internal/infrastructure/persistence/models"
)

type CustomerMapper interface {
	ToDomain(model *models.CustomerModel) (*customer.Customer, error)
}

type CustomerMapperImpl struct{}

func NewCustomerMapper() CustomerMapper {
	return &CustomerMapperImpl{}
}

func (m *CustomerMapperImpl) ToDomain(model *models.CustomerModel) (*customer.Customer, error) {
	return customer.ReconstructCustomer(
		model.ID,
		model.TenantID,
		model.Name,
		model.Email,
		model.Phone,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}
