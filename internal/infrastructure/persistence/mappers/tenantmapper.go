package mappers

import (
	"time"

	"devicedesk/internal/domain/tenant"
	"devicedesk/internal/infrastructure/persistence/models"
)

type TenantMapper interface {
	ToDomain(model *models.TenantModel) (*tenant.Tenant, error)
}

type TenantMapperImpl struct{}

func NewTenantMapper() TenantMapper {
	return &TenantMapperImpl{}
}

func (m *TenantMapperImpl) ToDomain(model *models.TenantModel) (*tenant.Tenant, error) {
	return tenant.ReconstructTenant(
		model.ID,
		model.Name,
		model.ContactEmail,
		model.LogoURL,
		model.Currency,
		model.FooterMarkdown,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}
