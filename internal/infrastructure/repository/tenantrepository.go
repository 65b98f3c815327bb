package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"devicedesk/internal/domain/tenant"
	"devicedesk/internal/infrastructure/persistence/mappers"
	"devicedesk/internal/infrastructure/persistence/models"
	db "devicedesk/internal/shared/db"
)

type TenantRepository struct {
	db     *gorm.DB
	mapper mappers.TenantMapper
}

func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{
		db:     db,
		mapper: mappers.NewTenantMapper(),
	}
}

func (r *TenantRepository) GetByID(ctx context.Context, tenantID uint) (*tenant.Tenant, error) {
	var model models.TenantModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, tenantID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, tenant.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to find tenant: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// ResolveByActor maps an authenticated staff member to their tenant. Inactive
// staff resolve to nothing.
func (r *TenantRepository) ResolveByActor(ctx context.Context, actorID uint) (uint, error) {
	var staff models.StaffMemberModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ? AND active = ?", actorID, true).
		First(&staff).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, tenant.ErrStaffMemberNotFound
		}
		return 0, fmt.Errorf("failed to resolve tenant for actor: %w", err)
	}

	return staff.TenantID, nil
}
