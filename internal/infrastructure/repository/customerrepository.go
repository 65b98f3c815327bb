package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"devicedesk/internal/domain/customer"
	"devicedesk/internal/infrastructure/persistence/mappers"
	"devicedesk/internal/infrastructure/persistence/models"
	db "devicedesk/internal/shared/db"
)

type CustomerRepository struct {
	db     *gorm.DB
	mapper mappers.CustomerMapper
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		db:     db,
		mapper: mappers.NewCustomerMapper(),
	}
}

func (r *CustomerRepository) GetByID(ctx context.Context, tenantID, customerID uint) (*customer.Customer, error) {
	var model models.CustomerModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ? AND tenant_id = ?", customerID, tenantID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
