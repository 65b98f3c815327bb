package customer

import "context"

// Repository persists customers. Lookups are tenant-scoped like every other
// store in this codebase.
type Repository interface {
	GetByID(ctx context.Context, tenantID, customerID uint) (*Customer, error)
}
