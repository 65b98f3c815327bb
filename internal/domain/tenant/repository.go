package tenant

import "context"

// Repository is the tenant directory. ResolveByActor maps an authenticated
// staff actor to exactly one tenant; a miss is a not-found, never a
// different error, so callers cannot distinguish unknown actors from actors
// of other tenants.
type Repository interface {
	GetByID(ctx context.Context, tenantID uint) (*Tenant, error)
	ResolveByActor(ctx context.Context, actorID uint) (uint, error)
}
