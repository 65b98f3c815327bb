package tenant

import "errors"

var (
	// ErrTenantNotFound means no tenant matched the lookup.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrStaffMemberNotFound means the actor does not resolve to an active
	// staff member of any tenant.
	ErrStaffMemberNotFound = errors.New("staff member not found")
)
