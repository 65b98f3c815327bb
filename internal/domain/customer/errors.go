package customer

import "errors"

var (
	// ErrCustomerNotFound means no customer matched the tenant-scoped lookup.
	ErrCustomerNotFound = errors.New("customer not found")
)
