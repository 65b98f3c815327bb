package ticket

import "errors"

var (
	// ErrTicketNotFound means no ticket matched the tenant-scoped lookup.
	// A ticket owned by another tenant produces the same error.
	ErrTicketNotFound = errors.New("ticket not found")
)
