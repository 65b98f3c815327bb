package customer

import (
	"fmt"
	"time"
)

// Customer owns the devices under service. Email is optional; tickets for
// customers without one simply never trigger notifications.
type Customer struct {
	id        uint
	tenantID  uint
	name      string
	email     string
	phone     string
	createdAt time.Time
}

func ReconstructCustomer(
	id uint,
	tenantID uint,
	name string,
	email string,
	phone string,
	createdAt time.Time,
) (*Customer, error) {
	if id == 0 {
		return nil, fmt.Errorf("customer ID cannot be zero")
	}
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("customer name is required")
	}

	return &Customer{
		id:        id,
		tenantID:  tenantID,
		name:      name,
		email:     email,
		phone:     phone,
		createdAt: createdAt,
	}, nil
}

func (c *Customer) ID() uint             { return c.id }
func (c *Customer) TenantID() uint       { return c.tenantID }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

// HasEmail reports whether notifications can reach this customer.
func (c *Customer) HasEmail() bool {
	return c.email != ""
}
