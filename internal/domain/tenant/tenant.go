package tenant

import (
	"fmt"
	"time"
)

// Tenant is one company account, the unit of data isolation. Branding
// fields feed customer-facing notification content.
type Tenant struct {
	id             uint
	name           string
	contactEmail   string
	logoURL        string
	currency       string
	footerMarkdown string
	createdAt      time.Time
}

func ReconstructTenant(
	id uint,
	name string,
	contactEmail string,
	logoURL string,
	currency string,
	footerMarkdown string,
	createdAt time.Time,
) (*Tenant, error) {
	if id == 0 {
		return nil, fmt.Errorf("tenant ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("tenant name is required")
	}
	if currency == "" {
		currency = "USD"
	}

	return &Tenant{
		id:             id,
		name:           name,
		contactEmail:   contactEmail,
		logoURL:        logoURL,
		currency:       currency,
		footerMarkdown: footerMarkdown,
		createdAt:      createdAt,
	}, nil
}

func (t *Tenant) ID() uint               { return t.id }
func (t *Tenant) Name() string           { return t.name }
func (t *Tenant) ContactEmail() string   { return t.contactEmail }
func (t *Tenant) LogoURL() string        { return t.logoURL }
func (t *Tenant) Currency() string       { return t.currency }
func (t *Tenant) FooterMarkdown() string { return t.footerMarkdown }
func (t *Tenant) CreatedAt() time.Time   { return t.createdAt }
