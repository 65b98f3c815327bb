package ticket

import (
	"context"

	"devicedesk/internal/domain/workflow"
)

// TicketRepository persists tickets. Every lookup is tenant-scoped: an id
// owned by a different tenant behaves exactly like an unknown id.
type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, tenantID, ticketID uint) (*Ticket, error)
	GetByNumber(ctx context.Context, tenantID uint, number string) (*Ticket, error)
	List(ctx context.Context, tenantID uint, filter Filter) ([]*Ticket, int64, error)
}

// Filter narrows ticket listings within one tenant.
type Filter struct {
	Kind       *workflow.Kind
	Status     *workflow.Status
	CustomerID *uint
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}

// IsPlainFirstPage reports whether the filter is the default first-page
// listing for a kind, the only shape served through the list cache.
func (f Filter) IsPlainFirstPage() bool {
	return f.Kind != nil && f.Status == nil && f.CustomerID == nil &&
		f.Page <= 1 && f.SortBy == ""
}

// StatusEventRepository is the append-only audit trail store.
type StatusEventRepository interface {
	Append(ctx context.Context, event *StatusEvent) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*StatusEvent, error)
}

// MessageRepository is the append-only conversation log store, ordered by
// creation time ascending.
type MessageRepository interface {
	Append(ctx context.Context, message *Message) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Message, error)
}

// MediaRepository reads media references. The engine never writes media.
type MediaRepository interface {
	ListByTicket(ctx context.Context, ticketID uint) ([]*Media, error)
}
