package usecases

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"devicedesk/internal/domain/customer"
	"devicedesk/internal/domain/tenant"
	"devicedesk/internal/domain/ticket"
	"devicedesk/internal/domain/workflow"
	"devicedesk/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockTicketRepository struct {
	SaveFunc        func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc      func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc     func(ctx context.Context, tenantID, ticketID uint) (*ticket.Ticket, error)
	GetByNumberFunc func(ctx context.Context, tenantID uint, number string) (*ticket.Ticket, error)
	ListFunc        func(ctx context.Context, tenantID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, tenantID, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, tenantID, ticketID)
	}
	return nil, ticket.ErrTicketNotFound
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, tenantID uint, number string) (*ticket.Ticket, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, tenantID, number)
	}
	return nil, ticket.ErrTicketNotFound
}

func (m *mockTicketRepository) List(ctx context.Context, tenantID uint, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, tenantID, filter)
	}
	return nil, 0, nil
}

type mockStatusEventRepository struct {
	AppendFunc       func(ctx context.Context, event *ticket.StatusEvent) error
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.StatusEvent, error)

	appended []*ticket.StatusEvent
}

func (m *mockStatusEventRepository) Append(ctx context.Context, event *ticket.StatusEvent) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, event)
	}
	m.appended = append(m.appended, event)
	return nil
}

func (m *mockStatusEventRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.StatusEvent, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return m.appended, nil
}

type mockMessageRepository struct {
	AppendFunc       func(ctx context.Context, message *ticket.Message) error
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.Message, error)

	appended []*ticket.Message
}

func (m *mockMessageRepository) Append(ctx context.Context, message *ticket.Message) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, message)
	}
	m.appended = append(m.appended, message)
	return nil
}

func (m *mockMessageRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return m.appended, nil
}

func (m *mockMessageRepository) bodies() []string {
	out := make([]string, 0, len(m.appended))
	for _, msg := range m.appended {
		out = append(out, msg.Body())
	}
	return out
}

type mockMediaRepository struct {
	ListByTicketFunc func(ctx context.Context, ticketID uint) ([]*ticket.Media, error)
}

func (m *mockMediaRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Media, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockCustomerRepository struct {
	GetByIDFunc func(ctx context.Context, tenantID, customerID uint) (*customer.Customer, error)
}

func (m *mockCustomerRepository) GetByID(ctx context.Context, tenantID, customerID uint) (*customer.Customer, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, tenantID, customerID)
	}
	return nil, customer.ErrCustomerNotFound
}

type mockTenantRepository struct {
	GetByIDFunc        func(ctx context.Context, tenantID uint) (*tenant.Tenant, error)
	ResolveByActorFunc func(ctx context.Context, actorID uint) (uint, error)
}

func (m *mockTenantRepository) GetByID(ctx context.Context, tenantID uint) (*tenant.Tenant, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, tenantID)
	}
	return nil, tenant.ErrTenantNotFound
}

func (m *mockTenantRepository) ResolveByActor(ctx context.Context, actorID uint) (uint, error) {
	if m.ResolveByActorFunc != nil {
		return m.ResolveByActorFunc(ctx, actorID)
	}
	return 0, tenant.ErrStaffMemberNotFound
}

type sentEmail struct {
	To      string
	Subject string
	HTML    string
}

type mockSender struct {
	SendFunc func(ctx context.Context, to, subject, htmlBody string) error

	sent []sentEmail
}

func (m *mockSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.SendFunc != nil {
		if err := m.SendFunc(ctx, to, subject, htmlBody); err != nil {
			return err
		}
	}
	m.sent = append(m.sent, sentEmail{To: to, Subject: subject, HTML: htmlBody})
	return nil
}

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context, tenantID uint, kind workflow.Kind) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context, tenantID uint, kind workflow.Kind) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, tenantID, kind)
	}
	return fmt.Sprintf("%s-20260101-0001", kind.NumberPrefix()), nil
}

type mockListCache struct {
	GetFunc func(ctx context.Context, tenantID uint, kind workflow.Kind) (*ListTicketsResult, bool)

	stored      map[string]*ListTicketsResult
	invalidated int
}

func cacheKey(tenantID uint, kind workflow.Kind) string {
	return fmt.Sprintf("%d:%s", tenantID, kind)
}

func (m *mockListCache) Get(ctx context.Context, tenantID uint, kind workflow.Kind) (*ListTicketsResult, bool) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, tenantID, kind)
	}
	r, ok := m.stored[cacheKey(tenantID, kind)]
	return r, ok
}

func (m *mockListCache) Set(ctx context.Context, tenantID uint, kind workflow.Kind, result *ListTicketsResult) {
	if m.stored == nil {
		m.stored = make(map[string]*ListTicketsResult)
	}
	m.stored[cacheKey(tenantID, kind)] = result
}

func (m *mockListCache) Invalidate(ctx context.Context, tenantID uint, kind workflow.Kind) {
	m.invalidated++
	delete(m.stored, cacheKey(tenantID, kind))
}
