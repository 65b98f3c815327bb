package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devicedesk/internal/domain/customer"
	"devicedesk/internal/domain/ticket"
	"devicedesk/internal/domain/workflow"
	"devicedesk/internal/shared/errors"
)

func newCreateFixture() (*mockTicketRepository, *mockCustomerRepository, *mockNumberGenerator, *mockListCache) {
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, t *ticket.Ticket) error {
			return t.SetID(testTicketID)
		},
	}
	customerRepo := &mockCustomerRepository{
		GetByIDFunc: func(ctx context.Context, tenantID, customerID uint) (*customer.Customer, error) {
			if tenantID != testTenantID || customerID != testCustomerID {
				return nil, customer.ErrCustomerNotFound
			}
			return customer.ReconstructCustomer(customerID, tenantID, "Alice Doe", "alice@example.com", "", time.Now().UTC())
		},
	}
	return ticketRepo, customerRepo, &mockNumberGenerator{}, &mockListCache{}
}

func TestCreateTicket_Success(t *testing.T) {
	ticketRepo, customerRepo, numbers, cache := newCreateFixture()
	uc := NewCreateTicketUseCase(ticketRepo, customerRepo, numbers, cache, testLogger())

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Kind:        workflow.KindBuyback,
		TenantID:    testTenantID,
		CustomerID:  testCustomerID,
		DeviceType:  "smartphone",
		DeviceModel: "Pixel 9",
		ActorID:     testActorID,
	})

	require.NoError(t, err)
	assert.Equal(t, testTicketID, result.TicketID)
	assert.Equal(t, "B-20260101-0001", result.Number)
	assert.Equal(t, "submitted", result.Status)
	assert.Equal(t, 1, cache.invalidated)
}

func TestCreateTicket_UnknownCustomer(t *testing.T) {
	ticketRepo, customerRepo, numbers, cache := newCreateFixture()
	uc := NewCreateTicketUseCase(ticketRepo, customerRepo, numbers, cache, testLogger())

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Kind:        workflow.KindRepair,
		TenantID:    testTenantID,
		CustomerID:  999,
		DeviceType:  "smartphone",
		DeviceModel: "Pixel 9",
		ActorID:     testActorID,
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, 0, cache.invalidated)
}

func TestCreateTicket_DuplicateNumberConflict(t *testing.T) {
	ticketRepo, customerRepo, numbers, cache := newCreateFixture()
	ticketRepo.SaveFunc = func(ctx context.Context, t *ticket.Ticket) error {
		return fmt.Errorf("Error 1062: Duplicate entry 'R-20260101-0001'")
	}
	uc := NewCreateTicketUseCase(ticketRepo, customerRepo, numbers, cache, testLogger())

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Kind:        workflow.KindRepair,
		TenantID:    testTenantID,
		CustomerID:  testCustomerID,
		DeviceType:  "smartphone",
		DeviceModel: "Pixel 9",
		ActorID:     testActorID,
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestCreateTicket_ValidationErrors(t *testing.T) {
	ticketRepo, customerRepo, numbers, cache := newCreateFixture()
	uc := NewCreateTicketUseCase(ticketRepo, customerRepo, numbers, cache, testLogger())

	tests := []struct {
		name string
		cmd  CreateTicketCommand
	}{
		{
			name: "missing tenant",
			cmd:  CreateTicketCommand{Kind: workflow.KindRepair, CustomerID: testCustomerID, DeviceType: "phone", DeviceModel: "X", ActorID: testActorID},
		},
		{
			name: "bad kind",
			cmd:  CreateTicketCommand{Kind: workflow.Kind("rental"), TenantID: testTenantID, CustomerID: testCustomerID, DeviceType: "phone", DeviceModel: "X", ActorID: testActorID},
		},
		{
			name: "missing device type",
			cmd:  CreateTicketCommand{Kind: workflow.KindRepair, TenantID: testTenantID, CustomerID: testCustomerID, DeviceModel: "X", ActorID: testActorID},
		},
		{
			name: "missing actor",
			cmd:  CreateTicketCommand{Kind: workflow.KindRepair, TenantID: testTenantID, CustomerID: testCustomerID, DeviceType: "phone", DeviceModel: "X"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
		})
	}
}

func TestCreateTicket_CustomerLookupFailureIsInternal(t *testing.T) {
	ticketRepo, customerRepo, numbers, cache := newCreateFixture()
	customerRepo.GetByIDFunc = func(ctx context.Context, tenantID, customerID uint) (*customer.Customer, error) {
		return nil, fmt.Errorf("failed to find customer: connection refused")
	}
	uc := NewCreateTicketUseCase(ticketRepo, customerRepo, numbers, cache, testLogger())

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Kind:        workflow.KindRepair,
		TenantID:    testTenantID,
		CustomerID:  testCustomerID,
		DeviceType:  "smartphone",
		DeviceModel: "Pixel 9",
		ActorID:     testActorID,
	})

	require.Error(t, err)
	assert.False(t, errors.IsNotFoundError(err))
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}
