package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devicedesk/internal/domain/ticket"
	vo "devicedesk/internal/domain/ticket/valueobjects"
	"devicedesk/internal/domain/workflow"
	"devicedesk/internal/shared/errors"
)

func TestGetTicket_FullTimeline(t *testing.T) {
	tk := buildTestTicket(t, workflow.KindRepair, workflow.StatusInProgress)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, tenantID, ticketID uint) (*ticket.Ticket, error) {
			if tenantID != testTenantID || ticketID != testTicketID {
				return nil, ticket.ErrTicketNotFound
			}
			return tk, nil
		},
	}

	event, err := ticket.NewStatusEvent(testTicketID, workflow.StatusSubmitted, workflow.StatusReceived, "arrived", testActorID, nil)
	require.NoError(t, err)
	eventRepo := &mockStatusEventRepository{appended: []*ticket.StatusEvent{event}}

	sysMsg, err := ticket.NewSystemMessage(testTicketID, "Status changed from submitted to received")
	require.NoError(t, err)
	humanMsg, err := ticket.NewMessage(testTicketID, vo.AuthorStaff, testActorID, "Looks repairable")
	require.NoError(t, err)
	messageRepo := &mockMessageRepository{appended: []*ticket.Message{sysMsg, humanMsg}}

	media, err := ticket.ReconstructMedia(3, testTicketID, "https://cdn.acme.test/before.jpg",
		vo.MediaImage, vo.MediaTagBefore, time.Now().UTC())
	require.NoError(t, err)
	mediaRepo := &mockMediaRepository{
		ListByTicketFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Media, error) {
			return []*ticket.Media{media}, nil
		},
	}

	uc := NewGetTicketUseCase(ticketRepo, eventRepo, messageRepo, mediaRepo, testLogger())
	result, err := uc.Execute(context.Background(), GetTicketQuery{
		Kind:     workflow.KindRepair,
		TenantID: testTenantID,
		TicketID: testTicketID,
	})

	require.NoError(t, err)
	assert.Equal(t, testTicketID, result.ID)
	assert.Equal(t, "repair", result.Kind)
	assert.Equal(t, "in_progress", result.Status)

	require.Len(t, result.StatusHistory, 1)
	assert.Equal(t, "submitted", result.StatusHistory[0].PreviousStatus)
	assert.Equal(t, "received", result.StatusHistory[0].NewStatus)
	assert.Equal(t, "arrived", result.StatusHistory[0].Note)

	require.Len(t, result.Messages, 2)
	assert.Equal(t, "system", result.Messages[0].AuthorKind)
	assert.Nil(t, result.Messages[0].AuthorID)
	assert.Equal(t, "staff", result.Messages[1].AuthorKind)
	require.NotNil(t, result.Messages[1].AuthorID)
	assert.Equal(t, testActorID, *result.Messages[1].AuthorID)

	require.Len(t, result.Media, 1)
	assert.Equal(t, "image", result.Media[0].Kind)
	assert.Equal(t, "before", result.Media[0].Tag)
}

func TestGetTicket_NotFoundScopes(t *testing.T) {
	tk := buildTestTicket(t, workflow.KindRepair, workflow.StatusSubmitted)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, tenantID, ticketID uint) (*ticket.Ticket, error) {
			if tenantID != testTenantID || ticketID != testTicketID {
				return nil, ticket.ErrTicketNotFound
			}
			return tk, nil
		},
	}
	uc := NewGetTicketUseCase(ticketRepo, &mockStatusEventRepository{}, &mockMessageRepository{}, &mockMediaRepository{}, testLogger())

	tests := []struct {
		name  string
		query GetTicketQuery
	}{
		{
			name:  "unknown id",
			query: GetTicketQuery{Kind: workflow.KindRepair, TenantID: testTenantID, TicketID: 999},
		},
		{
			name:  "foreign tenant",
			query: GetTicketQuery{Kind: workflow.KindRepair, TenantID: testTenantID + 1, TicketID: testTicketID},
		},
		{
			name:  "wrong kind",
			query: GetTicketQuery{Kind: workflow.KindBuyback, TenantID: testTenantID, TicketID: testTicketID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.query)
			require.Error(t, err)
			assert.True(t, errors.IsNotFoundError(err))
		})
	}
}

func TestListMedia_ScopedToTicket(t *testing.T) {
	tk := buildTestTicket(t, workflow.KindRefurbishing, workflow.StatusGraded)
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, tenantID, ticketID uint) (*ticket.Ticket, error) {
			if tenantID != testTenantID || ticketID != testTicketID {
				return nil, ticket.ErrTicketNotFound
			}
			return tk, nil
		},
	}

	before, err := ticket.ReconstructMedia(1, testTicketID, "https://cdn.acme.test/before.mp4",
		vo.MediaVideo, vo.MediaTagBefore, time.Now().UTC())
	require.NoError(t, err)
	after, err := ticket.ReconstructMedia(2, testTicketID, "https://cdn.acme.test/after.jpg",
		vo.MediaImage, vo.MediaTagAfter, time.Now().UTC())
	require.NoError(t, err)
	mediaRepo := &mockMediaRepository{
		ListByTicketFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Media, error) {
			return []*ticket.Media{before, after}, nil
		},
	}

	uc := NewListMediaUseCase(ticketRepo, mediaRepo, testLogger())
	result, err := uc.Execute(context.Background(), ListMediaQuery{
		Kind:     workflow.KindRefurbishing,
		TenantID: testTenantID,
		TicketID: testTicketID,
	})

	require.NoError(t, err)
	require.Len(t, result.Media, 2)
	assert.Equal(t, "video", result.Media[0].Kind)
	assert.Equal(t, "after", result.Media[1].Tag)

	_, err = uc.Execute(context.Background(), ListMediaQuery{
		Kind:     workflow.KindRepair,
		TenantID: testTenantID,
		TicketID: testTicketID,
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestGetTicket_StorageFailureIsInternal(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, tenantID, ticketID uint) (*ticket.Ticket, error) {
			return nil, fmt.Errorf("failed to find ticket: connection refused")
		},
	}
	uc := NewGetTicketUseCase(ticketRepo, &mockStatusEventRepository{}, &mockMessageRepository{}, &mockMediaRepository{}, testLogger())

	_, err := uc.Execute(context.Background(), GetTicketQuery{
		Kind:     workflow.KindRepair,
		TenantID: testTenantID,
		TicketID: testTicketID,
	})

	require.Error(t, err)
	assert.False(t, errors.IsNotFoundError(err))
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}

func TestListMedia_StorageFailureIsInternal(t *testing.T) {
	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, tenantID, ticketID uint) (*ticket.Ticket, error) {
			return nil, fmt.Errorf("failed to find ticket: connection refused")
		},
	}
	uc := NewListMediaUseCase(ticketRepo, &mockMediaRepository{}, testLogger())

	_, err := uc.Execute(context.Background(), ListMediaQuery{
		Kind:     workflow.KindRepair,
		TenantID: testTenantID,
		TicketID: testTicketID,
	})

	require.Error(t, err)
	assert.False(t, errors.IsNotFoundError(err))
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}
