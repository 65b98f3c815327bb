package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"devicedesk/internal/domain/ticket"
	vo "devicedesk/internal/domain/ticket/valueobjects"
	"devicedesk/internal/domain/workflow"
	"devicedesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket aggregate entities and
// persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	StatusEventToModel(e *ticket.StatusEvent) *models.StatusEventModel
	StatusEventToDomain(model *models.StatusEventModel) (*ticket.StatusEvent, error)

	MessageToModel(m *ticket.Message) *models.MessageModel
	MessageToDomain(model *models.MessageModel) (*ticket.Message, error)

	MediaToDomain(model *models.MediaModel) (*ticket.Media, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:              t.ID(),
		TenantID:        t.TenantID(),
		Kind:            t.Kind().String(),
		CustomerID:      t.CustomerID(),
		Number:          t.Number(),
		DeviceType:      t.DeviceType(),
		DeviceModel:     t.DeviceModel(),
		ConditionGrade:  t.ConditionGrade(),
		PrimaryAmount:   t.PrimaryAmount(),
		SecondaryAmount: t.SecondaryAmount(),
		Diagnosis:       t.Diagnosis(),
		Notes:           t.Notes(),
		Status:          t.Status().String(),
		CreatedAt:       t.CreatedAt().UnixMilli(),
		UpdatedAt:       t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	kind, err := workflow.NewKind(model.Kind)
	if err != nil {
		return nil, fmt.Errorf("invalid kind in ticket %d: %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.TenantID,
		kind,
		model.CustomerID,
		model.Number,
		model.DeviceType,
		model.DeviceModel,
		model.ConditionGrade,
		model.PrimaryAmount,
		model.SecondaryAmount,
		model.Diagnosis,
		model.Notes,
		workflow.Status(model.Status),
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}

func (m *TicketMapperImpl) StatusEventToModel(e *ticket.StatusEvent) *models.StatusEventModel {
	model := &models.StatusEventModel{
		ID:             e.ID(),
		TicketID:       e.TicketID(),
		PreviousStatus: e.PreviousStatus().String(),
		NewStatus:      e.NewStatus().String(),
		Note:           e.Note(),
		ActorID:        e.ActorID(),
		CreatedAt:      e.CreatedAt().UnixMilli(),
	}

	if fields := e.ChangedFields(); len(fields) > 0 {
		if raw, err := json.Marshal(fields); err == nil {
			model.ChangedFields = datatypes.JSON(raw)
		}
	}

	return model
}

func (m *TicketMapperImpl) StatusEventToDomain(model *models.StatusEventModel) (*ticket.StatusEvent, error) {
	var changedFields map[string]interface{}
	if len(model.ChangedFields) > 0 {
		if err := json.Unmarshal(model.ChangedFields, &changedFields); err != nil {
			return nil, fmt.Errorf("invalid changed fields in status event %d: %w", model.ID, err)
		}
	}

	return ticket.ReconstructStatusEvent(
		model.ID,
		model.TicketID,
		workflow.Status(model.PreviousStatus),
		workflow.Status(model.NewStatus),
		model.Note,
		model.ActorID,
		changedFields,
		time.UnixMilli(model.CreatedAt).UTC(),
	), nil
}

func (m *TicketMapperImpl) MessageToModel(msg *ticket.Message) *models.MessageModel {
	return &models.MessageModel{
		ID:         msg.ID(),
		TicketID:   msg.TicketID(),
		AuthorKind: msg.AuthorKind().String(),
		AuthorID:   msg.AuthorID(),
		Body:       msg.Body(),
		CreatedAt:  msg.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) MessageToDomain(model *models.MessageModel) (*ticket.Message, error) {
	authorKind, err := vo.NewAuthorKind(model.AuthorKind)
	if err != nil {
		return nil, fmt.Errorf("invalid author kind in message %d: %w", model.ID, err)
	}

	return ticket.ReconstructMessage(
		model.ID,
		model.TicketID,
		authorKind,
		model.AuthorID,
		model.Body,
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}

func (m *TicketMapperImpl) MediaToDomain(model *models.MediaModel) (*ticket.Media, error) {
	return ticket.ReconstructMedia(
		model.ID,
		model.TicketID,
		model.URL,
		vo.MediaKind(model.Kind),
		vo.MediaTag(model.Tag),
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}
