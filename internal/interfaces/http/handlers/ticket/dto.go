package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"devicedesk/internal/application/ticket/usecases"
	"devicedesk/internal/domain/ticket"
	vo "devicedesk/internal/domain/ticket/valueobjects"
	"devicedesk/internal/domain/workflow"
	"devicedesk/internal/shared/utils"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// ticketstatus restricts fields to lowercase snake_case status tokens.
		// Membership in a workflow's enum is checked by the use case, which
		// knows the kind.
		v.RegisterValidation("ticketstatus", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" {
				return false
			}
			for _, r := range value {
				if (r < 'a' || r > 'z') && r != '_' {
					return false
				}
			}
			return true
		})
	}
}

type CreateTicketRequest struct {
	CustomerID     uint   `json:"customer_id" binding:"required"`
	DeviceType     string `json:"device_type" binding:"required,max=100"`
	DeviceModel    string `json:"device_model" binding:"required,max=200"`
	ConditionGrade string `json:"condition_grade,omitempty" binding:"omitempty,max=20"`
	Notes          string `json:"notes,omitempty" binding:"omitempty,max=5000"`
}

func (r *CreateTicketRequest) ToCommand(kind workflow.Kind, tenantID, actorID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Kind:           kind,
		TenantID:       tenantID,
		CustomerID:     r.CustomerID,
		DeviceType:     r.DeviceType,
		DeviceModel:    r.DeviceModel,
		ConditionGrade: r.ConditionGrade,
		Notes:          r.Notes,
		ActorID:        actorID,
	}
}

type UpdateStatusRequest struct {
	Status          string  `json:"status" binding:"required,ticketstatus,max=30"`
	Note            string  `json:"note,omitempty" binding:"omitempty,max=2000"`
	ConditionGrade  *string `json:"condition_grade,omitempty" binding:"omitempty,max=20"`
	PrimaryAmount   *int64  `json:"primary_amount,omitempty" binding:"omitempty,min=0"`
	SecondaryAmount *int64  `json:"secondary_amount,omitempty" binding:"omitempty,min=0"`
	Diagnosis       *string `json:"diagnosis,omitempty" binding:"omitempty,max=5000"`
	Notes           *string `json:"notes,omitempty" binding:"omitempty,max=5000"`
}

func (r *UpdateStatusRequest) ToCommand(kind workflow.Kind, tenantID, ticketID, actorID uint) usecases.TransitionTicketCommand {
	return usecases.TransitionTicketCommand{
		Kind:      kind,
		TenantID:  tenantID,
		TicketID:  ticketID,
		NewStatus: workflow.Status(r.Status),
		Note:      r.Note,
		Patch: ticket.FieldPatch{
			ConditionGrade:  r.ConditionGrade,
			PrimaryAmount:   r.PrimaryAmount,
			SecondaryAmount: r.SecondaryAmount,
			Diagnosis:       r.Diagnosis,
			Notes:           r.Notes,
		},
		ActorID: actorID,
	}
}

type AddMessageRequest struct {
	Body string `json:"body" binding:"required,max=5000"`
}

func (r *AddMessageRequest) ToCommand(kind workflow.Kind, tenantID, ticketID, actorID uint) usecases.AddMessageCommand {
	return usecases.AddMessageCommand{
		Kind:       kind,
		TenantID:   tenantID,
		TicketID:   ticketID,
		AuthorKind: vo.AuthorStaff,
		AuthorID:   actorID,
		Body:       r.Body,
	}
}

type ListTicketsRequest struct {
	Page       int
	PageSize   int
	Status     *workflow.Status
	CustomerID *uint
	SortBy     string
	SortOrder  string
}

func (r *ListTicketsRequest) ToQuery(kind workflow.Kind, tenantID uint) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Kind:       kind,
		TenantID:   tenantID,
		Status:     r.Status,
		CustomerID: r.CustomerID,
		Page:       r.Page,
		PageSize:   r.PageSize,
		SortBy:     r.SortBy,
		SortOrder:  r.SortOrder,
	}
}

func parseListTicketsRequest(c *gin.Context) *ListTicketsRequest {
	page, pageSize := utils.ParsePagination(c)

	req := &ListTicketsRequest{
		Page:      page,
		PageSize:  pageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if raw := c.Query("status"); raw != "" {
		status := workflow.Status(raw)
		req.Status = &status
	}

	if raw := c.Query("customer_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil && id > 0 {
			customerID := uint(id)
			req.CustomerID = &customerID
		}
	}

	return req
}
