package ticket

import (
	"github.com/gin-gonic/gin"

	"devicedesk/internal/application/ticket/usecases"
	"devicedesk/internal/domain/workflow"
	"devicedesk/internal/interfaces/http/middleware"
	"devicedesk/internal/shared/errors"
	"devicedesk/internal/shared/logger"
	"devicedesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	transitionUC   usecases.TransitionTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	addMessageUC   usecases.AddMessageExecutor
	listMediaUC    usecases.ListMediaExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	transitionUC usecases.TransitionTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	addMessageUC usecases.AddMessageExecutor,
	listMediaUC usecases.ListMediaExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		transitionUC:   transitionUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		addMessageUC:   addMessageUC,
		listMediaUC:    listMediaUC,
		logger:         logger.NewLogger(),
	}
}

// CreateTicket handles POST /api/:kind/tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	kind, err := parseKind(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	tenantID := c.GetUint(middleware.ContextKeyTenantID)
	actorID := c.GetUint(middleware.ContextKeyActorID)

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(kind, tenantID, actorID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /api/:kind/tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	kind, err := parseKind(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetTicketQuery{
		Kind:     kind,
		TenantID: c.GetUint(middleware.ContextKeyTenantID),
		TicketID: ticketID,
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListTickets handles GET /api/:kind/tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	kind, err := parseKind(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	req := parseListTicketsRequest(c)
	tenantID := c.GetUint(middleware.ContextKeyTenantID)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery(kind, tenantID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// TransitionStatus handles PATCH /api/:kind/tickets/:id/status
func (h *TicketHandler) TransitionStatus(c *gin.Context) {
	kind, err := parseKind(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for status update", "error", err, "ticket_id", ticketID)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	tenantID := c.GetUint(middleware.ContextKeyTenantID)
	actorID := c.GetUint(middleware.ContextKeyActorID)

	result, err := h.transitionUC.Execute(c.Request.Context(), req.ToCommand(kind, tenantID, ticketID, actorID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result, "Ticket status updated successfully")
}

// AddMessage handles POST /api/:kind/tickets/:id/messages
func (h *TicketHandler) AddMessage(c *gin.Context) {
	kind, err := parseKind(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add message", "error", err, "ticket_id", ticketID)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	tenantID := c.GetUint(middleware.ContextKeyTenantID)
	actorID := c.GetUint(middleware.ContextKeyActorID)

	result, err := h.addMessageUC.Execute(c.Request.Context(), req.ToCommand(kind, tenantID, ticketID, actorID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message added successfully")
}

// ListMedia handles GET /api/:kind/tickets/:id/media
func (h *TicketHandler) ListMedia(c *gin.Context) {
	kind, err := parseKind(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ListMediaQuery{
		Kind:     kind,
		TenantID: c.GetUint(middleware.ContextKeyTenantID),
		TicketID: ticketID,
	}

	result, err := h.listMediaUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// parseKind resolves the workflow segment of the path. An unknown segment
// is reported as not found rather than a validation error so the URL space
// outside the three workflows stays opaque.
func parseKind(c *gin.Context) (workflow.Kind, error) {
	kind, err := workflow.NewKind(c.Param("kind"))
	if err != nil {
		return "", errors.NewNotFoundError("resource not found")
	}
	return kind, nil
}
