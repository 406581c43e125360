package handlers

import (
	"errors"
	"net/http"

	request "amsi_crm/internal/adapter/http/dto/request"
	response "amsi_crm/internal/adapter/http/dto/response"
	"amsi_crm/internal/domain/entities"
	"amsi_crm/internal/usecase"
	"amsi_crm/pkg"

	"github.com/gin-gonic/gin"
)

// TicketHandler handles HTTP requests for service tickets.
type TicketHandler struct {
	usecase usecase.ITicketUseCase
}

func NewTicketHandler(uc usecase.ITicketUseCase) *TicketHandler {
	return &TicketHandler{usecase: uc}
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var payload request.CreateTicketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity(), request.ResolveActor(payload.Actor))
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTicket(created))
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	tickets, err := h.usecase.List(c.Request.Context(), c.Query("search"), entities.TicketStatus(c.Query("status")))
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTickets(tickets))
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticket, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTicket(ticket))
}

func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	var payload request.TicketStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	ticket, err := h.usecase.UpdateStatus(
		c.Request.Context(),
		c.Param("id"),
		entities.TicketStatus(payload.Status),
		request.ResolveActor(payload.Actor),
		usecase.TicketTransitionMeta{
			TechnicianID: payload.TechnicianID,
			ScheduledFor: payload.ScheduledFor,
			Details:      payload.Details,
		},
	)
	if err != nil {
		appErr := mapTicketError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTicket(ticket))
}

func mapTicketError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTicketID), errors.Is(err, usecase.ErrInvalidTicketTitle),
		errors.Is(err, usecase.ErrInvalidTicketCust), errors.Is(err, usecase.ErrInvalidTicketStatus),
		errors.Is(err, usecase.ErrTechnicianRequired):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid ticket payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTicketNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Ticket not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
