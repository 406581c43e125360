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

// LeadHandler handles HTTP requests for the sales pipeline.
type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.CreateLeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLead(created))
}

func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.usecase.List(c.Request.Context(), c.Query("search"), entities.LeadStatus(c.Query("status")))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLeads(leads))
}

func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {
	var payload request.LeadStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.UpdateStatus(
		c.Request.Context(),
		c.Param("id"),
		entities.LeadStatus(payload.Status),
		request.ResolveActor(payload.Actor),
		usecase.LeadTransitionMeta{AssignedEngineerID: payload.EngineerID, Details: payload.Details},
	)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

// ReviewLead records the engineer-review outcome for a lead in
// EngineerReview: approve moves it to QuoteSent, reject sends it back to
// SiteSurvey with mandatory feedback.
func (h *LeadHandler) ReviewLead(c *gin.Context) {
	var payload request.LeadReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Approve == nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	lead, err := h.usecase.Review(c.Request.Context(), c.Param("id"), *payload.Approve, payload.Feedback, request.ResolveActor(payload.Actor))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLead(lead))
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID), errors.Is(err, usecase.ErrInvalidLeadName), errors.Is(err, usecase.ErrInvalidLeadStatus):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid lead payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReviewFeedbackRequired):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Review feedback is required on rejection", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Lead not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
