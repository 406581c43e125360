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

// SubscriptionHandler handles HTTP requests for monitoring subscriptions,
// including the auto-billing batch run.
type SubscriptionHandler struct {
	usecase usecase.ISubscriptionUseCase
}

func NewSubscriptionHandler(uc usecase.ISubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{usecase: uc}
}

func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var payload request.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSubscription(created))
}

func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	subs, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubscriptions(subs))
}

func (h *SubscriptionHandler) UpdateSubscriptionStatus(c *gin.Context) {
	var payload request.SubscriptionStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	sub, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.SubscriptionStatus(payload.Status), request.ResolveActor(payload.Actor), payload.Details)
	if err != nil {
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubscription(sub))
}

// RunBilling executes one auto-billing batch over all active subscriptions
// and reports per-item outcomes.
func (h *SubscriptionHandler) RunBilling(c *gin.Context) {
	var payload request.RunBillingRequest
	_ = c.ShouldBindJSON(&payload) // body is optional

	res, err := h.usecase.RunAutoBilling(c.Request.Context(), request.ResolveActor(payload.Actor))
	if err != nil {
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, res)
}

func mapSubscriptionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSubscriptionID), errors.Is(err, usecase.ErrInvalidSubscriptionCust),
		errors.Is(err, usecase.ErrInvalidPlanName), errors.Is(err, usecase.ErrInvalidBillingCycle),
		errors.Is(err, usecase.ErrInvalidSubscriptionAmount), errors.Is(err, usecase.ErrInvalidSubscriptionStatus):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid subscription payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubscriptionNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Subscription not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
