package handlers

import (
	"errors"
	"net/http"

	request "amsi_crm/internal/adapter/http/dto/request"
	response "amsi_crm/internal/adapter/http/dto/response"
	"amsi_crm/internal/usecase"
	"amsi_crm/pkg"

	"github.com/gin-gonic/gin"
)

// CustomerHandler handles HTTP requests for customer accounts.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCustomer(created))
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.usecase.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var payload request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// ClaimFreeService claims the one-shot free-service benefit and returns the
// spawned high-priority ticket.
func (h *CustomerHandler) ClaimFreeService(c *gin.Context) {
	var payload request.ClaimFreeServiceRequest
	_ = c.ShouldBindJSON(&payload) // body is optional

	ticket, err := h.usecase.ClaimFreeService(c.Request.Context(), c.Param("id"), request.ResolveActor(payload.Actor))
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTicket(ticket))
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrInvalidCustomerName), errors.Is(err, usecase.ErrInvalidCustomerEmail):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid customer payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFreeServiceAlreadyClaimed):
		return pkg.NewDomainErrorSimple("FREE_SERVICE_ALREADY_CLAIMED", "Free service already claimed", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoRegisteredSystem):
		return pkg.NewDomainErrorSimple("NO_REGISTERED_SYSTEM", "Customer has no registered system", http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
