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

// QuoteHandler handles HTTP requests for quotes, including the
// quote-to-invoice conversion action.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.CustomerID, payload.Title, request.ToLineItems(payload.Items), request.ResolveActor(payload.Actor))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(created))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) UpdateQuoteItems(c *gin.Context) {
	var payload request.UpdateQuoteItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateItems(c.Request.Context(), c.Param("id"), request.ToLineItems(payload.Items), request.ResolveActor(payload.Actor))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	var payload request.QuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.QuoteStatus(payload.Status), request.ResolveActor(payload.Actor), payload.Details)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ConvertQuote turns a sent or accepted quote into a draft invoice. The
// action is discrete and non-retriable: a second conversion of the same
// quote is refused.
func (h *QuoteHandler) ConvertQuote(c *gin.Context) {
	var payload request.ConvertQuoteRequest
	_ = c.ShouldBindJSON(&payload) // body is optional

	invoice, err := h.usecase.ConvertToInvoice(c.Request.Context(), c.Param("id"), request.ResolveActor(payload.Actor))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(invoice))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuoteCustomer),
		errors.Is(err, usecase.ErrEmptyQuoteItems), errors.Is(err, usecase.ErrInvalidQuoteItem),
		errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid quote payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteAlreadyConverted):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_CONVERTED", "Quote already converted to an invoice", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotConvertible), errors.Is(err, usecase.ErrQuoteNotEditable):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", err.Error(), http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
