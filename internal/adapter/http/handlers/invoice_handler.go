package handlers

import (
	"errors"
	"log"
	"net/http"

	request "amsi_crm/internal/adapter/http/dto/request"
	response "amsi_crm/internal/adapter/http/dto/response"
	"amsi_crm/internal/domain/entities"
	"amsi_crm/internal/infrastructure/printing"
	"amsi_crm/internal/usecase"
	"amsi_crm/pkg"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles HTTP requests for invoices, including the
// printable document export.
type InvoiceHandler struct {
	usecase         usecase.IInvoiceUseCase
	customerUsecase usecase.ICustomerUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, customerUC usecase.ICustomerUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc, customerUsecase: customerUC}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.CustomerID, request.ToLineItems(payload.Items), payload.DueDate, request.ResolveActor(payload.Actor))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(created))
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.usecase.List(c.Request.Context(), entities.InvoiceStatus(c.Query("status")))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// ApplyInvoiceAction executes one of the invoice toggles: "send",
// "mark_paid" or "mark_unpaid".
func (h *InvoiceHandler) ApplyInvoiceAction(c *gin.Context) {
	var payload request.InvoiceActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	id := c.Param("id")
	actor := request.ResolveActor(payload.Actor)

	var invoice entities.Invoice
	var err error
	switch payload.Action {
	case "send":
		invoice, err = h.usecase.Send(c.Request.Context(), id, actor)
	case "mark_paid":
		invoice, err = h.usecase.MarkPaid(c.Request.Context(), id, actor)
	case "mark_unpaid":
		invoice, err = h.usecase.MarkUnpaid(c.Request.Context(), id, actor)
	default:
		appErr := pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Unknown invoice action", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// PrintInvoice renders the invoice as a self-contained printable HTML
// document.
func (h *InvoiceHandler) PrintInvoice(c *gin.Context) {
	invoice, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	customer, err := h.customerUsecase.GetByID(c.Request.Context(), invoice.CustomerID)
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	doc, err := printing.RenderInvoice(invoice, customer)
	if err != nil {
		log.Printf("[invoice][handler] print render failed invoice_id=%s err=%v", invoice.ID, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Failed to render invoice", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}

// SweepOverdue marks every past-due Sent invoice Overdue and reports the
// batch outcome.
func (h *InvoiceHandler) SweepOverdue(c *gin.Context) {
	var payload request.SweepOverdueRequest
	_ = c.ShouldBindJSON(&payload) // body is optional

	res, err := h.usecase.SweepOverdue(c.Request.Context(), request.ResolveActor(payload.Actor))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, res)
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidInvoiceCustomer),
		errors.Is(err, usecase.ErrEmptyQuoteItems), errors.Is(err, usecase.ErrInvalidQuoteItem):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid invoice payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
