package handlers

import (
	"errors"
	"net/http"

	request "amsi_crm/internal/adapter/http/dto/request"
	response "amsi_crm/internal/adapter/http/dto/response"
	"amsi_crm/internal/domain/filter"
	"amsi_crm/internal/usecase"
	"amsi_crm/pkg"

	"github.com/gin-gonic/gin"
)

// ProductHandler handles HTTP requests for the product catalog and its
// stock ledger.
type ProductHandler struct {
	usecase usecase.IInventoryUseCase
}

func NewProductHandler(uc usecase.IInventoryUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var payload request.CreateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProduct(created))
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context(), c.Query("search"), c.Query("category"), filter.StockBucket(c.Query("stock")))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(products))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(product))
}

// AdjustStock appends one signed movement to the product's stock ledger.
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	var payload request.StockAdjustmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	product, err := h.usecase.AdjustStock(c.Request.Context(), c.Param("id"), payload.Change, payload.Reason, request.ResolveActor(payload.Actor))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(product))
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidProductName),
		errors.Is(err, usecase.ErrInvalidProductSKU), errors.Is(err, usecase.ErrInvalidStockChange):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid product payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStockBelowZero):
		return pkg.NewDomainErrorSimple("STOCK_BELOW_ZERO", "Adjustment would take stock below zero", http.StatusConflict)
	case errors.Is(err, usecase.ErrCorruptStockHistory):
		return pkg.NewDomainErrorSimple("STOCK_LEDGER_MISMATCH", "Stock ledger does not sum to the stored level", http.StatusConflict)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return mapCommonError(err)
	}
}
