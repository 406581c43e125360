package handlers

import (
	"net/http"

	response "amsi_crm/internal/adapter/http/dto/response"
	"amsi_crm/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the aggregate read-only summary.
type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		appErr := mapCommonError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboard(summary))
}
