package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	response "oficina_api/internal/adapter/http/dto/response"
	"oficina_api/internal/usecase"
	"oficina_api/pkg"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
	logger  *zap.Logger
}

func NewDashboardHandler(uc usecase.IDashboardUseCase, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{usecase: uc, logger: logger}
}

func (h *DashboardHandler) Resumo(c *gin.Context) {
	resumo, err := h.usecase.Resumo(c.Request.Context())
	if err != nil {
		h.logger.Error("dashboard aggregation failure", zap.Error(err))
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardResumo(resumo))
}
