package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	response "oficina_api/internal/adapter/http/dto/response"
	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase"
	"oficina_api/pkg"
)

// VeiculoHandler exposes the read-only vehicle listing. Vehicles are written
// through the customer registry, never directly.

type VeiculoHandler struct {
	usecase usecase.IVeiculoUseCase
	logger  *zap.Logger
}

func NewVeiculoHandler(uc usecase.IVeiculoUseCase, logger *zap.Logger) *VeiculoHandler {
	return &VeiculoHandler{usecase: uc, logger: logger}
}

// List returns every vehicle, or only a customer's when ?cliente_id= is set.
func (h *VeiculoHandler) List(c *gin.Context) {
	var (
		veiculos []entities.Veiculo
		err      error
	)
	if clienteID := c.Query("cliente_id"); clienteID != "" {
		veiculos, err = h.usecase.ListByClienteID(c.Request.Context(), clienteID)
	} else {
		veiculos, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		h.logger.Error("veiculo store failure", zap.Error(err))
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVeiculos(veiculos))
}
