package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "oficina_api/internal/adapter/http/dto/request"
	response "oficina_api/internal/adapter/http/dto/response"
	"oficina_api/internal/adapter/printing"
	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase"
	"oficina_api/pkg"
)

var (
	errInvalidOrdemServicoPayload = pkg.NewDomainErrorSimple("INVALID_ORDEM_SERVICO_INPUT", "Invalid ordem de servico payload", http.StatusBadRequest)
)

// OrdemServicoHandler handles HTTP requests for work orders, including the
// payment settlement endpoint and the printable document.

type OrdemServicoHandler struct {
	usecase usecase.IOrdemServicoUseCase
	logger  *zap.Logger
}

func NewOrdemServicoHandler(uc usecase.IOrdemServicoUseCase, logger *zap.Logger) *OrdemServicoHandler {
	return &OrdemServicoHandler{usecase: uc, logger: logger}
}

func (h *OrdemServicoHandler) Create(c *gin.Context) {
	var payload request.OrdemServicoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrdemServicoPayload.HTTPStatus, errInvalidOrdemServicoPayload.ToHTTPError())
		return
	}

	ordem, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrdemServico(ordem))
}

func (h *OrdemServicoHandler) GetByID(c *gin.Context) {
	ordem, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrdemServico(ordem))
}

func (h *OrdemServicoHandler) List(c *gin.Context) {
	busca := c.Query("busca")
	status := entities.StatusServico(c.Query("status_servico"))

	ordens, err := h.usecase.List(c.Request.Context(), busca, status)
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrdensServico(ordens))
}

func (h *OrdemServicoHandler) Update(c *gin.Context) {
	var payload request.OrdemServicoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrdemServicoPayload.HTTPStatus, errInvalidOrdemServicoPayload.ToHTTPError())
		return
	}

	ordem := payload.ToEntity()
	ordem.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), ordem)
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrdemServico(updated))
}

func (h *OrdemServicoHandler) UpdateStatus(c *gin.Context) {
	var payload request.OrdemServicoStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrdemServicoPayload.HTTPStatus, errInvalidOrdemServicoPayload.ToHTTPError())
		return
	}

	ordem, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.StatusServico(payload.StatusServico))
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrdemServico(ordem))
}

// RegistrarPagamento records the amount received so far; the payment status
// is rederived from it, never taken from the payload.
func (h *OrdemServicoHandler) RegistrarPagamento(c *gin.Context) {
	var payload request.OrdemServicoPagamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrdemServicoPayload.HTTPStatus, errInvalidOrdemServicoPayload.ToHTTPError())
		return
	}

	ordem, err := h.usecase.RegistrarPagamento(c.Request.Context(), c.Param("id"), payload.ValorPago, payload.FormaPagamento)
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrdemServico(ordem))
}

func (h *OrdemServicoHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// Imprimir renders the work order as a self-contained printable HTML page.
func (h *OrdemServicoHandler) Imprimir(c *gin.Context) {
	ordem, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	html, err := printing.RenderOrdemServico(ordem)
	if err != nil {
		h.logger.Error("ordem de servico print render failure", zap.Error(err))
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

func (h *OrdemServicoHandler) mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID),
		errors.Is(err, usecase.ErrOrdemServicoInvalida),
		errors.Is(err, usecase.ErrStatusServicoInvalid),
		errors.Is(err, usecase.ErrValorPagoInvalido),
		errors.Is(err, usecase.ErrValorTotalInvalido):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClienteNotFound):
		return pkg.NewDomainErrorSimple("CLIENTE_NOT_FOUND", "Cliente not found", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOrcamentoNotFound):
		return pkg.NewDomainErrorSimple("ORCAMENTO_NOT_FOUND", "Orcamento not found", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOrdemServicoNotFound):
		return pkg.NewDomainErrorSimple("ORDEM_SERVICO_NOT_FOUND", "Ordem de servico not found", http.StatusNotFound)
	default:
		h.logger.Error("ordem de servico store failure", zap.Error(err))
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
