package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "oficina_api/internal/adapter/http/dto/request"
	response "oficina_api/internal/adapter/http/dto/response"
	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase"
	"oficina_api/pkg"
)

var (
	errInvalidContaPayload = pkg.NewDomainErrorSimple("INVALID_CONTA_INPUT", "Invalid conta payload", http.StatusBadRequest)
)

// FinanceiroHandler handles the two ledger collections: receivables and
// general expenses.

type FinanceiroHandler struct {
	usecase usecase.IFinanceiroUseCase
	logger  *zap.Logger
}

func NewFinanceiroHandler(uc usecase.IFinanceiroUseCase, logger *zap.Logger) *FinanceiroHandler {
	return &FinanceiroHandler{usecase: uc, logger: logger}
}

func (h *FinanceiroHandler) CreateContaReceber(c *gin.Context) {
	var payload request.ContaReceberRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContaPayload.HTTPStatus, errInvalidContaPayload.ToHTTPError())
		return
	}

	conta, err := h.usecase.CreateContaReceber(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromContaReceber(conta))
}

func (h *FinanceiroHandler) ListContasReceber(c *gin.Context) {
	contas, err := h.usecase.ListContasReceber(c.Request.Context(), entities.StatusConta(c.Query("status")))
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContasReceber(contas))
}

func (h *FinanceiroHandler) UpdateContaReceber(c *gin.Context) {
	var payload request.ContaReceberRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContaPayload.HTTPStatus, errInvalidContaPayload.ToHTTPError())
		return
	}

	conta := payload.ToEntity()
	conta.ID = c.Param("id")

	updated, err := h.usecase.UpdateContaReceber(c.Request.Context(), conta)
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContaReceber(updated))
}

func (h *FinanceiroHandler) DeleteContaReceber(c *gin.Context) {
	if err := h.usecase.DeleteContaReceber(c.Request.Context(), c.Param("id")); err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *FinanceiroHandler) CreateContaGeral(c *gin.Context) {
	var payload request.ContaGeralRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContaPayload.HTTPStatus, errInvalidContaPayload.ToHTTPError())
		return
	}

	conta, err := h.usecase.CreateContaGeral(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromContaGeral(conta))
}

func (h *FinanceiroHandler) ListContasGerais(c *gin.Context) {
	status := entities.StatusConta(c.Query("status"))
	tipo := entities.TipoContaGeral(c.Query("tipo"))

	contas, err := h.usecase.ListContasGerais(c.Request.Context(), status, tipo)
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContasGerais(contas))
}

func (h *FinanceiroHandler) UpdateContaGeral(c *gin.Context) {
	var payload request.ContaGeralRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContaPayload.HTTPStatus, errInvalidContaPayload.ToHTTPError())
		return
	}

	conta := payload.ToEntity()
	conta.ID = c.Param("id")

	updated, err := h.usecase.UpdateContaGeral(c.Request.Context(), conta)
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromContaGeral(updated))
}

func (h *FinanceiroHandler) DeleteContaGeral(c *gin.Context) {
	if err := h.usecase.DeleteContaGeral(c.Request.Context(), c.Param("id")); err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *FinanceiroHandler) mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID), errors.Is(err, usecase.ErrContaInvalida):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClienteNotFound):
		return pkg.NewDomainErrorSimple("CLIENTE_NOT_FOUND", "Cliente not found", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrContaNotFound):
		return pkg.NewDomainErrorSimple("CONTA_NOT_FOUND", "Conta not found", http.StatusNotFound)
	default:
		h.logger.Error("conta store failure", zap.Error(err))
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
