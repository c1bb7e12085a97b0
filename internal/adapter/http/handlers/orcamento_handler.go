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
	errInvalidOrcamentoPayload = pkg.NewDomainErrorSimple("INVALID_ORCAMENTO_INPUT", "Invalid orcamento payload", http.StatusBadRequest)
)

// OrcamentoHandler handles HTTP requests for quotes, including the status
// transition that spawns a work order and the printable document.

type OrcamentoHandler struct {
	usecase usecase.IOrcamentoUseCase
	logger  *zap.Logger
}

func NewOrcamentoHandler(uc usecase.IOrcamentoUseCase, logger *zap.Logger) *OrcamentoHandler {
	return &OrcamentoHandler{usecase: uc, logger: logger}
}

func (h *OrcamentoHandler) Create(c *gin.Context) {
	var payload request.OrcamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrcamentoPayload.HTTPStatus, errInvalidOrcamentoPayload.ToHTTPError())
		return
	}

	orcamento, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrcamento(orcamento))
}

func (h *OrcamentoHandler) GetByID(c *gin.Context) {
	orcamento, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrcamento(orcamento))
}

func (h *OrcamentoHandler) List(c *gin.Context) {
	busca := c.Query("busca")
	status := entities.StatusOrcamento(c.Query("status"))

	orcamentos, err := h.usecase.List(c.Request.Context(), busca, status)
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrcamentos(orcamentos))
}

func (h *OrcamentoHandler) Update(c *gin.Context) {
	var payload request.OrcamentoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrcamentoPayload.HTTPStatus, errInvalidOrcamentoPayload.ToHTTPError())
		return
	}

	orcamento := payload.ToEntity()
	orcamento.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), orcamento)
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrcamento(updated))
}

// UpdateStatus applies the requested status. Approving a quote that was not
// yet approved also creates its work order, returned alongside the quote.
func (h *OrcamentoHandler) UpdateStatus(c *gin.Context) {
	var payload request.OrcamentoStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrcamentoPayload.HTTPStatus, errInvalidOrcamentoPayload.ToHTTPError())
		return
	}

	orcamento, ordem, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.StatusOrcamento(payload.Status))
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := response.OrcamentoStatusResponse{Orcamento: response.FromOrcamento(orcamento)}
	if ordem != nil {
		os := response.FromOrdemServico(*ordem)
		res.OrdemServicoCriada = &os
	}
	c.JSON(http.StatusOK, res)
}

func (h *OrcamentoHandler) AddPeca(c *gin.Context) {
	var payload request.OrcamentoPecaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrcamentoPayload.HTTPStatus, errInvalidOrcamentoPayload.ToHTTPError())
		return
	}

	orcamento, err := h.usecase.AddPeca(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrcamento(orcamento))
}

func (h *OrcamentoHandler) RemovePeca(c *gin.Context) {
	orcamento, err := h.usecase.RemovePeca(c.Request.Context(), c.Param("id"), c.Param("linha_id"))
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrcamento(orcamento))
}

func (h *OrcamentoHandler) AddServico(c *gin.Context) {
	var payload request.OrcamentoServicoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrcamentoPayload.HTTPStatus, errInvalidOrcamentoPayload.ToHTTPError())
		return
	}

	orcamento, err := h.usecase.AddServico(c.Request.Context(), c.Param("id"), payload.ToEntity())
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrcamento(orcamento))
}

func (h *OrcamentoHandler) RemoveServico(c *gin.Context) {
	orcamento, err := h.usecase.RemoveServico(c.Request.Context(), c.Param("id"), c.Param("linha_id"))
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrcamento(orcamento))
}

func (h *OrcamentoHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// Imprimir renders the quote as a self-contained printable HTML page.
func (h *OrcamentoHandler) Imprimir(c *gin.Context) {
	orcamento, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	html, err := printing.RenderOrcamento(orcamento)
	if err != nil {
		h.logger.Error("orcamento print render failure", zap.Error(err))
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

func (h *OrcamentoHandler) mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID),
		errors.Is(err, usecase.ErrOrcamentoInvalido),
		errors.Is(err, usecase.ErrStatusOrcamentoInvalid),
		errors.Is(err, usecase.ErrLinhaPecaInvalida),
		errors.Is(err, usecase.ErrLinhaServicoInvalida):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClienteNotFound):
		return pkg.NewDomainErrorSimple("CLIENTE_NOT_FOUND", "Cliente not found", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPecaNotFound):
		return pkg.NewDomainErrorSimple("PECA_NOT_FOUND", "Peca not found", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrServicoNotFound):
		return pkg.NewDomainErrorSimple("SERVICO_NOT_FOUND", "Servico not found", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrLinhaNotFound):
		return pkg.NewDomainErrorSimple("LINHA_NOT_FOUND", "Orcamento line not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrcamentoNotFound):
		return pkg.NewDomainErrorSimple("ORCAMENTO_NOT_FOUND", "Orcamento not found", http.StatusNotFound)
	default:
		h.logger.Error("orcamento store failure", zap.Error(err))
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
