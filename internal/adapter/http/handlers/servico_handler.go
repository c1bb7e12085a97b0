package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "oficina_api/internal/adapter/http/dto/request"
	response "oficina_api/internal/adapter/http/dto/response"
	"oficina_api/internal/usecase"
	"oficina_api/pkg"
)

var (
	errInvalidServicoPayload = pkg.NewDomainErrorSimple("INVALID_SERVICO_INPUT", "Invalid servico payload", http.StatusBadRequest)
)

type ServicoHandler struct {
	usecase usecase.IServicoUseCase
	logger  *zap.Logger
}

func NewServicoHandler(uc usecase.IServicoUseCase, logger *zap.Logger) *ServicoHandler {
	return &ServicoHandler{usecase: uc, logger: logger}
}

func (h *ServicoHandler) Create(c *gin.Context) {
	var payload request.ServicoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicoPayload.HTTPStatus, errInvalidServicoPayload.ToHTTPError())
		return
	}

	servico, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServico(servico))
}

func (h *ServicoHandler) GetByID(c *gin.Context) {
	servico, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServico(servico))
}

func (h *ServicoHandler) List(c *gin.Context) {
	servicos, err := h.usecase.List(c.Request.Context(), c.Query("busca"))
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServicos(servicos))
}

func (h *ServicoHandler) Update(c *gin.Context) {
	var payload request.ServicoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServicoPayload.HTTPStatus, errInvalidServicoPayload.ToHTTPError())
		return
	}

	servico := payload.ToEntity()
	servico.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), servico)
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServico(updated))
}

func (h *ServicoHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ServicoHandler) mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID), errors.Is(err, usecase.ErrServicoInvalido):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServicoNotFound):
		return pkg.NewDomainErrorSimple("SERVICO_NOT_FOUND", "Servico not found", http.StatusNotFound)
	default:
		h.logger.Error("servico store failure", zap.Error(err))
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
