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
	errInvalidFornecedorPayload = pkg.NewDomainErrorSimple("INVALID_FORNECEDOR_INPUT", "Invalid fornecedor payload", http.StatusBadRequest)
)

type FornecedorHandler struct {
	usecase usecase.IFornecedorUseCase
	logger  *zap.Logger
}

func NewFornecedorHandler(uc usecase.IFornecedorUseCase, logger *zap.Logger) *FornecedorHandler {
	return &FornecedorHandler{usecase: uc, logger: logger}
}

func (h *FornecedorHandler) Create(c *gin.Context) {
	var payload request.FornecedorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFornecedorPayload.HTTPStatus, errInvalidFornecedorPayload.ToHTTPError())
		return
	}

	fornecedor, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromFornecedor(fornecedor))
}

func (h *FornecedorHandler) GetByID(c *gin.Context) {
	fornecedor, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFornecedor(fornecedor))
}

func (h *FornecedorHandler) List(c *gin.Context) {
	fornecedores, err := h.usecase.List(c.Request.Context(), c.Query("busca"))
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFornecedores(fornecedores))
}

func (h *FornecedorHandler) Update(c *gin.Context) {
	var payload request.FornecedorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFornecedorPayload.HTTPStatus, errInvalidFornecedorPayload.ToHTTPError())
		return
	}

	fornecedor := payload.ToEntity()
	fornecedor.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), fornecedor)
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFornecedor(updated))
}

func (h *FornecedorHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *FornecedorHandler) mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID), errors.Is(err, usecase.ErrFornecedorInvalido):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFornecedorNotFound):
		return pkg.NewDomainErrorSimple("FORNECEDOR_NOT_FOUND", "Fornecedor not found", http.StatusNotFound)
	default:
		h.logger.Error("fornecedor store failure", zap.Error(err))
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
