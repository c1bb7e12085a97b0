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
	errInvalidClientePayload = pkg.NewDomainErrorSimple("INVALID_CLIENTE_INPUT", "Invalid cliente payload", http.StatusBadRequest)
)

// ClienteHandler handles HTTP requests for the customer registry.

type ClienteHandler struct {
	usecase usecase.IClienteUseCase
	logger  *zap.Logger
}

func NewClienteHandler(uc usecase.IClienteUseCase, logger *zap.Logger) *ClienteHandler {
	return &ClienteHandler{usecase: uc, logger: logger}
}

func (h *ClienteHandler) Create(c *gin.Context) {
	var payload request.ClienteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientePayload.HTTPStatus, errInvalidClientePayload.ToHTTPError())
		return
	}

	cliente, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCliente(cliente))
}

func (h *ClienteHandler) GetByID(c *gin.Context) {
	cliente, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCliente(cliente))
}

// List supports the console's search box (?busca=) and type filter (?tipo=).
func (h *ClienteHandler) List(c *gin.Context) {
	busca := c.Query("busca")
	tipo := entities.TipoCliente(c.Query("tipo"))

	clientes, err := h.usecase.List(c.Request.Context(), busca, tipo)
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClientes(clientes))
}

func (h *ClienteHandler) Update(c *gin.Context) {
	var payload request.ClienteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientePayload.HTTPStatus, errInvalidClientePayload.ToHTTPError())
		return
	}

	cliente := payload.ToEntity()
	cliente.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), cliente)
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCliente(updated))
}

func (h *ClienteHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ClienteHandler) mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID), errors.Is(err, usecase.ErrClienteInvalido):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClienteNotFound):
		return pkg.NewDomainErrorSimple("CLIENTE_NOT_FOUND", "Cliente not found", http.StatusNotFound)
	default:
		h.logger.Error("cliente store failure", zap.Error(err))
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
