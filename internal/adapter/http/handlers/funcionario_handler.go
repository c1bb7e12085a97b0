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
	errInvalidFuncionarioPayload = pkg.NewDomainErrorSimple("INVALID_FUNCIONARIO_INPUT", "Invalid funcionario payload", http.StatusBadRequest)
)

type FuncionarioHandler struct {
	usecase usecase.IFuncionarioUseCase
	logger  *zap.Logger
}

func NewFuncionarioHandler(uc usecase.IFuncionarioUseCase, logger *zap.Logger) *FuncionarioHandler {
	return &FuncionarioHandler{usecase: uc, logger: logger}
}

func (h *FuncionarioHandler) Create(c *gin.Context) {
	var payload request.FuncionarioRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFuncionarioPayload.HTTPStatus, errInvalidFuncionarioPayload.ToHTTPError())
		return
	}

	funcionario, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromFuncionario(funcionario))
}

func (h *FuncionarioHandler) GetByID(c *gin.Context) {
	funcionario, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFuncionario(funcionario))
}

func (h *FuncionarioHandler) List(c *gin.Context) {
	busca := c.Query("busca")
	categoria := entities.CategoriaFuncionario(c.Query("categoria"))

	funcionarios, err := h.usecase.List(c.Request.Context(), busca, categoria)
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFuncionarios(funcionarios))
}

func (h *FuncionarioHandler) Update(c *gin.Context) {
	var payload request.FuncionarioRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFuncionarioPayload.HTTPStatus, errInvalidFuncionarioPayload.ToHTTPError())
		return
	}

	funcionario := payload.ToEntity()
	funcionario.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), funcionario)
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFuncionario(updated))
}

func (h *FuncionarioHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *FuncionarioHandler) mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID), errors.Is(err, usecase.ErrFuncionarioInvalido):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFuncionarioNotFound):
		return pkg.NewDomainErrorSimple("FUNCIONARIO_NOT_FOUND", "Funcionario not found", http.StatusNotFound)
	default:
		h.logger.Error("funcionario store failure", zap.Error(err))
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
