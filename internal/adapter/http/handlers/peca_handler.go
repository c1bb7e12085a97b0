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
	errInvalidPecaPayload = pkg.NewDomainErrorSimple("INVALID_PECA_INPUT", "Invalid peca payload", http.StatusBadRequest)
)

// PecaHandler handles HTTP requests for the parts catalog.

type PecaHandler struct {
	usecase usecase.IPecaUseCase
	logger  *zap.Logger
}

func NewPecaHandler(uc usecase.IPecaUseCase, logger *zap.Logger) *PecaHandler {
	return &PecaHandler{usecase: uc, logger: logger}
}

func (h *PecaHandler) Create(c *gin.Context) {
	var payload request.PecaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPecaPayload.HTTPStatus, errInvalidPecaPayload.ToHTTPError())
		return
	}

	peca, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPeca(peca))
}

func (h *PecaHandler) GetByID(c *gin.Context) {
	peca, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPeca(peca))
}

func (h *PecaHandler) List(c *gin.Context) {
	pecas, err := h.usecase.List(c.Request.Context(), c.Query("busca"))
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPecas(pecas))
}

func (h *PecaHandler) Update(c *gin.Context) {
	var payload request.PecaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPecaPayload.HTTPStatus, errInvalidPecaPayload.ToHTTPError())
		return
	}

	peca := payload.ToEntity()
	peca.ID = c.Param("id")

	updated, err := h.usecase.Update(c.Request.Context(), peca)
	if err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPeca(updated))
}

func (h *PecaHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := h.mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PecaHandler) mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidID), errors.Is(err, usecase.ErrPecaInvalida):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPecaNotFound):
		return pkg.NewDomainErrorSimple("PECA_NOT_FOUND", "Peca not found", http.StatusNotFound)
	default:
		h.logger.Error("peca store failure", zap.Error(err))
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
