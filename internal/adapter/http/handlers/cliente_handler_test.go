package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_api/internal/adapter/http/handlers/mocks"
	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestClienteHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing documento is rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClienteUseCase(ctrl)
		h := NewClienteHandler(uc, zap.NewNop())

		r := gin.New()
		r.POST("/v1/clientes", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/clientes", bytes.NewBufferString(`{"nome":"Maria Souza"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClienteUseCase(ctrl)
		h := NewClienteHandler(uc, zap.NewNop())

		r := gin.New()
		r.POST("/v1/clientes", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Cliente{
			ID:        "c-1",
			Nome:      "Maria Souza",
			Documento: "111.222.333-44",
			Tipo:      entities.TipoClienteFisica,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/clientes", bytes.NewBufferString(`{"nome":"Maria Souza","documento":"111.222.333-44"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "c-1" || body["tipo"] != "Física" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestClienteHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIClienteUseCase(ctrl)
	h := NewClienteHandler(uc, zap.NewNop())

	r := gin.New()
	r.GET("/v1/clientes", h.List)

	uc.EXPECT().List(gomock.Any(), "silva", entities.TipoClienteJuridica).Return([]entities.Cliente{
		{ID: "c-2", Nome: "Oficina Silva LTDA", Tipo: entities.TipoClienteJuridica},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/clientes?busca=silva&tipo=Jur%C3%ADdica", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["id"] != "c-2" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestClienteHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClienteUseCase(ctrl)
		h := NewClienteHandler(uc, zap.NewNop())

		r := gin.New()
		r.DELETE("/v1/clientes/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), "c-404").Return(usecase.ErrClienteNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/clientes/c-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClienteUseCase(ctrl)
		h := NewClienteHandler(uc, zap.NewNop())

		r := gin.New()
		r.DELETE("/v1/clientes/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/clientes/c-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
