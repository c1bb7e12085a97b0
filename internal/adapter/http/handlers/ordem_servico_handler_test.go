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
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestOrdemServicoHandler_RegistrarPagamento(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success derives payment fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrdemServicoUseCase(ctrl)
		h := NewOrdemServicoHandler(uc, zap.NewNop())

		r := gin.New()
		r.PATCH("/v1/ordens-servico/:id/pagamento", h.RegistrarPagamento)

		uc.EXPECT().RegistrarPagamento(gomock.Any(), "os-1", decimal.RequireFromString("250"), "PIX").
			Return(entities.OrdemServico{
				ID:              "os-1",
				Numero:          "OS-0001",
				StatusServico:   entities.StatusServicoFinalizado,
				StatusPagamento: entities.StatusPagamentoPago,
				ValorTotal:      decimal.RequireFromString("250"),
				ValorPago:       decimal.RequireFromString("250"),
				FormaPagamento:  "PIX",
			}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/ordens-servico/os-1/pagamento", bytes.NewBufferString(`{"valor_pago":"250","forma_pagamento":"PIX"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status_pagamento"] != "Pago" || body["valor_a_pagar"] != "0.00" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("negative valor maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrdemServicoUseCase(ctrl)
		h := NewOrdemServicoHandler(uc, zap.NewNop())

		r := gin.New()
		r.PATCH("/v1/ordens-servico/:id/pagamento", h.RegistrarPagamento)

		uc.EXPECT().RegistrarPagamento(gomock.Any(), "os-1", decimal.RequireFromString("-1"), "").
			Return(entities.OrdemServico{}, usecase.ErrValorPagoInvalido)

		req := httptest.NewRequest(http.MethodPatch, "/v1/ordens-servico/os-1/pagamento", bytes.NewBufferString(`{"valor_pago":"-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrdemServicoHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown ordem maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrdemServicoUseCase(ctrl)
		h := NewOrdemServicoHandler(uc, zap.NewNop())

		r := gin.New()
		r.PATCH("/v1/ordens-servico/:id/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "os-404", entities.StatusServicoEntregue).
			Return(entities.OrdemServico{}, usecase.ErrOrdemServicoNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/ordens-servico/os-404/status", bytes.NewBufferString(`{"status_servico":"Entregue"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrdemServicoUseCase(ctrl)
		h := NewOrdemServicoHandler(uc, zap.NewNop())

		r := gin.New()
		r.PATCH("/v1/ordens-servico/:id/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "os-1", entities.StatusServicoFinalizado).
			Return(entities.OrdemServico{ID: "os-1", StatusServico: entities.StatusServicoFinalizado}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/ordens-servico/os-1/status", bytes.NewBufferString(`{"status_servico":"Finalizado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrdemServicoHandler_Imprimir(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrdemServicoUseCase(ctrl)
	h := NewOrdemServicoHandler(uc, zap.NewNop())

	r := gin.New()
	r.GET("/v1/ordens-servico/:id/impressao", h.Imprimir)

	uc.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.OrdemServico{
		ID:              "os-1",
		Numero:          "OS-0001",
		StatusServico:   entities.StatusServicoAndamento,
		StatusPagamento: entities.StatusPagamentoPendente,
		ValorTotal:      decimal.RequireFromString("250"),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/ordens-servico/os-1/impressao", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("OS-0001")) {
		t.Fatalf("expected document number in body")
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Nenhuma peça")) {
		t.Fatalf("expected empty parts placeholder in body")
	}
}
