package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
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

func TestOrcamentoHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrcamentoUseCase(ctrl)
		h := NewOrcamentoHandler(uc, zap.NewNop())

		r := gin.New()
		r.POST("/v1/orcamentos", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/orcamentos", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown cliente maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrcamentoUseCase(ctrl)
		h := NewOrcamentoHandler(uc, zap.NewNop())

		r := gin.New()
		r.POST("/v1/orcamentos", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Orcamento{}, usecase.ErrClienteNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/orcamentos", bytes.NewBufferString(`{"cliente_id":"c-404","data_orcamento":"2024-05-10","validade":"2024-05-20"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrcamentoUseCase(ctrl)
		h := NewOrcamentoHandler(uc, zap.NewNop())

		r := gin.New()
		r.POST("/v1/orcamentos", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Orcamento{
			ID:         "orc-1",
			Numero:     "ORC-0001",
			ClienteID:  "c-1",
			Status:     entities.StatusOrcamentoPendente,
			ValorTotal: decimal.RequireFromString("250"),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orcamentos", bytes.NewBufferString(`{"cliente_id":"c-1","data_orcamento":"2024-05-10","validade":"2024-05-20"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["numero"] != "ORC-0001" || body["valor_total"] != "250.00" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestOrcamentoHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approval returns the created ordem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrcamentoUseCase(ctrl)
		h := NewOrcamentoHandler(uc, zap.NewNop())

		r := gin.New()
		r.PATCH("/v1/orcamentos/:id/status", h.UpdateStatus)

		ordem := entities.OrdemServico{ID: "os-1", Numero: "OS-0001", StatusServico: entities.StatusServicoAndamento}
		uc.EXPECT().UpdateStatus(gomock.Any(), "orc-1", entities.StatusOrcamentoAprovado).
			Return(entities.Orcamento{ID: "orc-1", Numero: "ORC-0001", Status: entities.StatusOrcamentoAprovado}, &ordem, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orcamentos/orc-1/status", bytes.NewBufferString(`{"status":"Aprovado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Orcamento struct {
				Status string `json:"status"`
			} `json:"orcamento"`
			OrdemServicoCriada *struct {
				Numero string `json:"numero"`
			} `json:"ordem_servico_criada"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Orcamento.Status != "Aprovado" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body.OrdemServicoCriada == nil || body.OrdemServicoCriada.Numero != "OS-0001" {
			t.Fatalf("expected ordem_servico_criada in body: %s", w.Body.String())
		}
	})

	t.Run("non approval transition omits the ordem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrcamentoUseCase(ctrl)
		h := NewOrcamentoHandler(uc, zap.NewNop())

		r := gin.New()
		r.PATCH("/v1/orcamentos/:id/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "orc-1", entities.StatusOrcamentoReprovado).
			Return(entities.Orcamento{ID: "orc-1", Status: entities.StatusOrcamentoReprovado}, nil, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orcamentos/orc-1/status", bytes.NewBufferString(`{"status":"Reprovado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if _, ok := body["ordem_servico_criada"]; ok {
			t.Fatalf("expected no ordem_servico_criada: %s", w.Body.String())
		}
	})

	t.Run("invalid status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrcamentoUseCase(ctrl)
		h := NewOrcamentoHandler(uc, zap.NewNop())

		r := gin.New()
		r.PATCH("/v1/orcamentos/:id/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "orc-1", entities.StatusOrcamento("Qualquer")).
			Return(entities.Orcamento{}, nil, usecase.ErrStatusOrcamentoInvalid)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orcamentos/orc-1/status", bytes.NewBufferString(`{"status":"Qualquer"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrcamentoHandler_Linhas(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add peca success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrcamentoUseCase(ctrl)
		h := NewOrcamentoHandler(uc, zap.NewNop())

		r := gin.New()
		r.POST("/v1/orcamentos/:id/pecas", h.AddPeca)

		uc.EXPECT().AddPeca(gomock.Any(), "orc-1", gomock.Any()).Return(entities.Orcamento{
			ID:         "orc-1",
			ValorTotal: decimal.RequireFromString("100"),
			Pecas: []entities.OrcamentoPeca{
				{ID: "lp-1", PecaID: "p-1", Quantidade: 2, ValorUnitario: decimal.RequireFromString("50")},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/orcamentos/orc-1/pecas", bytes.NewBufferString(`{"peca_id":"p-1","quantidade":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("remove missing line maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrcamentoUseCase(ctrl)
		h := NewOrcamentoHandler(uc, zap.NewNop())

		r := gin.New()
		r.DELETE("/v1/orcamentos/:id/servicos/:linha_id", h.RemoveServico)

		uc.EXPECT().RemoveServico(gomock.Any(), "orc-1", "ls-404").Return(entities.Orcamento{}, usecase.ErrLinhaNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orcamentos/orc-1/servicos/ls-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestOrcamentoHandler_Imprimir(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrcamentoUseCase(ctrl)
	h := NewOrcamentoHandler(uc, zap.NewNop())

	r := gin.New()
	r.GET("/v1/orcamentos/:id/impressao", h.Imprimir)

	uc.EXPECT().GetByID(gomock.Any(), "orc-1").Return(entities.Orcamento{
		ID:         "orc-1",
		Numero:     "ORC-0001",
		Status:     entities.StatusOrcamentoPendente,
		ValorTotal: decimal.RequireFromString("250"),
		Cliente:    &entities.Cliente{Nome: "Maria Souza"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orcamentos/orc-1/impressao", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("expected html content type, got %q", ct)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("ORC-0001")) {
		t.Fatalf("expected document number in body")
	}
}

func TestOrcamentoHandler_MapError(t *testing.T) {
	h := NewOrcamentoHandler(nil, zap.NewNop())

	if got := h.mapError(usecase.ErrOrcamentoInvalido); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := h.mapError(usecase.ErrLinhaNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := h.mapError(usecase.ErrOrcamentoNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := h.mapError(usecase.ErrPecaNotFound); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := h.mapError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
