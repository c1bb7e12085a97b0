package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_api/internal/domain/entities"
	mock_interfaces "oficina_api/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestDashboardUseCase_Resumo(t *testing.T) {
	t.Run("aggregates counts and money across the stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clienteRepo := mock_interfaces.NewMockIClienteRepository(ctrl)
		orcamentoRepo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		osRepo := mock_interfaces.NewMockIOrdemServicoRepository(ctrl)
		uc := NewDashboardUseCase(clienteRepo, orcamentoRepo, osRepo)

		clienteRepo.EXPECT().List(gomock.Any()).Return([]entities.Cliente{{ID: "1"}, {ID: "2"}}, nil)
		orcamentoRepo.EXPECT().List(gomock.Any()).Return([]entities.Orcamento{
			{ID: "o1", Status: entities.StatusOrcamentoPendente},
			{ID: "o2", Status: entities.StatusOrcamentoAprovado},
			{ID: "o3", Status: entities.StatusOrcamentoPendente},
		}, nil)
		osRepo.EXPECT().List(gomock.Any()).Return([]entities.OrdemServico{
			{
				ID:            "os1",
				StatusServico: entities.StatusServicoAndamento,
				ValorTotal:    decimal.RequireFromString("300"),
				ValorPago:     decimal.RequireFromString("100"),
			},
			{
				ID:            "os2",
				StatusServico: entities.StatusServicoFinalizado,
				ValorTotal:    decimal.RequireFromString("200"),
				ValorPago:     decimal.RequireFromString("200"),
			},
		}, nil)

		resumo, err := uc.Resumo(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if resumo.TotalClientes != 2 || resumo.TotalOrcamentos != 3 || resumo.TotalOrdens != 2 {
			t.Fatalf("unexpected counts: %+v", resumo)
		}
		if resumo.OrcamentosPendentes != 2 {
			t.Fatalf("expected 2 orcamentos pendentes, got %d", resumo.OrcamentosPendentes)
		}
		if resumo.OrdensEmAndamento != 1 {
			t.Fatalf("expected 1 ordem em andamento, got %d", resumo.OrdensEmAndamento)
		}
		if resumo.OrdensPagamentoPendente != 1 {
			t.Fatalf("expected 1 ordem com pagamento pendente, got %d", resumo.OrdensPagamentoPendente)
		}
		if resumo.ValorTotalOrdens.StringFixed(2) != "500.00" {
			t.Fatalf("unexpected valor total: %s", resumo.ValorTotalOrdens)
		}
		if resumo.ValorRecebido.StringFixed(2) != "300.00" {
			t.Fatalf("unexpected valor recebido: %s", resumo.ValorRecebido)
		}
		if resumo.ValorAReceber.StringFixed(2) != "200.00" {
			t.Fatalf("unexpected valor a receber: %s", resumo.ValorAReceber)
		}
	})

	t.Run("store failure surfaces as-is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		clienteRepo := mock_interfaces.NewMockIClienteRepository(ctrl)
		orcamentoRepo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		osRepo := mock_interfaces.NewMockIOrdemServicoRepository(ctrl)
		uc := NewDashboardUseCase(clienteRepo, orcamentoRepo, osRepo)

		storeErr := errors.New("scan throttled")
		clienteRepo.EXPECT().List(gomock.Any()).Return(nil, storeErr)

		_, err := uc.Resumo(context.Background())
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected store error, got %v", err)
		}
	})
}
