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

func newOrdemServicoUseCaseForTest(ctrl *gomock.Controller) (
	*OrdemServicoUseCase,
	*mock_interfaces.MockIOrdemServicoRepository,
	*mock_interfaces.MockIClienteRepository,
	*mock_interfaces.MockISequenciaRepository,
) {
	repo := mock_interfaces.NewMockIOrdemServicoRepository(ctrl)
	clienteRepo := mock_interfaces.NewMockIClienteRepository(ctrl)
	seq := mock_interfaces.NewMockISequenciaRepository(ctrl)
	uc := NewOrdemServicoUseCase(repo, nil, clienteRepo, nil, seq, nil)
	return uc, repo, clienteRepo, seq
}

func TestOrdemServicoUseCase_Create(t *testing.T) {
	t.Run("missing required fields issues no store call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newOrdemServicoUseCaseForTest(ctrl)

		_, err := uc.Create(context.Background(), entities.OrdemServico{ClienteID: "c-1"})
		if !errors.Is(err, ErrOrdemServicoInvalida) {
			t.Fatalf("expected ErrOrdemServicoInvalida, got %v", err)
		}
	})

	t.Run("manual creation without orcamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, clienteRepo, seq := newOrdemServicoUseCaseForTest(ctrl)

		clienteRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Cliente{ID: "c-1"}, nil)
		seq.EXPECT().Proxima(gomock.Any(), "ordens_servico").Return(int64(3), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, os entities.OrdemServico) (entities.OrdemServico, error) {
				if os.Numero != "OS-0003" || os.OrcamentoID != "" {
					t.Fatalf("unexpected ordem: %+v", os)
				}
				if os.StatusServico != entities.StatusServicoAndamento {
					t.Fatalf("expected Andamento, got %s", os.StatusServico)
				}
				if os.StatusPagamento != entities.StatusPagamentoPendente {
					t.Fatalf("expected Pendente, got %s", os.StatusPagamento)
				}
				return os, nil
			},
		)

		created, err := uc.Create(context.Background(), entities.OrdemServico{
			ClienteID:      "c-1",
			PrazoConclusao: "2025-04-15",
			ValorTotal:     decimal.RequireFromString("300.00"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Numero != "OS-0003" {
			t.Fatalf("expected OS-0003, got %s", created.Numero)
		}
	})
}

func TestOrdemServicoUseCase_RegistrarPagamento(t *testing.T) {
	cases := []struct {
		name       string
		total      string
		pago       string
		statusPago entities.StatusPagamento
		aPagar     string
	}{
		{name: "quitacao total", total: "250.00", pago: "250.00", statusPago: entities.StatusPagamentoPago, aPagar: "0.00"},
		{name: "pagamento parcial", total: "250.00", pago: "100.00", statusPago: entities.StatusPagamentoPendente, aPagar: "150.00"},
		{name: "pagamento a maior", total: "250.00", pago: "300.00", statusPago: entities.StatusPagamentoPago, aPagar: "-50.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, repo, _, _ := newOrdemServicoUseCaseForTest(ctrl)

			repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.OrdemServico{
				ID:         "os-1",
				ValorTotal: decimal.RequireFromString(tc.total),
			}, nil)
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, os entities.OrdemServico) (entities.OrdemServico, error) { return os, nil },
			)

			updated, err := uc.RegistrarPagamento(context.Background(), "os-1", decimal.RequireFromString(tc.pago), "PIX")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if updated.StatusPagamento != tc.statusPago {
				t.Fatalf("expected %s, got %s", tc.statusPago, updated.StatusPagamento)
			}
			if updated.ValorAPagar().StringFixed(2) != tc.aPagar {
				t.Fatalf("expected a pagar %s, got %s", tc.aPagar, updated.ValorAPagar().StringFixed(2))
			}
			if updated.FormaPagamento != "PIX" {
				t.Fatalf("expected forma PIX, got %s", updated.FormaPagamento)
			}
		})
	}

	t.Run("negative valor rejected before any store call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newOrdemServicoUseCaseForTest(ctrl)

		_, err := uc.RegistrarPagamento(context.Background(), "os-1", decimal.RequireFromString("-1"), "")
		if !errors.Is(err, ErrValorPagoInvalido) {
			t.Fatalf("expected ErrValorPagoInvalido, got %v", err)
		}
	})
}

func TestOrdemServicoUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newOrdemServicoUseCaseForTest(ctrl)

		_, err := uc.UpdateStatus(context.Background(), "os-1", "Perdida")
		if !errors.Is(err, ErrStatusServicoInvalid) {
			t.Fatalf("expected ErrStatusServicoInvalid, got %v", err)
		}
	})

	t.Run("any state reachable from any other", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newOrdemServicoUseCaseForTest(ctrl)

		entregue := entities.OrdemServico{ID: "os-1", StatusServico: entities.StatusServicoEntregue}
		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entregue, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, os entities.OrdemServico) (entities.OrdemServico, error) { return os, nil },
		)

		updated, err := uc.UpdateStatus(context.Background(), "os-1", entities.StatusServicoAguardandoPecas)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.StatusServico != entities.StatusServicoAguardandoPecas {
			t.Fatalf("expected Aguardando Peças, got %s", updated.StatusServico)
		}
	})
}
