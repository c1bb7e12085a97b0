package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"oficina_api/internal/domain/entities"
	mock_interfaces "oficina_api/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newOrcamentoUseCaseForTest(ctrl *gomock.Controller) (
	*OrcamentoUseCase,
	*mock_interfaces.MockIOrcamentoRepository,
	*mock_interfaces.MockIClienteRepository,
	*mock_interfaces.MockIOrdemServicoRepository,
	*mock_interfaces.MockISequenciaRepository,
) {
	repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
	clienteRepo := mock_interfaces.NewMockIClienteRepository(ctrl)
	osRepo := mock_interfaces.NewMockIOrdemServicoRepository(ctrl)
	seq := mock_interfaces.NewMockISequenciaRepository(ctrl)
	uc := NewOrcamentoUseCase(repo, clienteRepo, nil, nil, nil, osRepo, seq, nil)
	return uc, repo, clienteRepo, osRepo, seq
}

func TestOrcamentoUseCase_Create(t *testing.T) {
	t.Run("missing required fields issues no store call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _, _ := newOrcamentoUseCaseForTest(ctrl)

		_, err := uc.Create(context.Background(), entities.Orcamento{ClienteID: "c-1"})
		if !errors.Is(err, ErrOrcamentoInvalido) {
			t.Fatalf("expected ErrOrcamentoInvalido, got %v", err)
		}
	})

	t.Run("unknown cliente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, clienteRepo, _, _ := newOrcamentoUseCaseForTest(ctrl)

		clienteRepo.EXPECT().GetByID(gomock.Any(), "c-404").Return(entities.Cliente{}, nil)

		_, err := uc.Create(context.Background(), entities.Orcamento{
			ClienteID:     "c-404",
			DataOrcamento: "2025-03-01",
			Validade:      "2025-03-31",
		})
		if !errors.Is(err, ErrClienteNotFound) {
			t.Fatalf("expected ErrClienteNotFound, got %v", err)
		}
	})

	t.Run("invalid line blocks creation without consuming a numero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, clienteRepo, _, _ := newOrcamentoUseCaseForTest(ctrl)

		clienteRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Cliente{ID: "c-1"}, nil)
		// seq.Proxima has no expectation: allocating a number for a rejected
		// create fails the test.

		_, err := uc.Create(context.Background(), entities.Orcamento{
			ClienteID:     "c-1",
			DataOrcamento: "2025-03-01",
			Validade:      "2025-03-31",
			Pecas:         []entities.OrcamentoPeca{{PecaID: "p-1", Quantidade: 0}},
		})
		if !errors.Is(err, ErrLinhaPecaInvalida) {
			t.Fatalf("expected ErrLinhaPecaInvalida, got %v", err)
		}
	})

	t.Run("create success derives numero, status and total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, clienteRepo, _, seq := newOrcamentoUseCaseForTest(ctrl)

		clienteRepo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Cliente{ID: "c-1"}, nil)
		seq.EXPECT().Proxima(gomock.Any(), "orcamentos").Return(int64(12), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Orcamento{})).DoAndReturn(
			func(_ context.Context, o entities.Orcamento) (entities.Orcamento, error) {
				if o.ID == "" || o.Numero != "ORC-0012" {
					t.Fatalf("unexpected id/numero: %+v", o)
				}
				if o.Status != entities.StatusOrcamentoPendente {
					t.Fatalf("expected status Pendente, got %s", o.Status)
				}
				if o.ValorTotal.StringFixed(2) != "250.00" {
					t.Fatalf("expected total 250.00, got %s", o.ValorTotal.StringFixed(2))
				}
				if o.Pecas[0].ID == "" || o.Servicos[0].ID == "" {
					t.Fatalf("expected generated line ids")
				}
				return o, nil
			},
		)

		created, err := uc.Create(context.Background(), entities.Orcamento{
			ClienteID:     "c-1",
			DataOrcamento: "2025-03-01",
			Validade:      "2025-03-31",
			Pecas: []entities.OrcamentoPeca{
				{PecaID: "p-1", PecaNome: "Filtro de óleo", Quantidade: 2, ValorUnitario: decimal.RequireFromString("50.00")},
			},
			Servicos: []entities.OrcamentoServico{
				{ServicoID: "s-1", ServicoNome: "Troca de óleo", Horas: decimal.RequireFromString("1.5"), ValorHora: decimal.RequireFromString("100.00")},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Numero != "ORC-0012" {
			t.Fatalf("expected ORC-0012, got %s", created.Numero)
		}
	})
}

func TestOrcamentoUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _, _ := newOrcamentoUseCaseForTest(ctrl)

		_, _, err := uc.UpdateStatus(context.Background(), "o-1", "Qualquer")
		if !errors.Is(err, ErrStatusOrcamentoInvalid) {
			t.Fatalf("expected ErrStatusOrcamentoInvalid, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newOrcamentoUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "o-404").Return(entities.Orcamento{}, nil)

		_, _, err := uc.UpdateStatus(context.Background(), "o-404", entities.StatusOrcamentoAprovado)
		if !errors.Is(err, ErrOrcamentoNotFound) {
			t.Fatalf("expected ErrOrcamentoNotFound, got %v", err)
		}
	})

	t.Run("approval creates exactly one ordem de servico", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, osRepo, seq := newOrcamentoUseCaseForTest(ctrl)

		pendente := entities.Orcamento{
			ID:         "o-1",
			Numero:     "ORC-0001",
			ClienteID:  "c-1",
			VeiculoID:  "v-1",
			Validade:   "2025-03-31",
			KMAtual:    "85000",
			Status:     entities.StatusOrcamentoPendente,
			ValorTotal: decimal.RequireFromString("250.00"),
		}
		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(pendente, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Orcamento) (entities.Orcamento, error) { return o, nil },
		)
		seq.EXPECT().Proxima(gomock.Any(), "ordens_servico").Return(int64(7), nil)
		osRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.OrdemServico{})).DoAndReturn(
			func(_ context.Context, os entities.OrdemServico) (entities.OrdemServico, error) {
				if os.Numero != "OS-0007" || os.OrcamentoID != "o-1" {
					t.Fatalf("unexpected ordem: %+v", os)
				}
				if os.StatusServico != entities.StatusServicoAndamento || os.StatusPagamento != entities.StatusPagamentoPendente {
					t.Fatalf("unexpected initial statuses: %+v", os)
				}
				if os.ValorTotal.StringFixed(2) != "250.00" || !os.ValorPago.IsZero() {
					t.Fatalf("expected total copied and zero pago: %+v", os)
				}
				if os.PrazoConclusao != "2025-03-31" || os.KMAtual != "85000" {
					t.Fatalf("expected prazo/km copied from quote: %+v", os)
				}
				return os, nil
			},
		).Times(1)

		updated, ordem, err := uc.UpdateStatus(context.Background(), "o-1", entities.StatusOrcamentoAprovado)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.StatusOrcamentoAprovado {
			t.Fatalf("expected Aprovado, got %s", updated.Status)
		}
		if ordem == nil || !strings.HasPrefix(ordem.Numero, "OS-") {
			t.Fatalf("expected created ordem, got %+v", ordem)
		}
	})

	t.Run("re-approving an approved quote creates nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newOrcamentoUseCaseForTest(ctrl)

		aprovado := entities.Orcamento{ID: "o-1", Status: entities.StatusOrcamentoAprovado}
		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(aprovado, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Orcamento) (entities.Orcamento, error) { return o, nil },
		)
		// No seq.Proxima and no osRepo.Create expectations: any call fails the test.

		_, ordem, err := uc.UpdateStatus(context.Background(), "o-1", entities.StatusOrcamentoAprovado)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ordem != nil {
			t.Fatalf("expected no ordem, got %+v", ordem)
		}
	})

	t.Run("failed ordem creation leaves the quote non-approved and retryable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, osRepo, seq := newOrcamentoUseCaseForTest(ctrl)

		pendente := entities.Orcamento{ID: "o-1", Status: entities.StatusOrcamentoPendente}
		seqErr := errors.New("counter unavailable")

		// First attempt: the counter blows up before the status is persisted,
		// so repo.Update must not run.
		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(pendente, nil)
		seq.EXPECT().Proxima(gomock.Any(), "ordens_servico").Return(int64(0), seqErr)

		_, ordem, err := uc.UpdateStatus(context.Background(), "o-1", entities.StatusOrcamentoAprovado)
		if !errors.Is(err, seqErr) {
			t.Fatalf("expected counter error, got %v", err)
		}
		if ordem != nil {
			t.Fatalf("expected no ordem on failure, got %+v", ordem)
		}

		// Retry: the quote is still Pendente, so the same PATCH approves it
		// and creates the ordem.
		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(pendente, nil)
		seq.EXPECT().Proxima(gomock.Any(), "ordens_servico").Return(int64(7), nil)
		osRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, os entities.OrdemServico) (entities.OrdemServico, error) { return os, nil },
		)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Orcamento) (entities.Orcamento, error) { return o, nil },
		)

		updated, ordem, err := uc.UpdateStatus(context.Background(), "o-1", entities.StatusOrcamentoAprovado)
		if err != nil {
			t.Fatalf("unexpected error on retry: %v", err)
		}
		if updated.Status != entities.StatusOrcamentoAprovado || ordem == nil {
			t.Fatalf("expected retry to approve and create the ordem, got %+v / %+v", updated, ordem)
		}
	})

	t.Run("failed status write removes the just-created ordem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, osRepo, seq := newOrcamentoUseCaseForTest(ctrl)

		pendente := entities.Orcamento{ID: "o-1", Status: entities.StatusOrcamentoPendente}
		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(pendente, nil)
		seq.EXPECT().Proxima(gomock.Any(), "ordens_servico").Return(int64(7), nil)

		var ordemID string
		osRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, os entities.OrdemServico) (entities.OrdemServico, error) {
				ordemID = os.ID
				return os, nil
			},
		)
		writeErr := errors.New("conditional write failed")
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Orcamento{}, writeErr)
		osRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) error {
				if id != ordemID {
					t.Fatalf("expected delete of %s, got %s", ordemID, id)
				}
				return nil
			},
		)

		_, _, err := uc.UpdateStatus(context.Background(), "o-1", entities.StatusOrcamentoAprovado)
		if !errors.Is(err, writeErr) {
			t.Fatalf("expected write error, got %v", err)
		}
	})

	t.Run("leaving Aprovado does not undo the ordem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newOrcamentoUseCaseForTest(ctrl)

		aprovado := entities.Orcamento{ID: "o-1", Status: entities.StatusOrcamentoAprovado}
		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(aprovado, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Orcamento) (entities.Orcamento, error) { return o, nil },
		)

		updated, ordem, err := uc.UpdateStatus(context.Background(), "o-1", entities.StatusOrcamentoPendente)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.StatusOrcamentoPendente || ordem != nil {
			t.Fatalf("expected plain status overwrite, got %+v / %+v", updated, ordem)
		}
	})
}

func TestOrcamentoUseCase_Linhas(t *testing.T) {
	t.Run("rejects non-positive quantidade before any store call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _, _ := newOrcamentoUseCaseForTest(ctrl)

		_, err := uc.AddPeca(context.Background(), "o-1", entities.OrcamentoPeca{PecaID: "p-1", Quantidade: 0})
		if !errors.Is(err, ErrLinhaPecaInvalida) {
			t.Fatalf("expected ErrLinhaPecaInvalida, got %v", err)
		}
	})

	t.Run("rejects non-positive horas before any store call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _, _ := newOrcamentoUseCaseForTest(ctrl)

		_, err := uc.AddServico(context.Background(), "o-1", entities.OrcamentoServico{ServicoID: "s-1", Horas: decimal.Zero})
		if !errors.Is(err, ErrLinhaServicoInvalida) {
			t.Fatalf("expected ErrLinhaServicoInvalida, got %v", err)
		}
	})

	t.Run("add peca snapshots catalog price and re-derives total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrcamentoRepository(ctrl)
		pecaRepo := mock_interfaces.NewMockIPecaRepository(ctrl)
		uc := NewOrcamentoUseCase(repo, nil, nil, pecaRepo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Orcamento{ID: "o-1"}, nil)
		pecaRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Peca{
			ID:            "p-1",
			Nome:          "Pastilha de freio",
			ValorUnitario: decimal.RequireFromString("80.00"),
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Orcamento) (entities.Orcamento, error) {
				if len(o.Pecas) != 1 {
					t.Fatalf("expected 1 line, got %d", len(o.Pecas))
				}
				linha := o.Pecas[0]
				if linha.PecaNome != "Pastilha de freio" || linha.ValorUnitario.StringFixed(2) != "80.00" {
					t.Fatalf("expected catalog snapshot, got %+v", linha)
				}
				if o.ValorTotal.StringFixed(2) != "160.00" {
					t.Fatalf("expected total 160.00, got %s", o.ValorTotal.StringFixed(2))
				}
				return o, nil
			},
		)

		_, err := uc.AddPeca(context.Background(), "o-1", entities.OrcamentoPeca{PecaID: "p-1", Quantidade: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("remove missing line", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newOrcamentoUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Orcamento{ID: "o-1"}, nil)

		_, err := uc.RemovePeca(context.Background(), "o-1", "linha-404")
		if !errors.Is(err, ErrLinhaNotFound) {
			t.Fatalf("expected ErrLinhaNotFound, got %v", err)
		}
	})
}

func TestOrcamentoUseCase_Delete(t *testing.T) {
	t.Run("delete does not touch ordens de servico", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newOrcamentoUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Orcamento{ID: "o-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "o-1").Return(nil)
		// osRepo has no expectations: the created OS must survive quote deletion.

		if err := uc.Delete(context.Background(), "o-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _, _ := newOrcamentoUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Orcamento{}, errors.New("db"))

		if err := uc.Delete(context.Background(), "o-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
