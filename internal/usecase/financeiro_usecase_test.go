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

func TestFinanceiroUseCase_CreateContaReceber(t *testing.T) {
	t.Run("missing cliente issues no store call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		receberRepo := mock_interfaces.NewMockIContaReceberRepository(ctrl)
		geralRepo := mock_interfaces.NewMockIContaGeralRepository(ctrl)
		seq := mock_interfaces.NewMockISequenciaRepository(ctrl)
		uc := NewFinanceiroUseCase(receberRepo, geralRepo, seq, nil)

		_, err := uc.CreateContaReceber(context.Background(), entities.ContaReceber{
			Vencimento: "2026-09-10",
			Valor:      decimal.RequireFromString("150"),
		})
		if !errors.Is(err, ErrContaInvalida) {
			t.Fatalf("expected ErrContaInvalida, got %v", err)
		}
	})

	t.Run("create numbers the entry and defaults status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		receberRepo := mock_interfaces.NewMockIContaReceberRepository(ctrl)
		geralRepo := mock_interfaces.NewMockIContaGeralRepository(ctrl)
		seq := mock_interfaces.NewMockISequenciaRepository(ctrl)
		uc := NewFinanceiroUseCase(receberRepo, geralRepo, seq, nil)

		seq.EXPECT().Proxima(gomock.Any(), "contas_receber").Return(int64(7), nil)
		receberRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.ContaReceber) (entities.ContaReceber, error) {
				if c.ID == "" || c.CreatedAt.IsZero() {
					t.Fatalf("expected generated id and timestamps: %+v", c)
				}
				if c.Numero != "CR-0007" {
					t.Fatalf("expected numero CR-0007, got %s", c.Numero)
				}
				if c.Status != entities.StatusContaPendente {
					t.Fatalf("expected default status Pendente, got %s", c.Status)
				}
				return c, nil
			},
		)

		created, err := uc.CreateContaReceber(context.Background(), entities.ContaReceber{
			ClienteID:  "c-1",
			Vencimento: "2026-09-10",
			Valor:      decimal.RequireFromString("150"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Numero != "CR-0007" {
			t.Fatalf("unexpected numero: %s", created.Numero)
		}
	})

	t.Run("sequence failure aborts before the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		receberRepo := mock_interfaces.NewMockIContaReceberRepository(ctrl)
		geralRepo := mock_interfaces.NewMockIContaGeralRepository(ctrl)
		seq := mock_interfaces.NewMockISequenciaRepository(ctrl)
		uc := NewFinanceiroUseCase(receberRepo, geralRepo, seq, nil)

		seqErr := errors.New("counter unavailable")
		seq.EXPECT().Proxima(gomock.Any(), "contas_receber").Return(int64(0), seqErr)

		_, err := uc.CreateContaReceber(context.Background(), entities.ContaReceber{
			ClienteID:  "c-1",
			Vencimento: "2026-09-10",
			Valor:      decimal.RequireFromString("150"),
		})
		if !errors.Is(err, seqErr) {
			t.Fatalf("expected counter error, got %v", err)
		}
	})
}

func TestFinanceiroUseCase_UpdateContaReceber(t *testing.T) {
	t.Run("keeps numero and origin links from the stored entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		receberRepo := mock_interfaces.NewMockIContaReceberRepository(ctrl)
		geralRepo := mock_interfaces.NewMockIContaGeralRepository(ctrl)
		seq := mock_interfaces.NewMockISequenciaRepository(ctrl)
		uc := NewFinanceiroUseCase(receberRepo, geralRepo, seq, nil)

		receberRepo.EXPECT().GetByID(gomock.Any(), "cr-1").Return(entities.ContaReceber{
			ID:          "cr-1",
			Numero:      "CR-0001",
			ClienteID:   "c-1",
			OrcamentoID: "orc-1",
		}, nil)
		receberRepo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.ContaReceber) (entities.ContaReceber, error) {
				if c.Numero != "CR-0001" || c.ClienteID != "c-1" || c.OrcamentoID != "orc-1" {
					t.Fatalf("expected preserved numero and links: %+v", c)
				}
				return c, nil
			},
		)

		updated, err := uc.UpdateContaReceber(context.Background(), entities.ContaReceber{
			ID:         "cr-1",
			Vencimento: "2026-09-20",
			Valor:      decimal.RequireFromString("200"),
			Status:     entities.StatusContaRecebido,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.StatusContaRecebido {
			t.Fatalf("unexpected status: %s", updated.Status)
		}
	})

	t.Run("unknown conta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		receberRepo := mock_interfaces.NewMockIContaReceberRepository(ctrl)
		geralRepo := mock_interfaces.NewMockIContaGeralRepository(ctrl)
		seq := mock_interfaces.NewMockISequenciaRepository(ctrl)
		uc := NewFinanceiroUseCase(receberRepo, geralRepo, seq, nil)

		receberRepo.EXPECT().GetByID(gomock.Any(), "cr-404").Return(entities.ContaReceber{}, nil)

		_, err := uc.UpdateContaReceber(context.Background(), entities.ContaReceber{
			ID:         "cr-404",
			Vencimento: "2026-09-20",
			Valor:      decimal.RequireFromString("200"),
		})
		if !errors.Is(err, ErrContaNotFound) {
			t.Fatalf("expected ErrContaNotFound, got %v", err)
		}
	})
}

func TestFinanceiroUseCase_ContasGerais(t *testing.T) {
	t.Run("create defaults tipo Fixa", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		receberRepo := mock_interfaces.NewMockIContaReceberRepository(ctrl)
		geralRepo := mock_interfaces.NewMockIContaGeralRepository(ctrl)
		seq := mock_interfaces.NewMockISequenciaRepository(ctrl)
		uc := NewFinanceiroUseCase(receberRepo, geralRepo, seq, nil)

		seq.EXPECT().Proxima(gomock.Any(), "contas_gerais").Return(int64(3), nil)
		geralRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.ContaGeral) (entities.ContaGeral, error) {
				if c.Numero != "CG-0003" {
					t.Fatalf("expected numero CG-0003, got %s", c.Numero)
				}
				if c.Tipo != entities.TipoContaFixa {
					t.Fatalf("expected default tipo Fixa, got %s", c.Tipo)
				}
				return c, nil
			},
		)

		_, err := uc.CreateContaGeral(context.Background(), entities.ContaGeral{
			Descricao:  "Aluguel do galpão",
			Vencimento: "2026-09-05",
			Valor:      decimal.RequireFromString("3500"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("list filters by status and tipo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		receberRepo := mock_interfaces.NewMockIContaReceberRepository(ctrl)
		geralRepo := mock_interfaces.NewMockIContaGeralRepository(ctrl)
		seq := mock_interfaces.NewMockISequenciaRepository(ctrl)
		uc := NewFinanceiroUseCase(receberRepo, geralRepo, seq, nil)

		geralRepo.EXPECT().List(gomock.Any()).Return([]entities.ContaGeral{
			{ID: "1", Tipo: entities.TipoContaFixa, Status: entities.StatusContaPendente},
			{ID: "2", Tipo: entities.TipoContaVariavel, Status: entities.StatusContaPendente},
			{ID: "3", Tipo: entities.TipoContaVariavel, Status: entities.StatusContaPago},
		}, nil)

		out, err := uc.ListContasGerais(context.Background(), entities.StatusContaPendente, entities.TipoContaVariavel)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].ID != "2" {
			t.Fatalf("unexpected result: %+v", out)
		}
	})

	t.Run("delete invalidates the collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		receberRepo := mock_interfaces.NewMockIContaReceberRepository(ctrl)
		geralRepo := mock_interfaces.NewMockIContaGeralRepository(ctrl)
		seq := mock_interfaces.NewMockISequenciaRepository(ctrl)
		cache := mock_interfaces.NewMockICollectionCache(ctrl)
		uc := NewFinanceiroUseCase(receberRepo, geralRepo, seq, cache)

		geralRepo.EXPECT().GetByID(gomock.Any(), "cg-1").Return(entities.ContaGeral{ID: "cg-1"}, nil)
		geralRepo.EXPECT().Delete(gomock.Any(), "cg-1").Return(nil)
		cache.EXPECT().Invalidate(gomock.Any(), "contas_gerais").Return(nil)

		if err := uc.DeleteContaGeral(context.Background(), "cg-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
