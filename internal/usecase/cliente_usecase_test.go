package usecase

import (
	"context"
	"errors"
	"testing"

	"oficina_api/internal/domain/entities"
	mock_interfaces "oficina_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestClienteUseCase_Create(t *testing.T) {
	t.Run("missing documento issues no store call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo, nil)

		_, err := uc.Create(context.Background(), entities.Cliente{Nome: "Maria Souza"})
		if !errors.Is(err, ErrClienteInvalido) {
			t.Fatalf("expected ErrClienteInvalido, got %v", err)
		}
	})

	t.Run("missing nome issues no store call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo, nil)

		_, err := uc.Create(context.Background(), entities.Cliente{Documento: "111.222.333-44", Nome: "   "})
		if !errors.Is(err, ErrClienteInvalido) {
			t.Fatalf("expected ErrClienteInvalido, got %v", err)
		}
	})

	t.Run("create success defaults tipo and fills timestamps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Cliente) (entities.Cliente, error) {
				if c.ID == "" || c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
					t.Fatalf("expected generated id and timestamps: %+v", c)
				}
				if c.Tipo != entities.TipoClienteFisica {
					t.Fatalf("expected default tipo Física, got %s", c.Tipo)
				}
				return c, nil
			},
		)

		created, err := uc.Create(context.Background(), entities.Cliente{
			Nome:      " Maria Souza ",
			Documento: "111.222.333-44",
			Placa:     "ABC1D23",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Nome != "Maria Souza" {
			t.Fatalf("expected trimmed nome, got %q", created.Nome)
		}
	})
}

func TestClienteUseCase_List(t *testing.T) {
	t.Run("applies filters over the fetched collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Cliente{
			{ID: "1", Nome: "Maria Souza", Tipo: entities.TipoClienteFisica},
			{ID: "2", Nome: "Oficina Silva LTDA", Tipo: entities.TipoClienteJuridica},
		}, nil)

		out, err := uc.List(context.Background(), "silva", entities.TipoClienteJuridica)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].ID != "2" {
			t.Fatalf("unexpected result: %+v", out)
		}
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		cache := mock_interfaces.NewMockICollectionCache(ctrl)
		uc := NewClienteUseCase(repo, cache)

		cache.EXPECT().GetList(gomock.Any(), "clientes", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, dest interface{}) (bool, error) {
				*dest.(*[]entities.Cliente) = []entities.Cliente{{ID: "1", Nome: "Maria Souza"}}
				return true, nil
			},
		)
		// repo.List has no expectation: a store call fails the test.

		out, err := uc.List(context.Background(), "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].ID != "1" {
			t.Fatalf("unexpected result: %+v", out)
		}
	})
}

func TestClienteUseCase_Mutations(t *testing.T) {
	t.Run("update unknown cliente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-404").Return(entities.Cliente{}, nil)

		_, err := uc.Update(context.Background(), entities.Cliente{ID: "c-404", Nome: "X", Documento: "Y"})
		if !errors.Is(err, ErrClienteNotFound) {
			t.Fatalf("expected ErrClienteNotFound, got %v", err)
		}
	})

	t.Run("update racing a delete maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		uc := NewClienteUseCase(repo, nil)

		// The row vanishes between the read and the conditional write: the
		// store reports the failed condition as a zero entity.
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Cliente{ID: "c-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Cliente{}, nil)

		_, err := uc.Update(context.Background(), entities.Cliente{ID: "c-1", Nome: "Maria", Documento: "111"})
		if !errors.Is(err, ErrClienteNotFound) {
			t.Fatalf("expected ErrClienteNotFound, got %v", err)
		}
	})

	t.Run("delete invalidates the collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClienteRepository(ctrl)
		cache := mock_interfaces.NewMockICollectionCache(ctrl)
		uc := NewClienteUseCase(repo, cache)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Cliente{ID: "c-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)
		cache.EXPECT().Invalidate(gomock.Any(), "clientes").Return(nil)

		if err := uc.Delete(context.Background(), "c-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
