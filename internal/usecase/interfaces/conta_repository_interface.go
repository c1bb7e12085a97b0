package interfaces

import (
	"context"

	"oficina_api/internal/domain/entities"
)

type IContaReceberRepository interface {
	Create(ctx context.Context, c entities.ContaReceber) (entities.ContaReceber, error)
	GetByID(ctx context.Context, id string) (entities.ContaReceber, error)
	List(ctx context.Context) ([]entities.ContaReceber, error)
	Update(ctx context.Context, c entities.ContaReceber) (entities.ContaReceber, error)
	Delete(ctx context.Context, id string) error
}

type IContaGeralRepository interface {
	Create(ctx context.Context, c entities.ContaGeral) (entities.ContaGeral, error)
	GetByID(ctx context.Context, id string) (entities.ContaGeral, error)
	List(ctx context.Context) ([]entities.ContaGeral, error)
	Update(ctx context.Context, c entities.ContaGeral) (entities.ContaGeral, error)
	Delete(ctx context.Context, id string) error
}
