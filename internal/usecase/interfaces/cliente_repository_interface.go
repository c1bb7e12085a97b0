package interfaces

import (
	"context"

	"oficina_api/internal/domain/entities"
)

// IClienteRepository abstracts DynamoDB persistence for Cliente.

type IClienteRepository interface {
	Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error)
	GetByID(ctx context.Context, id string) (entities.Cliente, error)
	List(ctx context.Context) ([]entities.Cliente, error)
	Update(ctx context.Context, c entities.Cliente) (entities.Cliente, error)
	Delete(ctx context.Context, id string) error
}

// IVeiculoRepository is read-side only: the console lists vehicles and
// resolves them by owner, but never writes them directly.

type IVeiculoRepository interface {
	GetByID(ctx context.Context, id string) (entities.Veiculo, error)
	List(ctx context.Context) ([]entities.Veiculo, error)
	ListByClienteID(ctx context.Context, clienteID string) ([]entities.Veiculo, error)
}
