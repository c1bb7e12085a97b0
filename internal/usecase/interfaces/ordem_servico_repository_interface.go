package interfaces

import (
	"context"

	"oficina_api/internal/domain/entities"
)

type IOrdemServicoRepository interface {
	Create(ctx context.Context, os entities.OrdemServico) (entities.OrdemServico, error)
	GetByID(ctx context.Context, id string) (entities.OrdemServico, error)
	List(ctx context.Context) ([]entities.OrdemServico, error)
	Update(ctx context.Context, os entities.OrdemServico) (entities.OrdemServico, error)
	Delete(ctx context.Context, id string) error
}
