package interfaces

import (
	"context"

	"oficina_api/internal/domain/entities"
)

// IOrcamentoRepository persists the quote aggregate as a single item: the
// header and both line collections travel together, so deleting the quote
// removes its lines with it and a joined read costs one round trip.

type IOrcamentoRepository interface {
	Create(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error)
	GetByID(ctx context.Context, id string) (entities.Orcamento, error)
	List(ctx context.Context) ([]entities.Orcamento, error)
	Update(ctx context.Context, o entities.Orcamento) (entities.Orcamento, error)
	Delete(ctx context.Context, id string) error
}
