package usecase

import (
	"context"
	"strings"

	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase/interfaces"
)

// IVeiculoUseCase is read-side only; vehicles are written through customer
// records, this surface exists for lookups and joins.

type IVeiculoUseCase interface {
	List(ctx context.Context) ([]entities.Veiculo, error)
	ListByClienteID(ctx context.Context, clienteID string) ([]entities.Veiculo, error)
}

type VeiculoUseCase struct {
	repo  interfaces.IVeiculoRepository
	cache interfaces.ICollectionCache
}

var _ IVeiculoUseCase = (*VeiculoUseCase)(nil)

func NewVeiculoUseCase(repo interfaces.IVeiculoRepository, cache interfaces.ICollectionCache) *VeiculoUseCase {
	return &VeiculoUseCase{repo: repo, cache: cache}
}

func (u *VeiculoUseCase) List(ctx context.Context) ([]entities.Veiculo, error) {
	if u.cache != nil {
		var cached []entities.Veiculo
		if ok, err := u.cache.GetList(ctx, colVeiculos, &cached); err == nil && ok {
			return cached, nil
		}
	}

	veiculos, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		_ = u.cache.SetList(ctx, colVeiculos, veiculos)
	}
	return veiculos, nil
}

func (u *VeiculoUseCase) ListByClienteID(ctx context.Context, clienteID string) ([]entities.Veiculo, error) {
	clienteID = strings.TrimSpace(clienteID)
	if clienteID == "" {
		return nil, ErrInvalidID
	}
	return u.repo.ListByClienteID(ctx, clienteID)
}
