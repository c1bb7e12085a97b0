package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPecaNotFound = errors.New("peca not found")
	ErrPecaInvalida = errors.New("peca requires nome and a non-negative valor_unitario")
)

type IPecaUseCase interface {
	Create(ctx context.Context, p entities.Peca) (entities.Peca, error)
	GetByID(ctx context.Context, id string) (entities.Peca, error)
	List(ctx context.Context, busca string) ([]entities.Peca, error)
	Update(ctx context.Context, p entities.Peca) (entities.Peca, error)
	Delete(ctx context.Context, id string) error
}

type PecaUseCase struct {
	repo  interfaces.IPecaRepository
	cache interfaces.ICollectionCache
}

var _ IPecaUseCase = (*PecaUseCase)(nil)

func NewPecaUseCase(repo interfaces.IPecaRepository, cache interfaces.ICollectionCache) *PecaUseCase {
	return &PecaUseCase{repo: repo, cache: cache}
}

func validatePeca(p entities.Peca) error {
	if strings.TrimSpace(p.Nome) == "" || p.ValorUnitario.IsNegative() || p.Estoque < 0 {
		return ErrPecaInvalida
	}
	return nil
}

func (u *PecaUseCase) Create(ctx context.Context, p entities.Peca) (entities.Peca, error) {
	p.Nome = strings.TrimSpace(p.Nome)
	if err := validatePeca(p); err != nil {
		return entities.Peca{}, err
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Peca{}, err
	}
	invalidate(ctx, u.cache, colPecas)
	return created, nil
}

func (u *PecaUseCase) GetByID(ctx context.Context, id string) (entities.Peca, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Peca{}, ErrInvalidID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Peca{}, err
	}
	if p.ID == "" {
		return entities.Peca{}, ErrPecaNotFound
	}
	return p, nil
}

func (u *PecaUseCase) List(ctx context.Context, busca string) ([]entities.Peca, error) {
	if u.cache != nil {
		var cached []entities.Peca
		if ok, err := u.cache.GetList(ctx, colPecas, &cached); err == nil && ok {
			return entities.FilterPecas(cached, busca), nil
		}
	}

	pecas, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		_ = u.cache.SetList(ctx, colPecas, pecas)
	}
	return entities.FilterPecas(pecas, busca), nil
}

func (u *PecaUseCase) Update(ctx context.Context, p entities.Peca) (entities.Peca, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.Peca{}, ErrInvalidID
	}
	p.Nome = strings.TrimSpace(p.Nome)
	if err := validatePeca(p); err != nil {
		return entities.Peca{}, err
	}

	existing, err := u.repo.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Peca{}, err
	}
	if existing.ID == "" {
		return entities.Peca{}, ErrPecaNotFound
	}

	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Peca{}, err
	}
	if updated.ID == "" {
		return entities.Peca{}, ErrPecaNotFound
	}
	invalidate(ctx, u.cache, colPecas)
	return updated, nil
}

func (u *PecaUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrPecaNotFound
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, u.cache, colPecas)
	return nil
}
