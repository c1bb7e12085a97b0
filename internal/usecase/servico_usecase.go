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
	ErrServicoNotFound = errors.New("servico not found")
	ErrServicoInvalido = errors.New("servico requires nome and a non-negative valor_hora")
)

type IServicoUseCase interface {
	Create(ctx context.Context, s entities.Servico) (entities.Servico, error)
	GetByID(ctx context.Context, id string) (entities.Servico, error)
	List(ctx context.Context, busca string) ([]entities.Servico, error)
	Update(ctx context.Context, s entities.Servico) (entities.Servico, error)
	Delete(ctx context.Context, id string) error
}

type ServicoUseCase struct {
	repo  interfaces.IServicoRepository
	cache interfaces.ICollectionCache
}

var _ IServicoUseCase = (*ServicoUseCase)(nil)

func NewServicoUseCase(repo interfaces.IServicoRepository, cache interfaces.ICollectionCache) *ServicoUseCase {
	return &ServicoUseCase{repo: repo, cache: cache}
}

func (u *ServicoUseCase) Create(ctx context.Context, s entities.Servico) (entities.Servico, error) {
	s.Nome = strings.TrimSpace(s.Nome)
	if s.Nome == "" || s.ValorHora.IsNegative() {
		return entities.Servico{}, ErrServicoInvalido
	}

	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.CreatedAt = now
	s.UpdatedAt = now

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.Servico{}, err
	}
	invalidate(ctx, u.cache, colServicos)
	return created, nil
}

func (u *ServicoUseCase) GetByID(ctx context.Context, id string) (entities.Servico, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Servico{}, ErrInvalidID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Servico{}, err
	}
	if s.ID == "" {
		return entities.Servico{}, ErrServicoNotFound
	}
	return s, nil
}

func (u *ServicoUseCase) List(ctx context.Context, busca string) ([]entities.Servico, error) {
	if u.cache != nil {
		var cached []entities.Servico
		if ok, err := u.cache.GetList(ctx, colServicos, &cached); err == nil && ok {
			return entities.FilterServicos(cached, busca), nil
		}
	}

	servicos, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		_ = u.cache.SetList(ctx, colServicos, servicos)
	}
	return entities.FilterServicos(servicos, busca), nil
}

func (u *ServicoUseCase) Update(ctx context.Context, s entities.Servico) (entities.Servico, error) {
	s.ID = strings.TrimSpace(s.ID)
	if s.ID == "" {
		return entities.Servico{}, ErrInvalidID
	}
	s.Nome = strings.TrimSpace(s.Nome)
	if s.Nome == "" || s.ValorHora.IsNegative() {
		return entities.Servico{}, ErrServicoInvalido
	}

	existing, err := u.repo.GetByID(ctx, s.ID)
	if err != nil {
		return entities.Servico{}, err
	}
	if existing.ID == "" {
		return entities.Servico{}, ErrServicoNotFound
	}

	s.CreatedAt = existing.CreatedAt
	s.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		return entities.Servico{}, err
	}
	if updated.ID == "" {
		return entities.Servico{}, ErrServicoNotFound
	}
	invalidate(ctx, u.cache, colServicos)
	return updated, nil
}

func (u *ServicoUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrServicoNotFound
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, u.cache, colServicos)
	return nil
}
