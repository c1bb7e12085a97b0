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
	ErrFornecedorNotFound = errors.New("fornecedor not found")
	ErrFornecedorInvalido = errors.New("fornecedor requires nome and cnpj")
)

type IFornecedorUseCase interface {
	Create(ctx context.Context, f entities.Fornecedor) (entities.Fornecedor, error)
	GetByID(ctx context.Context, id string) (entities.Fornecedor, error)
	List(ctx context.Context, busca string) ([]entities.Fornecedor, error)
	Update(ctx context.Context, f entities.Fornecedor) (entities.Fornecedor, error)
	Delete(ctx context.Context, id string) error
}

type FornecedorUseCase struct {
	repo  interfaces.IFornecedorRepository
	cache interfaces.ICollectionCache
}

var _ IFornecedorUseCase = (*FornecedorUseCase)(nil)

func NewFornecedorUseCase(repo interfaces.IFornecedorRepository, cache interfaces.ICollectionCache) *FornecedorUseCase {
	return &FornecedorUseCase{repo: repo, cache: cache}
}

func (u *FornecedorUseCase) Create(ctx context.Context, f entities.Fornecedor) (entities.Fornecedor, error) {
	f.Nome = strings.TrimSpace(f.Nome)
	f.CNPJ = strings.TrimSpace(f.CNPJ)
	if f.Nome == "" || f.CNPJ == "" {
		return entities.Fornecedor{}, ErrFornecedorInvalido
	}

	now := time.Now().UTC()
	f.ID = uuid.NewString()
	f.CreatedAt = now
	f.UpdatedAt = now

	created, err := u.repo.Create(ctx, f)
	if err != nil {
		return entities.Fornecedor{}, err
	}
	invalidate(ctx, u.cache, colFornecedores)
	return created, nil
}

func (u *FornecedorUseCase) GetByID(ctx context.Context, id string) (entities.Fornecedor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Fornecedor{}, ErrInvalidID
	}

	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Fornecedor{}, err
	}
	if f.ID == "" {
		return entities.Fornecedor{}, ErrFornecedorNotFound
	}
	return f, nil
}

func (u *FornecedorUseCase) List(ctx context.Context, busca string) ([]entities.Fornecedor, error) {
	if u.cache != nil {
		var cached []entities.Fornecedor
		if ok, err := u.cache.GetList(ctx, colFornecedores, &cached); err == nil && ok {
			return entities.FilterFornecedores(cached, busca), nil
		}
	}

	fornecedores, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		_ = u.cache.SetList(ctx, colFornecedores, fornecedores)
	}
	return entities.FilterFornecedores(fornecedores, busca), nil
}

func (u *FornecedorUseCase) Update(ctx context.Context, f entities.Fornecedor) (entities.Fornecedor, error) {
	f.ID = strings.TrimSpace(f.ID)
	if f.ID == "" {
		return entities.Fornecedor{}, ErrInvalidID
	}
	f.Nome = strings.TrimSpace(f.Nome)
	f.CNPJ = strings.TrimSpace(f.CNPJ)
	if f.Nome == "" || f.CNPJ == "" {
		return entities.Fornecedor{}, ErrFornecedorInvalido
	}

	existing, err := u.repo.GetByID(ctx, f.ID)
	if err != nil {
		return entities.Fornecedor{}, err
	}
	if existing.ID == "" {
		return entities.Fornecedor{}, ErrFornecedorNotFound
	}

	f.CreatedAt = existing.CreatedAt
	f.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, f)
	if err != nil {
		return entities.Fornecedor{}, err
	}
	if updated.ID == "" {
		return entities.Fornecedor{}, ErrFornecedorNotFound
	}
	invalidate(ctx, u.cache, colFornecedores)
	return updated, nil
}

func (u *FornecedorUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrFornecedorNotFound
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, u.cache, colFornecedores)
	return nil
}
