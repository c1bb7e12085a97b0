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
	ErrFuncionarioNotFound = errors.New("funcionario not found")
	ErrFuncionarioInvalido = errors.New("funcionario requires nome, documento and categoria")
)

type IFuncionarioUseCase interface {
	Create(ctx context.Context, f entities.Funcionario) (entities.Funcionario, error)
	GetByID(ctx context.Context, id string) (entities.Funcionario, error)
	List(ctx context.Context, busca string, categoria entities.CategoriaFuncionario) ([]entities.Funcionario, error)
	Update(ctx context.Context, f entities.Funcionario) (entities.Funcionario, error)
	Delete(ctx context.Context, id string) error
}

type FuncionarioUseCase struct {
	repo  interfaces.IFuncionarioRepository
	cache interfaces.ICollectionCache
}

var _ IFuncionarioUseCase = (*FuncionarioUseCase)(nil)

func NewFuncionarioUseCase(repo interfaces.IFuncionarioRepository, cache interfaces.ICollectionCache) *FuncionarioUseCase {
	return &FuncionarioUseCase{repo: repo, cache: cache}
}

func (u *FuncionarioUseCase) Create(ctx context.Context, f entities.Funcionario) (entities.Funcionario, error) {
	f.Nome = strings.TrimSpace(f.Nome)
	f.Documento = strings.TrimSpace(f.Documento)
	if f.Nome == "" || f.Documento == "" || f.Categoria == "" {
		return entities.Funcionario{}, ErrFuncionarioInvalido
	}

	now := time.Now().UTC()
	f.ID = uuid.NewString()
	f.CreatedAt = now
	f.UpdatedAt = now

	created, err := u.repo.Create(ctx, f)
	if err != nil {
		return entities.Funcionario{}, err
	}
	invalidate(ctx, u.cache, colFuncionarios)
	return created, nil
}

func (u *FuncionarioUseCase) GetByID(ctx context.Context, id string) (entities.Funcionario, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Funcionario{}, ErrInvalidID
	}

	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Funcionario{}, err
	}
	if f.ID == "" {
		return entities.Funcionario{}, ErrFuncionarioNotFound
	}
	return f, nil
}

func (u *FuncionarioUseCase) List(ctx context.Context, busca string, categoria entities.CategoriaFuncionario) ([]entities.Funcionario, error) {
	if u.cache != nil {
		var cached []entities.Funcionario
		if ok, err := u.cache.GetList(ctx, colFuncionarios, &cached); err == nil && ok {
			return entities.FilterFuncionarios(cached, busca, categoria), nil
		}
	}

	funcionarios, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		_ = u.cache.SetList(ctx, colFuncionarios, funcionarios)
	}
	return entities.FilterFuncionarios(funcionarios, busca, categoria), nil
}

func (u *FuncionarioUseCase) Update(ctx context.Context, f entities.Funcionario) (entities.Funcionario, error) {
	f.ID = strings.TrimSpace(f.ID)
	if f.ID == "" {
		return entities.Funcionario{}, ErrInvalidID
	}
	f.Nome = strings.TrimSpace(f.Nome)
	f.Documento = strings.TrimSpace(f.Documento)
	if f.Nome == "" || f.Documento == "" || f.Categoria == "" {
		return entities.Funcionario{}, ErrFuncionarioInvalido
	}

	existing, err := u.repo.GetByID(ctx, f.ID)
	if err != nil {
		return entities.Funcionario{}, err
	}
	if existing.ID == "" {
		return entities.Funcionario{}, ErrFuncionarioNotFound
	}

	f.CreatedAt = existing.CreatedAt
	f.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, f)
	if err != nil {
		return entities.Funcionario{}, err
	}
	if updated.ID == "" {
		return entities.Funcionario{}, ErrFuncionarioNotFound
	}
	invalidate(ctx, u.cache, colFuncionarios)
	return updated, nil
}

func (u *FuncionarioUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrFuncionarioNotFound
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, u.cache, colFuncionarios)
	return nil
}
