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
	ErrClienteNotFound = errors.New("cliente not found")
	ErrClienteInvalido = errors.New("cliente requires nome and documento")
	ErrInvalidID       = errors.New("invalid id")
)

// IClienteUseCase exposes customer CRUD plus the console's list filtering.

type IClienteUseCase interface {
	Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error)
	GetByID(ctx context.Context, id string) (entities.Cliente, error)
	List(ctx context.Context, busca string, tipo entities.TipoCliente) ([]entities.Cliente, error)
	Update(ctx context.Context, c entities.Cliente) (entities.Cliente, error)
	Delete(ctx context.Context, id string) error
}

type ClienteUseCase struct {
	repo  interfaces.IClienteRepository
	cache interfaces.ICollectionCache
}

var _ IClienteUseCase = (*ClienteUseCase)(nil)

func NewClienteUseCase(repo interfaces.IClienteRepository, cache interfaces.ICollectionCache) *ClienteUseCase {
	return &ClienteUseCase{repo: repo, cache: cache}
}

func (u *ClienteUseCase) Create(ctx context.Context, c entities.Cliente) (entities.Cliente, error) {
	c.Nome = strings.TrimSpace(c.Nome)
	c.Documento = strings.TrimSpace(c.Documento)
	if c.Nome == "" || c.Documento == "" {
		return entities.Cliente{}, ErrClienteInvalido
	}
	if c.Tipo == "" {
		c.Tipo = entities.TipoClienteFisica
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Cliente{}, err
	}
	invalidate(ctx, u.cache, colClientes)
	return created, nil
}

func (u *ClienteUseCase) GetByID(ctx context.Context, id string) (entities.Cliente, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Cliente{}, ErrInvalidID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Cliente{}, err
	}
	if c.ID == "" {
		return entities.Cliente{}, ErrClienteNotFound
	}
	return c, nil
}

func (u *ClienteUseCase) List(ctx context.Context, busca string, tipo entities.TipoCliente) ([]entities.Cliente, error) {
	clientes, err := u.listAll(ctx)
	if err != nil {
		return nil, err
	}
	return entities.FilterClientes(clientes, busca, tipo), nil
}

func (u *ClienteUseCase) listAll(ctx context.Context) ([]entities.Cliente, error) {
	if u.cache != nil {
		var cached []entities.Cliente
		if ok, err := u.cache.GetList(ctx, colClientes, &cached); err == nil && ok {
			return cached, nil
		}
	}

	clientes, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		_ = u.cache.SetList(ctx, colClientes, clientes)
	}
	return clientes, nil
}

func (u *ClienteUseCase) Update(ctx context.Context, c entities.Cliente) (entities.Cliente, error) {
	c.ID = strings.TrimSpace(c.ID)
	if c.ID == "" {
		return entities.Cliente{}, ErrInvalidID
	}
	c.Nome = strings.TrimSpace(c.Nome)
	c.Documento = strings.TrimSpace(c.Documento)
	if c.Nome == "" || c.Documento == "" {
		return entities.Cliente{}, ErrClienteInvalido
	}

	existing, err := u.repo.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Cliente{}, err
	}
	if existing.ID == "" {
		return entities.Cliente{}, ErrClienteNotFound
	}

	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Cliente{}, err
	}
	if updated.ID == "" {
		return entities.Cliente{}, ErrClienteNotFound
	}
	invalidate(ctx, u.cache, colClientes)
	return updated, nil
}

func (u *ClienteUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrClienteNotFound
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(ctx, u.cache, colClientes)
	return nil
}
