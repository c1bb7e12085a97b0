package interfaces

import (
	"context"

	"oficina_api/internal/domain/entities"
)

type IFuncionarioRepository interface {
	Create(ctx context.Context, f entities.Funcionario) (entities.Funcionario, error)
	GetByID(ctx context.Context, id string) (entities.Funcionario, error)
	List(ctx context.Context) ([]entities.Funcionario, error)
	Update(ctx context.Context, f entities.Funcionario) (entities.Funcionario, error)
	Delete(ctx context.Context, id string) error
}

type IFornecedorRepository interface {
	Create(ctx context.Context, f entities.Fornecedor) (entities.Fornecedor, error)
	GetByID(ctx context.Context, id string) (entities.Fornecedor, error)
	List(ctx context.Context) ([]entities.Fornecedor, error)
	Update(ctx context.Context, f entities.Fornecedor) (entities.Fornecedor, error)
	Delete(ctx context.Context, id string) error
}

type IPecaRepository interface {
	Create(ctx context.Context, p entities.Peca) (entities.Peca, error)
	GetByID(ctx context.Context, id string) (entities.Peca, error)
	List(ctx context.Context) ([]entities.Peca, error)
	Update(ctx context.Context, p entities.Peca) (entities.Peca, error)
	Delete(ctx context.Context, id string) error
}

type IServicoRepository interface {
	Create(ctx context.Context, s entities.Servico) (entities.Servico, error)
	GetByID(ctx context.Context, id string) (entities.Servico, error)
	List(ctx context.Context) ([]entities.Servico, error)
	Update(ctx context.Context, s entities.Servico) (entities.Servico, error)
	Delete(ctx context.Context, id string) error
}
