package request

import (
	"oficina_api/internal/domain/entities"
)

type FuncionarioRequest struct {
	Nome      string `json:"nome" binding:"required"`
	Documento string `json:"documento" binding:"required"`
	Categoria string `json:"categoria" binding:"required"`
	Telefone  string `json:"telefone"`
	Endereco  string `json:"endereco"`
}

func (r FuncionarioRequest) ToEntity() entities.Funcionario {
	return entities.Funcionario{
		Nome:      r.Nome,
		Documento: r.Documento,
		Categoria: entities.CategoriaFuncionario(r.Categoria),
		Telefone:  r.Telefone,
		Endereco:  r.Endereco,
	}
}
