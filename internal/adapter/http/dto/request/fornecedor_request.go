package request

import (
	"oficina_api/internal/domain/entities"
)

type FornecedorRequest struct {
	Nome     string `json:"nome" binding:"required"`
	CNPJ     string `json:"cnpj" binding:"required"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
	Endereco string `json:"endereco"`
}

func (r FornecedorRequest) ToEntity() entities.Fornecedor {
	return entities.Fornecedor{
		Nome:     r.Nome,
		CNPJ:     r.CNPJ,
		Telefone: r.Telefone,
		Email:    r.Email,
		Endereco: r.Endereco,
	}
}
