package response

import (
	"time"

	"oficina_api/internal/domain/entities"
)

// Money is serialized as a fixed two-decimal string so clients never see
// float artifacts.

type FuncionarioResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Documento string    `json:"documento"`
	Categoria string    `json:"categoria"`
	Telefone  string    `json:"telefone,omitempty"`
	Endereco  string    `json:"endereco,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromFuncionario(f entities.Funcionario) FuncionarioResponse {
	return FuncionarioResponse{
		ID:        f.ID,
		Nome:      f.Nome,
		Documento: f.Documento,
		Categoria: string(f.Categoria),
		Telefone:  f.Telefone,
		Endereco:  f.Endereco,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func FromFuncionarios(funcionarios []entities.Funcionario) []FuncionarioResponse {
	out := make([]FuncionarioResponse, 0, len(funcionarios))
	for _, f := range funcionarios {
		out = append(out, FromFuncionario(f))
	}
	return out
}

type FornecedorResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	CNPJ      string    `json:"cnpj"`
	Telefone  string    `json:"telefone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Endereco  string    `json:"endereco,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromFornecedor(f entities.Fornecedor) FornecedorResponse {
	return FornecedorResponse{
		ID:        f.ID,
		Nome:      f.Nome,
		CNPJ:      f.CNPJ,
		Telefone:  f.Telefone,
		Email:     f.Email,
		Endereco:  f.Endereco,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func FromFornecedores(fornecedores []entities.Fornecedor) []FornecedorResponse {
	out := make([]FornecedorResponse, 0, len(fornecedores))
	for _, f := range fornecedores {
		out = append(out, FromFornecedor(f))
	}
	return out
}

type PecaResponse struct {
	ID            string    `json:"id"`
	Nome          string    `json:"nome"`
	ValorUnitario string    `json:"valor_unitario"`
	Estoque       int       `json:"estoque"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromPeca(p entities.Peca) PecaResponse {
	return PecaResponse{
		ID:            p.ID,
		Nome:          p.Nome,
		ValorUnitario: p.ValorUnitario.StringFixed(2),
		Estoque:       p.Estoque,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func FromPecas(pecas []entities.Peca) []PecaResponse {
	out := make([]PecaResponse, 0, len(pecas))
	for _, p := range pecas {
		out = append(out, FromPeca(p))
	}
	return out
}

type ServicoResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	ValorHora string    `json:"valor_hora"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromServico(s entities.Servico) ServicoResponse {
	return ServicoResponse{
		ID:        s.ID,
		Nome:      s.Nome,
		ValorHora: s.ValorHora.StringFixed(2),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func FromServicos(servicos []entities.Servico) []ServicoResponse {
	out := make([]ServicoResponse, 0, len(servicos))
	for _, s := range servicos {
		out = append(out, FromServico(s))
	}
	return out
}
