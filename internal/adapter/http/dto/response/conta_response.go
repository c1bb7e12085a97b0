package response

import (
	"time"

	"oficina_api/internal/domain/entities"
)

type ContaReceberResponse struct {
	ID              string    `json:"id"`
	Numero          string    `json:"numero"`
	ClienteID       string    `json:"cliente_id"`
	OrcamentoID     string    `json:"orcamento_id,omitempty"`
	Valor           string    `json:"valor"`
	Vencimento      string    `json:"vencimento"`
	DataRecebimento string    `json:"data_recebimento,omitempty"`
	FormaPagamento  string    `json:"forma_pagamento,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromContaReceber(c entities.ContaReceber) ContaReceberResponse {
	return ContaReceberResponse{
		ID:              c.ID,
		Numero:          c.Numero,
		ClienteID:       c.ClienteID,
		OrcamentoID:     c.OrcamentoID,
		Valor:           c.Valor.StringFixed(2),
		Vencimento:      c.Vencimento,
		DataRecebimento: c.DataRecebimento,
		FormaPagamento:  string(c.FormaPagamento),
		Status:          string(c.Status),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func FromContasReceber(contas []entities.ContaReceber) []ContaReceberResponse {
	out := make([]ContaReceberResponse, 0, len(contas))
	for _, c := range contas {
		out = append(out, FromContaReceber(c))
	}
	return out
}

type ContaGeralResponse struct {
	ID            string    `json:"id"`
	Numero        string    `json:"numero"`
	Descricao     string    `json:"descricao"`
	Tipo          string    `json:"tipo"`
	Valor         string    `json:"valor"`
	Vencimento    string    `json:"vencimento"`
	DataPagamento string    `json:"data_pagamento,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromContaGeral(c entities.ContaGeral) ContaGeralResponse {
	return ContaGeralResponse{
		ID:            c.ID,
		Numero:        c.Numero,
		Descricao:     c.Descricao,
		Tipo:          string(c.Tipo),
		Valor:         c.Valor.StringFixed(2),
		Vencimento:    c.Vencimento,
		DataPagamento: c.DataPagamento,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func FromContasGerais(contas []entities.ContaGeral) []ContaGeralResponse {
	out := make([]ContaGeralResponse, 0, len(contas))
	for _, c := range contas {
		out = append(out, FromContaGeral(c))
	}
	return out
}
