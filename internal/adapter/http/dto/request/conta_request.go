package request

import (
	"github.com/shopspring/decimal"

	"oficina_api/internal/domain/entities"
)

type ContaReceberRequest struct {
	ClienteID       string          `json:"cliente_id" binding:"required"`
	OrcamentoID     string          `json:"orcamento_id"`
	Valor           decimal.Decimal `json:"valor"`
	Vencimento      string          `json:"vencimento" binding:"required"`
	DataRecebimento string          `json:"data_recebimento"`
	FormaPagamento  string          `json:"forma_pagamento"`
	Status          string          `json:"status"`
}

func (r ContaReceberRequest) ToEntity() entities.ContaReceber {
	return entities.ContaReceber{
		ClienteID:       r.ClienteID,
		OrcamentoID:     r.OrcamentoID,
		Valor:           r.Valor,
		Vencimento:      r.Vencimento,
		DataRecebimento: r.DataRecebimento,
		FormaPagamento:  entities.FormaPagamento(r.FormaPagamento),
		Status:          entities.StatusConta(r.Status),
	}
}

type ContaGeralRequest struct {
	Descricao     string          `json:"descricao" binding:"required"`
	Tipo          string          `json:"tipo"`
	Valor         decimal.Decimal `json:"valor"`
	Vencimento    string          `json:"vencimento" binding:"required"`
	DataPagamento string          `json:"data_pagamento"`
	Status        string          `json:"status"`
}

func (r ContaGeralRequest) ToEntity() entities.ContaGeral {
	return entities.ContaGeral{
		Descricao:     r.Descricao,
		Tipo:          entities.TipoContaGeral(r.Tipo),
		Valor:         r.Valor,
		Vencimento:    r.Vencimento,
		DataPagamento: r.DataPagamento,
		Status:        entities.StatusConta(r.Status),
	}
}
