package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type StatusConta string

const (
	StatusContaPendente  StatusConta = "Pendente"
	StatusContaPago      StatusConta = "Pago"
	StatusContaRecebido  StatusConta = "Recebido"
	StatusContaAtrasado  StatusConta = "Atrasado"
	StatusContaCancelado StatusConta = "Cancelado"
)

type TipoContaGeral string

const (
	TipoContaFixa     TipoContaGeral = "Fixa"
	TipoContaVariavel TipoContaGeral = "Variável"
)

type FormaPagamento string

const (
	FormaPagamentoPIX           FormaPagamento = "PIX"
	FormaPagamentoCartao        FormaPagamento = "Cartão"
	FormaPagamentoDinheiro      FormaPagamento = "Dinheiro"
	FormaPagamentoTransferencia FormaPagamento = "Transferência"
)

// ContaReceber is a receivable ledger entry, optionally linked to the quote
// that originated it. Deleting a quote does not cascade here.

type ContaReceber struct {
	ID              string          `json:"id"`
	Numero          string          `json:"numero"`
	ClienteID       string          `json:"cliente_id"`
	OrcamentoID     string          `json:"orcamento_id,omitempty"`
	Valor           decimal.Decimal `json:"valor"`
	Vencimento      string          `json:"vencimento"`
	DataRecebimento string          `json:"data_recebimento,omitempty"`
	FormaPagamento  FormaPagamento  `json:"forma_pagamento,omitempty"`
	Status          StatusConta     `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ContaGeral is a general expense entry (rent, utilities and the like).

type ContaGeral struct {
	ID            string          `json:"id"`
	Numero        string          `json:"numero"`
	Descricao     string          `json:"descricao"`
	Tipo          TipoContaGeral  `json:"tipo"`
	Valor         decimal.Decimal `json:"valor"`
	Vencimento    string          `json:"vencimento"`
	DataPagamento string          `json:"data_pagamento,omitempty"`
	Status        StatusConta     `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
