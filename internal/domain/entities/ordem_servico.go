package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusServico is the work order progress state. The four states have no
// enforced ordering; the console sets them directly.

type StatusServico string

const (
	StatusServicoAndamento       StatusServico = "Andamento"
	StatusServicoAguardandoPecas StatusServico = "Aguardando Peças"
	StatusServicoFinalizado      StatusServico = "Finalizado"
	StatusServicoEntregue        StatusServico = "Entregue"
)

// StatusPagamento is never set directly: it is always derived from
// valor pago versus valor total.

type StatusPagamento string

const (
	StatusPagamentoPendente StatusPagamento = "Pendente"
	StatusPagamentoPago     StatusPagamento = "Pago"
)

// OrdemServico is the executable job created when a quote is approved.
// OrcamentoID is nullable: the manual creation path produces an order with
// no originating quote.
//
// The order's view of parts and labor is a read-through reference to the
// source quote's lines; editing an order never touches line items.

type OrdemServico struct {
	ID              string          `json:"id"`
	Numero          string          `json:"numero"`
	ClienteID       string          `json:"cliente_id"`
	VeiculoID       string          `json:"veiculo_id,omitempty"`
	OrcamentoID     string          `json:"orcamento_id,omitempty"`
	DataInicio      string          `json:"data_inicio"`
	PrazoConclusao  string          `json:"prazo_conclusao"`
	KMAtual         string          `json:"km_atual,omitempty"`
	StatusServico   StatusServico   `json:"status_servico"`
	StatusPagamento StatusPagamento `json:"status_pagamento"`
	ValorTotal      decimal.Decimal `json:"valor_total"`
	ValorPago       decimal.Decimal `json:"valor_pago"`
	FormaPagamento  string          `json:"forma_pagamento,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Resolved on joined reads only.
	Cliente   *Cliente   `json:"cliente,omitempty"`
	Veiculo   *Veiculo   `json:"veiculo,omitempty"`
	Orcamento *Orcamento `json:"orcamento,omitempty"`
}

// ValorAPagar is the running balance. Overpayment yields a negative balance;
// there is no separate overpaid state.
func (os OrdemServico) ValorAPagar() decimal.Decimal {
	return os.ValorTotal.Sub(os.ValorPago).Round(2)
}

// DeriveStatusPagamento recomputes the payment status: Pago when the amount
// paid covers the total, Pendente otherwise.
func (os OrdemServico) DeriveStatusPagamento() StatusPagamento {
	if os.ValorPago.GreaterThanOrEqual(os.ValorTotal) {
		return StatusPagamentoPago
	}
	return StatusPagamentoPendente
}
