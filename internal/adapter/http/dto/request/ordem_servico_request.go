package request

import (
	"github.com/shopspring/decimal"

	"oficina_api/internal/domain/entities"
)

type OrdemServicoRequest struct {
	ClienteID      string          `json:"cliente_id" binding:"required"`
	VeiculoID      string          `json:"veiculo_id"`
	OrcamentoID    string          `json:"orcamento_id"`
	DataInicio     string          `json:"data_inicio" binding:"required"`
	PrazoConclusao string          `json:"prazo_conclusao" binding:"required"`
	KMAtual        string          `json:"km_atual"`
	ValorTotal     decimal.Decimal `json:"valor_total"`
}

func (r OrdemServicoRequest) ToEntity() entities.OrdemServico {
	return entities.OrdemServico{
		ClienteID:      r.ClienteID,
		VeiculoID:      r.VeiculoID,
		OrcamentoID:    r.OrcamentoID,
		DataInicio:     r.DataInicio,
		PrazoConclusao: r.PrazoConclusao,
		KMAtual:        r.KMAtual,
		ValorTotal:     r.ValorTotal,
	}
}

type OrdemServicoStatusRequest struct {
	StatusServico string `json:"status_servico" binding:"required"`
}

type OrdemServicoPagamentoRequest struct {
	ValorPago      decimal.Decimal `json:"valor_pago"`
	FormaPagamento string          `json:"forma_pagamento"`
}
