package response

import (
	"time"

	"oficina_api/internal/domain/entities"
)

type OrdemServicoResponse struct {
	ID              string             `json:"id"`
	Numero          string             `json:"numero"`
	ClienteID       string             `json:"cliente_id"`
	VeiculoID       string             `json:"veiculo_id,omitempty"`
	OrcamentoID     string             `json:"orcamento_id,omitempty"`
	DataInicio      string             `json:"data_inicio"`
	PrazoConclusao  string             `json:"prazo_conclusao"`
	KMAtual         string             `json:"km_atual,omitempty"`
	StatusServico   string             `json:"status_servico"`
	StatusPagamento string             `json:"status_pagamento"`
	ValorTotal      string             `json:"valor_total"`
	ValorPago       string             `json:"valor_pago"`
	ValorAPagar     string             `json:"valor_a_pagar"`
	FormaPagamento  string             `json:"forma_pagamento,omitempty"`
	Cliente         *ClienteResponse   `json:"cliente,omitempty"`
	Veiculo         *VeiculoResponse   `json:"veiculo,omitempty"`
	Orcamento       *OrcamentoResponse `json:"orcamento,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func FromOrdemServico(os entities.OrdemServico) OrdemServicoResponse {
	res := OrdemServicoResponse{
		ID:              os.ID,
		Numero:          os.Numero,
		ClienteID:       os.ClienteID,
		VeiculoID:       os.VeiculoID,
		OrcamentoID:     os.OrcamentoID,
		DataInicio:      os.DataInicio,
		PrazoConclusao:  os.PrazoConclusao,
		KMAtual:         os.KMAtual,
		StatusServico:   string(os.StatusServico),
		StatusPagamento: string(os.StatusPagamento),
		ValorTotal:      os.ValorTotal.StringFixed(2),
		ValorPago:       os.ValorPago.StringFixed(2),
		ValorAPagar:     os.ValorAPagar().StringFixed(2),
		FormaPagamento:  os.FormaPagamento,
		CreatedAt:       os.CreatedAt,
		UpdatedAt:       os.UpdatedAt,
	}
	if os.Cliente != nil {
		c := FromCliente(*os.Cliente)
		res.Cliente = &c
	}
	if os.Veiculo != nil {
		v := FromVeiculo(*os.Veiculo)
		res.Veiculo = &v
	}
	if os.Orcamento != nil {
		o := FromOrcamento(*os.Orcamento)
		res.Orcamento = &o
	}
	return res
}

func FromOrdensServico(ordens []entities.OrdemServico) []OrdemServicoResponse {
	out := make([]OrdemServicoResponse, 0, len(ordens))
	for _, os := range ordens {
		out = append(out, FromOrdemServico(os))
	}
	return out
}
