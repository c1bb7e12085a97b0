package response

import (
	"oficina_api/internal/usecase"
)

type DashboardResponse struct {
	TotalClientes           int    `json:"total_clientes"`
	TotalOrcamentos         int    `json:"total_orcamentos"`
	OrcamentosPendentes     int    `json:"orcamentos_pendentes"`
	OrdensEmAndamento       int    `json:"ordens_em_andamento"`
	TotalOrdens             int    `json:"total_ordens"`
	OrdensPagamentoPendente int    `json:"ordens_pagamento_pendente"`
	ValorTotalOrdens        string `json:"valor_total_ordens"`
	ValorRecebido           string `json:"valor_recebido"`
	ValorAReceber           string `json:"valor_a_receber"`
}

func FromDashboardResumo(r usecase.DashboardResumo) DashboardResponse {
	return DashboardResponse{
		TotalClientes:           r.TotalClientes,
		TotalOrcamentos:         r.TotalOrcamentos,
		OrcamentosPendentes:     r.OrcamentosPendentes,
		OrdensEmAndamento:       r.OrdensEmAndamento,
		TotalOrdens:             r.TotalOrdens,
		OrdensPagamentoPendente: r.OrdensPagamentoPendente,
		ValorTotalOrdens:        r.ValorTotalOrdens.StringFixed(2),
		ValorRecebido:           r.ValorRecebido.StringFixed(2),
		ValorAReceber:           r.ValorAReceber.StringFixed(2),
	}
}
