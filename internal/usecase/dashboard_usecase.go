package usecase

import (
	"context"

	"oficina_api/internal/domain/entities"
	"oficina_api/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// DashboardResumo mirrors the console's landing page: record counts plus the
// aggregate money the shop has billed, received and is still owed.

type DashboardResumo struct {
	TotalClientes           int             `json:"total_clientes"`
	TotalOrcamentos         int             `json:"total_orcamentos"`
	OrcamentosPendentes     int             `json:"orcamentos_pendentes"`
	OrdensEmAndamento       int             `json:"ordens_em_andamento"`
	TotalOrdens             int             `json:"total_ordens"`
	ValorTotalOrdens        decimal.Decimal `json:"valor_total_ordens"`
	ValorRecebido           decimal.Decimal `json:"valor_recebido"`
	ValorAReceber           decimal.Decimal `json:"valor_a_receber"`
	OrdensPagamentoPendente int             `json:"ordens_pagamento_pendente"`
}

type IDashboardUseCase interface {
	Resumo(ctx context.Context) (DashboardResumo, error)
}

type DashboardUseCase struct {
	clienteRepo   interfaces.IClienteRepository
	orcamentoRepo interfaces.IOrcamentoRepository
	osRepo        interfaces.IOrdemServicoRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	clienteRepo interfaces.IClienteRepository,
	orcamentoRepo interfaces.IOrcamentoRepository,
	osRepo interfaces.IOrdemServicoRepository,
) *DashboardUseCase {
	return &DashboardUseCase{clienteRepo: clienteRepo, orcamentoRepo: orcamentoRepo, osRepo: osRepo}
}

func (u *DashboardUseCase) Resumo(ctx context.Context) (DashboardResumo, error) {
	clientes, err := u.clienteRepo.List(ctx)
	if err != nil {
		return DashboardResumo{}, err
	}
	orcamentos, err := u.orcamentoRepo.List(ctx)
	if err != nil {
		return DashboardResumo{}, err
	}
	ordens, err := u.osRepo.List(ctx)
	if err != nil {
		return DashboardResumo{}, err
	}

	resumo := DashboardResumo{
		TotalClientes:    len(clientes),
		TotalOrcamentos:  len(orcamentos),
		TotalOrdens:      len(ordens),
		ValorTotalOrdens: decimal.Zero,
		ValorRecebido:    decimal.Zero,
		ValorAReceber:    decimal.Zero,
	}
	for _, o := range orcamentos {
		if o.Status == entities.StatusOrcamentoPendente {
			resumo.OrcamentosPendentes++
		}
	}
	for _, os := range ordens {
		if os.StatusServico == entities.StatusServicoAndamento {
			resumo.OrdensEmAndamento++
		}
		if os.DeriveStatusPagamento() == entities.StatusPagamentoPendente {
			resumo.OrdensPagamentoPendente++
		}
		resumo.ValorTotalOrdens = resumo.ValorTotalOrdens.Add(os.ValorTotal)
		resumo.ValorRecebido = resumo.ValorRecebido.Add(os.ValorPago)
	}
	resumo.ValorAReceber = resumo.ValorTotalOrdens.Sub(resumo.ValorRecebido).Round(2)
	resumo.ValorTotalOrdens = resumo.ValorTotalOrdens.Round(2)
	resumo.ValorRecebido = resumo.ValorRecebido.Round(2)
	return resumo, nil
}
