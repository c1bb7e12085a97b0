package response

import (
	"testing"

	"github.com/shopspring/decimal"

	"oficina_api/internal/domain/entities"
)

func TestFromOrcamento(t *testing.T) {
	o := entities.Orcamento{
		ID:         "orc-1",
		Numero:     "ORC-0001",
		ClienteID:  "c-1",
		Status:     entities.StatusOrcamentoPendente,
		ValorTotal: decimal.RequireFromString("250"),
		Pecas: []entities.OrcamentoPeca{
			{ID: "lp-1", PecaID: "p-1", PecaNome: "Filtro de óleo", Quantidade: 2, ValorUnitario: decimal.RequireFromString("50")},
		},
		Servicos: []entities.OrcamentoServico{
			{ID: "ls-1", ServicoID: "s-1", ServicoNome: "Mecânica geral", Horas: decimal.RequireFromString("1.5"), ValorHora: decimal.RequireFromString("100")},
		},
		Cliente: &entities.Cliente{ID: "c-1", Nome: "Maria Souza"},
	}

	res := FromOrcamento(o)
	if res.Numero != "ORC-0001" || res.Status != "Pendente" {
		t.Fatalf("unexpected header: %+v", res)
	}
	if res.ValorTotal != "250.00" {
		t.Fatalf("expected 250.00, got %s", res.ValorTotal)
	}
	if len(res.Pecas) != 1 || res.Pecas[0].ValorTotal != "100.00" {
		t.Fatalf("unexpected part line: %+v", res.Pecas)
	}
	if len(res.Servicos) != 1 || res.Servicos[0].ValorTotal != "150.00" {
		t.Fatalf("unexpected labor line: %+v", res.Servicos)
	}
	if res.Cliente == nil || res.Cliente.Nome != "Maria Souza" {
		t.Fatalf("expected joined cliente: %+v", res.Cliente)
	}
}

func TestFromOrdemServico(t *testing.T) {
	os := entities.OrdemServico{
		ID:              "os-1",
		Numero:          "OS-0001",
		ClienteID:       "c-1",
		StatusServico:   entities.StatusServicoAndamento,
		StatusPagamento: entities.StatusPagamentoPendente,
		ValorTotal:      decimal.RequireFromString("250"),
		ValorPago:       decimal.RequireFromString("100"),
	}

	res := FromOrdemServico(os)
	if res.StatusServico != "Andamento" || res.StatusPagamento != "Pendente" {
		t.Fatalf("unexpected statuses: %+v", res)
	}
	if res.ValorTotal != "250.00" || res.ValorPago != "100.00" || res.ValorAPagar != "150.00" {
		t.Fatalf("unexpected money fields: %+v", res)
	}
	if res.Orcamento != nil {
		t.Fatalf("expected no joined orcamento, got %+v", res.Orcamento)
	}
}
