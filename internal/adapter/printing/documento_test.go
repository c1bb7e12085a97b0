package printing

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oficina_api/internal/domain/entities"
)

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 0,00", FormatBRL(decimal.Zero))
	assert.Equal(t, "R$ 250,00", FormatBRL(decimal.RequireFromString("250")))
	assert.Equal(t, "R$ 1234,56", FormatBRL(decimal.RequireFromString("1234.555")))
	assert.Equal(t, "R$ -50,00", FormatBRL(decimal.RequireFromString("-50")))
}

func TestRenderOrcamento(t *testing.T) {
	o := entities.Orcamento{
		Numero:        "ORC-0003",
		DataOrcamento: "2024-05-10",
		Validade:      "2024-05-20",
		Status:        entities.StatusOrcamentoPendente,
		ValorTotal:    decimal.RequireFromString("250"),
		Pecas: []entities.OrcamentoPeca{
			{PecaNome: "Filtro de óleo", Quantidade: 2, ValorUnitario: decimal.RequireFromString("50")},
		},
		Servicos: []entities.OrcamentoServico{
			{ServicoNome: "Mecânica geral", Horas: decimal.RequireFromString("1.5"), ValorHora: decimal.RequireFromString("100")},
		},
		Cliente: &entities.Cliente{Nome: "Maria Souza", Documento: "111.222.333-44"},
	}

	html, err := RenderOrcamento(o)
	require.NoError(t, err)
	doc := string(html)

	assert.Contains(t, doc, "Orçamento ORC-0003")
	assert.Contains(t, doc, "Maria Souza")
	assert.Contains(t, doc, "Filtro de óleo")
	assert.Contains(t, doc, "2 × R$ 50,00")
	assert.Contains(t, doc, "1.5h × R$ 100,00")
	assert.Contains(t, doc, "R$ 250,00")
	assert.NotContains(t, doc, "Nenhuma peça")
	assert.NotContains(t, doc, "Nenhum serviço")
	assert.True(t, strings.Contains(doc, "window.print()"))
}

func TestRenderOrcamentoSemLinhas(t *testing.T) {
	o := entities.Orcamento{Numero: "ORC-0004", Status: entities.StatusOrcamentoPendente}

	html, err := RenderOrcamento(o)
	require.NoError(t, err)
	doc := string(html)

	assert.Contains(t, doc, "Nenhuma peça")
	assert.Contains(t, doc, "Nenhum serviço")
	assert.Contains(t, doc, "R$ 0,00")
}

func TestRenderOrdemServico(t *testing.T) {
	os := entities.OrdemServico{
		Numero:          "OS-0007",
		DataInicio:      "2024-05-11",
		PrazoConclusao:  "2024-05-25",
		StatusServico:   entities.StatusServicoAndamento,
		StatusPagamento: entities.StatusPagamentoPendente,
		ValorTotal:      decimal.RequireFromString("250"),
		ValorPago:       decimal.RequireFromString("100"),
		FormaPagamento:  "PIX",
		Cliente:         &entities.Cliente{Nome: "Maria Souza"},
		Orcamento: &entities.Orcamento{
			Pecas: []entities.OrcamentoPeca{
				{PecaNome: "Filtro de óleo", Quantidade: 2, ValorUnitario: decimal.RequireFromString("50")},
			},
		},
	}

	html, err := RenderOrdemServico(os)
	require.NoError(t, err)
	doc := string(html)

	assert.Contains(t, doc, "Ordem de Serviço OS-0007")
	assert.Contains(t, doc, "Filtro de óleo")
	assert.Contains(t, doc, "Valor pago (PIX)")
	assert.Contains(t, doc, "R$ 150,00")
	assert.Contains(t, doc, "Pendente")
}
