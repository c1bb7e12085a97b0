package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrcamentoPecaTotal(t *testing.T) {
	linha := OrcamentoPeca{Quantidade: 2, ValorUnitario: decimal.RequireFromString("50.00")}
	assert.True(t, linha.Total().Equal(decimal.RequireFromString("100.00")))

	zero := OrcamentoPeca{Quantidade: 0, ValorUnitario: decimal.RequireFromString("99.90")}
	assert.True(t, zero.Total().IsZero())

	arredondada := OrcamentoPeca{Quantidade: 3, ValorUnitario: decimal.RequireFromString("33.335")}
	assert.Equal(t, "100.01", arredondada.Total().StringFixed(2))
}

func TestOrcamentoServicoTotal(t *testing.T) {
	linha := OrcamentoServico{
		Horas:     decimal.RequireFromString("1.5"),
		ValorHora: decimal.RequireFromString("100.00"),
	}
	assert.Equal(t, "150.00", linha.Total().StringFixed(2))
}

func TestTotaisAgregados(t *testing.T) {
	assert.True(t, TotalPecas(nil).IsZero())
	assert.True(t, TotalServicos([]OrcamentoServico{}).IsZero())

	pecas := []OrcamentoPeca{
		{Quantidade: 2, ValorUnitario: decimal.RequireFromString("50.00")},
		{Quantidade: 1, ValorUnitario: decimal.RequireFromString("10.50")},
	}
	assert.Equal(t, "110.50", TotalPecas(pecas).StringFixed(2))
}

func TestValorCalculado(t *testing.T) {
	o := Orcamento{
		Pecas: []OrcamentoPeca{
			{Quantidade: 2, ValorUnitario: decimal.RequireFromString("50.00")},
		},
		Servicos: []OrcamentoServico{
			{Horas: decimal.RequireFromString("1.5"), ValorHora: decimal.RequireFromString("100.00")},
		},
	}

	assert.Equal(t, "100.00", TotalPecas(o.Pecas).StringFixed(2))
	assert.Equal(t, "150.00", TotalServicos(o.Servicos).StringFixed(2))
	assert.Equal(t, "250.00", o.ValorCalculado().StringFixed(2))
}

func TestValorCalculadoNaoMutaLinhas(t *testing.T) {
	pecas := []OrcamentoPeca{{Quantidade: 4, ValorUnitario: decimal.RequireFromString("25.00")}}
	o := Orcamento{Pecas: pecas}

	_ = o.ValorCalculado()

	assert.Equal(t, 4, pecas[0].Quantidade)
	assert.Equal(t, "25.00", pecas[0].ValorUnitario.StringFixed(2))
}
