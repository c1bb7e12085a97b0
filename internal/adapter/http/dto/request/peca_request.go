package request

import (
	"github.com/shopspring/decimal"

	"oficina_api/internal/domain/entities"
)

// Money fields accept both JSON numbers and strings; decimal handles either.

type PecaRequest struct {
	Nome          string          `json:"nome" binding:"required"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	Estoque       int             `json:"estoque"`
}

func (r PecaRequest) ToEntity() entities.Peca {
	return entities.Peca{
		Nome:          r.Nome,
		ValorUnitario: r.ValorUnitario,
		Estoque:       r.Estoque,
	}
}

type ServicoRequest struct {
	Nome      string          `json:"nome" binding:"required"`
	ValorHora decimal.Decimal `json:"valor_hora"`
}

func (r ServicoRequest) ToEntity() entities.Servico {
	return entities.Servico{
		Nome:      r.Nome,
		ValorHora: r.ValorHora,
	}
}
