package request

import (
	"github.com/shopspring/decimal"

	"oficina_api/internal/domain/entities"
)

type OrcamentoPecaRequest struct {
	PecaID        string          `json:"peca_id" binding:"required"`
	Quantidade    int             `json:"quantidade" binding:"required"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
}

func (r OrcamentoPecaRequest) ToEntity() entities.OrcamentoPeca {
	return entities.OrcamentoPeca{
		PecaID:        r.PecaID,
		Quantidade:    r.Quantidade,
		ValorUnitario: r.ValorUnitario,
	}
}

type OrcamentoServicoRequest struct {
	ServicoID string          `json:"servico_id" binding:"required"`
	Horas     decimal.Decimal `json:"horas" binding:"required"`
	ValorHora decimal.Decimal `json:"valor_hora"`
}

func (r OrcamentoServicoRequest) ToEntity() entities.OrcamentoServico {
	return entities.OrcamentoServico{
		ServicoID: r.ServicoID,
		Horas:     r.Horas,
		ValorHora: r.ValorHora,
	}
}

type OrcamentoRequest struct {
	ClienteID     string                    `json:"cliente_id" binding:"required"`
	VeiculoID     string                    `json:"veiculo_id"`
	DataOrcamento string                    `json:"data_orcamento" binding:"required"`
	Validade      string                    `json:"validade" binding:"required"`
	KMAtual       string                    `json:"km_atual"`
	Pecas         []OrcamentoPecaRequest    `json:"pecas"`
	Servicos      []OrcamentoServicoRequest `json:"servicos"`
}

func (r OrcamentoRequest) ToEntity() entities.Orcamento {
	pecas := make([]entities.OrcamentoPeca, 0, len(r.Pecas))
	for _, p := range r.Pecas {
		pecas = append(pecas, p.ToEntity())
	}
	servicos := make([]entities.OrcamentoServico, 0, len(r.Servicos))
	for _, s := range r.Servicos {
		servicos = append(servicos, s.ToEntity())
	}
	return entities.Orcamento{
		ClienteID:     r.ClienteID,
		VeiculoID:     r.VeiculoID,
		DataOrcamento: r.DataOrcamento,
		Validade:      r.Validade,
		KMAtual:       r.KMAtual,
		Pecas:         pecas,
		Servicos:      servicos,
	}
}

type OrcamentoStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
