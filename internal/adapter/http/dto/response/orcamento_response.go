package response

import (
	"time"

	"oficina_api/internal/domain/entities"
)

type OrcamentoPecaResponse struct {
	ID            string `json:"id"`
	PecaID        string `json:"peca_id"`
	PecaNome      string `json:"peca_nome"`
	Quantidade    int    `json:"quantidade"`
	ValorUnitario string `json:"valor_unitario"`
	ValorTotal    string `json:"valor_total"`
}

type OrcamentoServicoResponse struct {
	ID          string `json:"id"`
	ServicoID   string `json:"servico_id"`
	ServicoNome string `json:"servico_nome"`
	Horas       string `json:"horas"`
	ValorHora   string `json:"valor_hora"`
	ValorTotal  string `json:"valor_total"`
}

type OrcamentoResponse struct {
	ID            string                     `json:"id"`
	Numero        string                     `json:"numero"`
	ClienteID     string                     `json:"cliente_id"`
	VeiculoID     string                     `json:"veiculo_id,omitempty"`
	DataOrcamento string                     `json:"data_orcamento"`
	Validade      string                     `json:"validade"`
	KMAtual       string                     `json:"km_atual,omitempty"`
	Status        string                     `json:"status"`
	ValorTotal    string                     `json:"valor_total"`
	Pecas         []OrcamentoPecaResponse    `json:"pecas"`
	Servicos      []OrcamentoServicoResponse `json:"servicos"`
	Cliente       *ClienteResponse           `json:"cliente,omitempty"`
	Veiculo       *VeiculoResponse           `json:"veiculo,omitempty"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`
}

func FromOrcamento(o entities.Orcamento) OrcamentoResponse {
	pecas := make([]OrcamentoPecaResponse, 0, len(o.Pecas))
	for _, p := range o.Pecas {
		pecas = append(pecas, OrcamentoPecaResponse{
			ID:            p.ID,
			PecaID:        p.PecaID,
			PecaNome:      p.PecaNome,
			Quantidade:    p.Quantidade,
			ValorUnitario: p.ValorUnitario.StringFixed(2),
			ValorTotal:    p.Total().StringFixed(2),
		})
	}
	servicos := make([]OrcamentoServicoResponse, 0, len(o.Servicos))
	for _, s := range o.Servicos {
		servicos = append(servicos, OrcamentoServicoResponse{
			ID:          s.ID,
			ServicoID:   s.ServicoID,
			ServicoNome: s.ServicoNome,
			Horas:       s.Horas.String(),
			ValorHora:   s.ValorHora.StringFixed(2),
			ValorTotal:  s.Total().StringFixed(2),
		})
	}

	res := OrcamentoResponse{
		ID:            o.ID,
		Numero:        o.Numero,
		ClienteID:     o.ClienteID,
		VeiculoID:     o.VeiculoID,
		DataOrcamento: o.DataOrcamento,
		Validade:      o.Validade,
		KMAtual:       o.KMAtual,
		Status:        string(o.Status),
		ValorTotal:    o.ValorTotal.StringFixed(2),
		Pecas:         pecas,
		Servicos:      servicos,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	if o.Cliente != nil {
		c := FromCliente(*o.Cliente)
		res.Cliente = &c
	}
	if o.Veiculo != nil {
		v := FromVeiculo(*o.Veiculo)
		res.Veiculo = &v
	}
	return res
}

func FromOrcamentos(orcamentos []entities.Orcamento) []OrcamentoResponse {
	out := make([]OrcamentoResponse, 0, len(orcamentos))
	for _, o := range orcamentos {
		out = append(out, FromOrcamento(o))
	}
	return out
}

// OrcamentoStatusResponse carries the updated quote plus the work order
// created by an approval, when one happened.

type OrcamentoStatusResponse struct {
	Orcamento          OrcamentoResponse     `json:"orcamento"`
	OrdemServicoCriada *OrdemServicoResponse `json:"ordem_servico_criada,omitempty"`
}
