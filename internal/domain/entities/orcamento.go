package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusOrcamento is the quote lifecycle status.
//
// Domain notes:
//   - Every status is reachable from every other; the console exposes a free
//     status selector and no transition guard exists server-side either.
//   - Entering Aprovado (from any other status) creates exactly one
//     OrdemServico; re-setting Aprovado on an already approved quote does not.

type StatusOrcamento string

const (
	StatusOrcamentoPendente  StatusOrcamento = "Pendente"
	StatusOrcamentoAprovado  StatusOrcamento = "Aprovado"
	StatusOrcamentoReprovado StatusOrcamento = "Reprovado"
	StatusOrcamentoCancelado StatusOrcamento = "Cancelado"
)

// OrcamentoPeca is a part line owned by its quote. ValorUnitario is the
// price snapshot captured when the line was added.

type OrcamentoPeca struct {
	ID            string          `json:"id"`
	PecaID        string          `json:"peca_id"`
	PecaNome      string          `json:"peca_nome"`
	Quantidade    int             `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Total is quantidade × valor unitário, rounded to cents.
func (p OrcamentoPeca) Total() decimal.Decimal {
	return p.ValorUnitario.Mul(decimal.NewFromInt(int64(p.Quantidade))).Round(2)
}

// OrcamentoServico is a labor line owned by its quote. ValorHora is the
// hourly rate snapshot captured when the line was added.

type OrcamentoServico struct {
	ID          string          `json:"id"`
	ServicoID   string          `json:"servico_id"`
	ServicoNome string          `json:"servico_nome"`
	Horas       decimal.Decimal `json:"horas"`
	ValorHora   decimal.Decimal `json:"valor_hora"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Total is horas × valor hora, rounded to cents.
func (s OrcamentoServico) Total() decimal.Decimal {
	return s.Horas.Mul(s.ValorHora).Round(2)
}

// TotalPecas sums the part line totals. An empty slice yields zero.
func TotalPecas(pecas []OrcamentoPeca) decimal.Decimal {
	total := decimal.Zero
	for _, p := range pecas {
		total = total.Add(p.Total())
	}
	return total.Round(2)
}

// TotalServicos sums the labor line totals. An empty slice yields zero.
func TotalServicos(servicos []OrcamentoServico) decimal.Decimal {
	total := decimal.Zero
	for _, s := range servicos {
		total = total.Add(s.Total())
	}
	return total.Round(2)
}

// Orcamento is the quote aggregate: header plus the two owned line
// collections. Lines live inside the aggregate, so deleting a quote deletes
// its lines with it.
//
// ValorTotal is derived from the lines and persisted redundantly so list
// views and the work order copy never have to re-walk lines.

type Orcamento struct {
	ID            string             `json:"id"`
	Numero        string             `json:"numero"`
	ClienteID     string             `json:"cliente_id"`
	VeiculoID     string             `json:"veiculo_id,omitempty"`
	DataOrcamento string             `json:"data_orcamento"`
	Validade      string             `json:"validade"`
	KMAtual       string             `json:"km_atual,omitempty"`
	Status        StatusOrcamento    `json:"status"`
	ValorTotal    decimal.Decimal    `json:"valor_total"`
	Pecas         []OrcamentoPeca    `json:"pecas"`
	Servicos      []OrcamentoServico `json:"servicos"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	// Cliente and Veiculo are resolved on joined reads only; they are not
	// persisted with the aggregate.
	Cliente *Cliente `json:"cliente,omitempty"`
	Veiculo *Veiculo `json:"veiculo,omitempty"`
}

// ValorCalculado recomputes the aggregate total from the current lines.
func (o Orcamento) ValorCalculado() decimal.Decimal {
	return TotalPecas(o.Pecas).Add(TotalServicos(o.Servicos)).Round(2)
}
