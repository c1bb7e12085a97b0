package printing

import (
	"bytes"
	"html/template"
	"strconv"

	"github.com/shopspring/decimal"

	"oficina_api/internal/domain/entities"
)

// Printable documents are self-contained HTML pages the console opens in a
// new window and sends straight to window.print(). No external assets.

type linhaDoc struct {
	Descricao  string
	Detalhe    string
	ValorTotal string
}

type documento struct {
	Titulo        string
	Numero        string
	Cliente       string
	Documento     string
	Telefone      string
	Veiculo       string
	Placa         string
	KM            string
	Data          string
	DataLabel     string
	Prazo         string
	PrazoLabel    string
	Status        string
	Pecas         []linhaDoc
	Servicos      []linhaDoc
	TotalPecas    string
	TotalServicos string
	ValorTotal    string

	// Payment block, work orders only.
	ComPagamento    bool
	ValorPago       string
	ValorAPagar     string
	StatusPagamento string
	FormaPagamento  string
}

var docTemplate = template.Must(template.New("documento").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>{{.Titulo}} {{.Numero}}</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; font-size: 13px; color: #222; margin: 32px; }
h1 { font-size: 20px; margin-bottom: 2px; }
h2 { font-size: 14px; margin: 18px 0 6px; border-bottom: 1px solid #999; padding-bottom: 3px; }
table { width: 100%; border-collapse: collapse; margin-bottom: 10px; }
th, td { border: 1px solid #ccc; padding: 5px 8px; text-align: left; }
th { background: #f0f0f0; }
td.valor, th.valor { text-align: right; }
.meta { margin: 2px 0; }
.total { font-weight: bold; }
.vazio { color: #777; font-style: italic; }
@media print { body { margin: 12px; } }
</style>
</head>
<body>
<h1>{{.Titulo}} {{.Numero}}</h1>
<p class="meta">{{.DataLabel}}: {{.Data}} &nbsp;|&nbsp; {{.PrazoLabel}}: {{.Prazo}} &nbsp;|&nbsp; Status: {{.Status}}</p>

<h2>Cliente</h2>
<p class="meta">{{.Cliente}}{{if .Documento}} &mdash; {{.Documento}}{{end}}{{if .Telefone}} &mdash; {{.Telefone}}{{end}}</p>
{{if .Veiculo}}<p class="meta">Veículo: {{.Veiculo}}{{if .Placa}} &mdash; Placa {{.Placa}}{{end}}{{if .KM}} &mdash; {{.KM}} km{{end}}</p>{{end}}

<h2>Peças</h2>
<table>
<tr><th>Peça</th><th>Qtd. × Valor unit.</th><th class="valor">Total</th></tr>
{{range .Pecas}}<tr><td>{{.Descricao}}</td><td>{{.Detalhe}}</td><td class="valor">{{.ValorTotal}}</td></tr>
{{else}}<tr><td colspan="3" class="vazio">Nenhuma peça</td></tr>
{{end}}<tr class="total"><td colspan="2">Total de peças</td><td class="valor">{{.TotalPecas}}</td></tr>
</table>

<h2>Serviços</h2>
<table>
<tr><th>Serviço</th><th>Horas × Valor hora</th><th class="valor">Total</th></tr>
{{range .Servicos}}<tr><td>{{.Descricao}}</td><td>{{.Detalhe}}</td><td class="valor">{{.ValorTotal}}</td></tr>
{{else}}<tr><td colspan="3" class="vazio">Nenhum serviço</td></tr>
{{end}}<tr class="total"><td colspan="2">Total de serviços</td><td class="valor">{{.TotalServicos}}</td></tr>
</table>

<h2>Resumo</h2>
<table>
<tr class="total"><td>Valor total</td><td class="valor">{{.ValorTotal}}</td></tr>
{{if .ComPagamento}}<tr><td>Valor pago{{if .FormaPagamento}} ({{.FormaPagamento}}){{end}}</td><td class="valor">{{.ValorPago}}</td></tr>
<tr class="total"><td>Valor a pagar</td><td class="valor">{{.ValorAPagar}}</td></tr>
<tr><td>Pagamento</td><td class="valor">{{.StatusPagamento}}</td></tr>
{{end}}</table>

<script>window.onload = function () { window.print(); };</script>
</body>
</html>
`))

func linhasPecas(pecas []entities.OrcamentoPeca) []linhaDoc {
	out := make([]linhaDoc, 0, len(pecas))
	for _, p := range pecas {
		out = append(out, linhaDoc{
			Descricao:  p.PecaNome,
			Detalhe:    strconv.Itoa(p.Quantidade) + " × " + FormatBRL(p.ValorUnitario),
			ValorTotal: FormatBRL(p.Total()),
		})
	}
	return out
}

func linhasServicos(servicos []entities.OrcamentoServico) []linhaDoc {
	out := make([]linhaDoc, 0, len(servicos))
	for _, s := range servicos {
		out = append(out, linhaDoc{
			Descricao:  s.ServicoNome,
			Detalhe:    s.Horas.String() + "h × " + FormatBRL(s.ValorHora),
			ValorTotal: FormatBRL(s.Total()),
		})
	}
	return out
}

// RenderOrcamento produces the printable quote document.
func RenderOrcamento(o entities.Orcamento) ([]byte, error) {
	doc := documento{
		Titulo:        "Orçamento",
		Numero:        o.Numero,
		Data:          o.DataOrcamento,
		DataLabel:     "Data",
		Prazo:         o.Validade,
		PrazoLabel:    "Validade",
		Status:        string(o.Status),
		KM:            o.KMAtual,
		Pecas:         linhasPecas(o.Pecas),
		Servicos:      linhasServicos(o.Servicos),
		TotalPecas:    FormatBRL(entities.TotalPecas(o.Pecas)),
		TotalServicos: FormatBRL(entities.TotalServicos(o.Servicos)),
		ValorTotal:    FormatBRL(o.ValorTotal),
	}
	if o.Cliente != nil {
		doc.Cliente = o.Cliente.Nome
		doc.Documento = o.Cliente.Documento
		doc.Telefone = o.Cliente.Telefone
	}
	if o.Veiculo != nil {
		doc.Veiculo = o.Veiculo.Marca + " " + o.Veiculo.Modelo + " " + o.Veiculo.Ano
		doc.Placa = o.Veiculo.Placa
	}
	return render(doc)
}

// RenderOrdemServico produces the printable work order. Parts and labor come
// from the originating quote when the order has one.
func RenderOrdemServico(os entities.OrdemServico) ([]byte, error) {
	doc := documento{
		Titulo:          "Ordem de Serviço",
		Numero:          os.Numero,
		Data:            os.DataInicio,
		DataLabel:       "Início",
		Prazo:           os.PrazoConclusao,
		PrazoLabel:      "Prazo de conclusão",
		Status:          string(os.StatusServico),
		KM:              os.KMAtual,
		ValorTotal:      FormatBRL(os.ValorTotal),
		ComPagamento:    true,
		ValorPago:       FormatBRL(os.ValorPago),
		ValorAPagar:     FormatBRL(os.ValorAPagar()),
		StatusPagamento: string(os.StatusPagamento),
		FormaPagamento:  os.FormaPagamento,
	}
	if os.Orcamento != nil {
		doc.Pecas = linhasPecas(os.Orcamento.Pecas)
		doc.Servicos = linhasServicos(os.Orcamento.Servicos)
		doc.TotalPecas = FormatBRL(entities.TotalPecas(os.Orcamento.Pecas))
		doc.TotalServicos = FormatBRL(entities.TotalServicos(os.Orcamento.Servicos))
	} else {
		doc.TotalPecas = FormatBRL(decimal.Zero)
		doc.TotalServicos = FormatBRL(decimal.Zero)
	}
	if os.Cliente != nil {
		doc.Cliente = os.Cliente.Nome
		doc.Documento = os.Cliente.Documento
		doc.Telefone = os.Cliente.Telefone
	}
	if os.Veiculo != nil {
		doc.Veiculo = os.Veiculo.Marca + " " + os.Veiculo.Modelo + " " + os.Veiculo.Ano
		doc.Placa = os.Veiculo.Placa
	}
	return render(doc)
}

func render(doc documento) ([]byte, error) {
	var buf bytes.Buffer
	if err := docTemplate.Execute(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
