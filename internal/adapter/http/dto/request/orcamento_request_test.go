package request

import (
	"encoding/json"
	"testing"
)

func TestOrcamentoRequest_ToEntity(t *testing.T) {
	body := []byte(`{
		"cliente_id": "c-1",
		"data_orcamento": "2024-05-10",
		"validade": "2024-05-20",
		"km_atual": "85000",
		"pecas": [{"peca_id": "p-1", "quantidade": 2, "valor_unitario": "50.00"}],
		"servicos": [{"servico_id": "s-1", "horas": 1.5, "valor_hora": "100.00"}]
	}`)

	var r OrcamentoRequest
	if err := json.Unmarshal(body, &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	o := r.ToEntity()
	if o.ClienteID != "c-1" || o.DataOrcamento != "2024-05-10" || o.Validade != "2024-05-20" {
		t.Fatalf("unexpected header fields: %+v", o)
	}
	if len(o.Pecas) != 1 || len(o.Servicos) != 1 {
		t.Fatalf("unexpected line counts: %+v", o)
	}
	if o.Pecas[0].Quantidade != 2 || o.Pecas[0].ValorUnitario.StringFixed(2) != "50.00" {
		t.Fatalf("unexpected part line: %+v", o.Pecas[0])
	}
	if o.Servicos[0].Horas.String() != "1.5" || o.Servicos[0].ValorHora.StringFixed(2) != "100.00" {
		t.Fatalf("unexpected labor line: %+v", o.Servicos[0])
	}
}

func TestOrcamentoRequest_ToEntityEmptyLines(t *testing.T) {
	o := OrcamentoRequest{ClienteID: "c-1", DataOrcamento: "2024-05-10", Validade: "2024-05-20"}.ToEntity()
	if o.Pecas == nil || len(o.Pecas) != 0 {
		t.Fatalf("expected empty non-nil pecas, got %+v", o.Pecas)
	}
	if o.Servicos == nil || len(o.Servicos) != 0 {
		t.Fatalf("expected empty non-nil servicos, got %+v", o.Servicos)
	}
}
