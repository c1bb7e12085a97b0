package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrdemServicoPagamento(t *testing.T) {
	cases := []struct {
		name       string
		total      string
		pago       string
		aPagar     string
		statusPago StatusPagamento
	}{
		{name: "quitada", total: "250.00", pago: "250.00", aPagar: "0.00", statusPago: StatusPagamentoPago},
		{name: "parcial", total: "250.00", pago: "100.00", aPagar: "150.00", statusPago: StatusPagamentoPendente},
		{name: "sem pagamento", total: "250.00", pago: "0", aPagar: "250.00", statusPago: StatusPagamentoPendente},
		{name: "pagamento a maior", total: "250.00", pago: "300.00", aPagar: "-50.00", statusPago: StatusPagamentoPago},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			os := OrdemServico{
				ValorTotal: decimal.RequireFromString(tc.total),
				ValorPago:  decimal.RequireFromString(tc.pago),
			}
			assert.Equal(t, tc.aPagar, os.ValorAPagar().StringFixed(2))
			assert.Equal(t, tc.statusPago, os.DeriveStatusPagamento())
		})
	}
}
