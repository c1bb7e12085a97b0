package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clientesExemplo() []Cliente {
	return []Cliente{
		{ID: "1", Nome: "Maria Souza", Documento: "111.222.333-44", Placa: "ABC1D23", Tipo: TipoClienteFisica},
		{ID: "2", Nome: "Oficina Silva LTDA", Documento: "12.345.678/0001-00", Tipo: TipoClienteJuridica},
		{ID: "3", Nome: "João Pereira", Documento: "555.666.777-88", Placa: "XYZ9K88", Tipo: TipoClienteFisica},
	}
}

func TestFilterClientesBuscaVazia(t *testing.T) {
	clientes := clientesExemplo()
	out := FilterClientes(clientes, "", "")
	assert.Equal(t, clientes, out)
}

func TestFilterClientesBusca(t *testing.T) {
	clientes := clientesExemplo()

	assert.Len(t, FilterClientes(clientes, "maria", ""), 1)
	assert.Len(t, FilterClientes(clientes, "ABC1", ""), 1)
	assert.Len(t, FilterClientes(clientes, "555.666", ""), 1)
	assert.Empty(t, FilterClientes(clientes, "inexistente", ""))
}

func TestFilterClientesCombinaTipoComBusca(t *testing.T) {
	clientes := clientesExemplo()

	fisicas := FilterClientes(clientes, "", TipoClienteFisica)
	assert.Len(t, fisicas, 2)

	// AND semantics: query and tipo must both match.
	assert.Empty(t, FilterClientes(clientes, "silva", TipoClienteFisica))
	assert.Len(t, FilterClientes(clientes, "silva", TipoClienteJuridica), 1)
}

func TestFilterIdempotente(t *testing.T) {
	clientes := clientesExemplo()

	uma := FilterClientes(clientes, "a", TipoClienteFisica)
	duas := FilterClientes(uma, "a", TipoClienteFisica)
	assert.Equal(t, uma, duas)
}

func TestFilterOrcamentosPorNumeroEClienteNome(t *testing.T) {
	orcamentos := []Orcamento{
		{Numero: "ORC-0001", Status: StatusOrcamentoPendente, Cliente: &Cliente{Nome: "Maria Souza"}},
		{Numero: "ORC-0002", Status: StatusOrcamentoAprovado, Cliente: &Cliente{Nome: "João Pereira"}},
		{Numero: "ORC-0003", Status: StatusOrcamentoPendente},
	}

	assert.Len(t, FilterOrcamentos(orcamentos, "maria", ""), 1)
	assert.Len(t, FilterOrcamentos(orcamentos, "orc-", ""), 3)
	assert.Len(t, FilterOrcamentos(orcamentos, "", StatusOrcamentoPendente), 2)
	assert.Len(t, FilterOrcamentos(orcamentos, "0002", StatusOrcamentoAprovado), 1)
	assert.Empty(t, FilterOrcamentos(orcamentos, "0002", StatusOrcamentoPendente))
}

func TestFilterOrdensServicoPreservaOrdem(t *testing.T) {
	ordens := []OrdemServico{
		{Numero: "OS-0003", StatusServico: StatusServicoAndamento},
		{Numero: "OS-0001", StatusServico: StatusServicoAndamento},
		{Numero: "OS-0002", StatusServico: StatusServicoEntregue},
	}

	andamento := FilterOrdensServico(ordens, "", StatusServicoAndamento)
	assert.Len(t, andamento, 2)
	assert.Equal(t, "OS-0003", andamento[0].Numero)
	assert.Equal(t, "OS-0001", andamento[1].Numero)
}

func TestFilterContas(t *testing.T) {
	receber := []ContaReceber{
		{Numero: "CR-0001", Status: StatusContaPendente},
		{Numero: "CR-0002", Status: StatusContaRecebido},
	}
	assert.Len(t, FilterContasReceber(receber, StatusContaPendente), 1)
	assert.Len(t, FilterContasReceber(receber, ""), 2)

	gerais := []ContaGeral{
		{Numero: "CG-0001", Tipo: TipoContaFixa, Status: StatusContaPendente},
		{Numero: "CG-0002", Tipo: TipoContaVariavel, Status: StatusContaPago},
	}
	assert.Len(t, FilterContasGerais(gerais, "", TipoContaFixa), 1)
	assert.Len(t, FilterContasGerais(gerais, StatusContaPago, TipoContaVariavel), 1)
	assert.Empty(t, FilterContasGerais(gerais, StatusContaPago, TipoContaFixa))
}
