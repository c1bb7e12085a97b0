package entities

import "strings"

// List filtering mirrors the console behavior: a case-insensitive substring
// match over each collection's searchable fields, AND-combined with optional
// exact-match secondary filters. An empty query matches everything and the
// input order is preserved. These are pure functions over already-fetched
// collections; they never touch the store.

func contemBusca(busca string, campos ...string) bool {
	if busca == "" {
		return true
	}
	busca = strings.ToLower(busca)
	for _, campo := range campos {
		if strings.Contains(strings.ToLower(campo), busca) {
			return true
		}
	}
	return false
}

// FilterClientes searches nome, documento and placa; tipo is exact-match.
func FilterClientes(clientes []Cliente, busca string, tipo TipoCliente) []Cliente {
	out := make([]Cliente, 0, len(clientes))
	for _, c := range clientes {
		if tipo != "" && c.Tipo != tipo {
			continue
		}
		if !contemBusca(busca, c.Nome, c.Documento, c.Placa) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FilterFuncionarios searches nome and documento; categoria is exact-match.
func FilterFuncionarios(funcionarios []Funcionario, busca string, categoria CategoriaFuncionario) []Funcionario {
	out := make([]Funcionario, 0, len(funcionarios))
	for _, f := range funcionarios {
		if categoria != "" && f.Categoria != categoria {
			continue
		}
		if !contemBusca(busca, f.Nome, f.Documento) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// FilterFornecedores searches nome and cnpj.
func FilterFornecedores(fornecedores []Fornecedor, busca string) []Fornecedor {
	out := make([]Fornecedor, 0, len(fornecedores))
	for _, f := range fornecedores {
		if !contemBusca(busca, f.Nome, f.CNPJ) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// FilterPecas searches nome.
func FilterPecas(pecas []Peca, busca string) []Peca {
	out := make([]Peca, 0, len(pecas))
	for _, p := range pecas {
		if !contemBusca(busca, p.Nome) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterServicos searches nome.
func FilterServicos(servicos []Servico, busca string) []Servico {
	out := make([]Servico, 0, len(servicos))
	for _, s := range servicos {
		if !contemBusca(busca, s.Nome) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// FilterOrcamentos searches numero and the resolved cliente nome; status is
// exact-match.
func FilterOrcamentos(orcamentos []Orcamento, busca string, status StatusOrcamento) []Orcamento {
	out := make([]Orcamento, 0, len(orcamentos))
	for _, o := range orcamentos {
		if status != "" && o.Status != status {
			continue
		}
		clienteNome := ""
		if o.Cliente != nil {
			clienteNome = o.Cliente.Nome
		}
		if !contemBusca(busca, o.Numero, clienteNome) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// FilterOrdensServico searches numero and the resolved cliente nome; the
// progress status is exact-match.
func FilterOrdensServico(ordens []OrdemServico, busca string, status StatusServico) []OrdemServico {
	out := make([]OrdemServico, 0, len(ordens))
	for _, os := range ordens {
		if status != "" && os.StatusServico != status {
			continue
		}
		clienteNome := ""
		if os.Cliente != nil {
			clienteNome = os.Cliente.Nome
		}
		if !contemBusca(busca, os.Numero, clienteNome) {
			continue
		}
		out = append(out, os)
	}
	return out
}

// FilterContasReceber filters by status only; the ledger view has no text
// search.
func FilterContasReceber(contas []ContaReceber, status StatusConta) []ContaReceber {
	out := make([]ContaReceber, 0, len(contas))
	for _, c := range contas {
		if status != "" && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	return out
}

// FilterContasGerais filters by status and tipo.
func FilterContasGerais(contas []ContaGeral, status StatusConta, tipo TipoContaGeral) []ContaGeral {
	out := make([]ContaGeral, 0, len(contas))
	for _, c := range contas {
		if status != "" && c.Status != status {
			continue
		}
		if tipo != "" && c.Tipo != tipo {
			continue
		}
		out = append(out, c)
	}
	return out
}
