package usecase

import (
	"context"

	"oficina_api/internal/usecase/interfaces"
)

// Cache collection keys. One key per list the console renders; mutations
// invalidate exactly the collections they touch.
const (
	colClientes      = "clientes"
	colVeiculos      = "veiculos"
	colFuncionarios  = "funcionarios"
	colFornecedores  = "fornecedores"
	colPecas         = "pecas"
	colServicos      = "servicos"
	colOrcamentos    = "orcamentos"
	colOrdensServico = "ordens_servico"
	colContasReceber = "contas_receber"
	colContasGerais  = "contas_gerais"
)

// invalidate drops the given collections from the cache. Cache failures are
// deliberately swallowed: the cache is an accelerator, never a source of
// truth, and the store write has already succeeded at this point.
func invalidate(ctx context.Context, cache interfaces.ICollectionCache, collections ...string) {
	if cache == nil {
		return
	}
	_ = cache.Invalidate(ctx, collections...)
}
