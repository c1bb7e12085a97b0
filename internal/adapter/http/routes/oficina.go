package routes

import (
	"oficina_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrcamentos    = "/orcamentos"
	PathOrdensServico = "/ordens-servico"
)

func addOficinaRoutes(rg *gin.RouterGroup, orcamentoHandler *handlers.OrcamentoHandler, osHandler *handlers.OrdemServicoHandler) {
	orcamentos := rg.Group(PathOrcamentos)
	{
		orcamentos.POST("", orcamentoHandler.Create)
		orcamentos.GET("", orcamentoHandler.List)
		orcamentos.GET("/:id", orcamentoHandler.GetByID)
		orcamentos.PUT("/:id", orcamentoHandler.Update)
		orcamentos.DELETE("/:id", orcamentoHandler.Delete)
		// Aprovar um orcamento cria a ordem de servico correspondente.
		orcamentos.PATCH("/:id/status", orcamentoHandler.UpdateStatus)
		orcamentos.POST("/:id/pecas", orcamentoHandler.AddPeca)
		orcamentos.DELETE("/:id/pecas/:linha_id", orcamentoHandler.RemovePeca)
		orcamentos.POST("/:id/servicos", orcamentoHandler.AddServico)
		orcamentos.DELETE("/:id/servicos/:linha_id", orcamentoHandler.RemoveServico)
		orcamentos.GET("/:id/impressao", orcamentoHandler.Imprimir)
	}

	ordens := rg.Group(PathOrdensServico)
	{
		ordens.POST("", osHandler.Create)
		ordens.GET("", osHandler.List)
		ordens.GET("/:id", osHandler.GetByID)
		ordens.PUT("/:id", osHandler.Update)
		ordens.DELETE("/:id", osHandler.Delete)
		ordens.PATCH("/:id/status", osHandler.UpdateStatus)
		ordens.PATCH("/:id/pagamento", osHandler.RegistrarPagamento)
		ordens.GET("/:id/impressao", osHandler.Imprimir)
	}
}
