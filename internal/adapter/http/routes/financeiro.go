package routes

import (
	"oficina_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathContasReceber = "/financeiro/contas-receber"
	PathContasGerais  = "/financeiro/contas-gerais"
	PathDashboard     = "/dashboard"
)

func addFinanceiroRoutes(rg *gin.RouterGroup, financeiroHandler *handlers.FinanceiroHandler, dashboardHandler *handlers.DashboardHandler) {
	receber := rg.Group(PathContasReceber)
	{
		receber.POST("", financeiroHandler.CreateContaReceber)
		receber.GET("", financeiroHandler.ListContasReceber)
		receber.PUT("/:id", financeiroHandler.UpdateContaReceber)
		receber.DELETE("/:id", financeiroHandler.DeleteContaReceber)
	}

	gerais := rg.Group(PathContasGerais)
	{
		gerais.POST("", financeiroHandler.CreateContaGeral)
		gerais.GET("", financeiroHandler.ListContasGerais)
		gerais.PUT("/:id", financeiroHandler.UpdateContaGeral)
		gerais.DELETE("/:id", financeiroHandler.DeleteContaGeral)
	}

	rg.GET(PathDashboard, dashboardHandler.Resumo)
}
