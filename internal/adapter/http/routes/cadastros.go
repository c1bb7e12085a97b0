package routes

import (
	"oficina_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClientes     = "/clientes"
	PathVeiculos     = "/veiculos"
	PathFuncionarios = "/funcionarios"
	PathFornecedores = "/fornecedores"
	PathPecas        = "/pecas"
	PathServicos     = "/servicos"
)

func addCadastroRoutes(
	rg *gin.RouterGroup,
	clienteHandler *handlers.ClienteHandler,
	veiculoHandler *handlers.VeiculoHandler,
	funcionarioHandler *handlers.FuncionarioHandler,
	fornecedorHandler *handlers.FornecedorHandler,
	pecaHandler *handlers.PecaHandler,
	servicoHandler *handlers.ServicoHandler,
) {
	clientes := rg.Group(PathClientes)
	{
		clientes.POST("", clienteHandler.Create)
		clientes.GET("", clienteHandler.List)
		clientes.GET("/:id", clienteHandler.GetByID)
		clientes.PUT("/:id", clienteHandler.Update)
		clientes.DELETE("/:id", clienteHandler.Delete)
	}

	// Veiculos chegam pela sincronizacao de cadastro, a API so expoe leitura.
	veiculos := rg.Group(PathVeiculos)
	{
		veiculos.GET("", veiculoHandler.List)
	}

	funcionarios := rg.Group(PathFuncionarios)
	{
		funcionarios.POST("", funcionarioHandler.Create)
		funcionarios.GET("", funcionarioHandler.List)
		funcionarios.GET("/:id", funcionarioHandler.GetByID)
		funcionarios.PUT("/:id", funcionarioHandler.Update)
		funcionarios.DELETE("/:id", funcionarioHandler.Delete)
	}

	fornecedores := rg.Group(PathFornecedores)
	{
		fornecedores.POST("", fornecedorHandler.Create)
		fornecedores.GET("", fornecedorHandler.List)
		fornecedores.GET("/:id", fornecedorHandler.GetByID)
		fornecedores.PUT("/:id", fornecedorHandler.Update)
		fornecedores.DELETE("/:id", fornecedorHandler.Delete)
	}

	pecas := rg.Group(PathPecas)
	{
		pecas.POST("", pecaHandler.Create)
		pecas.GET("", pecaHandler.List)
		pecas.GET("/:id", pecaHandler.GetByID)
		pecas.PUT("/:id", pecaHandler.Update)
		pecas.DELETE("/:id", pecaHandler.Delete)
	}

	servicos := rg.Group(PathServicos)
	{
		servicos.POST("", servicoHandler.Create)
		servicos.GET("", servicoHandler.List)
		servicos.GET("/:id", servicoHandler.GetByID)
		servicos.PUT("/:id", servicoHandler.Update)
		servicos.DELETE("/:id", servicoHandler.Delete)
	}
}
