package request

import (
	"oficina_api/internal/domain/entities"
)

type ClienteRequest struct {
	Nome          string `json:"nome" binding:"required"`
	Documento     string `json:"documento" binding:"required"`
	Tipo          string `json:"tipo"`
	Telefone      string `json:"telefone"`
	Endereco      string `json:"endereco"`
	Aniversario   string `json:"aniversario"`
	Marca         string `json:"marca"`
	Modelo        string `json:"modelo"`
	Ano           string `json:"ano"`
	Placa         string `json:"placa"`
	Quilometragem string `json:"quilometragem"`
}

func (r ClienteRequest) ToEntity() entities.Cliente {
	return entities.Cliente{
		Nome:          r.Nome,
		Documento:     r.Documento,
		Tipo:          entities.TipoCliente(r.Tipo),
		Telefone:      r.Telefone,
		Endereco:      r.Endereco,
		Aniversario:   r.Aniversario,
		Marca:         r.Marca,
		Modelo:        r.Modelo,
		Ano:           r.Ano,
		Placa:         r.Placa,
		Quilometragem: r.Quilometragem,
	}
}
