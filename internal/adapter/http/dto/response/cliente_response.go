package response

import (
	"time"

	"oficina_api/internal/domain/entities"
)

type ClienteResponse struct {
	ID            string    `json:"id"`
	Nome          string    `json:"nome"`
	Documento     string    `json:"documento"`
	Tipo          string    `json:"tipo"`
	Telefone      string    `json:"telefone,omitempty"`
	Endereco      string    `json:"endereco,omitempty"`
	Aniversario   string    `json:"aniversario,omitempty"`
	Marca         string    `json:"marca,omitempty"`
	Modelo        string    `json:"modelo,omitempty"`
	Ano           string    `json:"ano,omitempty"`
	Placa         string    `json:"placa,omitempty"`
	Quilometragem string    `json:"quilometragem,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromCliente(c entities.Cliente) ClienteResponse {
	return ClienteResponse{
		ID:            c.ID,
		Nome:          c.Nome,
		Documento:     c.Documento,
		Tipo:          string(c.Tipo),
		Telefone:      c.Telefone,
		Endereco:      c.Endereco,
		Aniversario:   c.Aniversario,
		Marca:         c.Marca,
		Modelo:        c.Modelo,
		Ano:           c.Ano,
		Placa:         c.Placa,
		Quilometragem: c.Quilometragem,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func FromClientes(clientes []entities.Cliente) []ClienteResponse {
	out := make([]ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, FromCliente(c))
	}
	return out
}

type VeiculoResponse struct {
	ID        string `json:"id"`
	ClienteID string `json:"cliente_id"`
	Marca     string `json:"marca"`
	Modelo    string `json:"modelo"`
	Ano       string `json:"ano"`
	Placa     string `json:"placa"`
	KM        string `json:"km,omitempty"`
}

func FromVeiculo(v entities.Veiculo) VeiculoResponse {
	return VeiculoResponse{
		ID:        v.ID,
		ClienteID: v.ClienteID,
		Marca:     v.Marca,
		Modelo:    v.Modelo,
		Ano:       v.Ano,
		Placa:     v.Placa,
		KM:        v.KM,
	}
}

func FromVeiculos(veiculos []entities.Veiculo) []VeiculoResponse {
	out := make([]VeiculoResponse, 0, len(veiculos))
	for _, v := range veiculos {
		out = append(out, FromVeiculo(v))
	}
	return out
}
