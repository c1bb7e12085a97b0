package entities

import "time"

// TipoCliente distinguishes individual from business customers.

type TipoCliente string

const (
	TipoClienteFisica   TipoCliente = "Física"
	TipoClienteJuridica TipoCliente = "Jurídica"
)

// Cliente is a customer record. The vehicle fields (Marca, Modelo, Ano,
// Placa, Quilometragem) are a denormalized snapshot kept on the customer
// itself; the Veiculo entity exists separately for read-side lookups.
//
// Nome and Documento are mandatory at the create boundary.

type Cliente struct {
	ID            string      `json:"id"`
	Nome          string      `json:"nome"`
	Documento     string      `json:"documento"`
	Tipo          TipoCliente `json:"tipo"`
	Telefone      string      `json:"telefone,omitempty"`
	Endereco      string      `json:"endereco,omitempty"`
	Aniversario   string      `json:"aniversario,omitempty"`
	Marca         string      `json:"marca,omitempty"`
	Modelo        string      `json:"modelo,omitempty"`
	Ano           string      `json:"ano,omitempty"`
	Placa         string      `json:"placa,omitempty"`
	Quilometragem string      `json:"quilometragem,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// Veiculo is the read-side vehicle entity, always owned by a Cliente.

type Veiculo struct {
	ID        string    `json:"id"`
	ClienteID string    `json:"cliente_id"`
	Marca     string    `json:"marca"`
	Modelo    string    `json:"modelo"`
	Ano       string    `json:"ano"`
	Placa     string    `json:"placa"`
	KM        string    `json:"km,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
