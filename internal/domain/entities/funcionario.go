package entities

import "time"

type CategoriaFuncionario string

const (
	CategoriaMecanico CategoriaFuncionario = "Mecânico"
	CategoriaPintor   CategoriaFuncionario = "Pintor"
	CategoriaLavador  CategoriaFuncionario = "Lavador"
)

// Funcionario is a staff record. Nome, Documento and Categoria are mandatory.

type Funcionario struct {
	ID        string               `json:"id"`
	Nome      string               `json:"nome"`
	Documento string               `json:"documento"`
	Categoria CategoriaFuncionario `json:"categoria"`
	Telefone  string               `json:"telefone,omitempty"`
	Endereco  string               `json:"endereco,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}
