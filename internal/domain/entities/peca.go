package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Peca is an inventoried part from the parts catalog.
//
// ValorUnitario is the current catalog price. Quote lines snapshot the price
// at add-time, so later catalog changes never reprice existing quotes.

type Peca struct {
	ID            string          `json:"id"`
	Nome          string          `json:"nome"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	Estoque       int             `json:"estoque"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Servico is a billable labor category priced per hour.

type Servico struct {
	ID        string          `json:"id"`
	Nome      string          `json:"nome"`
	ValorHora decimal.Decimal `json:"valor_hora"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
