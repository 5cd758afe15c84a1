// Package models defines the domain records exchanged with the backend API.
// Records mirror the server schema; the client never fabricates identity —
// every id is server-issued.
package models

import "github.com/shopspring/decimal"

// AccountType enumerates the supported account kinds.
type AccountType string

const (
	AccountTypeBank       AccountType = "bank"
	AccountTypeWallet     AccountType = "wallet"
	AccountTypeCard       AccountType = "card"
	AccountTypeCash       AccountType = "cash"
	AccountTypeInvestment AccountType = "investment"
)

// Account is a money container belonging to exactly one tenant (tenant
// scoping is implicit, enforced server-side via the tenant header).
type Account struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Currency       string          `json:"currency"`
	Color          string          `json:"color,omitempty"`
	Icon           string          `json:"icon,omitempty"`
}

// CreateAccountRequest is the payload for creating an account.
type CreateAccountRequest struct {
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Currency       string          `json:"currency"`
	Color          string          `json:"color,omitempty"`
	Icon           string          `json:"icon,omitempty"`
}

// UpdateAccountRequest is the payload for updating an account.
type UpdateAccountRequest = CreateAccountRequest
