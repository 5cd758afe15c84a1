package models

import "github.com/shopspring/decimal"

// TransactionType enumerates the supported transaction kinds.
type TransactionType string

const (
	TransactionTypeCredit   TransactionType = "credit"
	TransactionTypeDebit    TransactionType = "debit"
	TransactionTypeTransfer TransactionType = "transfer"
	TransactionTypePayment  TransactionType = "payment"
)

// Transaction is a money movement. Dates are ISO 8601 date strings
// (YYYY-MM-DD), which compare correctly lexicographically; AccrualMonth is
// a YYYYMM bucket used for reporting independently of the due date.
//
// A non-empty PaymentDate means the transaction is paid.
type Transaction struct {
	ID              string          `json:"id"`
	TransactionType TransactionType `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	FromAccountID   string          `json:"from_account_id"`
	ToAccountID     string          `json:"to_account_id,omitempty"`
	CategoryID      string          `json:"category_id"`
	DueDate         string          `json:"due_date"`
	PaymentDate     string          `json:"payment_date,omitempty"`
	AccrualMonth    string          `json:"accrual_month"`
	Comments        string          `json:"comments,omitempty"`
	TagIDs          []string        `json:"tag_ids,omitempty"`
	Installments    int             `json:"installments,omitempty"`
	IsRecurring     bool            `json:"is_recurring,omitempty"`
}

// IsPaid reports whether the transaction has a payment date.
func (t Transaction) IsPaid() bool {
	return t.PaymentDate != ""
}

// CreateTransactionRequest is the payload for creating a transaction.
type CreateTransactionRequest struct {
	TransactionType TransactionType `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	FromAccountID   string          `json:"from_account_id"`
	ToAccountID     string          `json:"to_account_id,omitempty"`
	CategoryID      string          `json:"category_id"`
	DueDate         string          `json:"due_date"`
	PaymentDate     string          `json:"payment_date,omitempty"`
	AccrualMonth    string          `json:"accrual_month"`
	Comments        string          `json:"comments,omitempty"`
	TagIDs          []string        `json:"tag_ids,omitempty"`
	Installments    int             `json:"installments,omitempty"`
	IsRecurring     bool            `json:"is_recurring,omitempty"`
}

// UpdateTransactionRequest is the payload for updating a transaction.
type UpdateTransactionRequest = CreateTransactionRequest
