package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ledgerline/ledgerline/internal/client/models"
)

// TransactionQuery holds the server-side list filters. Zero-value fields
// impose no constraint; finer-grained filtering happens client-side (see
// the views package).
type TransactionQuery struct {
	AccrualMonth string // YYYYMM
	AccountID    string
	Type         models.TransactionType
}

func (q TransactionQuery) values() url.Values {
	v := url.Values{}
	if q.AccrualMonth != "" {
		v.Set("accrual_month", q.AccrualMonth)
	}
	if q.AccountID != "" {
		v.Set("account_id", q.AccountID)
	}
	if q.Type != "" {
		v.Set("transaction_type", string(q.Type))
	}
	return v
}

// ListTransactions fetches transactions of the active tenant, optionally
// narrowed server-side by query.
func (c *Client) ListTransactions(ctx context.Context, query TransactionQuery) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := c.do(ctx, http.MethodGet, "/transactions", query.values(), nil, nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

// CreateTransaction creates a transaction and returns the server-issued
// record.
func (c *Client) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (models.Transaction, error) {
	var transaction models.Transaction
	if err := c.do(ctx, http.MethodPost, "/transactions", nil, nil, req, &transaction); err != nil {
		return models.Transaction{}, err
	}
	return transaction, nil
}

// UpdateTransaction updates the transaction with the given id.
func (c *Client) UpdateTransaction(ctx context.Context, id string, req models.UpdateTransactionRequest) (models.Transaction, error) {
	var transaction models.Transaction
	if err := c.do(ctx, http.MethodPut, "/transactions/"+id, nil, nil, req, &transaction); err != nil {
		return models.Transaction{}, err
	}
	return transaction, nil
}

// DeleteTransaction deletes the transaction with the given id.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/transactions/"+id, nil, nil, nil, nil)
}
