package views

import (
	"slices"

	"github.com/ledgerline/ledgerline/internal/client/models"
)

// PaymentStatus narrows transactions by whether a payment date is present.
type PaymentStatus string

const (
	PaymentStatusAll    PaymentStatus = "all"
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

// TransactionFilter is the client-side filter descriptor. Zero-value
// fields impose no constraint; the specified dimensions combine with a
// logical AND. Within the tag dimension a transaction matches when its
// tag set intersects the filter's tag set.
type TransactionFilter struct {
	AccrualMonth  string // YYYYMM
	AccountID     string
	CategoryID    string
	Type          models.TransactionType
	PaymentStatus PaymentStatus
	TagIDs        []string
	StartDate     string // inclusive lower bound on due date, ISO 8601
	EndDate       string // inclusive upper bound on due date, ISO 8601
}

// FilterTransactions returns the subsequence of transactions satisfying
// every specified dimension of filter, preserving input order. An empty
// filter returns the input unchanged (as a copy).
func FilterTransactions(transactions []models.Transaction, filter TransactionFilter) []models.Transaction {
	out := make([]models.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if matches(txn, filter) {
			out = append(out, txn)
		}
	}
	return out
}

func matches(txn models.Transaction, f TransactionFilter) bool {
	if f.AccrualMonth != "" && txn.AccrualMonth != f.AccrualMonth {
		return false
	}
	if f.AccountID != "" && txn.FromAccountID != f.AccountID {
		return false
	}
	if f.CategoryID != "" && txn.CategoryID != f.CategoryID {
		return false
	}
	if f.Type != "" && txn.TransactionType != f.Type {
		return false
	}
	switch f.PaymentStatus {
	case PaymentStatusPaid:
		if !txn.IsPaid() {
			return false
		}
	case PaymentStatusUnpaid:
		if txn.IsPaid() {
			return false
		}
	}
	// ISO 8601 dates compare correctly as strings
	if f.StartDate != "" && txn.DueDate != "" && txn.DueDate < f.StartDate {
		return false
	}
	if f.EndDate != "" && txn.DueDate != "" && txn.DueDate > f.EndDate {
		return false
	}
	if len(f.TagIDs) > 0 {
		hasMatch := false
		for _, tagID := range f.TagIDs {
			if slices.Contains(txn.TagIDs, tagID) {
				hasMatch = true
				break
			}
		}
		if !hasMatch {
			return false
		}
	}
	return true
}
