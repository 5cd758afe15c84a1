package views

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline/internal/client/models"
)

// TotalInitialBalance sums the initial balance across accounts. A zero
// Decimal is the absent value, so missing amounts contribute nothing.
func TotalInitialBalance(accounts []models.Account) decimal.Decimal {
	total := decimal.Zero
	for _, account := range accounts {
		total = total.Add(account.InitialBalance)
	}
	return total
}

// MonthlyTotals sums transaction amounts for one accrual month, split
// into income (credits) and expense (debits and payments). Transfers move
// money between own accounts and count toward neither side.
func MonthlyTotals(transactions []models.Transaction, accrualMonth string) (income, expense decimal.Decimal) {
	income, expense = decimal.Zero, decimal.Zero
	for _, txn := range transactions {
		if txn.AccrualMonth != accrualMonth {
			continue
		}
		switch txn.TransactionType {
		case models.TransactionTypeCredit:
			income = income.Add(txn.Amount)
		case models.TransactionTypeDebit, models.TransactionTypePayment:
			expense = expense.Add(txn.Amount)
		}
	}
	return income, expense
}
