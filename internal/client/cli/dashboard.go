package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerline/ledgerline/internal/client/views"
)

const recentTransactionCount = 5

// showDashboard prints the month's income/expense totals, the total
// initial balance and the most recent transactions.
func (a *App) showDashboard(ctx context.Context) {
	if a.accounts.Len() == 0 {
		a.accounts.List(ctx)
	}
	if a.transactions.Len() == 0 {
		a.transactions.List(ctx)
	}

	month := time.Now().Format("200601")
	income, expense := views.MonthlyTotals(a.transactions.Transactions(), month)

	fmt.Fprintln(a.out, "Dashboard")
	fmt.Fprintf(a.out, "  Total balance:   %s\n", a.accounts.TotalBalance().StringFixed(2))
	fmt.Fprintf(a.out, "  Income  (%s): %s\n", month, income.StringFixed(2))
	fmt.Fprintf(a.out, "  Expense (%s): %s\n", month, expense.StringFixed(2))

	transactions := a.transactions.Transactions()
	if len(transactions) == 0 {
		return
	}
	fmt.Fprintln(a.out, "  Recent transactions:")
	start := len(transactions) - recentTransactionCount
	if start < 0 {
		start = 0
	}
	for _, txn := range transactions[start:] {
		fmt.Fprintf(a.out, "    %s  %-8s %10s  %s\n",
			txn.DueDate, txn.TransactionType, txn.Amount.StringFixed(2), txn.Comments)
	}
}
