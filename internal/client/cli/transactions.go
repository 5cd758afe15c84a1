package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline/internal/client/models"
	"github.com/ledgerline/ledgerline/internal/client/views"
)

func (a *App) showTransactions(ctx context.Context) {
	if a.transactions.Len() == 0 {
		a.transactions.List(ctx)
	}

	transactions := a.transactions.Filtered()
	if len(transactions) == 0 {
		fmt.Fprintln(a.out, "No transactions match.")
		return
	}

	fmt.Fprintln(a.out, "Transactions:")
	for _, txn := range transactions {
		paid := " "
		if txn.IsPaid() {
			paid = "x"
		}
		fmt.Fprintf(a.out, "  [%s] %s  %-8s %10s  due %s  %s\n",
			paid, txn.ID, txn.TransactionType, txn.Amount.StringFixed(2), txn.DueDate, txn.Comments)
	}
}

// SetFilter parses key=value pairs into the transaction filter and
// reloads the list so the server-side dimensions take effect.
//
// Keys: month (YYYYMM), account, category, type, status (all/paid/unpaid),
// tags (comma-separated ids), from, to (ISO dates). "reset" clears all.
func (a *App) SetFilter(ctx context.Context, args []string) error {
	if len(args) == 1 && args[0] == "reset" {
		a.transactions.ResetFilters()
		a.transactions.List(ctx)
		return nil
	}

	f := a.transactions.Filters()
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("bad filter %q, want key=value", arg)
		}
		switch key {
		case "month":
			f.AccrualMonth = value
		case "account":
			f.AccountID = value
		case "category":
			f.CategoryID = value
		case "type":
			f.Type = models.TransactionType(value)
		case "status":
			f.PaymentStatus = views.PaymentStatus(value)
		case "tags":
			f.TagIDs = strings.Split(value, ",")
		case "from":
			f.StartDate = value
		case "to":
			f.EndDate = value
		default:
			return fmt.Errorf("unknown filter key %q", key)
		}
	}

	a.transactions.SetFilters(f)
	a.transactions.List(ctx)
	return nil
}

// addTransaction interactively collects the fields and creates a
// transaction through the store.
func (a *App) addTransaction(ctx context.Context) error {
	if err := a.requireTenantContext(); err != nil {
		return err
	}
	kind, err := getSimpleText(a.reader, "Type (credit/debit/transfer/payment)", a.out)
	if err != nil {
		return err
	}
	amount, err := getSimpleText(a.reader, "Amount", a.out)
	if err != nil {
		return err
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid amount: %s\n", amount)
		return err
	}
	accountID, err := getSimpleText(a.reader, "From account id", a.out)
	if err != nil {
		return err
	}
	categoryID, err := getSimpleText(a.reader, "Category id", a.out)
	if err != nil {
		return err
	}
	dueDate, err := getSimpleText(a.reader, "Due date (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}
	accrualMonth, err := getSimpleText(a.reader, "Accrual month (YYYYMM)", a.out)
	if err != nil {
		return err
	}
	comments, err := getSimpleText(a.reader, "Comments (optional)", a.out)
	if err != nil {
		return err
	}

	_, err = a.transactions.Create(ctx, models.CreateTransactionRequest{
		TransactionType: models.TransactionType(kind),
		Amount:          value,
		FromAccountID:   accountID,
		CategoryID:      categoryID,
		DueDate:         dueDate,
		AccrualMonth:    accrualMonth,
		Comments:        comments,
	})
	return err
}

func (a *App) deleteTransaction(ctx context.Context, id string) error {
	if err := a.requireTenantContext(); err != nil {
		return err
	}
	return a.transactions.Delete(ctx, id)
}
