package cli

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline/internal/client/models"
)

func (a *App) showAccounts(ctx context.Context) {
	if a.accounts.Len() == 0 {
		a.accounts.List(ctx)
	}

	accounts := a.accounts.Accounts()
	if len(accounts) == 0 {
		fmt.Fprintln(a.out, "No accounts. Create one with: addaccount")
		return
	}

	fmt.Fprintln(a.out, "Accounts:")
	for _, acc := range accounts {
		fmt.Fprintf(a.out, "  %s  %-20s %-10s %10s %s\n",
			acc.ID, acc.Name, acc.Type, acc.InitialBalance.StringFixed(2), acc.Currency)
	}
	fmt.Fprintf(a.out, "Total initial balance: %s\n", a.accounts.TotalBalance().StringFixed(2))
}

// addAccount interactively collects the fields and creates an account
// through the store, which reconciles the collection and toasts.
func (a *App) addAccount(ctx context.Context) error {
	if err := a.requireTenantContext(); err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Account name", a.out)
	if err != nil {
		return err
	}
	kind, err := getSimpleText(a.reader, "Type (bank/wallet/card/cash/investment)", a.out)
	if err != nil {
		return err
	}
	balance, err := getSimpleText(a.reader, "Initial balance", a.out)
	if err != nil {
		return err
	}
	currency, err := getSimpleText(a.reader, "Currency", a.out)
	if err != nil {
		return err
	}

	amount := decimal.Zero
	if balance != "" {
		amount, err = decimal.NewFromString(balance)
		if err != nil {
			fmt.Fprintf(a.out, "Invalid amount: %s\n", balance)
			return err
		}
	}

	_, err = a.accounts.Create(ctx, models.CreateAccountRequest{
		Name:           name,
		Type:           models.AccountType(kind),
		InitialBalance: amount,
		Currency:       currency,
	})
	return err
}

func (a *App) deleteAccount(ctx context.Context, id string) error {
	if err := a.requireTenantContext(); err != nil {
		return err
	}
	return a.accounts.Delete(ctx, id)
}
