package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cubos-banking-ledger/internal/data"
	"github.com/cubos-banking-ledger/internal/domain/account"
	"github.com/cubos-banking-ledger/internal/domain/ledger"
)

func newAccountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List account numbers, owners and balances",
		Args:  cobra.NoArgs,
		RunE:  runAccounts,
	}
}

func runAccounts(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, err := data.OpenStore(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close(ctx)

	var (
		accounts []account.Account
		total    int64
	)
	err = ledger.NewTransactor(store).View(ctx, "cli_accounts", func(l *ledger.Ledger) error {
		accounts = l.ListAccounts()
		total = l.TotalBalance()
		return nil
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tOWNER\tBALANCE")
	for _, acc := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%d\n", acc.Number, acc.Owner.Name, acc.Balance)
	}
	fmt.Fprintf(w, "\t%d accounts\t%d\n", len(accounts), total)
	return w.Flush()
}
