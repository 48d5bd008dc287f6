package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cubos-banking-ledger/internal/data"
	"github.com/cubos-banking-ledger/internal/domain/ledger"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty ledger in the configured store",
		Long: `Create an empty ledger guarded by the bank secret. An existing ledger is
left untouched, so running init twice is safe.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}
	cmd.Flags().String("secret", "", "Bank secret for the new ledger (defaults to STORE_BANK_SECRET)")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadRuntime(cmd)
	if err != nil {
		return err
	}

	secret, _ := cmd.Flags().GetString("secret")
	if secret == "" {
		secret = cfg.Store.BankSecret
	}

	ctx := cmd.Context()
	store, err := data.OpenStore(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close(ctx)

	created, err := ledger.Bootstrap(ctx, store, secret)
	if err != nil {
		return fmt.Errorf("bootstrap ledger: %w", err)
	}

	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized empty ledger (%s backend)\n", cfg.Store.Backend)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Ledger already initialized (%s backend)\n", cfg.Store.Backend)
	}
	return nil
}
