// Package cli implements the ledgerctl operator commands.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cubos-banking-ledger/internal/config"
	"github.com/cubos-banking-ledger/internal/logger"
)

const defaultConfigName = "api_gateway"

// NewRootCmd builds the ledgerctl command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Operate the cubos banking ledger",
		Long: `ledgerctl bootstraps and inspects the ledger store used by the API gateway.
It reads the same configuration file and environment variables as the gateway,
so STORE_BACKEND and friends select which store it talks to.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", defaultConfigName, "Base name of the .env configuration file")

	root.AddCommand(newInitCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newAccountsCmd())
	root.AddCommand(newEventsCmd())
	return root
}

// Execute runs ledgerctl with the process arguments
func Execute() error {
	return NewRootCmd().Execute()
}

// loadRuntime resolves configuration and a logger writing to the command's stderr
func loadRuntime(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	name, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.New(cmd.ErrOrStderr(), cfg), nil
}
