package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"debank_client/internal/config"
	"debank_client/internal/infrastructure/debankclient"
	"debank_client/internal/pkg/logger"
	"debank_client/internal/pkg/utils"
	"debank_client/pkg/debank"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgPath string
	verbose bool

	cfg       *config.Config
	zapLogger = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "debank",
	Short: "Command-line client for the DeBank Pro OpenAPI",
	Long: `debank calls the DeBank Pro OpenAPI and prints the JSON response.

The access key is read from the config file (debank.accessKey) or from the
DEBANK_ACCESS_KEY environment variable.

Examples:
  debank endpoints
  debank call chain list
  debank call user total_balance id=0xd8da6bf26964af9d7eed9e03e53415d37aa96045
  debank call token list_by_ids chain_id=eth ids=eth,0xdac17f958d2ee523a2206206994597c13d831ec7
  debank call wallet explain_tx --body tx.json
  debank summary --wallets data/wallets.txt`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.LoadConfig(cfgPath); err != nil {
			return err
		}
		if verbose {
			if zapLogger, err = zap.NewDevelopment(); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
		}
		logger.NewSlog(zapLogger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", utils.GetEnv("CONFIG_PATH", ""), "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log requests to stderr")

	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(endpointsCmd)
	rootCmd.AddCommand(summaryCmd)
}

func newClient() (*debank.Client, error) {
	if cfg.DeBank.AccessKey == "" {
		return nil, fmt.Errorf("no access key: set debank.accessKey in the config or %s", config.AccessKeyEnv)
	}
	return debankclient.New(cfg.DeBank, zapLogger, nil)
}
