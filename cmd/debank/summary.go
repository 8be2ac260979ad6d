package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"debank_client/internal/app/service"
	"debank_client/internal/domain/entity"
	"debank_client/internal/infrastructure/walletloader"
	"debank_client/internal/pkg/utils"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	walletsFile string
	summaryJSON bool
)

var summaryCmd = &cobra.Command{
	Use:   "summary [address ...]",
	Short: "Show the USD value and used chains of one or more wallets",
	RunE: func(cmd *cobra.Command, args []string) error {
		wallets, err := collectWallets(args)
		if err != nil {
			return err
		}
		client, err := newClient()
		if err != nil {
			return err
		}

		svc := service.NewPortfolioService(client.User, slog.Default(), cfg.Summary.MaxConcurrentRequests)
		result := svc.Summarize(cmd.Context(), wallets)

		if summaryJSON {
			return printJSON(cmd.OutOrStdout(), result)
		}
		printSummary(cmd, result)
		if len(result.Errors) == len(wallets)*2 {
			return errors.New("every request failed")
		}
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVarP(&walletsFile, "wallets", "w", "", "file with one wallet address per line (defaults to summary.walletsFile)")
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "print the summary as JSON")
}

func collectWallets(args []string) ([]entity.Wallet, error) {
	var wallets []entity.Wallet
	for _, a := range args {
		address, ok := utils.NormalizeAddress(a)
		if !ok {
			return nil, fmt.Errorf("invalid wallet address %q", a)
		}
		wallets = append(wallets, entity.Wallet{Address: address})
	}

	path := walletsFile
	if path == "" && len(args) == 0 {
		path = cfg.Summary.WalletsFile
	}
	if path != "" {
		fromFile, err := walletloader.NewWalletFileLoader(path, slog.Default()).GetWallets()
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, fromFile...)
	}

	if len(wallets) == 0 {
		return nil, errors.New("no wallets given: pass addresses or --wallets")
	}
	return wallets, nil
}

func printSummary(cmd *cobra.Command, result entity.PortfolioSummary) {
	out := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	for _, w := range result.Wallets {
		bold.Fprintf(out, "%s  $%s\n", w.WalletAddress, w.TotalValueUSD.StringFixed(2))
		for _, c := range w.Chains {
			fmt.Fprintf(out, "  %-12s $%s\n", c.ChainID, c.ValueUSD.StringFixed(2))
		}
		if len(w.UsedChains) > 0 {
			fmt.Fprintf(out, "  used chains: %s\n", strings.Join(w.UsedChains, ", "))
		}
		if !w.Complete {
			color.New(color.FgYellow).Fprintln(out, "  incomplete: some requests failed")
		}
	}
	if len(result.Wallets) > 1 {
		bold.Fprintf(out, "total  $%s\n", result.TotalValueUSD.StringFixed(2))
	}
	for _, e := range result.Errors {
		color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "%s %s: %s\n", e.WalletAddress, e.Operation, e.Message)
	}
}
