package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"debank_client/internal/app/port"
	"debank_client/internal/domain/entity"
	"debank_client/pkg/debank"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	opTotalBalance  = "user.total_balance"
	opUsedChainList = "user.used_chain_list"
)

// PortfolioServiceImpl implements port.PortfolioService on top of the DeBank user API.
type PortfolioServiceImpl struct {
	user                  port.UserAPI
	logger                port.Logger
	maxConcurrentRequests int
}

// NewPortfolioService creates a new instance of PortfolioServiceImpl.
func NewPortfolioService(user port.UserAPI, l port.Logger, maxConcurrentRequests int) *PortfolioServiceImpl {
	if maxConcurrentRequests <= 0 {
		maxConcurrentRequests = 1
	}
	return &PortfolioServiceImpl{
		user:                  user,
		logger:                l,
		maxConcurrentRequests: maxConcurrentRequests,
	}
}

// Summarize fetches the total balance and used chains of every wallet.
func (s *PortfolioServiceImpl) Summarize(ctx context.Context, wallets []entity.Wallet) entity.PortfolioSummary {
	s.logger.Debug("Summarizing wallets", "count", len(wallets), "max_concurrent_requests", s.maxConcurrentRequests)

	summaries := make([]entity.WalletSummary, len(wallets))
	var (
		allErrors []entity.SummaryError
		errorMu   sync.Mutex
	)

	var g errgroup.Group
	g.SetLimit(s.maxConcurrentRequests)
	for i, wallet := range wallets {
		i, wallet := i, wallet
		g.Go(func() error {
			summary, walletErrs := s.summarizeWallet(ctx, wallet)
			summaries[i] = summary
			if len(walletErrs) > 0 {
				errorMu.Lock()
				allErrors = append(allErrors, walletErrs...)
				errorMu.Unlock()
			}
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Warn("Summary interrupted, results are partial", "error", err)
	}

	total := decimal.Zero
	for _, summary := range summaries {
		total = total.Add(summary.TotalValueUSD)
	}

	s.logger.Info("Wallet summaries fetched", "wallets", len(summaries), "errors", len(allErrors))
	return entity.PortfolioSummary{
		Wallets:       summaries,
		TotalValueUSD: total,
		Errors:        allErrors,
	}
}

func (s *PortfolioServiceImpl) summarizeWallet(ctx context.Context, wallet entity.Wallet) (entity.WalletSummary, []entity.SummaryError) {
	summary := entity.WalletSummary{
		WalletAddress: wallet.Address,
		TotalValueUSD: decimal.Zero,
		Chains:        []entity.ChainValue{},
		UsedChains:    []string{},
		Complete:      true,
	}
	var errs []entity.SummaryError
	params := debank.Params{{Key: "id", Value: wallet.Address}}

	balance, err := s.user.TotalBalance(ctx, params)
	if err == nil {
		err = applyTotalBalance(&summary, balance)
	}
	if err != nil {
		s.logger.Error("Failed to fetch total balance", "address", wallet.Address, "error", err)
		errs = append(errs, newSummaryError(wallet.Address, opTotalBalance, err))
	}

	chains, err := s.user.UsedChainList(ctx, params)
	if err == nil {
		err = applyUsedChains(&summary, chains)
	}
	if err != nil {
		s.logger.Error("Failed to fetch used chain list", "address", wallet.Address, "error", err)
		errs = append(errs, newSummaryError(wallet.Address, opUsedChainList, err))
	}

	summary.Complete = len(errs) == 0
	return summary, errs
}

func newSummaryError(address, op string, err error) entity.SummaryError {
	e := entity.SummaryError{WalletAddress: address, Operation: op, Message: err.Error()}
	var apiErr *debank.Error
	if errors.As(err, &apiErr) {
		e.Code = string(apiErr.Code)
	}
	return e
}

// applyTotalBalance reads {"total_usd_value": n, "chain_list": [{"id", "name", "usd_value"}]}.
func applyTotalBalance(summary *entity.WalletSummary, data any) error {
	obj, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("unexpected total_balance payload %T", data)
	}
	summary.TotalValueUSD = decimalField(obj, "total_usd_value")

	list, _ := obj["chain_list"].([]any)
	for _, item := range list {
		chain, ok := item.(map[string]any)
		if !ok {
			continue
		}
		value := decimalField(chain, "usd_value")
		if value.IsZero() {
			continue
		}
		summary.Chains = append(summary.Chains, entity.ChainValue{
			ChainID:  stringField(chain, "id"),
			Name:     stringField(chain, "name"),
			ValueUSD: value,
		})
	}
	return nil
}

// applyUsedChains reads [{"id": "eth", ...}, ...].
func applyUsedChains(summary *entity.WalletSummary, data any) error {
	list, ok := data.([]any)
	if !ok {
		return fmt.Errorf("unexpected used_chain_list payload %T", data)
	}
	for _, item := range list {
		if chain, ok := item.(map[string]any); ok {
			if id := stringField(chain, "id"); id != "" {
				summary.UsedChains = append(summary.UsedChains, id)
			}
		}
	}
	return nil
}

func decimalField(obj map[string]any, key string) decimal.Decimal {
	switch v := obj[key].(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case string:
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return decimal.Zero
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}
