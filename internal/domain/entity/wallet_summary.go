package entity

import "github.com/shopspring/decimal"

// PortfolioSummary aggregates the summaries of several wallets.
type PortfolioSummary struct {
	Wallets       []WalletSummary `json:"wallets"`
	TotalValueUSD decimal.Decimal `json:"totalValueUSD"`
	Errors        []SummaryError  `json:"errors,omitempty"`
}

// WalletSummary represents the DeBank view of a single wallet.
type WalletSummary struct {
	WalletAddress string          `json:"walletAddress"`
	TotalValueUSD decimal.Decimal `json:"totalValueUSD"`
	Chains        []ChainValue    `json:"chains"`
	UsedChains    []string        `json:"usedChains"`
	// Complete is false when at least one request for this wallet failed.
	Complete bool `json:"complete"`
}

// ChainValue is the USD value a wallet holds on one chain.
type ChainValue struct {
	ChainID  string          `json:"chainId"`
	Name     string          `json:"name"`
	ValueUSD decimal.Decimal `json:"valueUSD"`
}
