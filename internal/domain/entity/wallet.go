package entity

// Wallet is an address tracked by the portfolio summary.
type Wallet struct {
	Address string `json:"address" yaml:"address"`
}
