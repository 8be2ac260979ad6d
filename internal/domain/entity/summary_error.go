package entity

// SummaryError represents a failed DeBank request while summarizing a wallet.
type SummaryError struct {
	WalletAddress string `json:"walletAddress"`
	Operation     string `json:"operation"`
	// Code is the DeBank error code, empty for transport or decoding failures.
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}
