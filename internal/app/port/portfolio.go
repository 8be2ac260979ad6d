package port

import (
	"context"

	"debank_client/internal/domain/entity"
)

// PortfolioService summarizes wallets using the DeBank user endpoints.
type PortfolioService interface {
	// Summarize returns one summary per wallet in input order. Failed requests
	// are reported in PortfolioSummary.Errors rather than aborting the run.
	Summarize(ctx context.Context, wallets []entity.Wallet) entity.PortfolioSummary
}
