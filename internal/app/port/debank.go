package port

import (
	"context"

	"debank_client/pkg/debank"
)

// UserAPI is the subset of the DeBank user endpoints the portfolio summary needs.
// *debank.UserService satisfies it.
type UserAPI interface {
	TotalBalance(ctx context.Context, params debank.Params) (any, error)
	UsedChainList(ctx context.Context, params debank.Params) (any, error)
}

// EndpointCaller dispatches any endpoint from the descriptor table.
// *debank.Client satisfies it.
type EndpointCaller interface {
	Call(ctx context.Context, ep debank.Endpoint, params debank.Params, body any) (any, error)
}
