package debank

import "context"

// WalletService covers the /wallet endpoints.
type WalletService struct {
	client *Client
}

// Get always fails with ErrOperationNotExist: /wallet has no root operation.
func (s *WalletService) Get(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, walletRoot, params, nil)
}

func (s *WalletService) GasMarket(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, walletGasMarket, params, nil)
}

// PreExecTx simulates a transaction. body is sent as JSON.
func (s *WalletService) PreExecTx(ctx context.Context, body any) (any, error) {
	return s.client.Call(ctx, walletPreExecTx, nil, body)
}

// ExplainTx decodes a transaction. body is sent as JSON.
func (s *WalletService) ExplainTx(ctx context.Context, body any) (any, error) {
	return s.client.Call(ctx, walletExplainTx, nil, body)
}
