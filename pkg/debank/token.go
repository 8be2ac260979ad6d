package debank

import "context"

// TokenService covers the /token endpoints.
type TokenService struct {
	client *Client
}

func (s *TokenService) Get(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, tokenGet, params, nil)
}

// ListByIDs expects chain_id and ids; ids may be passed as a []string.
func (s *TokenService) ListByIDs(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, tokenListByIDs, params, nil)
}

func (s *TokenService) TopHolders(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, tokenTopHolders, params, nil)
}
