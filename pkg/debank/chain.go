package debank

import "context"

// ChainService covers the /chain endpoints.
type ChainService struct {
	client *Client
}

// Get returns details of one chain, e.g. Params{{Key: "id", Value: "eth"}}.
func (s *ChainService) Get(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, chainGet, params, nil)
}

// List returns every supported chain.
func (s *ChainService) List(ctx context.Context) (any, error) {
	return s.client.Call(ctx, chainList, nil, nil)
}
