package debank

import "context"

// ProtocolService covers the /protocol endpoints.
type ProtocolService struct {
	client *Client
}

func (s *ProtocolService) Get(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, protocolGet, params, nil)
}

func (s *ProtocolService) List(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, protocolList, params, nil)
}

func (s *ProtocolService) AllList(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, protocolAllList, params, nil)
}
