package debank

import "context"

// UserService covers the /user endpoints. Most operations take an "id"
// parameter holding the wallet address.
type UserService struct {
	client *Client
}

// Get always fails with ErrOperationNotExist: /user has no root operation.
func (s *UserService) Get(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, userRoot, params, nil)
}

func (s *UserService) UsedChainList(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, userUsedChainList, params, nil)
}

func (s *UserService) ChainBalance(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, userChainBalance, params, nil)
}

func (s *UserService) Protocol(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, userProtocol, params, nil)
}

func (s *UserService) ComplexProtocolList(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, userComplexProtocolList, params, nil)
}

func (s *UserService) AllComplexProtocolList(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, userAllComplexProtocolList, params, nil)
}

func (s *UserService) SimpleProtocolList(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, userSimpleProtocolList, params, nil)
}

func (s *UserService) AllSimpleProtocolList(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, userAllSimpleProtocolList, params, nil)
}

func (s *UserService) Token(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, userToken, params, nil)
}

func (s *UserService) TokenList(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, userTokenList, params, nil)
}

func (s *UserService) AllTokenList(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, userAllTokenList, params, nil)
}

func (s *UserService) NFTList(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, userNFTList, params, nil)
}

func (s *UserService) AllNFTList(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, userAllNFTList, params, nil)
}

func (s *UserService) HistoryList(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, userHistoryList, params, nil)
}

func (s *UserService) AllHistoryList(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, userAllHistoryList, params, nil)
}

func (s *UserService) TokenAuthorizedList(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, userTokenAuthorizedList, params, nil)
}

func (s *UserService) NFTAuthorizedList(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, userNFTAuthorizedList, params, nil)
}

// TotalBalance returns the USD value of a wallet across all chains.
func (s *UserService) TotalBalance(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, userTotalBalance, params, nil)
}

func (s *UserService) ChainNetCurve(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, userChainNetCurve, params, nil)
}

func (s *UserService) TotalNetCurve(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, userTotalNetCurve, params, nil)
}
