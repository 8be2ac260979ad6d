package debank

import "context"

// CollectionService covers the /collection endpoints.
type CollectionService struct {
	client *Client
}

// Get always fails with ErrOperationNotExist: /collection has no root operation.
func (s *CollectionService) Get(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, collectionRoot, params, nil)
}

func (s *CollectionService) NFTList(ctx context.Context, params Params) (any, error) {
	return s.client.Call(ctx, collectionNFTList, params, nil)
}
