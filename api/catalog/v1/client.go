package catalogv1

import (
	"context"

	"google.golang.org/grpc"
)

// CatalogServiceClient is the client API for CatalogService.
type CatalogServiceClient interface {
	SearchItems(ctx context.Context, in *SearchItemsRequest, opts ...grpc.CallOption) (*SearchItemsResponse, error)
	GetItem(ctx context.Context, in *GetItemRequest, opts ...grpc.CallOption) (*GetItemResponse, error)
	ListFacets(ctx context.Context, in *ListFacetsRequest, opts ...grpc.CallOption) (*ListFacetsResponse, error)
	CreateSession(ctx context.Context, in *CreateSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	ToggleFavorite(ctx context.Context, in *ToggleFavoriteRequest, opts ...grpc.CallOption) (*ToggleFavoriteResponse, error)
	OpenDetail(ctx context.Context, in *OpenDetailRequest, opts ...grpc.CallOption) (*SessionResponse, error)
	CloseDetail(ctx context.Context, in *CloseDetailRequest, opts ...grpc.CallOption) (*SessionResponse, error)
}

type catalogServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCatalogServiceClient returns a client that always calls with the json codec.
func NewCatalogServiceClient(cc grpc.ClientConnInterface) CatalogServiceClient {
	return &catalogServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) SearchItems(ctx context.Context, in *SearchItemsRequest, opts ...grpc.CallOption) (*SearchItemsResponse, error) {
	return invoke[SearchItemsResponse](ctx, c.cc, CatalogService_SearchItems_FullMethodName, in, opts)
}

func (c *catalogServiceClient) GetItem(ctx context.Context, in *GetItemRequest, opts ...grpc.CallOption) (*GetItemResponse, error) {
	return invoke[GetItemResponse](ctx, c.cc, CatalogService_GetItem_FullMethodName, in, opts)
}

func (c *catalogServiceClient) ListFacets(ctx context.Context, in *ListFacetsRequest, opts ...grpc.CallOption) (*ListFacetsResponse, error) {
	return invoke[ListFacetsResponse](ctx, c.cc, CatalogService_ListFacets_FullMethodName, in, opts)
}

func (c *catalogServiceClient) CreateSession(ctx context.Context, in *CreateSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, CatalogService_CreateSession_FullMethodName, in, opts)
}

func (c *catalogServiceClient) GetSession(ctx context.Context, in *GetSessionRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, CatalogService_GetSession_FullMethodName, in, opts)
}

func (c *catalogServiceClient) ToggleFavorite(ctx context.Context, in *ToggleFavoriteRequest, opts ...grpc.CallOption) (*ToggleFavoriteResponse, error) {
	return invoke[ToggleFavoriteResponse](ctx, c.cc, CatalogService_ToggleFavorite_FullMethodName, in, opts)
}

func (c *catalogServiceClient) OpenDetail(ctx context.Context, in *OpenDetailRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, CatalogService_OpenDetail_FullMethodName, in, opts)
}

func (c *catalogServiceClient) CloseDetail(ctx context.Context, in *CloseDetailRequest, opts ...grpc.CallOption) (*SessionResponse, error) {
	return invoke[SessionResponse](ctx, c.cc, CatalogService_CloseDetail_FullMethodName, in, opts)
}
