package catalogv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "catalog.v1.CatalogService"

const (
	CatalogService_SearchItems_FullMethodName    = "/catalog.v1.CatalogService/SearchItems"
	CatalogService_GetItem_FullMethodName        = "/catalog.v1.CatalogService/GetItem"
	CatalogService_ListFacets_FullMethodName     = "/catalog.v1.CatalogService/ListFacets"
	CatalogService_CreateSession_FullMethodName  = "/catalog.v1.CatalogService/CreateSession"
	CatalogService_GetSession_FullMethodName     = "/catalog.v1.CatalogService/GetSession"
	CatalogService_ToggleFavorite_FullMethodName = "/catalog.v1.CatalogService/ToggleFavorite"
	CatalogService_OpenDetail_FullMethodName     = "/catalog.v1.CatalogService/OpenDetail"
	CatalogService_CloseDetail_FullMethodName    = "/catalog.v1.CatalogService/CloseDetail"
)

// CatalogServiceServer is the server API for CatalogService.
type CatalogServiceServer interface {
	SearchItems(context.Context, *SearchItemsRequest) (*SearchItemsResponse, error)
	GetItem(context.Context, *GetItemRequest) (*GetItemResponse, error)
	ListFacets(context.Context, *ListFacetsRequest) (*ListFacetsResponse, error)
	CreateSession(context.Context, *CreateSessionRequest) (*SessionResponse, error)
	GetSession(context.Context, *GetSessionRequest) (*SessionResponse, error)
	ToggleFavorite(context.Context, *ToggleFavoriteRequest) (*ToggleFavoriteResponse, error)
	OpenDetail(context.Context, *OpenDetailRequest) (*SessionResponse, error)
	CloseDetail(context.Context, *CloseDetailRequest) (*SessionResponse, error)
}

// UnimplementedCatalogServiceServer can be embedded to have forward compatible implementations.
type UnimplementedCatalogServiceServer struct{}

func (UnimplementedCatalogServiceServer) SearchItems(context.Context, *SearchItemsRequest) (*SearchItemsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SearchItems not implemented")
}
func (UnimplementedCatalogServiceServer) GetItem(context.Context, *GetItemRequest) (*GetItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetItem not implemented")
}
func (UnimplementedCatalogServiceServer) ListFacets(context.Context, *ListFacetsRequest) (*ListFacetsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListFacets not implemented")
}
func (UnimplementedCatalogServiceServer) CreateSession(context.Context, *CreateSessionRequest) (*SessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateSession not implemented")
}
func (UnimplementedCatalogServiceServer) GetSession(context.Context, *GetSessionRequest) (*SessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSession not implemented")
}
func (UnimplementedCatalogServiceServer) ToggleFavorite(context.Context, *ToggleFavoriteRequest) (*ToggleFavoriteResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ToggleFavorite not implemented")
}
func (UnimplementedCatalogServiceServer) OpenDetail(context.Context, *OpenDetailRequest) (*SessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method OpenDetail not implemented")
}
func (UnimplementedCatalogServiceServer) CloseDetail(context.Context, *CloseDetailRequest) (*SessionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CloseDetail not implemented")
}

// RegisterCatalogServiceServer registers srv on s.
func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

// unaryHandler adapts one typed server method to a grpc.MethodHandler.
func unaryHandler[Req, Resp any](fullMethod string, call func(CatalogServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CatalogServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CatalogServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// CatalogService_ServiceDesc is the grpc.ServiceDesc for CatalogService.
var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SearchItems", Handler: unaryHandler(CatalogService_SearchItems_FullMethodName, CatalogServiceServer.SearchItems)},
		{MethodName: "GetItem", Handler: unaryHandler(CatalogService_GetItem_FullMethodName, CatalogServiceServer.GetItem)},
		{MethodName: "ListFacets", Handler: unaryHandler(CatalogService_ListFacets_FullMethodName, CatalogServiceServer.ListFacets)},
		{MethodName: "CreateSession", Handler: unaryHandler(CatalogService_CreateSession_FullMethodName, CatalogServiceServer.CreateSession)},
		{MethodName: "GetSession", Handler: unaryHandler(CatalogService_GetSession_FullMethodName, CatalogServiceServer.GetSession)},
		{MethodName: "ToggleFavorite", Handler: unaryHandler(CatalogService_ToggleFavorite_FullMethodName, CatalogServiceServer.ToggleFavorite)},
		{MethodName: "OpenDetail", Handler: unaryHandler(CatalogService_OpenDetail_FullMethodName, CatalogServiceServer.OpenDetail)},
		{MethodName: "CloseDetail", Handler: unaryHandler(CatalogService_CloseDetail_FullMethodName, CatalogServiceServer.CloseDetail)},
	},
	Streams: []grpc.StreamDesc{},
}
