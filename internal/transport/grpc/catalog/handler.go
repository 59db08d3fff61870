package catalog

import (
	"context"

	pb "github.com/light-bringer/smartcup-service/api/catalog/v1"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/queries/get_item"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/queries/get_session"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/queries/list_facets"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/queries/search_items"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/usecases/close_detail"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/usecases/create_session"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/usecases/open_detail"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/usecases/toggle_favorite"
)

// Handler implements the gRPC CatalogService interface.
// It's a thin coordinator that delegates to use cases and queries.
type Handler struct {
	pb.UnimplementedCatalogServiceServer

	// Commands
	createSession  *create_session.Interactor
	toggleFavorite *toggle_favorite.Interactor
	openDetail     *open_detail.Interactor
	closeDetail    *close_detail.Interactor

	// Queries
	searchItems *search_items.Query
	getItem     *get_item.Query
	listFacets  *list_facets.Query
	getSession  *get_session.Query
}

var _ pb.CatalogServiceServer = (*Handler)(nil)

// NewHandler creates a new gRPC catalog handler.
func NewHandler(
	createSession *create_session.Interactor,
	toggleFavorite *toggle_favorite.Interactor,
	openDetail *open_detail.Interactor,
	closeDetail *close_detail.Interactor,
	searchItems *search_items.Query,
	getItem *get_item.Query,
	listFacets *list_facets.Query,
	getSession *get_session.Query,
) *Handler {
	return &Handler{
		createSession:  createSession,
		toggleFavorite: toggleFavorite,
		openDetail:     openDetail,
		closeDetail:    closeDetail,
		searchItems:    searchItems,
		getItem:        getItem,
		listFacets:     listFacets,
		getSession:     getSession,
	}
}

// SearchItems filters, sorts and paginates the catalog.
func (h *Handler) SearchItems(ctx context.Context, req *pb.SearchItemsRequest) (*pb.SearchItemsResponse, error) {
	// 1. Validate request
	if err := validateSearchItemsRequest(req); err != nil {
		return nil, err
	}

	// 2. Map request → application request
	appReq := &search_items.Request{
		Search:        req.Search,
		Cafes:         req.Cafes,
		Categories:    req.Categories,
		Temperature:   req.Temperature,
		Ranges:        protoRangesToDomain(req.Ranges),
		SortKey:       req.Sort,
		Page:          req.Page,
		SessionID:     req.SessionID,
		FavoritesOnly: req.FavoritesOnly,
	}

	// 3. Run query
	page, err := h.searchItems.Execute(ctx, appReq)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	// 4. Return response
	return dtoToProtoPage(page), nil
}

// GetItem retrieves one item by its identity.
func (h *Handler) GetItem(ctx context.Context, req *pb.GetItemRequest) (*pb.GetItemResponse, error) {
	if err := requireField("item_id", req.ItemID); err != nil {
		return nil, err
	}

	dto, err := h.getItem.Execute(ctx, &get_item.Request{ItemID: req.ItemID, SessionID: req.SessionID})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.GetItemResponse{Item: dtoToProtoItem(dto)}, nil
}

// ListFacets returns filter options and slider maxima.
func (h *Handler) ListFacets(ctx context.Context, req *pb.ListFacetsRequest) (*pb.ListFacetsResponse, error) {
	return dtoToProtoFacets(h.listFacets.Execute(ctx)), nil
}

// CreateSession starts an empty session.
func (h *Handler) CreateSession(ctx context.Context, req *pb.CreateSessionRequest) (*pb.SessionResponse, error) {
	dto, err := h.createSession.Execute(ctx)
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.SessionResponse{Session: dtoToProtoSession(dto)}, nil
}

// GetSession retrieves a session.
func (h *Handler) GetSession(ctx context.Context, req *pb.GetSessionRequest) (*pb.SessionResponse, error) {
	if err := requireField("session_id", req.SessionID); err != nil {
		return nil, err
	}

	dto, err := h.getSession.Execute(ctx, &get_session.Request{SessionID: req.SessionID})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.SessionResponse{Session: dtoToProtoSession(dto)}, nil
}

// ToggleFavorite flips the favorite flag of an item.
func (h *Handler) ToggleFavorite(ctx context.Context, req *pb.ToggleFavoriteRequest) (*pb.ToggleFavoriteResponse, error) {
	if err := validateSessionItemRequest(req.SessionID, req.ItemID); err != nil {
		return nil, err
	}

	resp, err := h.toggleFavorite.Execute(ctx, &toggle_favorite.Request{
		SessionID: req.SessionID,
		ItemID:    req.ItemID,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.ToggleFavoriteResponse{
		Favorite: resp.Favorite,
		Session:  dtoToProtoSession(resp.Session),
	}, nil
}

// OpenDetail selects an item for detail display.
func (h *Handler) OpenDetail(ctx context.Context, req *pb.OpenDetailRequest) (*pb.SessionResponse, error) {
	if err := validateSessionItemRequest(req.SessionID, req.ItemID); err != nil {
		return nil, err
	}

	dto, err := h.openDetail.Execute(ctx, &open_detail.Request{
		SessionID: req.SessionID,
		ItemID:    req.ItemID,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.SessionResponse{Session: dtoToProtoSession(dto)}, nil
}

// CloseDetail clears the detail selection.
func (h *Handler) CloseDetail(ctx context.Context, req *pb.CloseDetailRequest) (*pb.SessionResponse, error) {
	if err := requireField("session_id", req.SessionID); err != nil {
		return nil, err
	}

	dto, err := h.closeDetail.Execute(ctx, &close_detail.Request{SessionID: req.SessionID})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return &pb.SessionResponse{Session: dtoToProtoSession(dto)}, nil
}
