package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/light-bringer/smartcup-service/api/catalog/v1"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
)

// CatalogHandler exposes the catalog service as HTTP/JSON. It calls the gRPC
// service implementation in-process, so both transports share validation
// and error mapping.
type CatalogHandler struct {
	catalogService pb.CatalogServiceServer
}

// NewCatalogHandler creates a new HTTP catalog handler.
func NewCatalogHandler(catalogService pb.CatalogServiceServer) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Register binds the catalog routes to mux.
func (h *CatalogHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/items", h.searchItems)
	mux.HandleFunc("GET /api/v1/items/{id}", h.getItem)
	mux.HandleFunc("GET /api/v1/facets", h.listFacets)
	mux.HandleFunc("POST /api/v1/sessions", h.createSession)
	mux.HandleFunc("GET /api/v1/sessions/{session}", h.getSession)
	mux.HandleFunc("POST /api/v1/sessions/{session}/favorites/{item}", h.toggleFavorite)
	mux.HandleFunc("POST /api/v1/sessions/{session}/detail/{item}", h.openDetail)
	mux.HandleFunc("DELETE /api/v1/sessions/{session}/detail", h.closeDetail)
}

// searchItems handles GET /api/v1/items.
//
// Query parameters: q, cafe (repeatable), category (repeatable), temperature,
// <attribute>_min, <attribute>_max, sort, page, session_id, favorites_only.
func (h *CatalogHandler) searchItems(w http.ResponseWriter, r *http.Request) {
	req, err := parseSearchRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.catalogService.SearchItems(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) getItem(w http.ResponseWriter, r *http.Request) {
	resp, err := h.catalogService.GetItem(r.Context(), &pb.GetItemRequest{
		ItemID:    r.PathValue("id"),
		SessionID: r.URL.Query().Get("session_id"),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) listFacets(w http.ResponseWriter, r *http.Request) {
	resp, err := h.catalogService.ListFacets(r.Context(), &pb.ListFacetsRequest{})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) createSession(w http.ResponseWriter, r *http.Request) {
	resp, err := h.catalogService.CreateSession(r.Context(), &pb.CreateSessionRequest{})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Location", "/api/v1/sessions/"+resp.Session.ID)
	writeJSON(w, http.StatusCreated, resp)
}

func (h *CatalogHandler) getSession(w http.ResponseWriter, r *http.Request) {
	resp, err := h.catalogService.GetSession(r.Context(), &pb.GetSessionRequest{SessionID: r.PathValue("session")})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	resp, err := h.catalogService.ToggleFavorite(r.Context(), &pb.ToggleFavoriteRequest{
		SessionID: r.PathValue("session"),
		ItemID:    r.PathValue("item"),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) openDetail(w http.ResponseWriter, r *http.Request) {
	resp, err := h.catalogService.OpenDetail(r.Context(), &pb.OpenDetailRequest{
		SessionID: r.PathValue("session"),
		ItemID:    r.PathValue("item"),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *CatalogHandler) closeDetail(w http.ResponseWriter, r *http.Request) {
	resp, err := h.catalogService.CloseDetail(r.Context(), &pb.CloseDetailRequest{SessionID: r.PathValue("session")})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// parseSearchRequest maps query parameters onto a SearchItemsRequest.
// Only malformed numbers and booleans are rejected here.
func parseSearchRequest(r *http.Request) (*pb.SearchItemsRequest, error) {
	query := r.URL.Query()
	req := &pb.SearchItemsRequest{
		Search:      query.Get("q"),
		Cafes:       query["cafe"],
		Categories:  query["category"],
		Temperature: query.Get("temperature"),
		Sort:        query.Get("sort"),
		SessionID:   query.Get("session_id"),
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid page %q", raw)
		}
		req.Page = page
	}

	if raw := query.Get("favorites_only"); raw != "" {
		favoritesOnly, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid favorites_only %q", raw)
		}
		req.FavoritesOnly = favoritesOnly
	}

	for _, attr := range domain.Attributes() {
		minRaw, maxRaw := query.Get(attr.String()+"_min"), query.Get(attr.String()+"_max")
		if minRaw == "" && maxRaw == "" {
			continue
		}

		rng := &pb.Range{Attribute: attr.String()}
		if minRaw != "" {
			v, err := strconv.Atoi(strings.TrimSpace(minRaw))
			if err != nil {
				return nil, fmt.Errorf("invalid %s_min %q", attr, minRaw)
			}
			rng.Min = v
		}
		if maxRaw != "" {
			v, err := strconv.Atoi(strings.TrimSpace(maxRaw))
			if err != nil {
				return nil, fmt.Errorf("invalid %s_max %q", attr, maxRaw)
			}
			rng.Max = &v
		}
		req.Ranges = append(req.Ranges, rng)
	}

	return req, nil
}

// writeServiceError translates a gRPC status into an HTTP status and JSON body.
func writeServiceError(w http.ResponseWriter, err error) {
	st := status.Convert(err)

	code := http.StatusInternalServerError
	switch st.Code() {
	case codes.InvalidArgument:
		code = http.StatusBadRequest
	case codes.NotFound:
		code = http.StatusNotFound
	case codes.Canceled:
		code = http.StatusRequestTimeout
	case codes.Unimplemented:
		code = http.StatusNotImplemented
	}
	writeError(w, code, st.Message())
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}
