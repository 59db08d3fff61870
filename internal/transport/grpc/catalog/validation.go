package catalog

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/light-bringer/smartcup-service/api/catalog/v1"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
)

// validateSearchItemsRequest validates the SearchItems request.
// Inverted ranges and out-of-range pages are left to the engine, which
// treats them as empty and clamped respectively.
func validateSearchItemsRequest(req *pb.SearchItemsRequest) error {
	if req.Page < 0 {
		return status.Error(codes.InvalidArgument, "page cannot be negative")
	}

	seen := make(map[string]bool, len(req.Ranges))
	for _, r := range req.Ranges {
		if r == nil {
			return status.Error(codes.InvalidArgument, "range cannot be null")
		}
		if _, err := domain.ParseAttribute(r.Attribute); err != nil {
			return status.Error(codes.InvalidArgument, err.Error())
		}
		if seen[r.Attribute] {
			return status.Error(codes.InvalidArgument, fmt.Sprintf("duplicate range for %s", r.Attribute))
		}
		seen[r.Attribute] = true
	}
	return nil
}

// validateSessionItemRequest validates requests that act on one item in a session.
func validateSessionItemRequest(sessionID, itemID string) error {
	if err := requireField("session_id", sessionID); err != nil {
		return err
	}
	return requireField("item_id", itemID)
}

func requireField(name, value string) error {
	if value == "" {
		return status.Error(codes.InvalidArgument, name+" is required")
	}
	return nil
}
