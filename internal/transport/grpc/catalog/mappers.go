package catalog

import (
	pb "github.com/light-bringer/smartcup-service/api/catalog/v1"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/contracts"
	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
)

// protoRangesToDomain converts validated ranges. A missing Max is unbounded.
func protoRangesToDomain(ranges []*pb.Range) map[domain.Attribute]domain.Range {
	if len(ranges) == 0 {
		return nil
	}

	out := make(map[domain.Attribute]domain.Range, len(ranges))
	for _, r := range ranges {
		bound := domain.AtLeast(r.Min)
		if r.Max != nil {
			bound.High = *r.Max
		}
		out[domain.Attribute(r.Attribute)] = bound
	}
	return out
}

// dtoToProtoItem converts an ItemDTO to a wire Item.
func dtoToProtoItem(dto *contracts.ItemDTO) *pb.Item {
	if dto == nil {
		return nil
	}
	return &pb.Item{
		ID:          dto.ID,
		Title:       dto.Title,
		Cafe:        dto.Cafe,
		Name:        dto.Name,
		Category:    dto.Category,
		Temperature: dto.Temperature,
		Calories:    dto.Calories,
		Caffeine:    dto.Caffeine,
		Sugar:       dto.Sugar,
		Fat:         dto.Fat,
		Sodium:      dto.Sodium,
		Volume:      dto.Volume,
		Price:       dto.Price,
		Favorite:    dto.Favorite,
	}
}

func dtoToProtoItems(dtos []*contracts.ItemDTO) []*pb.Item {
	items := make([]*pb.Item, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, dtoToProtoItem(dto))
	}
	return items
}

func dtoToProtoPage(page *contracts.PageDTO) *pb.SearchItemsResponse {
	return &pb.SearchItemsResponse{
		Items:     dtoToProtoItems(page.Items),
		Total:     page.Total,
		Page:      page.Page,
		PageCount: page.PageCount,
		PageSize:  page.PageSize,
		Sort:      page.SortKey,
	}
}

func dtoToProtoSession(dto *contracts.SessionDTO) *pb.Session {
	return &pb.Session{
		ID:        dto.ID,
		Favorites: dto.Favorites,
		Recents:   dtoToProtoItems(dto.Recents),
		Detail:    dtoToProtoItem(dto.Detail),
		CreatedAt: dto.CreatedAt,
		LastSeen:  dto.LastSeen,
	}
}

func dtoToProtoFacets(dto *contracts.FacetsDTO) *pb.ListFacetsResponse {
	return &pb.ListFacetsResponse{
		Cafes:        dto.Cafes,
		Categories:   dto.Categories,
		Temperatures: dto.Temperatures,
		Max:          dto.Max,
		SortKeys:     dto.SortKeys,
		ItemCount:    dto.ItemCount,
	}
}
