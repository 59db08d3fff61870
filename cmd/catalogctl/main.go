package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/light-bringer/smartcup-service/api/catalog/v1"
)

const usage = `usage: catalogctl [-addr host:port] <command> [flags]

commands:
  search   [-q text] [-cafe a,b] [-category a,b] [-temp ICE|HOT] [-sort key] [-page n] [-max-price n] [-session id] [-favorites]
  item     <cafe||name>
  facets
  session  new | show <id> | fav <id> <item> | open <id> <item> | close <id>`

func main() {
	addr := flag.String("addr", getEnvOrDefault("CATALOG_ADDR", "localhost:9090"), "gRPC server address")
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	// Connect to gRPC server
	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	client := pb.NewCatalogServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	args := flag.Args()
	switch args[0] {
	case "search":
		err = runSearch(ctx, client, args[1:])
	case "item":
		err = runItem(ctx, client, args[1:])
	case "facets":
		err = runFacets(ctx, client)
	case "session":
		err = runSession(ctx, client, args[1:])
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s failed: %v", args[0], err)
	}
}

func runSearch(ctx context.Context, client pb.CatalogServiceClient, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	q := fs.String("q", "", "search text")
	cafes := fs.String("cafe", "", "comma separated cafes")
	categories := fs.String("category", "", "comma separated categories")
	temp := fs.String("temp", "", "temperature")
	sortKey := fs.String("sort", "", "sort key")
	page := fs.Int("page", 1, "page number")
	maxPrice := fs.Int("max-price", -1, "maximum price")
	session := fs.String("session", "", "session id")
	favorites := fs.Bool("favorites", false, "only favorites of the session")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := &pb.SearchItemsRequest{
		Search:        *q,
		Cafes:         splitList(*cafes),
		Categories:    splitList(*categories),
		Temperature:   *temp,
		Sort:          *sortKey,
		Page:          *page,
		SessionID:     *session,
		FavoritesOnly: *favorites,
	}
	if *maxPrice >= 0 {
		req.Ranges = append(req.Ranges, &pb.Range{Attribute: "price", Max: maxPrice})
	}

	resp, err := client.SearchItems(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("%d matches, page %d/%d (sort: %s)\n\n", resp.Total, resp.Page, resp.PageCount, resp.Sort)
	for i, item := range resp.Items {
		printItem((resp.Page-1)*resp.PageSize+i+1, item)
	}
	return nil
}

func runItem(ctx context.Context, client pb.CatalogServiceClient, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected one item id")
	}
	resp, err := client.GetItem(ctx, &pb.GetItemRequest{ItemID: args[0]})
	if err != nil {
		return err
	}
	printItem(1, resp.Item)
	return nil
}

func runFacets(ctx context.Context, client pb.CatalogServiceClient) error {
	resp, err := client.ListFacets(ctx, &pb.ListFacetsRequest{})
	if err != nil {
		return err
	}

	fmt.Printf("Items: %d\n", resp.ItemCount)
	fmt.Printf("Cafes: %s\n", strings.Join(resp.Cafes, ", "))
	fmt.Printf("Categories: %s\n", strings.Join(resp.Categories, ", "))
	fmt.Printf("Temperatures: %s\n", strings.Join(resp.Temperatures, ", "))
	fmt.Printf("Sort keys: %s\n", strings.Join(resp.SortKeys, ", "))
	for _, attr := range []string{"calories", "caffeine", "sugar", "fat", "sodium", "volume", "price"} {
		fmt.Printf("Max %s: %d\n", attr, resp.Max[attr])
	}
	return nil
}

func runSession(ctx context.Context, client pb.CatalogServiceClient, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("expected a session command")
	}

	var (
		resp *pb.SessionResponse
		err  error
	)
	switch {
	case args[0] == "new":
		resp, err = client.CreateSession(ctx, &pb.CreateSessionRequest{})
	case args[0] == "show" && len(args) == 2:
		resp, err = client.GetSession(ctx, &pb.GetSessionRequest{SessionID: args[1]})
	case args[0] == "fav" && len(args) == 3:
		var toggled *pb.ToggleFavoriteResponse
		toggled, err = client.ToggleFavorite(ctx, &pb.ToggleFavoriteRequest{SessionID: args[1], ItemID: args[2]})
		if err == nil {
			fmt.Printf("Favorite: %v\n", toggled.Favorite)
			resp = &pb.SessionResponse{Session: toggled.Session}
		}
	case args[0] == "open" && len(args) == 3:
		resp, err = client.OpenDetail(ctx, &pb.OpenDetailRequest{SessionID: args[1], ItemID: args[2]})
	case args[0] == "close" && len(args) == 2:
		resp, err = client.CloseDetail(ctx, &pb.CloseDetailRequest{SessionID: args[1]})
	default:
		return fmt.Errorf("unknown session command %q", strings.Join(args, " "))
	}
	if err != nil {
		return err
	}

	s := resp.Session
	fmt.Printf("Session: %s\n", s.ID)
	fmt.Printf("Last seen: %s\n", s.LastSeen.Format("2006-01-02 15:04:05"))
	fmt.Printf("Favorites: %s\n", strings.Join(s.Favorites, ", "))
	if s.Detail != nil {
		fmt.Printf("Detail: %s\n", s.Detail.Title)
	}
	for i, item := range s.Recents {
		fmt.Printf("Recent %d: %s\n", i+1, item.Title)
	}
	return nil
}

func printItem(n int, item *pb.Item) {
	star := ""
	if item.Favorite {
		star = " *"
	}
	fmt.Printf("%d. %s%s\n", n, item.Title, star)
	fmt.Printf("   ID: %s\n", item.ID)
	fmt.Printf("   Category: %s\n", item.Category)
	fmt.Printf("   %d kcal, caffeine %d mg, sugar %d g, fat %d g, sodium %d mg\n",
		item.Calories, item.Caffeine, item.Sugar, item.Fat, item.Sodium)
	fmt.Printf("   %d ml, %d KRW\n\n", item.Volume, item.Price)
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
