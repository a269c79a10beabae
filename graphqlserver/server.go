package graphqlserver

import (
	"context"
	"encoding/json"
	"time"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"gorm.io/gorm"

	"warehouse.GO/graphql"
	gqlmodels "warehouse.GO/graphql/models"
	"warehouse.GO/graphql/registry"
	searchService "warehouse.GO/service/search"
	stockService "warehouse.GO/service/stock"
)

// RootResolver is the root for graphql-go.
type RootResolver struct {
	DB *gorm.DB
}

// BalancesArgs matches the balances query arguments (defaults in schema: pageSize=20, currentPage=1).
type BalancesArgs struct {
	SkuPattern  string
	PageSize    int32
	CurrentPage int32
}

func (r *RootResolver) Balances(ctx context.Context, args BalancesArgs) (*gqlmodels.BalanceList, error) {
	list, err := stockService.ListBalances(r.DB, args.SkuPattern, int(args.CurrentPage), int(args.PageSize))
	if err != nil {
		return nil, err
	}
	out := &gqlmodels.BalanceList{
		Rows:          make([]*gqlmodels.BalanceRow, 0, len(list.Rows)),
		GrandTotal:    list.GrandTotal,
		TotalRowCount: int32(list.TotalRowCount),
		PageCount:     int32(list.PageCount),
		Page:          int32(list.Page),
		PageSize:      int32(list.PageSize),
	}
	for _, row := range list.Rows {
		out.Rows = append(out.Rows, &gqlmodels.BalanceRow{
			SkuNum:      row.SkuNum,
			Description: row.Description,
			BinCode:     row.BinCode,
			OnHand:      row.OnHand,
		})
	}
	return out, nil
}

// MovementsArgs matches the movements query arguments.
type MovementsArgs struct {
	SkuPattern string
}

func (r *RootResolver) Movements(ctx context.Context, args MovementsArgs) (*gqlmodels.MovementDetail, error) {
	detail, err := stockService.DetailsForSku(r.DB, args.SkuPattern)
	if err != nil {
		return nil, err
	}
	out := &gqlmodels.MovementDetail{
		Rows:     make([]*gqlmodels.MovementRow, 0, len(detail.Rows)),
		Strategy: detail.Strategy,
	}
	for _, row := range detail.Rows {
		out.Rows = append(out.Rows, &gqlmodels.MovementRow{
			MovementID:     int32(row.MovementID),
			SkuNum:         row.SkuNum,
			BinCode:        row.BinCode,
			MovementType:   row.MovementType,
			QuantityChange: row.QuantityChange,
			Reference:      row.Reference,
			UserID:         int32(row.UserID),
			CreatedAt:      row.CreatedAt.Format(time.RFC3339),
			RunningBalance: row.RunningBalance,
		})
	}
	return out, nil
}

// SkusArgs matches the skus query arguments.
type SkusArgs struct {
	Query string
	Limit int32
}

func (r *RootResolver) Skus(ctx context.Context, args SkusArgs) ([]*gqlmodels.Sku, error) {
	skus, err := searchService.GetSearchService().SearchSkus(ctx, r.DB, args.Query, int(args.Limit))
	if err != nil {
		return nil, err
	}
	out := make([]*gqlmodels.Sku, 0, len(skus))
	for _, s := range skus {
		out = append(out, &gqlmodels.Sku{
			SkuNum:      s.SkuNum,
			Description: s.Description,
			Status:      int32(s.Status),
		})
	}
	return out, nil
}

// ExtensionArgs for extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

func (r *RootResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(db *gorm.DB) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{DB: db}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
