package graphqltest

import (
	"context"
	"encoding/json"

	gql "github.com/graph-gophers/graphql-go"

	"warehouse.GO/graphql"
	gqlmodels "warehouse.GO/graphql/models"
)

// MockRootResolver is the root for graphql-go tests (no DB).
type MockRootResolver struct{}

type mockBalancesArgs struct {
	SkuPattern  string
	PageSize    int32
	CurrentPage int32
}

func (m *MockRootResolver) Balances(ctx context.Context, args mockBalancesArgs) (*gqlmodels.BalanceList, error) {
	return &gqlmodels.BalanceList{
		Rows: []*gqlmodels.BalanceRow{
			{SkuNum: "MOCK-SKU-1", Description: "Mock Widget", BinCode: "R1-1-1-FRONT", OnHand: 7},
		},
		GrandTotal:    7,
		TotalRowCount: 1,
		PageCount:     1,
		Page:          args.CurrentPage,
		PageSize:      args.PageSize,
	}, nil
}

type mockMovementsArgs struct {
	SkuPattern string
}

func (m *MockRootResolver) Movements(ctx context.Context, args mockMovementsArgs) (*gqlmodels.MovementDetail, error) {
	return &gqlmodels.MovementDetail{
		Rows: []*gqlmodels.MovementRow{
			{MovementID: 2, SkuNum: "MOCK-SKU-1", BinCode: "R1-1-1-FRONT", MovementType: "OUT", QuantityChange: 3, RunningBalance: 7, CreatedAt: "2026-03-01T08:01:00Z"},
			{MovementID: 1, SkuNum: "MOCK-SKU-1", BinCode: "R1-1-1-FRONT", MovementType: "IN", QuantityChange: 10, RunningBalance: 10, CreatedAt: "2026-03-01T08:00:00Z"},
		},
		Strategy: "native",
	}, nil
}

type mockSkusArgs struct {
	Query string
	Limit int32
}

func (m *MockRootResolver) Skus(ctx context.Context, args mockSkusArgs) ([]*gqlmodels.Sku, error) {
	return []*gqlmodels.Sku{{SkuNum: "MOCK-SKU-1", Description: "Mock Widget", Status: 1}}, nil
}

type mockExtensionArgs struct {
	Name string
	Args *string
}

func (m *MockRootResolver) Extension(ctx context.Context, args mockExtensionArgs) (*string, error) {
	b, _ := json.Marshal(map[string]string{"echo": args.Name})
	s := string(b)
	return &s, nil
}

// NewMockSchema parses the real schema against the mock root.
func NewMockSchema() *gql.Schema {
	return gql.MustParseSchema(graphql.Schema(), &MockRootResolver{}, gql.UseFieldResolvers())
}
