package graphqltest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	graphqlApi "warehouse.GO/api/graphql"
	"warehouse.GO/graphqlserver"
	entity "warehouse.GO/model/entity"
)

// End to end over the real resolvers: sqlite ledger in, GraphQL out.
func TestGraphQL_BalancesAgainstDB(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.SKU{}, &entity.Location{}, &entity.Movement{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	s := entity.SKU{SkuNum: "GQL-001", Description: "Widget", Status: entity.SkuStatusActive}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed sku: %v", err)
	}
	l := entity.Location{RowCode: "R1", BayNum: "1", LevelCode: "1", Side: "FRONT"}
	if err := db.Create(&l).Error; err != nil {
		t.Fatalf("seed location: %v", err)
	}
	now := time.Now()
	for _, m := range []entity.Movement{
		{SkuID: s.SkuID, LocID: l.LocID, MovementType: entity.MovementIn, QuantityChange: 10, CreatedAt: now},
		{SkuID: s.SkuID, LocID: l.LocID, MovementType: entity.MovementOut, QuantityChange: 3, CreatedAt: now.Add(time.Minute)},
	} {
		if err := db.Create(&m).Error; err != nil {
			t.Fatalf("seed movement: %v", err)
		}
	}

	schema, err := graphqlserver.NewSchema(db)
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}
	e := echo.New()
	graphqlApi.RegisterGraphQLRoutesWithSchema(e, schema)

	body, _ := json.Marshal(map[string]string{
		"query": `{ balances(skuPattern: "GQL") { rows { skuNum onHand } grandTotal } movements(skuPattern: "GQL") { rows { runningBalance } strategy } }`,
	})
	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data struct {
			Balances struct {
				Rows []struct {
					SkuNum string  `json:"skuNum"`
					OnHand float64 `json:"onHand"`
				} `json:"rows"`
				GrandTotal float64 `json:"grandTotal"`
			} `json:"balances"`
			Movements struct {
				Rows []struct {
					RunningBalance float64 `json:"runningBalance"`
				} `json:"rows"`
				Strategy string `json:"strategy"`
			} `json:"movements"`
		} `json:"data"`
		Errors []struct{ Message string } `json:"errors"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	if resp.Data.Balances.GrandTotal != 7 {
		t.Errorf("grandTotal = %v, want 7", resp.Data.Balances.GrandTotal)
	}
	if len(resp.Data.Balances.Rows) != 1 || resp.Data.Balances.Rows[0].OnHand != 7 {
		t.Errorf("balance rows = %+v", resp.Data.Balances.Rows)
	}
	if len(resp.Data.Movements.Rows) != 2 || resp.Data.Movements.Rows[0].RunningBalance != 7 {
		t.Errorf("movement rows = %+v", resp.Data.Movements.Rows)
	}
}

func TestGraphQL_MalformedBody(t *testing.T) {
	e := echo.New()
	graphqlApi.RegisterGraphQLRoutesWithSchema(e, NewMockSchema())

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
