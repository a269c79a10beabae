package apitest

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"warehouse.GO/api/realtime"
	"warehouse.GO/api/receiving"
	"warehouse.GO/api/stock"
	"warehouse.GO/config"
	"warehouse.GO/core/auth"
	entity "warehouse.GO/model/entity"
)

const (
	testUser = "apiuser"
	testPass = "apipass"
)

func testDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.SKU{}, &entity.Location{}, &entity.Movement{},
		&entity.InventoryItem{}, &entity.ReceivingEntry{}, &entity.ApiToken{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// newTestApp wires the /api group the same way main does: basic auth
// plus the stock, receiving and realtime modules.
func newTestApp(t *testing.T, db *gorm.DB) *echo.Echo {
	t.Helper()
	t.Setenv("AUTH_TYPE", "")
	t.Setenv("API_USER", testUser)
	t.Setenv("API_PASS", testPass)
	config.LoadAppConfig()

	e := echo.New()
	g := e.Group("/api")
	g.Use(auth.Middleware(db))
	stock.RegisterStockRoutes(g, db)
	receiving.RegisterReceivingRoutes(g, db)
	realtime.RegisterRealtimeRoutes(g, db)
	return e
}

func seedSkuLoc(t *testing.T, db *gorm.DB, num string) (uint, uint) {
	t.Helper()
	s := entity.SKU{SkuNum: num, Description: "Widget", Status: entity.SkuStatusActive}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed sku: %v", err)
	}
	l := entity.Location{RowCode: "R1", BayNum: "1", LevelCode: "1", Side: "FRONT"}
	if err := db.Create(&l).Error; err != nil {
		t.Fatalf("seed location: %v", err)
	}
	return s.SkuID, l.LocID
}

func seedMovement(t *testing.T, db *gorm.DB, skuID, locID uint, typ string, qty float64) {
	t.Helper()
	m := entity.Movement{
		SkuID: skuID, LocID: locID,
		MovementType: typ, QuantityChange: qty,
		CreatedAt: time.Now(),
	}
	if err := db.Create(&m).Error; err != nil {
		t.Fatalf("seed movement: %v", err)
	}
}
