package servicetest

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	entity "warehouse.GO/model/entity"
)

func testDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.SKU{}, &entity.Location{}, &entity.Movement{},
		&entity.InventoryItem{}, &entity.ReceivingEntry{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, v interface{}) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create %T: %v", v, err)
	}
}

func seedSku(t *testing.T, db *gorm.DB, num, desc string) uint {
	t.Helper()
	s := entity.SKU{SkuNum: num, Description: desc, Status: entity.SkuStatusActive}
	mustCreate(t, db, &s)
	return s.SkuID
}

func seedLoc(t *testing.T, db *gorm.DB, row, bay, level, side string) uint {
	t.Helper()
	l := entity.Location{RowCode: row, BayNum: bay, LevelCode: level, Side: side}
	mustCreate(t, db, &l)
	return l.LocID
}

func seedMovement(t *testing.T, db *gorm.DB, skuID, locID uint, typ string, qty float64, at time.Time) uint {
	t.Helper()
	m := entity.Movement{
		SkuID: skuID, LocID: locID,
		MovementType: typ, QuantityChange: qty,
		CreatedAt: at,
	}
	mustCreate(t, db, &m)
	return m.MovementID
}

var t0 = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
