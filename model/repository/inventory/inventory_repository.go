package inventory

import (
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	entity "warehouse.GO/model/entity"
)

type InventoryRepository struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

func NewInventoryRepository(db *gorm.DB) (*InventoryRepository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return &InventoryRepository{db: db, sqlDB: sqlDB}, nil
}

// GetQuantity returns the stored inventory qty for a (sku, loc) pair.
// Uses raw SQL for minimal overhead
func (r *InventoryRepository) GetQuantity(skuID, locID uint) (float64, bool) {
	const query = `SELECT qty FROM wh_inventory WHERE sku_id = ? AND loc_id = ? LIMIT 1`
	var qty sql.NullFloat64
	if err := r.sqlDB.QueryRow(query, skuID, locID).Scan(&qty); err != nil || !qty.Valid {
		return 0, false
	}
	return qty.Float64, true
}

// GetAllForSku returns inventory rows for a SKU across all bins.
func (r *InventoryRepository) GetAllForSku(skuID uint) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.db.Where("sku_id = ?", skuID).Find(&items).Error
	return items, err
}

// GetTotalBySkuNum sums stored qty across all bins for a sku number.
func (r *InventoryRepository) GetTotalBySkuNum(skuNum string) (float64, error) {
	const query = `
		SELECT COALESCE(SUM(i.qty), 0)
		FROM wh_inventory i
		JOIN wh_sku s ON s.sku_id = i.sku_id
		WHERE s.sku_num = ?`
	var total float64
	err := r.sqlDB.QueryRow(query, skuNum).Scan(&total)
	return total, err
}

// UpsertAddTx creates the inventory row at zero if absent, then adds
// delta. Runs inside the caller's transaction.
func UpsertAddTx(tx *gorm.DB, skuID, locID uint, delta float64) error {
	row := entity.InventoryItem{SkuID: skuID, LocID: locID, Qty: 0}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sku_id"}, {Name: "loc_id"}},
		DoNothing: true,
	}).Create(&row).Error
	if err != nil {
		return err
	}
	return tx.Model(&entity.InventoryItem{}).
		Where("sku_id = ? AND loc_id = ?", skuID, locID).
		Update("qty", gorm.Expr("qty + ?", delta)).Error
}
