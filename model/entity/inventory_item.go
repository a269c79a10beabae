package entity

import "time"

// InventoryItem represents wh_inventory, the per-(sku, location)
// quantity row maintained transactionally alongside ledger appends.
// Reported balances are always re-derived from the ledger; this row
// exists for collaborators and reconciliation audits.
type InventoryItem struct {
	InvID     uint      `gorm:"column:inv_id;primaryKey;autoIncrement" json:"inv_id"`
	SkuID     uint      `gorm:"column:sku_id;not null;uniqueIndex:idx_wh_inventory_unq,priority:1" json:"sku_id"`
	LocID     uint      `gorm:"column:loc_id;not null;uniqueIndex:idx_wh_inventory_unq,priority:2" json:"loc_id"`
	Qty       float64   `gorm:"column:qty;type:decimal(12,4);not null;default:0" json:"qty"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (InventoryItem) TableName() string {
	return "wh_inventory"
}
