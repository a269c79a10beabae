package entity

import "time"

// Movement types. IN and OUT carry a positive magnitude; ADJUSTMENT
// carries a signed quantity_change.
const (
	MovementIn         = "IN"
	MovementOut        = "OUT"
	MovementAdjustment = "ADJUSTMENT"
)

// Movement represents wh_movement, the append-only ledger. Rows are
// never updated or deleted; corrections are new ADJUSTMENT entries.
// movement_id breaks ties between identical timestamps.
type Movement struct {
	MovementID     uint      `gorm:"column:movement_id;primaryKey;autoIncrement" json:"movement_id"`
	SkuID          uint      `gorm:"column:sku_id;not null;index:idx_wh_movement_pair,priority:1" json:"sku_id"`
	LocID          uint      `gorm:"column:loc_id;not null;index:idx_wh_movement_pair,priority:2" json:"loc_id"`
	MovementType   string    `gorm:"column:movement_type;type:varchar(16);not null" json:"movement_type"`
	QuantityChange float64   `gorm:"column:quantity_change;type:decimal(12,4);not null" json:"quantity_change"`
	Reference      string    `gorm:"column:reference;type:varchar(255);not null;default:''" json:"reference"`
	UserID         uint      `gorm:"column:user_id;not null;default:0" json:"user_id"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

func (Movement) TableName() string {
	return "wh_movement"
}

// SignedDelta returns the movement's contribution to on-hand balance.
func (m Movement) SignedDelta() float64 {
	if m.MovementType == MovementOut {
		return -m.QuantityChange
	}
	return m.QuantityChange
}
