package entity

import "time"

// SKU statuses.
const (
	SkuStatusActive   uint8 = 1
	SkuStatusInactive uint8 = 0
)

// SKU represents wh_sku. The sku_num is the business key; movements
// reference the surrogate sku_id.
type SKU struct {
	SkuID       uint      `gorm:"column:sku_id;primaryKey;autoIncrement" json:"sku_id"`
	SkuNum      string    `gorm:"column:sku_num;type:varchar(64);not null;uniqueIndex:idx_wh_sku_num" json:"sku_num"`
	Description string    `gorm:"column:description;type:varchar(255);not null;default:''" json:"description"`
	Status      uint8     `gorm:"column:status;type:smallint unsigned;not null;default:1" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SKU) TableName() string {
	return "wh_sku"
}
