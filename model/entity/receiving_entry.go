package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Receiving queue states. PENDING is the only non-terminal state.
const (
	ReceivingPending  = "PENDING"
	ReceivingApproved = "APPROVED"
	ReceivingRejected = "REJECTED"
)

// ReceivingEntry represents wh_receiving_queue, the staging area for
// incoming stock awaiting human approval.
type ReceivingEntry struct {
	QueueID       uint           `gorm:"column:queue_id;primaryKey;autoIncrement" json:"queue_id"`
	SkuID         uint           `gorm:"column:sku_id;not null;index" json:"sku_id"`
	Quantity      float64        `gorm:"column:quantity;type:decimal(12,4);not null" json:"quantity"`
	SupplierName  string         `gorm:"column:supplier_name;type:varchar(128);not null;default:''" json:"supplier_name"`
	PONumber      string         `gorm:"column:po_number;type:varchar(64);not null;default:''" json:"po_number"`
	ReferenceNote string         `gorm:"column:reference_note;type:varchar(255);not null;default:''" json:"reference_note"`
	ReceivedBy    uint           `gorm:"column:received_by;not null;default:0" json:"received_by"`
	Status        string         `gorm:"column:status;type:varchar(16);not null;default:'PENDING';index" json:"status"`
	Metadata      datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ProcessedAt   *time.Time     `gorm:"column:processed_at" json:"processed_at,omitempty"`
}

func (ReceivingEntry) TableName() string {
	return "wh_receiving_queue"
}
