// Package jobs holds the shipped cron jobs. Importing the package
// registers them; the scheduler picks them up from the cron registry.
package jobs

import (
	"log"

	"gorm.io/gorm"

	"warehouse.GO/config"
	"warehouse.GO/cron"
	entity "warehouse.GO/model/entity"
)

func init() {
	cron.Register("balanceaudit", "30 2 * * *", BalanceAuditJob)
	cron.Register("receivingreminder", "@every 1h", ReceivingReminderJob)
}

// BalanceAuditJob reconciles the stored wh_inventory quantities
// against the ledger fold and logs every drifting (sku, loc) pair.
// The ledger stays the source of truth; drift means a collaborator
// wrote inventory outside a paired ledger append.
func BalanceAuditJob(args ...string) {
	db, err := config.NewDB()
	if err != nil {
		log.Printf("balanceaudit: db connect failed: %v", err)
		return
	}
	drift, err := AuditBalances(db)
	if err != nil {
		log.Printf("balanceaudit: %v", err)
		return
	}
	for _, d := range drift {
		log.Printf("balanceaudit: drift sku_id=%d loc_id=%d stored=%v ledger=%v", d.SkuID, d.LocID, d.StoredQty, d.LedgerQty)
	}
	log.Printf("balanceaudit: done, %d drifting pairs", len(drift))
}

// Drift is one (sku, loc) pair whose stored qty disagrees with the ledger.
type Drift struct {
	SkuID     uint    `gorm:"column:sku_id"`
	LocID     uint    `gorm:"column:loc_id"`
	StoredQty float64 `gorm:"column:stored_qty"`
	LedgerQty float64 `gorm:"column:ledger_qty"`
}

// AuditBalances returns every inventory row whose qty differs from the
// ledger fold for the same pair.
func AuditBalances(db *gorm.DB) ([]Drift, error) {
	var out []Drift
	err := db.Raw(`
		SELECT i.sku_id, i.loc_id, i.qty AS stored_qty,
		       COALESCE((SELECT SUM(CASE WHEN m.movement_type = 'OUT' THEN -m.quantity_change ELSE m.quantity_change END)
		                 FROM wh_movement m WHERE m.sku_id = i.sku_id AND m.loc_id = i.loc_id), 0) AS ledger_qty
		FROM wh_inventory i
		HAVING stored_qty <> ledger_qty`).Scan(&out).Error
	return out, err
}

// ReceivingReminderJob logs how many receipts have been sitting in
// PENDING for more than a day.
func ReceivingReminderJob(args ...string) {
	db, err := config.NewDB()
	if err != nil {
		log.Printf("receivingreminder: db connect failed: %v", err)
		return
	}
	var stale int64
	err = db.Model(&entity.ReceivingEntry{}).
		Where("status = ? AND created_at < NOW() - INTERVAL 1 DAY", entity.ReceivingPending).
		Count(&stale).Error
	if err != nil {
		log.Printf("receivingreminder: %v", err)
		return
	}
	if stale > 0 {
		log.Printf("receivingreminder: %d receipts pending for more than 24h", stale)
	}
}
