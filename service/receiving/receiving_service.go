package receiving

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "warehouse.GO/core/errors"
	entity "warehouse.GO/model/entity"
	inventoryRepo "warehouse.GO/model/repository/inventory"
	ledgerRepo "warehouse.GO/model/repository/ledger"
)

// ReceiptInput stages an incoming delivery for approval.
type ReceiptInput struct {
	SkuID         uint           `json:"sku_id"`
	Quantity      float64        `json:"quantity"`
	SupplierName  string         `json:"supplier_name"`
	PONumber      string         `json:"po_number"`
	ReferenceNote string         `json:"reference_note"`
	ReceivedBy    uint           `json:"received_by"`
	Metadata      datatypes.JSON `json:"metadata,omitempty"`
}

// QueueReceipt creates a PENDING receiving queue entry. No inventory
// or ledger effect until approval.
func QueueReceipt(db *gorm.DB, in ReceiptInput) (uint, error) {
	if in.Quantity <= 0 {
		return 0, apperrors.NewValidation("quantity must be positive", fmt.Sprintf("quantity=%v", in.Quantity))
	}
	var count int64
	if err := db.Model(&entity.SKU{}).Where("sku_id = ?", in.SkuID).Count(&count).Error; err != nil {
		return 0, apperrors.NewStorage("sku lookup", err)
	}
	if count == 0 {
		return 0, apperrors.NewNotFound("sku not found", fmt.Sprintf("sku_id=%d", in.SkuID))
	}

	e := entity.ReceivingEntry{
		SkuID:         in.SkuID,
		Quantity:      in.Quantity,
		SupplierName:  in.SupplierName,
		PONumber:      in.PONumber,
		ReferenceNote: in.ReferenceNote,
		ReceivedBy:    in.ReceivedBy,
		Status:        entity.ReceivingPending,
		Metadata:      in.Metadata,
	}
	if err := db.Create(&e).Error; err != nil {
		return 0, apperrors.NewStorage("queue receipt", err)
	}
	return e.QueueID, nil
}

// Approve transitions a PENDING entry to APPROVED and, in the same
// transaction, upserts the inventory row at the receiving dock
// location and appends exactly one IN movement. A missing or
// non-PENDING entry is a silent no-op: the status flip is guarded by
// a conditional UPDATE, so approving twice can never double-credit.
// Any failure rolls the whole unit back, leaving the entry PENDING.
func Approve(db *gorm.DB, queueID uint, dockLocID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var e entity.ReceivingEntry
		err := tx.First(&e, "queue_id = ?", queueID).Error
		if ledgerRepo.IsMissing(err) {
			return nil
		}
		if err != nil {
			return apperrors.NewStorage("receiving lookup", err)
		}
		if e.Status != entity.ReceivingPending {
			return nil
		}

		now := time.Now()
		res := tx.Model(&entity.ReceivingEntry{}).
			Where("queue_id = ? AND status = ?", queueID, entity.ReceivingPending).
			Updates(map[string]interface{}{"status": entity.ReceivingApproved, "processed_at": now})
		if res.Error != nil {
			return apperrors.NewStorage("receiving approve", res.Error)
		}
		if res.RowsAffected == 0 {
			// Lost the race to a concurrent approval; nothing to do.
			return nil
		}

		if err := inventoryRepo.UpsertAddTx(tx, e.SkuID, dockLocID, e.Quantity); err != nil {
			return apperrors.NewStorage("inventory upsert", err)
		}

		reference := e.ReferenceNote
		if e.PONumber != "" {
			reference = fmt.Sprintf("PO %s", e.PONumber)
		}
		_, err = ledgerRepo.AppendTx(tx, ledgerRepo.MovementInput{
			SkuID:          e.SkuID,
			LocID:          dockLocID,
			MovementType:   entity.MovementIn,
			QuantityChange: e.Quantity,
			Reference:      reference,
			UserID:         e.ReceivedBy,
		})
		return err
	})
}

// Reject transitions a PENDING entry to REJECTED. Terminal and
// single-fire like Approve, with no inventory or ledger side effect.
// Missing or already-processed entries are a no-op.
func Reject(db *gorm.DB, queueID uint) error {
	now := time.Now()
	res := db.Model(&entity.ReceivingEntry{}).
		Where("queue_id = ? AND status = ?", queueID, entity.ReceivingPending).
		Updates(map[string]interface{}{"status": entity.ReceivingRejected, "processed_at": now})
	if res.Error != nil {
		return apperrors.NewStorage("receiving reject", res.Error)
	}
	return nil
}

// List returns queue entries, optionally filtered by status, newest
// first.
func List(db *gorm.DB, status string) ([]entity.ReceivingEntry, error) {
	q := db.Order("created_at DESC, queue_id DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []entity.ReceivingEntry
	if err := q.Find(&out).Error; err != nil {
		return nil, apperrors.NewStorage("receiving list", err)
	}
	return out, nil
}
