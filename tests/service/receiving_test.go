package servicetest

import (
	"testing"

	apperrors "warehouse.GO/core/errors"
	entity "warehouse.GO/model/entity"
	ledgerRepo "warehouse.GO/model/repository/ledger"
	receivingService "warehouse.GO/service/receiving"
)

func TestQueueReceipt_Validation(t *testing.T) {
	db := testDB(t)
	sku := seedSku(t, db, "WID-200", "Widget")

	if _, err := receivingService.QueueReceipt(db, receivingService.ReceiptInput{
		SkuID: sku, Quantity: 0,
	}); apperrors.CodeOf(err) != apperrors.CodeValidation {
		t.Errorf("zero quantity code = %q, want validation", apperrors.CodeOf(err))
	}

	if _, err := receivingService.QueueReceipt(db, receivingService.ReceiptInput{
		SkuID: 9999, Quantity: 5,
	}); apperrors.CodeOf(err) != apperrors.CodeNotFound {
		t.Errorf("missing sku code = %q, want not found", apperrors.CodeOf(err))
	}
}

func TestApprove_CreditsInventoryAndLedgerOnce(t *testing.T) {
	db := testDB(t)
	sku := seedSku(t, db, "WID-201", "Widget")
	dock := seedLoc(t, db, "DOCK", "1", "0", "IN")

	queueID, err := receivingService.QueueReceipt(db, receivingService.ReceiptInput{
		SkuID: sku, Quantity: 12, PONumber: "PO-778", ReceivedBy: 42,
	})
	if err != nil {
		t.Fatalf("QueueReceipt: %v", err)
	}

	if err := receivingService.Approve(db, queueID, dock); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	var e entity.ReceivingEntry
	if err := db.First(&e, "queue_id = ?", queueID).Error; err != nil {
		t.Fatalf("reload entry: %v", err)
	}
	if e.Status != entity.ReceivingApproved {
		t.Errorf("status = %q, want APPROVED", e.Status)
	}
	if e.ProcessedAt == nil {
		t.Error("processed_at not set")
	}

	balance, err := ledgerRepo.BalanceTx(db, sku, dock)
	if err != nil {
		t.Fatalf("BalanceTx: %v", err)
	}
	if balance != 12 {
		t.Errorf("dock balance = %v, want 12", balance)
	}

	var m entity.Movement
	if err := db.First(&m, "sku_id = ?", sku).Error; err != nil {
		t.Fatalf("load movement: %v", err)
	}
	if m.MovementType != entity.MovementIn || m.Reference != "PO PO-778" || m.UserID != 42 {
		t.Errorf("movement = %+v", m)
	}

	// Second approval must be a silent no-op: no double credit.
	if err := receivingService.Approve(db, queueID, dock); err != nil {
		t.Fatalf("second Approve: %v", err)
	}
	var count int64
	db.Model(&entity.Movement{}).Count(&count)
	if count != 1 {
		t.Errorf("ledger rows after double approve = %d, want 1", count)
	}
	balance, _ = ledgerRepo.BalanceTx(db, sku, dock)
	if balance != 12 {
		t.Errorf("balance after double approve = %v, want 12", balance)
	}
}

func TestApprove_MissingEntry_NoOp(t *testing.T) {
	db := testDB(t)
	dock := seedLoc(t, db, "DOCK", "1", "0", "IN")

	if err := receivingService.Approve(db, 9999, dock); err != nil {
		t.Fatalf("Approve missing entry should be a no-op, got %v", err)
	}
	var count int64
	db.Model(&entity.Movement{}).Count(&count)
	if count != 0 {
		t.Errorf("ledger rows = %d, want 0", count)
	}
}

func TestReject_TerminalWithoutSideEffects(t *testing.T) {
	db := testDB(t)
	sku := seedSku(t, db, "WID-202", "Widget")
	dock := seedLoc(t, db, "DOCK", "1", "0", "IN")

	queueID, err := receivingService.QueueReceipt(db, receivingService.ReceiptInput{
		SkuID: sku, Quantity: 8,
	})
	if err != nil {
		t.Fatalf("QueueReceipt: %v", err)
	}

	if err := receivingService.Reject(db, queueID); err != nil {
		t.Fatalf("Reject: %v", err)
	}

	var e entity.ReceivingEntry
	db.First(&e, "queue_id = ?", queueID)
	if e.Status != entity.ReceivingRejected {
		t.Errorf("status = %q, want REJECTED", e.Status)
	}

	// No inventory, no ledger.
	var movements, inv int64
	db.Model(&entity.Movement{}).Count(&movements)
	db.Model(&entity.InventoryItem{}).Count(&inv)
	if movements != 0 || inv != 0 {
		t.Errorf("side effects after reject: movements=%d inventory=%d", movements, inv)
	}

	// Terminal: a later approve must not resurrect it.
	if err := receivingService.Approve(db, queueID, dock); err != nil {
		t.Fatalf("Approve after reject: %v", err)
	}
	db.Model(&entity.Movement{}).Count(&movements)
	if movements != 0 {
		t.Errorf("approve after reject wrote %d ledger rows, want 0", movements)
	}
	db.First(&e, "queue_id = ?", queueID)
	if e.Status != entity.ReceivingRejected {
		t.Errorf("status after approve attempt = %q, want REJECTED", e.Status)
	}
}

func TestList_FilterByStatus(t *testing.T) {
	db := testDB(t)
	sku := seedSku(t, db, "WID-203", "Widget")

	var ids []uint
	for i := 0; i < 3; i++ {
		id, err := receivingService.QueueReceipt(db, receivingService.ReceiptInput{SkuID: sku, Quantity: float64(i + 1)})
		if err != nil {
			t.Fatalf("QueueReceipt: %v", err)
		}
		ids = append(ids, id)
	}
	if err := receivingService.Reject(db, ids[1]); err != nil {
		t.Fatalf("Reject: %v", err)
	}

	pending, err := receivingService.List(db, entity.ReceivingPending)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(pending) != 2 {
		t.Errorf("pending = %d, want 2", len(pending))
	}

	all, err := receivingService.List(db, "")
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all = %d, want 3", len(all))
	}
}
