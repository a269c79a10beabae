package apitest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	entity "warehouse.GO/model/entity"
	ledgerRepo "warehouse.GO/model/repository/ledger"
)

func TestReceivingFlow(t *testing.T) {
	db := testDB(t)
	e := newTestApp(t, db)
	// Fresh database: the seeded location gets loc_id 1, which matches
	// the default WH_RECEIVING_LOC_ID dock.
	sku, loc := seedSkuLoc(t, db, "WID-500")

	body, _ := json.Marshal(map[string]interface{}{
		"sku_id": sku, "quantity": 25, "po_number": "PO-900", "received_by": 3,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/receiving", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(testUser, testPass)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("queue status = %d, body: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		QueueID uint `json:"queue_id"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	approve := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost,
			"/api/receiving/"+strconv.Itoa(int(created.QueueID))+"/approve", nil)
		req.SetBasicAuth(testUser, testPass)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	if rec := approve(); rec.Code != http.StatusNoContent {
		t.Fatalf("approve status = %d, body: %s", rec.Code, rec.Body.String())
	}
	// Idempotent: same status, no second credit.
	if rec := approve(); rec.Code != http.StatusNoContent {
		t.Fatalf("second approve status = %d", rec.Code)
	}

	var count int64
	db.Model(&entity.Movement{}).Count(&count)
	if count != 1 {
		t.Errorf("ledger rows = %d, want 1", count)
	}
	balance, err := ledgerRepo.BalanceTx(db, sku, loc)
	if err != nil {
		t.Fatalf("BalanceTx: %v", err)
	}
	if balance != 25 {
		t.Errorf("balance = %v, want 25", balance)
	}
}

func TestReceivingReject(t *testing.T) {
	db := testDB(t)
	e := newTestApp(t, db)
	sku, _ := seedSkuLoc(t, db, "WID-501")

	body, _ := json.Marshal(map[string]interface{}{"sku_id": sku, "quantity": 5})
	req := httptest.NewRequest(http.MethodPost, "/api/receiving", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(testUser, testPass)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	var created struct {
		QueueID uint `json:"queue_id"`
	}
	json.NewDecoder(rec.Body).Decode(&created)

	req = httptest.NewRequest(http.MethodPost,
		"/api/receiving/"+strconv.Itoa(int(created.QueueID))+"/reject", nil)
	req.SetBasicAuth(testUser, testPass)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("reject status = %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/receiving?status=REJECTED", nil)
	req.SetBasicAuth(testUser, testPass)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	var list struct {
		Entries []entity.ReceivingEntry `json:"entries"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Entries) != 1 || list.Entries[0].Status != entity.ReceivingRejected {
		t.Errorf("entries = %+v", list.Entries)
	}
}

func TestReceivingQueue_BadQuantity(t *testing.T) {
	db := testDB(t)
	e := newTestApp(t, db)
	sku, _ := seedSkuLoc(t, db, "WID-502")

	body, _ := json.Marshal(map[string]interface{}{"sku_id": sku, "quantity": -1})
	req := httptest.NewRequest(http.MethodPost, "/api/receiving", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(testUser, testPass)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
