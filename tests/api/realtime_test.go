package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	entity "warehouse.GO/model/entity"
)

func TestRealtimeOnHand(t *testing.T) {
	db := testDB(t)
	e := newTestApp(t, db)
	sku, loc := seedSkuLoc(t, db, "WID-600")
	seedMovement(t, db, sku, loc, entity.MovementIn, 9)
	seedMovement(t, db, sku, loc, entity.MovementOut, 2)

	req := httptest.NewRequest(http.MethodGet, "/api/realtime/onhand/WID-600", nil)
	req.SetBasicAuth(testUser, testPass)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		SkuNum       string  `json:"sku_num"`
		OnHand       float64 `json:"on_hand"`
		BinCount     int64   `json:"bin_count"`
		LastMovement *string `json:"last_movement"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.OnHand != 7 || resp.BinCount != 1 {
		t.Errorf("on_hand = %v bin_count = %d, want 7/1", resp.OnHand, resp.BinCount)
	}
	if resp.LastMovement == nil {
		t.Error("last_movement missing")
	}
}

func TestRealtimeOnHand_PerRegistrationDB(t *testing.T) {
	// Two apps over two databases; each lookup must hit the database
	// its routes were registered with, not whichever came first.
	db1 := testDB(t)
	e1 := newTestApp(t, db1)
	sku1, loc1 := seedSkuLoc(t, db1, "FIRST-SKU")
	seedMovement(t, db1, sku1, loc1, entity.MovementIn, 3)

	db2 := testDB(t)
	e2 := newTestApp(t, db2)
	sku2, loc2 := seedSkuLoc(t, db2, "SECOND-SKU")
	seedMovement(t, db2, sku2, loc2, entity.MovementIn, 8)

	get := func(e http.Handler, sku string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/realtime/onhand/"+sku, nil)
		req.SetBasicAuth(testUser, testPass)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	rec := get(e2, "SECOND-SKU")
	if rec.Code != http.StatusOK {
		t.Fatalf("db2 lookup status = %d, body: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		OnHand float64 `json:"on_hand"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.OnHand != 8 {
		t.Errorf("db2 on_hand = %v, want 8", resp.OnHand)
	}

	if rec := get(e1, "FIRST-SKU"); rec.Code != http.StatusOK {
		t.Errorf("db1 lookup status = %d, want 200", rec.Code)
	}
	// A SKU that exists only in db2 must stay invisible through db1.
	if rec := get(e1, "SECOND-SKU"); rec.Code != http.StatusNotFound {
		t.Errorf("db1 lookup of db2-only sku status = %d, want 404", rec.Code)
	}
}

func TestRealtimeOnHand_UnknownSku(t *testing.T) {
	db := testDB(t)
	e := newTestApp(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/realtime/onhand/NOPE", nil)
	req.SetBasicAuth(testUser, testPass)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
