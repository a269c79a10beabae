package stock

import (
	"sort"
	"time"

	"gorm.io/gorm"

	apperrors "warehouse.GO/core/errors"
	entity "warehouse.GO/model/entity"
	skuRepo "warehouse.GO/model/repository/sku"
)

// Strategy labels for MovementDetail. Diagnostic only: both strategies
// produce identical rows for the same ledger contents.
const (
	StrategyNative   = "native"
	StrategyFallback = "fallback"
)

// DetailRow is one ledger entry with its running balance: the
// cumulative signed sum for this row's (sku, location) pair up to and
// including this movement, in ascending ledger order.
type DetailRow struct {
	MovementID     uint      `gorm:"column:movement_id" json:"movement_id"`
	SkuID          uint      `gorm:"column:sku_id" json:"-"`
	LocID          uint      `gorm:"column:loc_id" json:"loc_id"`
	SkuNum         string    `gorm:"column:sku_num" json:"sku_num"`
	RowCode        string    `gorm:"column:row_code" json:"-"`
	BayNum         string    `gorm:"column:bay_num" json:"-"`
	LevelCode      string    `gorm:"column:level_code" json:"-"`
	Side           string    `gorm:"column:side" json:"-"`
	BinCode        string    `gorm:"-" json:"bin_code"`
	MovementType   string    `gorm:"column:movement_type" json:"movement_type"`
	QuantityChange float64   `gorm:"column:quantity_change" json:"quantity_change"`
	Reference      string    `gorm:"column:reference" json:"reference"`
	UserID         uint      `gorm:"column:user_id" json:"user_id"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	RunningBalance float64   `gorm:"column:running_balance" json:"running_balance"`
}

// MovementDetail is the chronological trace for matching SKUs, newest
// movement first.
type MovementDetail struct {
	Rows     []DetailRow `json:"rows"`
	Strategy string      `json:"strategy"`
}

// DetailsForSku reconstructs the running-balance trace for every SKU
// matching the substring pattern. The window-function strategy is
// tried first; if the storage engine rejects it the ordered-scan
// fallback runs instead, with identical output.
func DetailsForSku(db *gorm.DB, skuPattern string) (*MovementDetail, error) {
	rows, err := DetailsNative(db, skuPattern)
	if err == nil {
		return &MovementDetail{Rows: rows, Strategy: StrategyNative}, nil
	}
	rows, err = DetailsFallback(db, skuPattern)
	if err != nil {
		return &MovementDetail{Rows: []DetailRow{}, Strategy: StrategyFallback}, err
	}
	return &MovementDetail{Rows: rows, Strategy: StrategyFallback}, nil
}

const detailSelectSQL = `
	SELECT m.movement_id, m.sku_id, m.loc_id, s.sku_num,
	       l.row_code, l.bay_num, l.level_code, l.side,
	       m.movement_type, m.quantity_change, m.reference, m.user_id, m.created_at`

const detailFromSQL = `
	FROM wh_movement m
	JOIN wh_sku s ON s.sku_id = m.sku_id
	JOIN wh_location l ON l.loc_id = m.loc_id
	WHERE LOWER(s.sku_num) LIKE LOWER(?) ESCAPE '!'`

// DetailsNative computes running balances server-side with a window
// aggregate, then orders the result set for display.
func DetailsNative(db *gorm.DB, skuPattern string) ([]DetailRow, error) {
	pattern := "%" + skuRepo.EscapeLike(skuPattern) + "%"
	query := detailSelectSQL + `,
	       SUM(CASE WHEN m.movement_type = 'OUT' THEN -m.quantity_change ELSE m.quantity_change END)
	           OVER (PARTITION BY m.sku_id, m.loc_id ORDER BY m.created_at ASC, m.movement_id ASC) AS running_balance` +
		detailFromSQL + `
	ORDER BY m.created_at DESC, m.movement_id DESC`

	rows := []DetailRow{}
	if err := db.Raw(query, pattern).Scan(&rows).Error; err != nil {
		return nil, apperrors.NewStorage("movement detail (native)", err)
	}
	for i := range rows {
		rows[i].BinCode = binCode(rows[i].RowCode, rows[i].BayNum, rows[i].LevelCode, rows[i].Side)
	}
	return rows, nil
}

// DetailsFallback fetches movements in ascending ledger order and
// accumulates running balances in memory, one accumulator per
// (sku, location) pair, seeded at zero on first sight. Equal
// timestamps break ties on ascending movement_id, matching the
// window frame of the native strategy.
func DetailsFallback(db *gorm.DB, skuPattern string) ([]DetailRow, error) {
	pattern := "%" + skuRepo.EscapeLike(skuPattern) + "%"
	query := detailSelectSQL + detailFromSQL + `
	ORDER BY m.sku_id ASC, m.loc_id ASC, m.created_at ASC, m.movement_id ASC`

	rows := []DetailRow{}
	if err := db.Raw(query, pattern).Scan(&rows).Error; err != nil {
		return nil, apperrors.NewStorage("movement detail (fallback)", err)
	}

	type pairKey struct{ skuID, locID uint }
	running := make(map[pairKey]float64)
	for i := range rows {
		delta := rows[i].QuantityChange
		if rows[i].MovementType == entity.MovementOut {
			delta = -delta
		}
		k := pairKey{rows[i].SkuID, rows[i].LocID}
		running[k] += delta
		rows[i].RunningBalance = running[k]
		rows[i].BinCode = binCode(rows[i].RowCode, rows[i].BayNum, rows[i].LevelCode, rows[i].Side)
	}

	// Display order: newest first, higher id wins ties.
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
		return rows[i].MovementID > rows[j].MovementID
	})
	return rows, nil
}
