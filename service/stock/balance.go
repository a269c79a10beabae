package stock

import (
	"fmt"
	"math"

	"gorm.io/gorm"

	apperrors "warehouse.GO/core/errors"
	skuRepo "warehouse.GO/model/repository/sku"
)

// Page size bounds for balance listings.
const (
	MinPageSize = 1
	MaxPageSize = 200
)

// BalanceRow is one non-zero (sku, location) group of the ledger fold.
type BalanceRow struct {
	SkuNum      string  `gorm:"column:sku_num" json:"sku_num"`
	Description string  `gorm:"column:description" json:"description"`
	LocID       uint    `gorm:"column:loc_id" json:"loc_id"`
	RowCode     string  `gorm:"column:row_code" json:"-"`
	BayNum      string  `gorm:"column:bay_num" json:"-"`
	LevelCode   string  `gorm:"column:level_code" json:"-"`
	Side        string  `gorm:"column:side" json:"-"`
	BinCode     string  `gorm:"-" json:"bin_code"`
	OnHand      float64 `gorm:"column:on_hand" json:"on_hand"`
}

// binCode assembles the composite location code, e.g. "R10-1-11-FRONT".
func binCode(row, bay, level, side string) string {
	return fmt.Sprintf("%s-%s-%s-%s", row, bay, level, side)
}

// BalanceList is the paginated aggregate view. GrandTotal and
// TotalRowCount cover all matching non-zero groups, not just the page.
type BalanceList struct {
	Rows          []BalanceRow `json:"rows"`
	GrandTotal    float64      `json:"grand_total"`
	TotalRowCount int64        `json:"total_row_count"`
	PageCount     int          `json:"page_count"`
	Page          int          `json:"page"`
	PageSize      int          `json:"page_size"`
}

const balanceGroupSQL = `
	SELECT s.sku_num, s.description,
	       l.loc_id, l.row_code, l.bay_num, l.level_code, l.side,
	       SUM(CASE WHEN m.movement_type = 'OUT' THEN -m.quantity_change ELSE m.quantity_change END) AS on_hand
	FROM wh_movement m
	JOIN wh_sku s ON s.sku_id = m.sku_id
	JOIN wh_location l ON l.loc_id = m.loc_id
	WHERE LOWER(s.sku_num) LIKE LOWER(?) ESCAPE '!'
	GROUP BY s.sku_num, s.description, l.loc_id, l.row_code, l.bay_num, l.level_code, l.side
	HAVING on_hand <> 0`

// ListBalances folds the movement ledger into current on-hand
// quantities per (sku, location), filtered by a case-insensitive SKU
// substring. Groups whose fold is exactly zero are excluded. On a
// storage error it returns a zeroed list plus the error; the caller
// decides whether to surface or degrade.
func ListBalances(db *gorm.DB, skuPattern string, page, pageSize int) (*BalanceList, error) {
	if pageSize < MinPageSize {
		pageSize = MinPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if page < 1 {
		page = 1
	}

	out := &BalanceList{Rows: []BalanceRow{}, PageCount: 1, Page: page, PageSize: pageSize}
	pattern := "%" + skuRepo.EscapeLike(skuPattern) + "%"

	// Totals over every matching non-zero group, independent of paging.
	totalsSQL := `SELECT COUNT(*), COALESCE(SUM(t.on_hand), 0) FROM (` + balanceGroupSQL + `) t`
	row := db.Raw(totalsSQL, pattern).Row()
	if err := row.Scan(&out.TotalRowCount, &out.GrandTotal); err != nil {
		return &BalanceList{Rows: []BalanceRow{}, PageCount: 1, Page: page, PageSize: pageSize},
			apperrors.NewStorage("balance totals", err)
	}

	pageSQL := balanceGroupSQL + `
	ORDER BY l.row_code ASC, l.bay_num+0 ASC, l.level_code ASC, l.side ASC
	LIMIT ? OFFSET ?`
	offset := (page - 1) * pageSize
	if err := db.Raw(pageSQL, pattern, pageSize, offset).Scan(&out.Rows).Error; err != nil {
		return &BalanceList{Rows: []BalanceRow{}, PageCount: 1, Page: page, PageSize: pageSize},
			apperrors.NewStorage("balance page", err)
	}
	for i := range out.Rows {
		out.Rows[i].BinCode = binCode(out.Rows[i].RowCode, out.Rows[i].BayNum, out.Rows[i].LevelCode, out.Rows[i].Side)
	}

	out.PageCount = int(math.Ceil(float64(out.TotalRowCount) / float64(pageSize)))
	if out.PageCount < 1 {
		out.PageCount = 1
	}
	return out, nil
}
