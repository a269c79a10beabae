package entity

import "fmt"

// Location represents wh_location. The human-readable bin code is
// derived from the four parts at read time, never stored.
// bay_num is text on purpose but sorts numerically in listings.
type Location struct {
	LocID     uint   `gorm:"column:loc_id;primaryKey;autoIncrement" json:"loc_id"`
	RowCode   string `gorm:"column:row_code;type:varchar(8);not null;uniqueIndex:idx_wh_location_bin,priority:1" json:"row_code"`
	BayNum    string `gorm:"column:bay_num;type:varchar(8);not null;uniqueIndex:idx_wh_location_bin,priority:2" json:"bay_num"`
	LevelCode string `gorm:"column:level_code;type:varchar(8);not null;uniqueIndex:idx_wh_location_bin,priority:3" json:"level_code"`
	Side      string `gorm:"column:side;type:varchar(8);not null;uniqueIndex:idx_wh_location_bin,priority:4" json:"side"`
}

func (Location) TableName() string {
	return "wh_location"
}

// BinCode returns the composite code, e.g. "R10-1-11-FRONT".
func (l Location) BinCode() string {
	return fmt.Sprintf("%s-%s-%s-%s", l.RowCode, l.BayNum, l.LevelCode, l.Side)
}
