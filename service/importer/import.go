// Package importer loads ledger movements from CSV. Each data row
// appends one movement through the normal validation path, so a bad
// row is reported and skipped without poisoning the rest of the file.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/mitchellh/mapstructure"
	"gorm.io/gorm"

	apperrors "warehouse.GO/core/errors"
	entity "warehouse.GO/model/entity"
	ledgerRepo "warehouse.GO/model/repository/ledger"
	skuRepo "warehouse.GO/model/repository/sku"
)

// ImportOptions tune a movement import run.
type ImportOptions struct {
	// DryRun parses and validates without writing anything.
	DryRun bool
	// DefaultUserID is stamped on rows without a user_id column.
	DefaultUserID uint
}

// ImportResult is the per-run report.
type ImportResult struct {
	TotalRows   int
	Appended    int
	Skipped     int
	Warnings    []string
	TotalTime   time.Duration
	ProcessTime time.Duration
	DBTime      time.Duration
}

// csvMovement mirrors one CSV data row. Decoded from the header-keyed
// row map with mapstructure so column order never matters.
type csvMovement struct {
	SkuNum         string  `mapstructure:"sku_num"`
	LocID          uint    `mapstructure:"loc_id"`
	MovementType   string  `mapstructure:"movement_type"`
	QuantityChange float64 `mapstructure:"quantity_change"`
	Reference      string  `mapstructure:"reference"`
	UserID         uint    `mapstructure:"user_id"`
}

// ImportMovements reads CSV from r and appends each row to the ledger.
// Required columns: sku_num, loc_id, movement_type, quantity_change.
// Optional: reference, user_id.
func ImportMovements(db *gorm.DB, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	start := time.Now()
	res := &ImportResult{}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, apperrors.NewValidation("csv header", err.Error())
	}

	skus := skuRepo.NewSkuRepository(db)
	skuCache := map[string]uint{}

	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			res.Skipped++
			res.Warnings = append(res.Warnings, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		res.TotalRows++

		procStart := time.Now()
		row := map[string]interface{}{}
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		var m csvMovement
		dec, _ := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &m,
			WeaklyTypedInput: true,
		})
		if err := dec.Decode(row); err != nil {
			res.Skipped++
			res.Warnings = append(res.Warnings, fmt.Sprintf("line %d: %v", line, err))
			res.ProcessTime += time.Since(procStart)
			continue
		}
		if m.UserID == 0 {
			m.UserID = opts.DefaultUserID
		}

		skuID, ok := skuCache[m.SkuNum]
		if !ok {
			s, err := skus.GetBySkuNum(m.SkuNum)
			if err != nil {
				res.Skipped++
				res.Warnings = append(res.Warnings, fmt.Sprintf("line %d: sku %q: %v", line, m.SkuNum, err))
				res.ProcessTime += time.Since(procStart)
				continue
			}
			skuID = s.SkuID
			skuCache[m.SkuNum] = skuID
		}
		res.ProcessTime += time.Since(procStart)

		if opts.DryRun {
			res.Appended++
			continue
		}

		dbStart := time.Now()
		_, err = ledgerRepo.NewLedgerRepository(db).Append(ledgerRepo.MovementInput{
			SkuID:          skuID,
			LocID:          m.LocID,
			MovementType:   m.MovementType,
			QuantityChange: m.QuantityChange,
			Reference:      m.Reference,
			UserID:         m.UserID,
		})
		res.DBTime += time.Since(dbStart)
		if err != nil {
			res.Skipped++
			res.Warnings = append(res.Warnings, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		res.Appended++
	}

	res.TotalTime = time.Since(start)
	return res, nil
}

// ValidTypes lists accepted movement types for CLI help text.
func ValidTypes() string {
	return entity.MovementIn + "|" + entity.MovementOut + "|" + entity.MovementAdjustment
}
