package ledger

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "warehouse.GO/core/errors"
	entity "warehouse.GO/model/entity"
)

// MovementInput is the append contract for the movement ledger.
type MovementInput struct {
	SkuID          uint    `json:"sku_id"`
	LocID          uint    `json:"loc_id"`
	MovementType   string  `json:"movement_type"`
	QuantityChange float64 `json:"quantity_change"`
	Reference      string  `json:"reference"`
	UserID         uint    `json:"user_id"`
}

type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Append writes exactly one ledger row in its own transaction.
func (r *LedgerRepository) Append(in MovementInput) (uint, error) {
	var id uint
	err := r.db.Transaction(func(tx *gorm.DB) error {
		mid, err := AppendTx(tx, in)
		if err != nil {
			return err
		}
		id = mid
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// AppendTx validates and appends a movement inside the caller's
// transaction, so collaborators (receiving approval) can pair the
// ledger write with their own inventory mutation atomically.
func AppendTx(tx *gorm.DB, in MovementInput) (uint, error) {
	switch in.MovementType {
	case entity.MovementIn, entity.MovementOut:
		if in.QuantityChange <= 0 {
			return 0, apperrors.NewValidation(
				"quantity_change must be positive for IN/OUT movements",
				fmt.Sprintf("movement_type=%s quantity_change=%v", in.MovementType, in.QuantityChange))
		}
	case entity.MovementAdjustment:
		if in.QuantityChange == 0 {
			return 0, apperrors.NewValidation("quantity_change must be non-zero for ADJUSTMENT movements", "")
		}
	default:
		return 0, apperrors.NewValidation("unknown movement_type", in.MovementType)
	}

	if err := mustExist(tx, &entity.SKU{}, "sku_id", in.SkuID, "sku"); err != nil {
		return 0, err
	}
	if err := mustExist(tx, &entity.Location{}, "loc_id", in.LocID, "location"); err != nil {
		return 0, err
	}

	if in.MovementType == entity.MovementOut {
		balance, err := BalanceTx(tx, in.SkuID, in.LocID)
		if err != nil {
			return 0, err
		}
		if in.QuantityChange > balance {
			return 0, apperrors.NewConflict(
				"movement would drive on-hand balance negative",
				fmt.Sprintf("on_hand=%v requested=%v", balance, in.QuantityChange))
		}
	}

	m := entity.Movement{
		SkuID:          in.SkuID,
		LocID:          in.LocID,
		MovementType:   in.MovementType,
		QuantityChange: in.QuantityChange,
		Reference:      in.Reference,
		UserID:         in.UserID,
	}
	if err := tx.Create(&m).Error; err != nil {
		return 0, apperrors.NewStorage("ledger append", err)
	}
	return m.MovementID, nil
}

// BalanceTx folds the ledger for one (sku, loc) pair. The same signed
// sum the aggregator computes, scoped to a single pair.
func BalanceTx(tx *gorm.DB, skuID, locID uint) (float64, error) {
	var balance float64
	err := tx.Raw(`
		SELECT COALESCE(SUM(CASE WHEN movement_type = ? THEN -quantity_change ELSE quantity_change END), 0)
		FROM wh_movement WHERE sku_id = ? AND loc_id = ?`,
		entity.MovementOut, skuID, locID).Scan(&balance).Error
	if err != nil {
		return 0, apperrors.NewStorage("ledger balance fold", err)
	}
	return balance, nil
}

// ListForSku returns all movements for a sku in ascending ledger order.
func (r *LedgerRepository) ListForSku(skuID uint) ([]entity.Movement, error) {
	var rows []entity.Movement
	err := r.db.Where("sku_id = ?", skuID).
		Order("loc_id ASC, created_at ASC, movement_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.NewStorage("ledger list", err)
	}
	return rows, nil
}

func mustExist(tx *gorm.DB, model interface{}, column string, id uint, what string) error {
	var count int64
	if err := tx.Model(model).Where(column+" = ?", id).Count(&count).Error; err != nil {
		return apperrors.NewStorage("existence check", err)
	}
	if count == 0 {
		return apperrors.NewNotFound(what+" not found", fmt.Sprintf("%s=%d", column, id))
	}
	return nil
}

// IsMissing reports whether err is a gorm record-not-found.
func IsMissing(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
