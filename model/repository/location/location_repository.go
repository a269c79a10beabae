package location

import (
	"strings"

	"gorm.io/gorm"

	entity "warehouse.GO/model/entity"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// GetByID returns one location.
func (r *LocationRepository) GetByID(locID uint) (*entity.Location, error) {
	var l entity.Location
	if err := r.db.First(&l, "loc_id = ?", locID).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// ListAll returns locations in bin order: row, bay (numeric), level,
// side. bay_num is text, hence the +0 coercion.
func (r *LocationRepository) ListAll() ([]entity.Location, error) {
	var out []entity.Location
	err := r.db.Order("row_code ASC, bay_num+0 ASC, level_code ASC, side ASC").Find(&out).Error
	return out, err
}

// GetByBinCode resolves a composite code like "R10-1-11-FRONT" back to
// its location row.
func (r *LocationRepository) GetByBinCode(binCode string) (*entity.Location, error) {
	parts := strings.SplitN(binCode, "-", 4)
	if len(parts) != 4 {
		return nil, gorm.ErrRecordNotFound
	}
	var l entity.Location
	err := r.db.Where("row_code = ? AND bay_num = ? AND level_code = ? AND side = ?",
		parts[0], parts[1], parts[2], parts[3]).First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}
