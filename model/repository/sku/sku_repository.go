package sku

import (
	"strings"

	"gorm.io/gorm"

	entity "warehouse.GO/model/entity"
)

type SkuRepository struct {
	db *gorm.DB
}

func NewSkuRepository(db *gorm.DB) *SkuRepository {
	return &SkuRepository{db: db}
}

// GetBySkuNum returns the SKU for a business key.
func (r *SkuRepository) GetBySkuNum(skuNum string) (*entity.SKU, error) {
	var s entity.SKU
	if err := r.db.Where("sku_num = ?", skuNum).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// FindByPattern returns active SKUs whose number or description
// contains the query, case-insensitive. LIKE fallback for the search
// service and the picker menu.
func (r *SkuRepository) FindByPattern(query string, limit int) ([]entity.SKU, error) {
	if limit <= 0 {
		limit = 20
	}
	pattern := "%" + EscapeLike(query) + "%"
	var out []entity.SKU
	err := r.db.
		Where("status = ?", entity.SkuStatusActive).
		Where("LOWER(sku_num) LIKE LOWER(?) ESCAPE '!' OR LOWER(description) LIKE LOWER(?) ESCAPE '!'", pattern, pattern).
		Order("sku_num ASC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// ListForPicker returns all active SKUs ordered by sku_num.
func (r *SkuRepository) ListForPicker() ([]entity.SKU, error) {
	var out []entity.SKU
	err := r.db.Where("status = ?", entity.SkuStatusActive).Order("sku_num ASC").Find(&out).Error
	return out, err
}

// EscapeLike escapes LIKE wildcards so user input is matched
// literally. '!' is the escape character in every LIKE that consumes
// this: backslash escaping is not portable between MySQL and SQLite.
func EscapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
