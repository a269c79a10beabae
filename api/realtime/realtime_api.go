package realtime

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"warehouse.GO/api"
	skuRepo "warehouse.GO/model/repository/sku"
)

func init() {
	api.RegisterModule(RegisterRealtimeRoutes)
}

// OnHandResponse is the fast on-hand lookup for a single SKU: total
// folded from the ledger across every bin, plus the latest movement
// timestamp. Always derived, never cached.
type OnHandResponse struct {
	SkuNum       string     `json:"sku_num"`
	OnHand       float64    `json:"on_hand"`
	BinCount     int64      `json:"bin_count"`
	LastMovement *time.Time `json:"last_movement,omitempty"`
}

func RegisterRealtimeRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/realtime")
	skus := skuRepo.NewSkuRepository(db)

	g.GET("/onhand/:sku", func(c echo.Context) error {
		skuNum := c.Param("sku")
		s, err := skus.GetBySkuNum(skuNum)
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "sku not found"})
		}

		resp := OnHandResponse{SkuNum: s.SkuNum}
		eg, _ := errgroup.WithContext(c.Request().Context())

		eg.Go(func() error {
			row := db.Raw(`
				SELECT COALESCE(SUM(CASE WHEN movement_type = 'OUT' THEN -quantity_change ELSE quantity_change END), 0),
				       COUNT(DISTINCT loc_id)
				FROM wh_movement WHERE sku_id = ?`, s.SkuID).Row()
			return row.Scan(&resp.OnHand, &resp.BinCount)
		})
		eg.Go(func() error {
			var last sql.NullTime
			row := db.Raw(`SELECT MAX(created_at) FROM wh_movement WHERE sku_id = ?`, s.SkuID).Row()
			if err := row.Scan(&last); err != nil {
				return err
			}
			if last.Valid {
				resp.LastMovement = &last.Time
			}
			return nil
		})

		if err := eg.Wait(); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, resp)
	})
}
