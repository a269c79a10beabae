package stock

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"warehouse.GO/api"
	"warehouse.GO/config"
	apperrors "warehouse.GO/core/errors"
	ledgerRepo "warehouse.GO/model/repository/ledger"
	searchService "warehouse.GO/service/search"
	stockService "warehouse.GO/service/stock"
)

func init() {
	api.RegisterModule(RegisterStockRoutes)
}

func RegisterStockRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/stock")

	// GET /api/stock/balances – paginated on-hand balances per (sku, bin).
	// Storage failures degrade to an empty result with an error field
	// so table UIs can still render.
	g.GET("/balances", func(c echo.Context) error {
		page, _ := strconv.Atoi(c.QueryParam("page"))
		pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
		if pageSize == 0 {
			pageSize = config.AppConfig.DefaultPageSize
		}

		list, err := stockService.ListBalances(db, c.QueryParam("sku"), page, pageSize)
		resp := echo.Map{
			"rows":            list.Rows,
			"grand_total":     list.GrandTotal,
			"total_row_count": list.TotalRowCount,
			"page_count":      list.PageCount,
			"page":            list.Page,
			"page_size":       list.PageSize,
		}
		if err != nil {
			resp["error"] = err.Error()
		}
		return c.JSON(http.StatusOK, resp)
	})

	// GET /api/stock/movements?sku= – running-balance trace, newest first.
	g.GET("/movements", func(c echo.Context) error {
		detail, err := stockService.DetailsForSku(db, c.QueryParam("sku"))
		resp := echo.Map{"rows": detail.Rows, "strategy": detail.Strategy}
		if err != nil {
			resp["error"] = err.Error()
		}
		return c.JSON(http.StatusOK, resp)
	})

	// POST /api/stock/movements – append one ledger movement.
	g.POST("/movements", func(c echo.Context) error {
		start := time.Now()
		var in ledgerRepo.MovementInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		id, err := ledgerRepo.NewLedgerRepository(db).Append(in)
		duration := time.Since(start).Milliseconds()
		if err != nil {
			return jsonError(c, err)
		}
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusCreated, echo.Map{"movement_id": id})
	})

	// GET /api/stock/skus?q= – SKU search (Elasticsearch or LIKE).
	g.GET("/skus", func(c echo.Context) error {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		skus, err := searchService.GetSearchService().SearchSkus(c.Request().Context(), db, c.QueryParam("q"), limit)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"skus": skus})
	})
}

func jsonError(c echo.Context, err error) error {
	if se, ok := err.(*apperrors.StandardError); ok {
		return c.JSON(se.HTTPStatus(), se)
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}
