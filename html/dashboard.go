package html

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"warehouse.GO/api"
	"warehouse.GO/config"
	"warehouse.GO/core/cache"
	locationRepo "warehouse.GO/model/repository/location"
	stockService "warehouse.GO/service/stock"
)

const pickerCacheTTL = 300 // seconds

func init() {
	api.RegisterHTMLModule(RegisterDashboardRoutes)
}

// RegisterDashboardRoutes registers the admin HTML pages: balance
// dashboard, per-SKU movement trace and the bin picker fragment.
func RegisterDashboardRoutes(e *echo.Echo, db *gorm.DB) {
	locRepo := locationRepo.NewLocationRepository(db)

	e.GET("/dashboard", func(c echo.Context) error {
		page, _ := strconv.Atoi(c.QueryParam("page"))
		list, err := stockService.ListBalances(db, c.QueryParam("sku"), page, config.AppConfig.DefaultPageSize)
		data := map[string]interface{}{
			"List":   list,
			"Filter": c.QueryParam("sku"),
		}
		if err != nil {
			// Degrade: render the empty table with a banner.
			data["Error"] = err.Error()
		}
		return c.Render(http.StatusOK, "dashboard.html", data)
	})

	e.GET("/stock/:sku", func(c echo.Context) error {
		detail, err := stockService.DetailsForSku(db, c.Param("sku"))
		data := map[string]interface{}{
			"Detail": detail,
			"Sku":    c.Param("sku"),
		}
		if err != nil {
			data["Error"] = err.Error()
		}
		return c.Render(http.StatusOK, "movements.html", data)
	})

	// Bin picker fragment for admin forms. Locations change rarely,
	// so the rendered markup is cached (Redis when configured,
	// in-process otherwise). Balances are never cached.
	e.GET("/picker/bins", func(c echo.Context) error {
		if html, ok := pickerFromCache(); ok {
			return c.HTML(http.StatusOK, html)
		}
		locs, err := locRepo.ListAll()
		if err != nil {
			return c.HTML(http.StatusOK, `<select name="loc_id"></select>`)
		}
		var b strings.Builder
		b.WriteString(`<select name="loc_id">`)
		for _, l := range locs {
			b.WriteString(`<option value="` + strconv.FormatUint(uint64(l.LocID), 10) + `">` + l.BinCode() + `</option>`)
		}
		b.WriteString(`</select>`)
		html := b.String()
		pickerToCache(html)
		return c.HTML(http.StatusOK, html)
	})
}

func pickerFromCache() (string, bool) {
	if config.RedisClient != nil {
		html, err := config.RedisClient.Get(config.RedisCtx(), "picker:bins").Result()
		if err == nil && html != "" {
			return html, true
		}
		return "", false
	}
	if v, ok := cache.GetInstance().Get("picker:bins"); ok {
		return v.(string), true
	}
	return "", false
}

func pickerToCache(html string) {
	if config.RedisClient != nil {
		config.RedisClient.Set(config.RedisCtx(), "picker:bins", html, pickerCacheTTL*time.Second)
		return
	}
	cache.GetInstance().Set("picker:bins", html, pickerCacheTTL, []string{"picker"})
}
