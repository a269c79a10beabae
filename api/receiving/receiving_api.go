package receiving

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"warehouse.GO/api"
	"warehouse.GO/config"
	apperrors "warehouse.GO/core/errors"
	receivingService "warehouse.GO/service/receiving"
)

func init() {
	api.RegisterModule(RegisterReceivingRoutes)
}

func RegisterReceivingRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/receiving")

	// POST /api/receiving – stage a delivery for approval.
	g.POST("", func(c echo.Context) error {
		var in receivingService.ReceiptInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		id, err := receivingService.QueueReceipt(db, in)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusCreated, echo.Map{"queue_id": id})
	})

	// GET /api/receiving?status= – list queue entries, newest first.
	g.GET("", func(c echo.Context) error {
		entries, err := receivingService.List(db, c.QueryParam("status"))
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"entries": entries})
	})

	// POST /api/receiving/:id/approve – idempotent; approving a
	// non-PENDING entry is a no-op, never a duplicate ledger write.
	g.POST("/:id/approve", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		if err := receivingService.Approve(db, uint(id), config.AppConfig.ReceivingLocID); err != nil {
			return jsonError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})

	// POST /api/receiving/:id/reject
	g.POST("/:id/reject", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		}
		if err := receivingService.Reject(db, uint(id)); err != nil {
			return jsonError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}

func jsonError(c echo.Context, err error) error {
	if se, ok := err.(*apperrors.StandardError); ok {
		return c.JSON(se.HTTPStatus(), se)
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}
