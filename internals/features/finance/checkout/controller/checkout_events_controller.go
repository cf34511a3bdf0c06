// file: internals/features/finance/checkout/controller/checkout_events_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "bootcampku_backend/internals/features/finance/checkout/model"
)

/* =======================================================================
   Audit log webhook untuk console staff (read-only)
======================================================================= */

type CheckoutEventController struct {
	DB *gorm.DB
}

func NewCheckoutEventController(db *gorm.DB) *CheckoutEventController {
	return &CheckoutEventController{DB: db}
}

func (h *CheckoutEventController) RegisterRoutes(r fiber.Router) {
	gr := r.Group("/checkout-events")
	gr.Get("/", h.ListEvents) // GET /checkout-events?status=&session_id=&start=&end=&page=&limit=
	gr.Get("/:id", h.GetByID)
}

func (h *CheckoutEventController) ListEvents(c *fiber.Ctx) error {
	db := h.DB.Model(&model.CheckoutEventModel{})

	if s := strings.TrimSpace(c.Query("status")); s != "" {
		db = db.Where("checkout_event_status = ?", strings.ToLower(s))
	}
	if sid := strings.TrimSpace(c.Query("session_id")); sid != "" {
		db = db.Where("checkout_event_session_id = ?", sid)
	}

	// time range by received_at
	if start := strings.TrimSpace(c.Query("start")); start != "" {
		if t, err := time.Parse(time.RFC3339, start); err == nil {
			db = db.Where("checkout_event_received_at >= ?", t)
		} else {
			return fiber.NewError(fiber.StatusBadRequest, "invalid start (use RFC3339)")
		}
	}
	if end := strings.TrimSpace(c.Query("end")); end != "" {
		if t, err := time.Parse(time.RFC3339, end); err == nil {
			db = db.Where("checkout_event_received_at < ?", t)
		} else {
			return fiber.NewError(fiber.StatusBadRequest, "invalid end (use RFC3339)")
		}
	}

	page := clampEvInt(queryEvInt(c, "page", 1), 1, 1_000_000)
	limit := clampEvInt(queryEvInt(c, "limit", 20), 1, 200)
	offset := (page - 1) * limit

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.CheckoutEventModel
	if err := db.Order("checkout_event_received_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"page":  page,
		"limit": limit,
		"total": total,
		"data":  rows,
	})
}

func (h *CheckoutEventController) GetByID(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m model.CheckoutEventModel
	if err := h.DB.First(&m, "checkout_event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "event not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(&m)
}

func queryEvInt(c *fiber.Ctx, key string, def int) int {
	if v := c.Query(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func clampEvInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
