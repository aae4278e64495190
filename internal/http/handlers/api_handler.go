package handlers

import (
	"github.com/gofiber/fiber/v2"

	"stockroom/internal/services"
)

type APIHandler struct {
	Inv *services.InventoryService
}

// Items serves the SPA-compatible listing. The double-wrapped envelope is
// what the existing frontend client unpacks with data.data.items.
func (h *APIHandler) Items(c *fiber.Ctx) error {
	views, err := h.Inv.ItemViews(c.Query("q"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  false,
			"message": userMessage(err),
		})
	}
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	perPage := c.QueryInt("per_page", 20)
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	total := len(views)
	from := (page - 1) * perPage
	if from > total {
		from = total
	}
	to := from + perPage
	if to > total {
		to = total
	}
	totalPages := (total + perPage - 1) / perPage

	return c.JSON(fiber.Map{
		"status":  true,
		"message": "ok",
		"data": fiber.Map{
			"data": fiber.Map{
				"items": views[from:to],
			},
		},
		"pagination": fiber.Map{
			"current_page": page,
			"total_rows":   total,
			"total_pages":  totalPages,
			"total_count":  total,
			"from":         from,
			"to":           to,
		},
	})
}

func (h *APIHandler) Summary(c *fiber.Ctx) error {
	items, err := h.Inv.ListItems()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  false,
			"message": userMessage(err),
		})
	}
	cats, err := h.Inv.ListCategories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  false,
			"message": userMessage(err),
		})
	}
	return c.JSON(fiber.Map{
		"status":  true,
		"message": "ok",
		"data":    services.Summarize(items, cats),
	})
}
