package handlers

import (
	"github.com/gofiber/fiber/v2"

	"stockroom/internal/services"
)

type DashboardHandler struct {
	Inv *services.InventoryService
}

func (h *DashboardHandler) Home(c *fiber.Ctx) error {
	items, err := h.Inv.ListItems()
	if err != nil {
		return err
	}
	cats, err := h.Inv.ListCategories()
	if err != nil {
		return err
	}
	views, err := h.Inv.ItemViews("")
	if err != nil {
		return err
	}
	low := views[:0:0]
	for _, v := range views {
		if v.Low {
			low = append(low, v)
		}
	}
	return render(c, "dashboard", fiber.Map{
		"Summary":  services.Summarize(items, cats),
		"LowItems": low,
	})
}
