package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"stockroom/internal/domain"
	"stockroom/internal/log"
	"stockroom/internal/services"
	"stockroom/internal/validate"
)

type ItemHandler struct {
	Inv *services.InventoryService
}

func (h *ItemHandler) page(c *fiber.Ctx, status int, q, errMsg string) error {
	views, err := h.Inv.ItemViews(q)
	if err != nil {
		return err
	}
	cats, err := h.Inv.ListCategories()
	if err != nil {
		return err
	}
	return c.Status(status).Render("items", fiber.Map{
		"Items":      views,
		"Categories": cats,
		"Q":          q,
		"Err":        errMsg,
		"CSRFToken":  c.Locals("CSRFToken"),
		"User":       c.Locals("user"),
	})
}

func (h *ItemHandler) List(c *fiber.Ctx) error {
	return h.page(c, fiber.StatusOK, c.Query("q"), "")
}

func (h *ItemHandler) Save(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return h.page(c, fiber.StatusBadRequest, "", "Item name must not be empty")
	}
	catID, ok := validate.ID(c.FormValue("categoryId"))
	if !ok {
		return h.page(c, fiber.StatusBadRequest, "", "Pick a category")
	}
	qty, ok := validate.Count(c.FormValue("quantity"))
	if !ok {
		return h.page(c, fiber.StatusBadRequest, "", "Quantity must be a non-negative number")
	}
	minStock, ok := validate.Count(c.FormValue("minStock"))
	if !ok {
		return h.page(c, fiber.StatusBadRequest, "", "Minimum stock must be a non-negative number")
	}
	id := c.FormValue("id")
	if id == "" {
		id = uuid.NewString()
	}
	item := domain.Item{
		ID:         id,
		Name:       name,
		CategoryID: catID,
		Quantity:   qty,
		Unit:       c.FormValue("unit"),
		MinStock:   minStock,
	}
	if err := h.Inv.SaveItem(item); err != nil {
		log.Error(c, "item.save.fail", err, map[string]any{"id": id})
		return h.page(c, fiber.StatusBadRequest, "", userMessage(err))
	}
	log.Audit(c, "item.save", map[string]any{"id": id})
	return c.Redirect("/items")
}

func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("id"))
	if !ok {
		return h.page(c, fiber.StatusBadRequest, "", "Invalid item id")
	}
	if err := h.Inv.DeleteItem(id); err != nil {
		log.Error(c, "item.delete.fail", err, map[string]any{"id": id})
		return h.page(c, fiber.StatusInternalServerError, "", userMessage(err))
	}
	log.Audit(c, "item.delete", map[string]any{"id": id})
	return c.Redirect("/items")
}
