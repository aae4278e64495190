package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"stockroom/internal/domain"
	"stockroom/internal/log"
	"stockroom/internal/services"
	"stockroom/internal/validate"
)

type CategoryHandler struct {
	Inv *services.InventoryService
}

func (h *CategoryHandler) page(c *fiber.Ctx, status int, errMsg string) error {
	cats, err := h.Inv.ListCategories()
	if err != nil {
		return err
	}
	return c.Status(status).Render("categories", fiber.Map{
		"Categories": cats,
		"Err":        errMsg,
		"CSRFToken":  c.Locals("CSRFToken"),
		"User":       c.Locals("user"),
	})
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return h.page(c, fiber.StatusOK, "")
}

// Save handles both create (empty id) and edit (existing id) form posts.
func (h *CategoryHandler) Save(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		return h.page(c, fiber.StatusBadRequest, "Category name must not be empty")
	}
	id := c.FormValue("id")
	if id == "" {
		id = uuid.NewString()
	}
	cat := domain.Category{ID: id, Name: name, Description: c.FormValue("description")}
	if err := h.Inv.SaveCategory(cat); err != nil {
		log.Error(c, "category.save.fail", err, map[string]any{"id": id})
		return h.page(c, fiber.StatusBadRequest, userMessage(err))
	}
	log.Audit(c, "category.save", map[string]any{"id": id})
	return c.Redirect("/categories")
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.FormValue("id"))
	if !ok {
		return h.page(c, fiber.StatusBadRequest, "Invalid category id")
	}
	if err := h.Inv.DeleteCategory(id); err != nil {
		log.Error(c, "category.delete.fail", err, map[string]any{"id": id})
		return h.page(c, fiber.StatusInternalServerError, userMessage(err))
	}
	log.Audit(c, "category.delete", map[string]any{"id": id})
	return c.Redirect("/categories")
}
