package handlers

import (
	"github.com/gofiber/fiber/v2"

	"stockroom/internal/domain"
	"stockroom/internal/log"
	"stockroom/internal/repos"
	"stockroom/internal/validate"
)

type AdminHandler struct {
	Users *repos.UserRepo
}

func (h *AdminHandler) UsersPage(c *fiber.Ctx) error {
	users, err := h.Users.List()
	if err != nil {
		return err
	}
	return render(c, "admin_users", fiber.Map{"Users": users})
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).Render("notfound", fiber.Map{"Message": "Invalid user id"})
	}
	if u, ok := c.Locals("user").(*domain.User); ok && u != nil && u.ID == id {
		return c.Status(fiber.StatusBadRequest).Render("notfound", fiber.Map{"Message": "You cannot delete your own account"})
	}
	if err := h.Users.Delete(id); err != nil {
		log.Error(c, "admin.user.delete.fail", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": userMessage(err)})
	}
	log.Audit(c, "admin.user.delete", map[string]any{"id": id})
	return c.Redirect("/admin/users")
}
