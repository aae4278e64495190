package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"stockroom/internal/domain"
	"stockroom/internal/log"
	"stockroom/internal/services"
	"stockroom/internal/validate"
)

type StockHandler struct {
	Stock *services.StockService
	Inv   *services.InventoryService
}

func (h *StockHandler) page(c *fiber.Ctx, status int, filter, errMsg string) error {
	moves, err := h.Stock.History(filter)
	if err != nil {
		return err
	}
	items, err := h.Inv.ListItems()
	if err != nil {
		return err
	}
	return c.Status(status).Render("history", fiber.Map{
		"Movements": moves,
		"Items":     items,
		"Filter":    filter,
		"Err":       errMsg,
		"CSRFToken": c.Locals("CSRFToken"),
		"User":      c.Locals("user"),
	})
}

func (h *StockHandler) History(c *fiber.Ctx) error {
	return h.page(c, fiber.StatusOK, c.Query("type"), "")
}

// Record applies one stock movement through the workflow. Rejections come
// back as a message on the same page; nothing is written on rejection.
func (h *StockHandler) Record(c *fiber.Ctx) error {
	itemID, ok := validate.ID(c.FormValue("itemId"))
	if !ok {
		return h.page(c, fiber.StatusBadRequest, "", "Pick an item")
	}
	mtype, ok := validate.MovementType(c.FormValue("type"))
	if !ok {
		return h.page(c, fiber.StatusBadRequest, "", "Movement type must be in or out")
	}
	qty, ok := validate.Qty(c.FormValue("quantity"))
	if !ok {
		return h.page(c, fiber.StatusBadRequest, "", "Quantity must be a positive number")
	}

	mv, err := h.Stock.Apply(services.MovementInput{
		ItemID:   itemID,
		Type:     mtype,
		Quantity: qty,
		Notes:    c.FormValue("notes"),
	})
	if err != nil {
		status := fiber.StatusBadRequest
		var perr *domain.PartialCommitError
		switch {
		case errors.As(err, &perr):
			// The item was updated but the ledger append failed; the user
			// must see this, not a silent success.
			status = fiber.StatusInternalServerError
			log.Error(c, "stock.apply.partial", err, map[string]any{"item": itemID})
		default:
			log.Info(c, "stock.apply.reject", map[string]any{"item": itemID, "reason": err.Error()})
		}
		return h.page(c, status, "", userMessage(err))
	}

	log.Audit(c, "stock.apply", map[string]any{"item": itemID, "type": mtype, "qty": qty, "movement": mv.ID})
	return c.Redirect("/history")
}
