package repos

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"stockroom/internal/domain"
	"stockroom/internal/kv"
)

// SeedIfEmpty inserts a demo category/item pair and a default admin account
// when the respective collections have never been written. Safe to run on
// every startup.
func SeedIfEmpty(store kv.Store) error {
	cats := NewCategoryRepo(store)
	items := NewItemRepo(store)
	users := NewUserRepo(store)

	existing, err := cats.List()
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		log.Println("[seed] inserting demo categories/items")
		if err := cats.Upsert(domain.Category{ID: "cat-tools", Name: "Tools", Description: "Hand tools and hardware"}); err != nil {
			return err
		}
		if err := cats.Upsert(domain.Category{ID: "cat-consumables", Name: "Consumables", Description: "Supplies that run out"}); err != nil {
			return err
		}
		if err := items.Upsert(domain.Item{ID: "item-hammer", Name: "Hammer", CategoryID: "cat-tools", Quantity: 12, Unit: "pcs", MinStock: 3}); err != nil {
			return err
		}
		if err := items.Upsert(domain.Item{ID: "item-gloves", Name: "Work Gloves", CategoryID: "cat-consumables", Quantity: 40, Unit: "pairs", MinStock: 10}); err != nil {
			return err
		}
	}

	existingUsers, err := users.List()
	if err != nil {
		return err
	}
	if len(existingUsers) == 0 {
		log.Println("[seed] inserting default admin user")
		hash, err := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), 12)
		if err != nil {
			return err
		}
		return users.Create(domain.User{
			ID:    "u-admin",
			Email: "admin@stockroom.test",
			Name:  "Admin",
			Hash:  string(hash),
			Role:  "ADMIN",
		})
	}
	return nil
}
