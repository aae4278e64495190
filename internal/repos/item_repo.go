package repos

import (
	"strings"

	"stockroom/internal/domain"
	"stockroom/internal/kv"
	"stockroom/internal/records"
)

const colItems = "items"

type ItemRepo struct{ store kv.Store }

func NewItemRepo(s kv.Store) *ItemRepo { return &ItemRepo{store: s} }

func (r *ItemRepo) List() ([]domain.Item, error) {
	return records.List[domain.Item](r.store, colItems)
}

func (r *ItemRepo) Get(id string) (domain.Item, error) {
	items, err := r.List()
	if err != nil {
		return domain.Item{}, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return domain.Item{}, &domain.NotFoundError{Kind: "item", ID: id}
}

func (r *ItemRepo) Upsert(item domain.Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return &domain.ValidationError{Msg: "item name must not be empty"}
	}
	if strings.TrimSpace(item.CategoryID) == "" {
		return &domain.ValidationError{Msg: "item must reference a category"}
	}
	if item.Quantity < 0 {
		return &domain.ValidationError{Msg: "item quantity must not be negative"}
	}
	items, err := r.List()
	if err != nil {
		return err
	}
	replaced := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	return records.Write(r.store, colItems, items)
}

func (r *ItemRepo) Delete(id string) error {
	items, err := r.List()
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	return records.Write(r.store, colItems, kept)
}

// SetQuantity mutates a single item's quantity in place, bypassing the full
// upsert. This is the entry point the stock workflow uses.
func (r *ItemRepo) SetQuantity(id string, quantity int) error {
	if quantity < 0 {
		return &domain.ValidationError{Msg: "quantity must not be negative"}
	}
	items, err := r.List()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			return records.Write(r.store, colItems, items)
		}
	}
	return &domain.NotFoundError{Kind: "item", ID: id}
}
