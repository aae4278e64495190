package services

import (
	"strings"

	"stockroom/internal/domain"
	"stockroom/internal/repos"
)

// InventoryService covers the catalog side: categories, items and the views
// the pages render.
type InventoryService struct {
	Cats  *repos.CategoryRepo
	Items *repos.ItemRepo
}

func NewInventoryService(cats *repos.CategoryRepo, items *repos.ItemRepo) *InventoryService {
	return &InventoryService{Cats: cats, Items: items}
}

func (s *InventoryService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}

func (s *InventoryService) SaveCategory(c domain.Category) error {
	return s.Cats.Upsert(c)
}

func (s *InventoryService) DeleteCategory(id string) error {
	return s.Cats.Delete(id)
}

func (s *InventoryService) ListItems() ([]domain.Item, error) {
	return s.Items.List()
}

func (s *InventoryService) SaveItem(it domain.Item) error {
	return s.Items.Upsert(it)
}

func (s *InventoryService) DeleteItem(id string) error {
	return s.Items.Delete(id)
}

// ItemView is an item joined with its category's display name. A category
// reference that no longer resolves degrades to a placeholder; it is never
// an error (the reference is soft).
type ItemView struct {
	domain.Item
	CategoryName string
	Low          bool
}

// ItemViews resolves category names and flags low stock, filtered by a
// case-insensitive substring match on the item name when q is non-empty.
func (s *InventoryService) ItemViews(q string) ([]ItemView, error) {
	items, err := s.Items.List()
	if err != nil {
		return nil, err
	}
	cats, err := s.Cats.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}

	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]ItemView, 0, len(items))
	for _, it := range items {
		if q != "" && !strings.Contains(strings.ToLower(it.Name), q) {
			continue
		}
		name, ok := names[it.CategoryID]
		if !ok {
			name = "No category"
		}
		out = append(out, ItemView{
			Item:         it,
			CategoryName: name,
			Low:          it.MinStock > 0 && it.Quantity <= it.MinStock,
		})
	}
	return out, nil
}
