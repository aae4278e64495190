package repos

import (
	"strings"

	"stockroom/internal/domain"
	"stockroom/internal/kv"
	"stockroom/internal/records"
)

const colCategories = "categories"

type CategoryRepo struct{ store kv.Store }

func NewCategoryRepo(s kv.Store) *CategoryRepo { return &CategoryRepo{store: s} }

func (r *CategoryRepo) List() ([]domain.Category, error) {
	return records.List[domain.Category](r.store, colCategories)
}

// Upsert replaces the category whose id matches, or appends when no match
// exists. Insertion order of first appearance is preserved.
func (r *CategoryRepo) Upsert(c domain.Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return &domain.ValidationError{Msg: "category name must not be empty"}
	}
	cats, err := r.List()
	if err != nil {
		return err
	}
	replaced := false
	for i := range cats {
		if cats[i].ID == c.ID {
			cats[i] = c
			replaced = true
			break
		}
	}
	if !replaced {
		cats = append(cats, c)
	}
	return records.Write(r.store, colCategories, cats)
}

// Delete removes the matching category. Deleting an absent id is a no-op;
// items referencing the category keep their soft reference.
func (r *CategoryRepo) Delete(id string) error {
	cats, err := r.List()
	if err != nil {
		return err
	}
	kept := cats[:0]
	for _, c := range cats {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return records.Write(r.store, colCategories, kept)
}
