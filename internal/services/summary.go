package services

import "stockroom/internal/domain"

// Summarize reduces already-loaded collections into the dashboard totals.
// Pure function, always succeeds.
func Summarize(items []domain.Item, cats []domain.Category) domain.Summary {
	sum := domain.Summary{
		TotalItems:      len(items),
		TotalCategories: len(cats),
	}
	for _, it := range items {
		if it.Quantity > 0 {
			sum.TotalStock += it.Quantity
		}
		if it.MinStock > 0 && it.Quantity <= it.MinStock {
			sum.LowStock++
		}
	}
	return sum
}
