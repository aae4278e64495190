package domain

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Item struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"categoryId"`
	Quantity   int    `json:"quantity"`
	Unit       string `json:"unit"`
	MinStock   int    `json:"minStock,omitempty"`
}

// Movement types. "in" adds to an item's quantity, "out" subtracts.
const (
	MovementIn  = "in"
	MovementOut = "out"
)

type StockMovement struct {
	ID       string `json:"id"`
	ItemID   string `json:"itemId"`
	Type     string `json:"type"` // in | out
	Quantity int    `json:"quantity"`
	Date     string `json:"date"` // RFC3339 UTC
	Notes    string `json:"notes"`
}

// Summary holds the dashboard totals derived from the item and category
// collections. LowStock counts items at or below their minimum stock level.
type Summary struct {
	TotalItems      int `json:"totalItems"`
	TotalCategories int `json:"totalCategories"`
	TotalStock      int `json:"totalStock"`
	LowStock        int `json:"lowStock"`
}
