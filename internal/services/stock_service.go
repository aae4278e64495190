package services

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"stockroom/internal/domain"
	"stockroom/internal/repos"
)

// StockService orchestrates stock mutations: it is the one place the
// non-negative stock invariant is enforced before anything is persisted.
type StockService struct {
	Items     *repos.ItemRepo
	Movements *repos.MovementRepo
}

func NewStockService(items *repos.ItemRepo, movements *repos.MovementRepo) *StockService {
	return &StockService{Items: items, Movements: movements}
}

type MovementInput struct {
	ItemID   string
	Type     string // in | out
	Quantity int
	Notes    string
}

// Apply validates the movement, writes the item's new quantity and then
// appends the ledger entry, in that order. A rejected movement leaves both
// collections untouched. If the append fails after the quantity write the
// inconsistency is surfaced as *domain.PartialCommitError; there is no
// compensating rollback.
func (s *StockService) Apply(in MovementInput) (domain.StockMovement, error) {
	if in.Type != domain.MovementIn && in.Type != domain.MovementOut {
		return domain.StockMovement{}, &domain.ValidationError{Msg: "movement type must be in or out"}
	}
	if in.Quantity <= 0 {
		return domain.StockMovement{}, &domain.ValidationError{Msg: "movement quantity must be positive"}
	}

	item, err := s.Items.Get(in.ItemID)
	if err != nil {
		return domain.StockMovement{}, err
	}

	delta := in.Quantity
	if in.Type == domain.MovementOut {
		delta = -in.Quantity
	}
	candidate := item.Quantity + delta
	if candidate < 0 {
		return domain.StockMovement{}, &domain.InsufficientStockError{
			Available: item.Quantity,
			Requested: in.Quantity,
		}
	}

	if err := s.Items.SetQuantity(in.ItemID, candidate); err != nil {
		return domain.StockMovement{}, err
	}

	mv := domain.StockMovement{
		ID:       uuid.NewString(),
		ItemID:   in.ItemID,
		Type:     in.Type,
		Quantity: in.Quantity,
		Date:     time.Now().UTC().Format(time.RFC3339),
		Notes:    in.Notes,
	}
	if err := s.Movements.Append(mv); err != nil {
		return domain.StockMovement{}, &domain.PartialCommitError{ItemID: in.ItemID, Err: err}
	}
	return mv, nil
}

// MovementView is a ledger entry joined with its item's display name.
type MovementView struct {
	domain.StockMovement
	ItemName string
}

// History returns movements newest-first, optionally filtered by type
// ("in", "out", anything else means no filter). An item that no longer
// resolves renders with a placeholder name instead of failing.
func (s *StockService) History(filter string) ([]MovementView, error) {
	moves, err := s.Movements.List()
	if err != nil {
		return nil, err
	}
	items, err := s.Items.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(items))
	for _, it := range items {
		names[it.ID] = it.Name
	}

	out := make([]MovementView, 0, len(moves))
	for _, m := range moves {
		if filter == domain.MovementIn || filter == domain.MovementOut {
			if m.Type != filter {
				continue
			}
		}
		name, ok := names[m.ItemID]
		if !ok {
			name = "Unknown item"
		}
		out = append(out, MovementView{StockMovement: m, ItemName: name})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}
