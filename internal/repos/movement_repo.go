package repos

import (
	"stockroom/internal/domain"
	"stockroom/internal/kv"
	"stockroom/internal/records"
)

const colMovements = "stockMovements"

// MovementRepo is the append-only stock movement ledger. Storage order is
// creation order; callers wanting date order sort explicitly.
type MovementRepo struct{ store kv.Store }

func NewMovementRepo(s kv.Store) *MovementRepo { return &MovementRepo{store: s} }

func (r *MovementRepo) List() ([]domain.StockMovement, error) {
	return records.List[domain.StockMovement](r.store, colMovements)
}

func (r *MovementRepo) Append(m domain.StockMovement) error {
	if m.Quantity <= 0 {
		return &domain.ValidationError{Msg: "movement quantity must be positive"}
	}
	moves, err := r.List()
	if err != nil {
		return err
	}
	moves = append(moves, m)
	return records.Write(r.store, colMovements, moves)
}
