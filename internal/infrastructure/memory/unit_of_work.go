package memory

import (
	"context"

	"github.com/stockmaster/stockmaster/internal/application/inventory"
	"github.com/stockmaster/stockmaster/internal/domain/entity"
	"github.com/stockmaster/stockmaster/internal/domain/repository"
)

var _ inventory.UnitOfWork = (*UnitOfWork)(nil)

// UnitOfWork ejecuta callbacks de forma atómica sobre el estado de la sesión:
// fn trabaja contra una copia y la copia completa se publica solo si fn no
// falla. Es el equivalente en memoria de una transacción con Commit/Rollback.
type UnitOfWork struct {
	store *Store
}

// NewUnitOfWork construye la unidad de trabajo sobre el Store.
func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

// txState ata los repositorios a la copia de trabajo; no toma el mutex porque
// el Store lo mantiene durante todo el Run.
type txState struct {
	st *entity.State
}

func (t *txState) Snapshot() entity.State { return t.st.Clone() }

func (t *txState) update(fn func(st *entity.State) error) error { return fn(t.st) }

// Run ejecuta fn con repositorios atados a la copia de trabajo y publica el
// estado resultante como un todo, o lo descarta si fn devuelve error.
func (u *UnitOfWork) Run(ctx context.Context, fn func(
	opRepo repository.OperationRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return u.store.update(func(st *entity.State) error {
		tx := &txState{st: st}
		return fn(NewOperationRepository(tx), NewProductRepository(tx), NewLocationRepository(tx))
	})
}
