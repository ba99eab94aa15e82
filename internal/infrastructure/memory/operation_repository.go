package memory

import (
	"github.com/stockmaster/stockmaster/internal/domain"
	"github.com/stockmaster/stockmaster/internal/domain/entity"
	"github.com/stockmaster/stockmaster/internal/domain/repository"
)

var _ repository.OperationRepository = (*OperationRepo)(nil)

// OperationRepo implementación del puerto OperationRepository sobre el estado en memoria.
type OperationRepo struct {
	src StateSource
}

// NewOperationRepository construye el adaptador del registro de operaciones.
func NewOperationRepository(src StateSource) *OperationRepo {
	return &OperationRepo{src: src}
}

// Create antepone la operación ya formada (las más recientes primero).
// No se verifica integridad referencial contra productos ni ubicaciones.
func (r *OperationRepo) Create(op *entity.Operation) error {
	if op == nil {
		return domain.ErrInvalidInput
	}
	o := *op
	lines := make([]entity.OperationLine, len(op.Lines))
	copy(lines, op.Lines)
	o.Lines = lines
	return r.src.update(func(st *entity.State) error {
		st.Operations = append([]entity.Operation{o}, st.Operations...)
		return nil
	})
}

// GetByID obtiene una operación por ID; nil, nil si no existe.
func (r *OperationRepo) GetByID(id string) (*entity.Operation, error) {
	st := r.src.Snapshot()
	for i := range st.Operations {
		if st.Operations[i].ID == id {
			op := st.Operations[i]
			return &op, nil
		}
	}
	return nil, nil
}

// List devuelve todas las operaciones, las más recientes primero.
func (r *OperationRepo) List() ([]entity.Operation, error) {
	return r.src.Snapshot().Operations, nil
}

// ListByType filtra por tipo conservando el orden (la validación no reordena).
func (r *OperationRepo) ListByType(opType string) ([]entity.Operation, error) {
	st := r.src.Snapshot()
	out := make([]entity.Operation, 0, len(st.Operations))
	for _, op := range st.Operations {
		if op.Type == opType {
			out = append(out, op)
		}
	}
	return out, nil
}

// UpdateStatus reemplaza el registro de la operación con el nuevo estado.
func (r *OperationRepo) UpdateStatus(id, status string) error {
	return r.src.update(func(st *entity.State) error {
		for i := range st.Operations {
			if st.Operations[i].ID == id {
				op := st.Operations[i]
				op.Status = status
				st.Operations[i] = op
				return nil
			}
		}
		return domain.ErrNotFound
	})
}
