package repository

import "github.com/stockmaster/stockmaster/internal/domain/entity"

// OperationRepository define el puerto del registro de operaciones (DIP).
// Las operaciones más recientes van primero; GetByID devuelve nil, nil si
// la operación no existe.
type OperationRepository interface {
	Create(op *entity.Operation) error
	GetByID(id string) (*entity.Operation, error)
	List() ([]entity.Operation, error)
	ListByType(opType string) ([]entity.Operation, error)
	UpdateStatus(id, status string) error
}
