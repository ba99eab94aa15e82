// Package inventory contiene los casos de uso de operaciones de stock:
// creación de recepciones, entregas y traslados internos, y su validación
// (confirmación) a través del motor de mutación.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stockmaster/stockmaster/internal/application/dto"
	"github.com/stockmaster/stockmaster/internal/domain"
	"github.com/stockmaster/stockmaster/internal/domain/entity"
	"github.com/stockmaster/stockmaster/internal/domain/repository"
	"github.com/stockmaster/stockmaster/internal/domain/stock"
	"github.com/stockmaster/stockmaster/pkg/logger"
)

// referencePrefixes prefijo del consecutivo por tipo de operación.
var referencePrefixes = map[string]string{
	entity.OperationTypeReceipt:    "IN",
	entity.OperationTypeDelivery:   "OUT",
	entity.OperationTypeInternal:   "INT",
	entity.OperationTypeAdjustment: "ADJ",
}

// OperationUseCase crea y valida operaciones sobre los registros en memoria.
// Asume un único escritor lógico a la vez (modelo de la sesión); el
// consecutivo de referencias no necesita su propio lock.
type OperationUseCase struct {
	uow         UnitOfWork
	opRepo      repository.OperationRepository
	productRepo repository.ProductRepository
	log         *logger.Logger
	refSeq      map[string]int
}

// NewOperationUseCase construye el caso de uso. El consecutivo de referencias
// arranca en 2 porque los datos de arranque ya usan 0001 por tipo.
func NewOperationUseCase(
	uow UnitOfWork,
	opRepo repository.OperationRepository,
	productRepo repository.ProductRepository,
	log *logger.Logger,
) *OperationUseCase {
	return &OperationUseCase{
		uow:         uow,
		opRepo:      opRepo,
		productRepo: productRepo,
		log:         log,
		refSeq: map[string]int{
			entity.OperationTypeReceipt:  2,
			entity.OperationTypeDelivery: 2,
			entity.OperationTypeInternal: 2,
		},
	}
}

// Create crea una operación en estado READY, lista para validar. El nombre de
// producto de cada línea se captura del catálogo en este momento ("Unknown"
// si el producto no existe); no se comprueba integridad referencial de las
// ubicaciones.
func (uc *OperationUseCase) Create(in dto.CreateOperationRequest) (*entity.Operation, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	lines := make([]entity.OperationLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		name := "Unknown"
		if p, err := uc.productRepo.GetByID(l.ProductID); err == nil && p != nil {
			name = p.Name
		}
		lines = append(lines, entity.OperationLine{
			ProductID:   l.ProductID,
			ProductName: name,
			Quantity:    l.Quantity,
		})
	}

	reference := in.Reference
	if reference == "" {
		reference = uc.nextReference(in.Type)
	}

	op := &entity.Operation{
		ID:               "op_" + uuid.New().String(),
		Type:             in.Type,
		Reference:        reference,
		SourceLocationID: in.SourceLocationID,
		DestLocationID:   in.DestLocationID,
		Status:           entity.StatusReady,
		Date:             time.Now(),
		Lines:            lines,
	}
	if err := uc.opRepo.Create(op); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("operation_id", op.ID).
		Str("type", op.Type).
		Str("reference", op.Reference).
		Int("lines", len(op.Lines)).
		Msg("operación creada")
	return op, nil
}

// Validate confirma una operación: aplica el motor de mutación de stock y
// marca la operación como DONE, todo dentro de la unidad de trabajo. Un ID
// inexistente y una operación ya DONE son no-ops seguros (idempotente).
// Las líneas con producto inexistente se omiten y se registran como warning.
func (uc *OperationUseCase) Validate(ctx context.Context, id string) error {
	return uc.uow.Run(ctx, func(
		opRepo repository.OperationRepository,
		productRepo repository.ProductRepository,
		locationRepo repository.LocationRepository,
	) error {
		op, err := opRepo.GetByID(id)
		if err != nil {
			return err
		}
		if op == nil {
			uc.log.Warn().Str("operation_id", id).Msg("operación inexistente; validación omitida")
			return nil
		}
		if op.Status == entity.StatusDone {
			return nil
		}

		products, err := productRepo.List()
		if err != nil {
			return err
		}
		locations, err := locationRepo.List()
		if err != nil {
			return err
		}

		next, status, skipped := stock.Apply(*op, products, locations)
		for _, pid := range skipped {
			uc.log.Warn().
				Str("operation_id", id).
				Str("product_id", pid).
				Msg("línea con producto inexistente omitida")
		}

		if err := productRepo.ReplaceAll(next); err != nil {
			return err
		}
		if err := opRepo.UpdateStatus(id, status); err != nil {
			return err
		}

		uc.log.Info().
			Str("operation_id", id).
			Str("reference", op.Reference).
			Str("status", status).
			Msg("operación validada")
		return nil
	})
}

// List devuelve todas las operaciones, las más recientes primero.
func (uc *OperationUseCase) List() ([]entity.Operation, error) {
	return uc.opRepo.List()
}

// ListByType filtra operaciones por tipo.
func (uc *OperationUseCase) ListByType(opType string) ([]entity.Operation, error) {
	return uc.opRepo.ListByType(opType)
}

// nextReference genera la siguiente referencia consecutiva, ej. WH/IN/0002.
func (uc *OperationUseCase) nextReference(opType string) string {
	prefix, ok := referencePrefixes[opType]
	if !ok {
		prefix = "OP"
	}
	n := uc.refSeq[opType]
	if n == 0 {
		n = 1
	}
	uc.refSeq[opType] = n + 1
	return fmt.Sprintf("WH/%s/%04d", prefix, n)
}
