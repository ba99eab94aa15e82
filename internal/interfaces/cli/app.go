// Package cli es la capa de presentación: una interfaz de terminal con las
// mismas vistas del tablero (dashboard, productos, operaciones, ajustes) y el
// acceso simulado como puerta de entrada. Solo invoca los casos de uso; no
// contiene reglas de inventario.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stockmaster/stockmaster/internal/application/auth"
	"github.com/stockmaster/stockmaster/internal/application/dto"
	"github.com/stockmaster/stockmaster/internal/application/inventory"
	"github.com/stockmaster/stockmaster/internal/application/usecase"
	"github.com/stockmaster/stockmaster/internal/domain"
	"github.com/stockmaster/stockmaster/internal/domain/entity"
	"github.com/stockmaster/stockmaster/pkg/logger"
)

// Deps dependencias de la interfaz de terminal.
type Deps struct {
	Products   *usecase.ProductUseCase
	Warehouses *usecase.WarehouseUseCase
	Operations *inventory.OperationUseCase
	Dashboard  *usecase.DashboardUseCase
	Session    *auth.SessionFlow
	Log        *logger.Logger
}

// App bucle de comandos de la sesión. Cada comando corre hasta terminar antes
// de aceptar el siguiente; no hay trabajo en segundo plano.
type App struct {
	deps Deps
	in   *bufio.Scanner
	out  io.Writer
}

// New construye la aplicación de terminal sobre los streams dados.
func New(deps Deps, in io.Reader, out io.Writer) *App {
	return &App{deps: deps, in: bufio.NewScanner(in), out: out}
}

// Run ejecuta la puerta de acceso y después el bucle de comandos, hasta
// "exit", EOF o cancelación del contexto.
func (a *App) Run(ctx context.Context) error {
	if !a.authGate() {
		return nil
	}
	fmt.Fprintln(a.out, "\nStockMaster — Smart Inventory Management")
	fmt.Fprintln(a.out, `Escribe "help" para ver los comandos.`)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(a.out, "\n> ")
		line, ok := a.readLine()
		if !ok {
			return nil
		}
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "help":
			a.printHelp()
		case "dashboard":
			a.showDashboard()
		case "products":
			a.showProducts(strings.Join(args[1:], " "))
		case "product":
			if len(args) > 1 && args[1] == "add" {
				a.addProduct()
			} else {
				a.unknown(line)
			}
		case "receipts":
			a.showOperations(entity.OperationTypeReceipt)
		case "deliveries":
			a.showOperations(entity.OperationTypeDelivery)
		case "transfers":
			a.showOperations(entity.OperationTypeInternal)
		case "op":
			a.handleOp(args[1:])
		case "validate":
			if len(args) < 2 {
				fmt.Fprintln(a.out, "uso: validate <operación>")
				continue
			}
			a.validateOperation(ctx, args[1])
		case "warehouses":
			a.showWarehouses()
		case "warehouse":
			if len(args) > 2 && args[1] == "add" {
				a.addWarehouse(strings.Join(args[2:], " "))
			} else {
				fmt.Fprintln(a.out, "uso: warehouse add <nombre>")
			}
		case "adjust":
			if len(args) < 2 {
				fmt.Fprintln(a.out, "uso: adjust <producto>")
				continue
			}
			a.adjustStock(args[1])
		case "logout":
			a.deps.Session.Logout()
			if !a.authGate() {
				return nil
			}
		case "exit", "quit":
			fmt.Fprintln(a.out, "Hasta pronto.")
			return nil
		default:
			a.unknown(line)
		}
	}
}

func (a *App) handleOp(args []string) {
	if len(args) < 2 || args[0] != "add" {
		fmt.Fprintln(a.out, "uso: op add <receipt|delivery|internal>")
		return
	}
	var opType string
	switch args[1] {
	case "receipt":
		opType = entity.OperationTypeReceipt
	case "delivery":
		opType = entity.OperationTypeDelivery
	case "internal":
		opType = entity.OperationTypeInternal
	default:
		fmt.Fprintln(a.out, "uso: op add <receipt|delivery|internal>")
		return
	}
	a.createOperation(opType)
}

func (a *App) addProduct() {
	name := a.prompt("Nombre: ")
	sku := a.prompt("SKU: ")
	category := a.prompt(fmt.Sprintf("Categoría %v: ", productCategoriesHint()))
	uom := a.promptDefault("Unidad de medida", "Units")
	stock, err := a.promptInt("Stock inicial", 0)
	if err != nil {
		a.inputError(err)
		return
	}
	location := a.promptDefault("Ubicación", "loc_wh_stock")
	price, err := a.promptDecimal("Precio", decimal.Zero)
	if err != nil {
		a.inputError(err)
		return
	}

	p, err := a.deps.Products.Create(dto.CreateProductRequest{
		Name:       name,
		SKU:        sku,
		Category:   category,
		UOM:        uom,
		Stock:      stock,
		LocationID: location,
		Price:      price,
	})
	if err != nil {
		a.inputError(err)
		return
	}
	fmt.Fprintf(a.out, "Producto %s creado (%s).\n", p.ID, p.Name)
}

func (a *App) createOperation(opType string) {
	productID := a.prompt("Producto: ")
	qty, err := a.promptInt("Cantidad", 1)
	if err != nil {
		a.inputError(err)
		return
	}

	// Origen y destino por defecto según el tipo, como los formularios del tablero.
	var source, dest string
	switch opType {
	case entity.OperationTypeReceipt:
		source = a.promptDefault("Origen", "loc_vendor")
		dest = a.promptDefault("Destino", "loc_wh_stock")
	case entity.OperationTypeDelivery:
		source = a.promptDefault("Origen", "loc_wh_stock")
		dest = a.promptDefault("Destino", "loc_customer")
	default:
		source = a.promptDefault("Origen", "loc_wh_stock")
		dest = a.promptDefault("Destino", "loc_wh_pack")
	}

	op, err := a.deps.Operations.Create(dto.CreateOperationRequest{
		Type:             opType,
		SourceLocationID: source,
		DestLocationID:   dest,
		Lines:            []dto.OperationLineRequest{{ProductID: productID, Quantity: qty}},
	})
	if err != nil {
		a.inputError(err)
		return
	}
	fmt.Fprintf(a.out, "Operación %s creada (%s, %s).\n", op.Reference, op.ID, op.Status)
}

func (a *App) validateOperation(ctx context.Context, id string) {
	if err := a.deps.Operations.Validate(ctx, id); err != nil {
		a.inputError(err)
		return
	}
	fmt.Fprintf(a.out, "Operación %s validada.\n", id)
}

func (a *App) addWarehouse(name string) {
	loc, err := a.deps.Warehouses.AddLocation(dto.AddLocationRequest{Name: name})
	if err != nil {
		a.inputError(err)
		return
	}
	fmt.Fprintf(a.out, "Bodega %s creada (%s).\n", loc.Name, loc.ID)
}

func (a *App) adjustStock(productID string) {
	stock, err := a.promptInt("Nuevo stock", 0)
	if err != nil {
		a.inputError(err)
		return
	}
	location := a.promptDefault("Nueva ubicación", "loc_wh_stock")

	err = a.deps.Products.AdjustStock(dto.AdjustStockRequest{
		ProductID:  productID,
		Stock:      stock,
		LocationID: location,
	})
	if err != nil {
		a.inputError(err)
		return
	}
	fmt.Fprintln(a.out, "Stock ajustado.")
}

// ── Lectura de entrada ────────────────────────────────────────────────────────

func (a *App) readLine() (string, bool) {
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}

func (a *App) prompt(label string) string {
	fmt.Fprint(a.out, label)
	line, _ := a.readLine()
	return line
}

func (a *App) promptDefault(label, def string) string {
	line := a.prompt(fmt.Sprintf("%s [%s]: ", label, def))
	if line == "" {
		return def
	}
	return line
}

// promptInt rechaza entrada no numérica en el borde, en lugar de guardar
// basura como hacía el formulario original.
func (a *App) promptInt(label string, def int) (int, error) {
	line := a.prompt(fmt.Sprintf("%s [%d]: ", label, def))
	if line == "" {
		return def, nil
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q no es un número entero", domain.ErrInvalidInput, line)
	}
	return n, nil
}

func (a *App) promptDecimal(label string, def decimal.Decimal) (decimal.Decimal, error) {
	line := a.prompt(fmt.Sprintf("%s [%s]: ", label, def))
	if line == "" {
		return def, nil
	}
	d, err := decimal.NewFromString(line)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q no es un número", domain.ErrInvalidInput, line)
	}
	return d, nil
}

func (a *App) inputError(err error) {
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrNotFound) {
		fmt.Fprintf(a.out, "Error: %v\n", err)
		return
	}
	a.deps.Log.Error().Err(err).Msg("comando falló")
	fmt.Fprintf(a.out, "Error inesperado: %v\n", err)
}

func (a *App) unknown(line string) {
	fmt.Fprintf(a.out, "Comando desconocido: %q. Escribe \"help\".\n", line)
}

func (a *App) printHelp() {
	fmt.Fprint(a.out, `Comandos:
  dashboard                     resumen de inventario
  products [término]            catálogo, con filtro opcional por nombre/SKU
  product add                   alta de producto
  receipts | deliveries | transfers
                                operaciones por tipo
  op add <receipt|delivery|internal>
                                crear operación (queda READY)
  validate <operación>          confirmar una operación
  warehouses                    ubicaciones
  warehouse add <nombre>        alta de bodega interna
  adjust <producto>             ajuste manual de stock y ubicación
  logout | exit
`)
}
