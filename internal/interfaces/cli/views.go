package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/stockmaster/stockmaster/internal/domain/entity"
	"github.com/stockmaster/stockmaster/internal/infrastructure/memory"
)

func (a *App) showDashboard() {
	s, err := a.deps.Dashboard.GetSummary()
	if err != nil {
		a.inputError(err)
		return
	}

	fmt.Fprintln(a.out, "\n── Dashboard ──")
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Stock total\t%d\n", s.TotalStock)
	fmt.Fprintf(w, "Valor de inventario\t$%s\n", s.InventoryValue)
	fmt.Fprintf(w, "Productos con stock bajo\t%d\n", s.LowStockCount)
	fmt.Fprintf(w, "Recepciones pendientes\t%d\n", s.PendingReceipts)
	fmt.Fprintf(w, "Entregas pendientes\t%d\n", s.PendingDeliveries)
	w.Flush()

	if len(s.StockByCategory) > 0 {
		fmt.Fprintln(a.out, "\nStock por categoría:")
		w = tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		for _, c := range s.StockByCategory {
			fmt.Fprintf(w, "  %s\t%d\n", c.Category, c.Stock)
		}
		w.Flush()
	}

	if len(s.RecentOperations) > 0 {
		fmt.Fprintln(a.out, "\nOperaciones recientes:")
		a.renderOperations(s.RecentOperations)
	}
}

func (a *App) showProducts(term string) {
	var (
		products []entity.Product
		err      error
	)
	if term == "" {
		products, err = a.deps.Products.List()
	} else {
		products, err = a.deps.Products.Search(term)
	}
	if err != nil {
		a.inputError(err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintln(a.out, "Sin productos.")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tSKU\tCATEGORÍA\tSTOCK\tUBICACIÓN\tPRECIO")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d %s\t%s\t$%s\n",
			p.ID, p.Name, p.SKU, p.Category, p.Stock, p.UOM, a.locationName(p.LocationID), p.Price)
	}
	w.Flush()
}

func (a *App) showOperations(opType string) {
	ops, err := a.deps.Operations.ListByType(opType)
	if err != nil {
		a.inputError(err)
		return
	}
	if len(ops) == 0 {
		fmt.Fprintln(a.out, "Sin operaciones.")
		return
	}
	a.renderOperations(ops)
}

func (a *App) renderOperations(ops []entity.Operation) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tREFERENCIA\tTIPO\tORIGEN\tDESTINO\tFECHA\tESTADO\tLÍNEAS")
	for _, op := range ops {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			op.ID, op.Reference, op.Type,
			a.locationName(op.SourceLocationID), a.locationName(op.DestLocationID),
			op.Date.Format("2006-01-02"), op.Status, summarizeLines(op.Lines))
	}
	w.Flush()
}

func summarizeLines(lines []entity.OperationLine) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%d × %s", l.Quantity, l.ProductName)
	}
	return out
}

func (a *App) showWarehouses() {
	locations, err := a.deps.Warehouses.List()
	if err != nil {
		a.inputError(err)
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tTIPO")
	for _, l := range locations {
		fmt.Fprintf(w, "%s\t%s\t%s\n", l.ID, l.Name, l.Kind)
	}
	w.Flush()
}

// locationName resuelve el nombre para mostrar; si la ubicación no existe se
// muestra el ID tal cual.
func (a *App) locationName(id string) string {
	loc, err := a.deps.Warehouses.GetByID(id)
	if err != nil || loc == nil {
		return id
	}
	return loc.Name
}

func productCategoriesHint() []string {
	return memory.ProductCategories
}
