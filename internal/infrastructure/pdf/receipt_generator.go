// Package pdf genera el resumen imprimible del carrito (cotización previa al cobro)
// que el operador puede entregar antes de confirmar la venta.
//
// Layout A5:
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: nombre del local │ operador + fecha  │
//	│  ────────────────────────────────────────────│
//	│  TABLA: Cant | Producto | P.Unit | Subtotal   │
//	│  ────────────────────────────────────────────│
//	│  TOTAL                                        │
//	│  Leyenda: documento no fiscal                 │
//	└──────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/pos-backoffice/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator genera el PDF del carrito usando Maroto v2.
type ReceiptGenerator struct {
	shopName string
}

// NewReceiptGenerator construye el generador con el nombre del local para el header.
func NewReceiptGenerator(shopName string) *ReceiptGenerator {
	return &ReceiptGenerator{shopName: shopName}
}

// GenerateCartReceipt genera el PDF del carrito actual y devuelve sus bytes.
// El total se deriva del carrito, igual que en pantalla.
func (g *ReceiptGenerator) GenerateCartReceipt(
	_ context.Context,
	cart entity.Cart,
	operator string,
	issuedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de venta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.shopName, operator, issuedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(cart) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(cart))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del local (izq), operador y fecha (der).
func headerRow(shopName, operator string, issuedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(shopName, props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("Resumen de venta (no fiscal)", props.Text{
				Size: 8, Top: 8, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Operador: "+operator, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(issuedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 5, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableRows: una fila por línea del carrito, en orden de inserción.
func tableRows(cart entity.Cart) []core.Row {
	result := make([]core.Row, 0, len(cart))
	for _, l := range cart {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", l.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.Name,
				props.Text{Size: 8, Top: 1},
			)),
			col.New(2).Add(text.New(
				l.Price.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(3).Add(text.New(
				l.Subtotal().StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
		))
	}
	return result
}

// totalRow: total derivado del carrito.
func totalRow(cart entity.Cart) core.Row {
	return row.New(10).Add(
		col.New(7).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 11, Top: 2,
		})),
		col.New(5).Add(text.New(cart.Total().StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
	)
}

// footerRow: leyenda legal.
func footerRow() core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(
			"Documento sin valor fiscal. El stock se descuenta al confirmar la venta.",
			props.Text{Size: 7, Top: 3, Color: colorGray, Align: align.Center},
		)),
	)
}
