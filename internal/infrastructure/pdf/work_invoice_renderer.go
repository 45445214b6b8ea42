package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/usecase"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
)

var _ usecase.InvoiceRenderer = (*WorkInvoiceRenderer)(nil)

// WorkInvoiceRenderer renders contractor job invoices.
type WorkInvoiceRenderer struct{}

func NewWorkInvoiceRenderer() *WorkInvoiceRenderer { return &WorkInvoiceRenderer{} }

func (r *WorkInvoiceRenderer) RenderWorkInvoice(_ context.Context, inv *entity.WorkInvoice, lines []*entity.WorkInvoiceLine, customer *entity.Customer) ([]byte, error) {
	m := maroto.New(pageConfig("Invoice "+inv.Number, "RentFlow"))

	m.AddRows(invoiceHeaderRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(billToRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(lineTableHeaderRow())
	for _, lr := range lineTableRows(lines) {
		m.AddRows(lr)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(invoiceTotalsRow(inv))

	m.AddRows(line.NewRow(4))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Thank you for your business.", props.Text{
			Size: 8, Align: align.Center, Color: colorGray, Top: 1,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: render invoice %s: %w", inv.Number, err)
	}
	return doc.GetBytes(), nil
}

func invoiceHeaderRow(inv *entity.WorkInvoice) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(inv.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
			}),
			text.New("Date: "+inv.Date.Format("01/02/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func billToRow(customer *entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("%s   |   %s   |   %s",
				nonEmpty(customer.Address, "-"),
				nonEmpty(customer.Email, "-"),
				nonEmpty(customer.Phone, "-"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func lineTableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Qty", 1, align.Center),
		h("Description", 5, align.Left),
		h("Unit Price", 2, align.Right),
		h("Tax", 1, align.Center),
		h("Amount", 3, align.Right),
	)
}

func lineTableRows(lines []*entity.WorkInvoiceLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		taxPct := l.TaxRate.Mul(hundred)
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				l.Quantity.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				l.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+l.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				taxPct.StringFixed(0)+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				"$"+l.Subtotal.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func invoiceTotalsRow(inv *entity.WorkInvoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("Tax:"),
			grandLabel("TOTAL DUE:"),
		),
		col.New(3).Add(
			value("$"+inv.Subtotal.StringFixed(2)),
			value("$"+inv.TaxTotal.StringFixed(2)),
			grandValue("$"+inv.GrandTotal.StringFixed(2)),
		),
		col.New(3),
	)
}
