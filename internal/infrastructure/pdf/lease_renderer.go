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

	"github.com/coffeevibes888/rentflowhq-sub006/internal/application/leasing"
	"github.com/coffeevibes888/rentflowhq-sub006/internal/domain/entity"
)

var _ leasing.AgreementRenderer = (*LeaseRenderer)(nil)

// LeaseRenderer renders residential lease agreements.
type LeaseRenderer struct{}

func NewLeaseRenderer() *LeaseRenderer { return &LeaseRenderer{} }

func (r *LeaseRenderer) RenderLease(_ context.Context, lease *entity.Lease, unit *entity.Unit, property *entity.Property, tenant *entity.Account) ([]byte, error) {
	m := maroto.New(pageConfig("Residential Lease Agreement", property.Name))

	m.AddRows(leaseHeaderRow(lease, property))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(premisesRow(unit, property))
	m.AddRows(leasePartiesRow(tenant))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(leaseTermsRows(lease)...)
	m.AddRows(line.NewRow(3))
	m.AddRows(leaseClauseRows()...)
	m.AddRows(line.NewRow(4))
	m.AddRows(signatureBlockRow(tenant))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: render lease %s: %w", lease.ID, err)
	}
	return doc.GetBytes(), nil
}

func leaseHeaderRow(lease *entity.Lease, property *entity.Property) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("RESIDENTIAL LEASE AGREEMENT", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(property.Name, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Lease "+lease.ID[:8], props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New("Prepared "+lease.CreatedAt.Format("January 2, 2006"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func premisesRow(unit *entity.Unit, property *entity.Property) core.Row {
	address := fmt.Sprintf("%s, Unit %s, %s, %s %s",
		property.Address, unit.Label, property.City, property.State, property.ZipCode)
	detail := fmt.Sprintf("%d bed / %d bath", unit.Bedrooms, unit.Bathrooms)
	if unit.SquareFeet > 0 {
		detail = fmt.Sprintf("%s, %d sq ft", detail, unit.SquareFeet)
	}

	return row.New(14).Add(
		col.New(12).Add(
			text.New("THE PREMISES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(address, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(detail, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func leasePartiesRow(tenant *entity.Account) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("TENANT", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Email: %s",
				tenant.Name, nonEmpty(tenant.Email, "-"),
			), props.Text{Size: 9, Top: 7}),
		),
	)
}

func leaseTermsRows(lease *entity.Lease) []core.Row {
	term := func(label, value string) core.Row {
		return row.New(7).Add(
			col.New(4).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1,
			})),
			col.New(8).Add(text.New(value, props.Text{Size: 9, Top: 1})),
		)
	}

	return []core.Row{
		row.New(8).Add(col.New(12).Add(text.New("TERMS", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}))),
		term("Lease start", lease.StartDate.Format("January 2, 2006")),
		term("Lease end", lease.EndDate.Format("January 2, 2006")),
		term("Monthly rent", "$"+lease.Rent.StringFixed(2)),
		term("Security deposit", "$"+lease.Deposit.StringFixed(2)),
		term("Rent due", "1st of each month; the first month is prorated from the lease start date"),
	}
}

// Standard clause boilerplate. Jurisdiction-specific riders are not rendered
// here; landlords attach them through the provider's envelope.
func leaseClauseRows() []core.Row {
	clauses := []string{
		"1. USE. The premises shall be used as a private residence only, occupied by the tenant named above.",
		"2. PAYMENT. Rent is payable monthly in advance through the platform. Amounts unpaid after the due date may accrue late fees as permitted by law.",
		"3. DEPOSIT. The security deposit is held against damage beyond normal wear and is returned per applicable law after move-out.",
		"4. MAINTENANCE. The tenant shall keep the premises clean and report needed repairs promptly. Alterations require the landlord's written consent.",
		"5. TERMINATION. Early termination of the lease is governed by its terms and applicable law. The landlord may terminate an active lease for cause.",
	}

	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(text.New("AGREEMENT", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))),
	}
	for _, c := range clauses {
		rows = append(rows, row.New(9).Add(col.New(12).Add(
			text.New(c, props.Text{Size: 8, Top: 1, Color: colorGray}),
		)))
	}
	return rows
}

func signatureBlockRow(tenant *entity.Account) core.Row {
	return row.New(22).Add(
		col.New(6).Add(
			text.New("LANDLORD", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("Signature: ____________________________", props.Text{Size: 9, Top: 10}),
			text.New("Date: ____________________", props.Text{Size: 9, Top: 17}),
		),
		col.New(6).Add(
			text.New("TENANT: "+tenant.Name, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New("Signature: ____________________________", props.Text{Size: 9, Top: 10}),
			text.New("Date: ____________________", props.Text{Size: 9, Top: 17}),
		),
	)
}
