// Package pdf renders platform documents (lease agreements and contractor
// work invoices) with Maroto v2.
package pdf

import (
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
)

var (
	colorPrimary = &props.Color{Red: 28, Green: 60, Blue: 107}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}

	hundred = decimal.NewFromInt(100)
)

func pageConfig(title, author string) *entity.Config {
	return config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(author, true).
		Build()
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
