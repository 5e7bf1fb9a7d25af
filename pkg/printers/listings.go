package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodlog/pkg/property"
)

// Listings renders property search results as a table.
func (pp *PrettyPrint) Listings(listings ...property.Listing) {
	if len(listings) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no matching properties\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("TITLE", "PRICE", "TYPE", "STATUS", "BD", "BA", "SQFT", "ADDRESS")
	for _, l := range listings {
		tbl.AddRow(
			l.Title,
			property.FormatPrice(l.Price),
			l.Type,
			l.Status,
			fmt.Sprintf("%d", l.Bedrooms),
			fmt.Sprintf("%g", l.Bathrooms),
			fmt.Sprintf("%d", l.Area),
			l.Address,
		)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
