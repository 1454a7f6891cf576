package tables

import "github.com/tsawler/rowscan/model"

// frag creates a fragment spanning [x, x+width] with the given height.
func frag(txt string, x, width, height float64) model.Fragment {
	return model.Fragment{
		X1:     x,
		Y1:     0,
		X2:     x + width,
		Y2:     height,
		Width:  width,
		Height: height,
		Text:   txt,
	}
}

// row creates a numbered line. Baselines step down 12 points per line.
func row(number int, fragments ...model.Fragment) model.Line {
	y := 700 - float64(number-1)*12
	for i := range fragments {
		fragments[i].Y1 = 792 - y
		fragments[i].Y2 = fragments[i].Y1 + fragments[i].Height
	}
	return model.Line{Number: number, Y: y, Fragments: fragments}
}

// ledgerRow creates a four-column row starting with a date.
func ledgerRow(number int, date string) model.Line {
	return row(number,
		frag(date, 10, 85, 10),
		frag("Description", 100, 95, 10),
		frag("Reference", 200, 95, 10),
		frag("12.50", 300, 50, 10),
	)
}

// ledgerPage creates a page of n ledger rows.
func ledgerPage(n int) *model.Page {
	page := model.NewPage(1, 612, 792)
	for i := 1; i <= n; i++ {
		page.Lines = append(page.Lines, ledgerRow(i, "12/03/2024"))
	}
	return page
}
