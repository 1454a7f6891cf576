// Package pdftext reads positioned text fragments from PDF documents.
//
// Characters reported by the PDF content stream are merged into runs of
// text on the same baseline. A run breaks where the horizontal gap to the
// next character exceeds a fraction of the font size, so words separated by
// ordinary spaces stay together while column gaps split them.
//
// Basic usage:
//
//	src, err := pdftext.Open("statement.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	page, err := src.Page(0)
package pdftext
