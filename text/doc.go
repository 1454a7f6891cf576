// Package text defines the input boundary of the classifier: raw positioned
// text fragments as produced by a document-text-extraction component.
//
// # Coordinates
//
// Raw fragments use the PDF convention: X and Y locate the text baseline
// relative to the bottom-left corner of the page, Y growing upwards. Width
// and Height are in the same units. Conversion to top-left-origin rectangles
// happens in package layout.
//
// # Sources
//
// A [Source] yields pages by zero-based index:
//
//	src := text.NewMemorySource(pages...)
//	defer src.Close()
//	n, _ := src.PageCount()
//	page, err := src.Page(0)
//
// JSON documents can be read with [ReadJSON] and written with [WriteJSON]:
//
//	{"pages":[{"number":1,"width":612,"height":792,
//	  "fragments":[{"text":"12/05/2021","x":10,"y":700,"width":85,"height":10}]}]}
//
// Other sources live in packages pdftext, hocr and ocr.
package text
