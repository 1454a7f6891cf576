// Package hocr reads positioned words from hOCR documents.
//
// hOCR is the HTML dialect OCR engines such as Tesseract emit. Each
// ocr_page carries its pixel bounding box and each ocrx_word carries its
// own. Words are converted to fragments in a bottom-left coordinate space
// so they line up with fragments read from PDF documents. A word takes the
// baseline and height of its enclosing ocr_line, which keeps all words of
// one recognized line on one baseline.
package hocr
