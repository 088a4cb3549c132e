// Package pdfdoc adapts a PDF file opened with seehuhn.de/go/pdf to the
// pdfview backend interfaces. It extracts positioned characters from
// page content streams, converting PDF's bottom-up device space to the
// top-left origin the interaction engines use, and records annotations
// produced by the engines as in-memory descriptors.
package pdfdoc

import (
	"fmt"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"

	"github.com/gogpu/pdfview"
)

// Document is a PDF file opened for interaction. It implements
// [pdfview.DocumentBackend].
type Document struct {
	r        *pdf.Reader
	numPages int
	pages    map[int]*Page
}

var _ pdfview.DocumentBackend = (*Document)(nil)

// Open opens the named PDF file. The caller must Close the document
// when done.
func Open(fname string) (*Document, error) {
	r, err := pdf.Open(fname, nil)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", fname, err)
	}
	numPages, err := pagetree.NumPages(r)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("open %s: %w", fname, err)
	}
	return &Document{
		r:        r,
		numPages: numPages,
		pages:    make(map[int]*Page),
	}, nil
}

// Close closes the underlying file. Pages obtained from the document
// must not be used afterwards.
func (d *Document) Close() error {
	return d.r.Close()
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.numPages
}

// Page returns the backend for one page. Pages are cached: repeated
// calls with the same index return the same Page, so annotations
// accumulate in one place.
func (d *Document) Page(index int) (pdfview.PageBackend, error) {
	p, err := d.page(index)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (d *Document) page(index int) (*Page, error) {
	if index < 0 || index >= d.numPages {
		return nil, fmt.Errorf("page %d out of range [0, %d)", index, d.numPages)
	}
	if p, ok := d.pages[index]; ok {
		return p, nil
	}
	p := &Page{doc: d, index: index}
	d.pages[index] = p
	return p, nil
}

// Annotations returns the annotations recorded on one page, in the
// order they were added.
func (d *Document) Annotations(pageIndex int) ([]Annotation, error) {
	p, err := d.page(pageIndex)
	if err != nil {
		return nil, err
	}
	return p.annots, nil
}
