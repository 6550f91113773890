package forms

import "sort"

// Paginator walks a field list page by page. Internal indexing is 0-based;
// DisplayPage is the only 1-based accessor. Both render surfaces share this
// engine instead of carrying their own indexing convention.
type Paginator struct {
	fields []FieldConfig
	pages  []int
	index  int
}

// NewPaginator groups fields by their distinct sorted page numbers. A schema
// with no explicit paging gets the single implicit page 0.
func NewPaginator(fields []FieldConfig) *Paginator {
	seen := map[int]bool{}
	var pages []int
	for _, f := range fields {
		if !seen[f.PageNumber] {
			seen[f.PageNumber] = true
			pages = append(pages, f.PageNumber)
		}
	}
	if len(pages) == 0 {
		pages = []int{0}
	}
	sort.Ints(pages)
	return &Paginator{fields: fields, pages: pages}
}

// TotalPages is never less than 1.
func (p *Paginator) TotalPages() int { return len(p.pages) }

// CurrentPage returns the schema page number the paginator is on.
func (p *Paginator) CurrentPage() int { return p.pages[p.index] }

// CurrentIndex is the 0-based position within the page sequence.
func (p *Paginator) CurrentIndex() int { return p.index }

// DisplayPage is the 1-based page number for presentation only.
func (p *Paginator) DisplayPage() int { return p.index + 1 }

// IsLast reports whether the paginator is on the final page.
func (p *Paginator) IsLast() bool { return p.index == len(p.pages)-1 }

// Progress is the percentage of pages reached, 1-based over the total.
func (p *Paginator) Progress() float64 {
	return float64(p.index+1) / float64(len(p.pages)) * 100
}

// PageFields returns the fields on the current page, in schema order.
func (p *Paginator) PageFields() []FieldConfig {
	var out []FieldConfig
	for _, f := range p.fields {
		if f.PageNumber == p.CurrentPage() {
			out = append(out, f)
		}
	}
	return out
}

// Next validates the current page and advances only when it is clean.
// Advancing past the last page is a no-op. The returned map is empty on
// success.
func (p *Paginator) Next(values FormValues) Errors {
	errs := ValidatePage(p.fields, values, p.CurrentPage())
	if len(errs) > 0 {
		return errs
	}
	if p.index < len(p.pages)-1 {
		p.index++
	}
	return errs
}

// Prev moves back one page without validating. Retreating before the first
// page is a no-op.
func (p *Paginator) Prev() {
	if p.index > 0 {
		p.index--
	}
}

// SeekPage jumps to the given schema page number, if it exists. Used to
// return the view to the first page holding a validation error.
func (p *Paginator) SeekPage(page int) bool {
	for i, n := range p.pages {
		if n == page {
			p.index = i
			return true
		}
	}
	return false
}
