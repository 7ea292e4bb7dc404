package listing

// Pager tracks the page cursor for one list view. Changing the search term
// resets to page 1, and prev/next clamp at the bounds, so a caller can never
// navigate past the last page.
type Pager struct {
	term       string
	page       int
	totalPages int
}

// NewPager starts on page 1 with an empty search term.
func NewPager() *Pager {
	return &Pager{page: 1}
}

// SetSearch records the current search term; a changed term resets to page 1.
func (p *Pager) SetSearch(term string) {
	if term != p.term {
		p.term = term
		p.page = 1
	}
}

// Sync records the page count of the latest result and clamps the cursor.
func (p *Pager) Sync(totalPages int) {
	p.totalPages = totalPages
	if totalPages > 0 && p.page > totalPages {
		p.page = totalPages
	}
	if p.page < 1 {
		p.page = 1
	}
}

func (p *Pager) Next() {
	if p.CanNext() {
		p.page++
	}
}

func (p *Pager) Prev() {
	if p.CanPrev() {
		p.page--
	}
}

func (p *Pager) CanNext() bool { return p.page < p.totalPages }
func (p *Pager) CanPrev() bool { return p.page > 1 }

func (p *Pager) Current() int { return p.page }
func (p *Pager) Term() string { return p.term }
