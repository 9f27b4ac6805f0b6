package domain

// EntrySummary is a single row of a listing page.
type EntrySummary struct {
	Name      string `json:"name"`
	DetailRef string `json:"detail_ref"` // Absolute URL of the entry's detail record
}

// ListingPage is one decoded page of the catalog listing.
type ListingPage struct {
	TotalCount      int            `json:"total_count"`       // Total entries in the catalog
	NextPageRef     string         `json:"next_page_ref"`     // Empty when there is no next page
	PreviousPageRef string         `json:"previous_page_ref"` // Empty when there is no previous page
	Entries         []EntrySummary `json:"entries"`           // Server order
}

func (p *ListingPage) HasNext() bool {
	return p != nil && p.NextPageRef != ""
}

func (p *ListingPage) HasPrevious() bool {
	return p != nil && p.PreviousPageRef != ""
}

// Clone returns a copy that shares no entries with p.
func (p *ListingPage) Clone() *ListingPage {
	if p == nil {
		return nil
	}
	dup := *p
	if p.Entries != nil {
		dup.Entries = make([]EntrySummary, len(p.Entries))
		copy(dup.Entries, p.Entries)
	}
	return &dup
}
