package domain

// EntryDetail is the full record of a single catalog entry.
type EntryDetail struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Height       int      `json:"height"`        // Decimetres
	Weight       int      `json:"weight"`        // Hectograms
	Categories   []string `json:"categories"`    // Type names, server order
	ThumbnailRef string   `json:"thumbnail_ref"` // Empty when the entry has no default sprite
}

// Clone returns a copy that shares no categories with d.
func (d *EntryDetail) Clone() *EntryDetail {
	if d == nil {
		return nil
	}
	dup := *d
	if d.Categories != nil {
		dup.Categories = make([]string, len(d.Categories))
		copy(dup.Categories, d.Categories)
	}
	return &dup
}
