package search

// Window is the optional offset/limit pair restricting a result set to one page.
type Window struct {
	Offset *int
	Limit  *int
}

// NewWindow builds a window from optional values.
func NewWindow(offset, limit *int) Window {
	return Window{Offset: offset, Limit: limit}
}

// Applies reports whether LIMIT/OFFSET should be added to the row query:
// both values present, offset >= 0 and limit > 0.
func (w Window) Applies() bool {
	return w.Offset != nil && w.Limit != nil && *w.Offset >= 0 && *w.Limit > 0
}

// Bounds returns offset and limit as unsigned values, or zeros when the
// window does not apply.
func (w Window) Bounds() (offset, limit uint64) {
	if !w.Applies() {
		return 0, 0
	}
	return uint64(*w.Offset), uint64(*w.Limit)
}
