package shared

// OffsetPage selects a window of rows by offset, in storage order.
type OffsetPage struct {
	Skip  int
	Limit int
}

// DefaultOffsetPage returns the first ten rows.
func DefaultOffsetPage() OffsetPage {
	return OffsetPage{Skip: 0, Limit: 10}
}

// Validate rejects negative offsets and limits. Limit has no upper bound.
func (p OffsetPage) Validate() error {
	if p.Skip < 0 || p.Limit < 0 {
		return ErrInvalidInput
	}
	return nil
}
