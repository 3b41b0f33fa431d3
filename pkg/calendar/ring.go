package calendar

// DefaultBuffer is the number of months generated on each side of the pivot.
const DefaultBuffer = 12

// Ring is a fixed run of consecutive months centred on a pivot month. It
// never grows; a new projection or a new pivot produces a new Ring.
type Ring[E Dated] struct {
	Pivot  MonthKey
	Buffer int
	Months []Month[E]
}

// BuildRing generates the 2*buffer+1 months around pivot and binds entries to
// their days. Entries are bucketed once and shared by every month.
func BuildRing[E Dated](pivot MonthKey, buffer int, entries []E, opts GridOptions) Ring[E] {
	if buffer < 0 {
		buffer = 0
	}
	byDate := Bucket(entries, opts)
	months := make([]Month[E], 0, 2*buffer+1)
	for i := -buffer; i <= buffer; i++ {
		months = append(months, buildMonth(pivot.Add(i), byDate, opts.WeekStart))
	}
	return Ring[E]{Pivot: pivot, Buffer: buffer, Months: months}
}

// Len returns the number of months in the ring.
func (r Ring[E]) Len() int {
	return len(r.Months)
}

// PivotIndex is the index of the pivot month.
func (r Ring[E]) PivotIndex() int {
	return r.Buffer
}

// At returns the month key at index i.
func (r Ring[E]) At(i int) MonthKey {
	return r.Months[i].MonthKey
}

// IndexOf returns the index of month k, or -1 when k lies outside the ring.
func (r Ring[E]) IndexOf(k MonthKey) int {
	for i, m := range r.Months {
		if m.MonthKey == k {
			return i
		}
	}
	return -1
}

// Slice returns the months in [start, end), clamped to the ring.
func (r Ring[E]) Slice(start, end int) []Month[E] {
	if start < 0 {
		start = 0
	}
	if end > len(r.Months) {
		end = len(r.Months)
	}
	if start >= end {
		return nil
	}
	return r.Months[start:end]
}

// Keys lists the month keys of the ring in order.
func (r Ring[E]) Keys() []MonthKey {
	keys := make([]MonthKey, len(r.Months))
	for i, m := range r.Months {
		keys[i] = m.MonthKey
	}
	return keys
}
