package analytics

import (
	"sort"
	"time"
)

// Count is the number of rows sharing one label.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Breakdown counts rows per value of a field. Buckets are ordered by descending count;
// equal counts keep the order in which the values first appeared. Rows whose field is
// NULL are not bucketed and are counted in Missing instead.
type Breakdown struct {
	Buckets []Count `json:"buckets"`
	Missing int     `json:"missing"`
}

// Total returns the number of rows the breakdown was computed from.
func (b Breakdown) Total() int {
	n := b.Missing
	for _, c := range b.Buckets {
		n += c.Count
	}
	return n
}

// Top returns the first n buckets. Missing is carried over unchanged.
func (b Breakdown) Top(n int) Breakdown {
	if n < 0 || n >= len(b.Buckets) {
		return b
	}
	out := make([]Count, n)
	copy(out, b.Buckets[:n])
	return Breakdown{Buckets: out, Missing: b.Missing}
}

// Map returns the buckets keyed by label.
func (b Breakdown) Map() map[string]int {
	m := make(map[string]int, len(b.Buckets))
	for _, c := range b.Buckets {
		m[c.Label] = c.Count
	}
	return m
}

// Empty reports whether no row was bucketed.
func (b Breakdown) Empty() bool { return len(b.Buckets) == 0 }

type tally struct {
	index  map[string]int
	counts []Count
}

func newTally() *tally {
	return &tally{index: make(map[string]int)}
}

func (t *tally) add(label string) {
	if i, ok := t.index[label]; ok {
		t.counts[i].Count++
		return
	}
	t.index[label] = len(t.counts)
	t.counts = append(t.counts, Count{Label: label, Count: 1})
}

func (t *tally) sorted() []Count {
	out := t.counts
	if out == nil {
		out = make([]Count, 0)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// CountBy groups rows by a categorical field.
func CountBy[T any](rows []T, field StringField[T]) Breakdown {
	t := newTally()
	missing := 0
	for _, row := range rows {
		v := field(row)
		if v == nil {
			missing++
			continue
		}
		t.add(*v)
	}
	return Breakdown{Buckets: t.sorted(), Missing: missing}
}

// CountByFlag groups rows by a boolean flag, labelling true and false values.
func CountByFlag[T any](rows []T, field BoolField[T], trueLabel, falseLabel string) Breakdown {
	t := newTally()
	missing := 0
	for _, row := range rows {
		v := field(row)
		switch {
		case v == nil:
			missing++
		case *v:
			t.add(trueLabel)
		default:
			t.add(falseLabel)
		}
	}
	return Breakdown{Buckets: t.sorted(), Missing: missing}
}

// DailyCount is the number of rows stamped on one calendar day.
type DailyCount struct {
	Date  Date `json:"date"`
	Count int  `json:"count"`
}

// Timeline counts rows per calendar day of field, in loc, ordered by ascending date.
// Rows without a timestamp are skipped.
func Timeline[T any](rows []T, field TimeField[T], loc *time.Location) []DailyCount {
	byDay := make(map[Date]int)
	for _, row := range rows {
		ts := field(row)
		if ts == nil || ts.IsZero() {
			continue
		}
		byDay[DateOf(*ts, loc)]++
	}

	out := make([]DailyCount, 0, len(byDay))
	for d, n := range byDay {
		out = append(out, DailyCount{Date: d, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// CountWithin counts rows whose timestamp is strictly after now-window.
func CountWithin[T any](rows []T, field TimeField[T], now time.Time, window time.Duration) int {
	cutoff := now.Add(-window)
	n := 0
	for _, row := range rows {
		ts := field(row)
		if ts != nil && ts.After(cutoff) {
			n++
		}
	}
	return n
}

// CountMatching counts rows whose field equals want.
func CountMatching[T any](rows []T, field StringField[T], want string) int {
	return len(Apply(rows, FieldEquals(field, &want)))
}
