package analytics

import (
	"time"
)

// Predicate reports whether a row satisfies one filter criterion.
// A nil Predicate stands for "no constraint" and is skipped by Apply.
type Predicate[T any] func(T) bool

// StringField extracts a nullable categorical value from a row.
type StringField[T any] func(T) *string

// TimeField extracts a nullable timestamp from a row.
type TimeField[T any] func(T) *time.Time

// BoolField extracts a nullable flag from a row.
type BoolField[T any] func(T) *bool

// Apply returns the rows that satisfy every non-nil predicate, in input order.
// The input slice is never modified and the result is never nil.
func Apply[T any](rows []T, preds ...Predicate[T]) []T {
	active := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}

	out := make([]T, 0, len(rows))
rows:
	for _, row := range rows {
		for _, p := range active {
			if !p(row) {
				continue rows
			}
		}
		out = append(out, row)
	}
	return out
}

// FieldEquals matches rows whose field equals want. A nil want yields a nil predicate.
// Rows with a NULL field never match.
func FieldEquals[T any](field StringField[T], want *string) Predicate[T] {
	if want == nil {
		return nil
	}
	w := *want
	return func(row T) bool {
		v := field(row)
		return v != nil && *v == w
	}
}

// FlagEquals matches rows whose flag equals want. A nil want yields a nil predicate.
// Rows with a NULL flag never match.
func FlagEquals[T any](field BoolField[T], want *bool) Predicate[T] {
	if want == nil {
		return nil
	}
	w := *want
	return func(row T) bool {
		v := field(row)
		return v != nil && *v == w
	}
}

// InDateRange matches rows whose timestamp falls on a day inside r, in loc.
// A nil r yields a nil predicate. Rows without a timestamp never match.
func InDateRange[T any](field TimeField[T], r *DateRange, loc *time.Location) Predicate[T] {
	if r == nil {
		return nil
	}
	rng := *r
	return func(row T) bool {
		ts := field(row)
		if ts == nil || ts.IsZero() {
			return false
		}
		return rng.Contains(DateOf(*ts, loc))
	}
}
