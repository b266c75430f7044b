package reports

import (
	"database/sql"
	"time"
)

// dateFormat is the canonical textual form for date fields in responses.
const dateFormat = "2006-01-02"

// minValidYear guards against database "zero dates" such as 1753-01-01 or
// 1900-01-01 placeholders; anything at or before it normalizes to null.
const minValidYear = 1900

// NormalizeDate rewrites a date-typed column to canonical YYYY-MM-DD text.
// NULL and zero dates (year <= 1900) become nil.
func NormalizeDate(t sql.NullTime) *string {
	if !t.Valid || t.Time.Year() <= minValidYear {
		return nil
	}
	s := t.Time.Format(dateFormat)
	return &s
}

// NormalizeDateValue is NormalizeDate for values already scanned as
// time.Time pointers.
func NormalizeDateValue(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return NormalizeDate(sql.NullTime{Time: *t, Valid: true})
}

// CoerceNumeric converts a nullable numeric column to a number, defaulting
// NULL to 0. This is lossy by design: callers cannot distinguish "missing"
// from "zero", and the frontend depends on it.
func CoerceNumeric(n sql.NullFloat64) float64 {
	if !n.Valid {
		return 0
	}
	return n.Float64
}

// NullableNumeric keeps NULL distinct from zero, for the one numeric field
// (ClosingDays) where null carries meaning: no final delivery date set.
func NullableNumeric(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

// TextOrNil passes a nullable text column through, nil for NULL.
func TextOrNil(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// TextOrEmpty collapses NULL text to the empty string.
func TextOrEmpty(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}
