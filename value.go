package finlens

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ValueKind discriminates the variants of a raw cell value.
type ValueKind int

const (
	// KindNull is a missing value, or one of a type we do not handle.
	KindNull ValueKind = iota
	KindString
	KindInt
	KindFloat
)

// Value is a raw amount as found in an ingested row-set: a CSV cell is
// always textual, but row-sets built programmatically (e.g. decoded from
// JSON) may carry numbers directly. A single normalization rule turns any
// variant into a float64, so call sites never inspect the variant
// themselves.
type Value struct {
	kind ValueKind
	s    string
	i    int64
	f    float64
}

// Null is the missing value. It normalizes to 0.
var Null = Value{}

// String returns a textual Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int returns an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Kind returns the variant of this value.
func (v Value) Kind() ValueKind { return v.kind }

// Float64 normalizes the value to a float64.
//
// Textual values are trimmed, stripped of comma thousands separators and
// parsed as a decimal number. Numeric values convert directly. Anything
// else, the empty string, and unparseable text all normalize to 0.
//
// The second return value is false only when textual parsing failed: the
// result is still a defined 0, but callers can tell "legitimately zero"
// from "failed to parse".
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	case KindString:
		s := strings.TrimSpace(strings.ReplaceAll(v.s, ",", ""))
		if s == "" {
			return 0, true
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return 0, false
		}
		return d.InexactFloat64(), true
	default:
		return 0, true
	}
}
