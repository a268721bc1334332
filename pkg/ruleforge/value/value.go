// Package value implements the typed literal and entity values that flow
// through ruleforge's atoms, built-in arguments, and SQWRL result rows.
package value

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ruleforge/ruleforge/pkg/ruleforge/internalerr"
)

// Datatype enumerates the literal kinds ruleforge understands.
type Datatype int

const (
	Boolean Datatype = iota
	Byte
	Short
	Int
	Long
	Float
	Double
	String
	AnyURI
	Date
	Time
	DateTime
	Duration
)

func (dt Datatype) String() string {
	switch dt {
	case Boolean:
		return "boolean"
	case Byte:
		return "byte"
	case Short:
		return "short"
	case Int:
		return "int"
	case Long:
		return "long"
	case Float:
		return "float"
	case Double:
		return "double"
	case String:
		return "string"
	case AnyURI:
		return "anyURI"
	case Date:
		return "date"
	case Time:
		return "time"
	case DateTime:
		return "dateTime"
	case Duration:
		return "duration"
	default:
		return "unknown"
	}
}

func (dt Datatype) isNumeric() bool {
	switch dt {
	case Byte, Short, Int, Long, Float, Double:
		return true
	default:
		return false
	}
}

// isInteger is true for the exact-integer numeric kinds, as opposed to
// float/double which carry a floating-point magnitude.
func (dt Datatype) isInteger() bool {
	switch dt {
	case Byte, Short, Int, Long:
		return true
	default:
		return false
	}
}

func (dt Datatype) isTemporal() bool {
	switch dt {
	case Date, Time, DateTime, Duration:
		return true
	default:
		return false
	}
}

func (dt Datatype) isString() bool {
	return dt == String || dt == AnyURI
}

// Literal is an immutable typed value: a lexical form paired with a
// datatype and (where applicable) its typed projection.
type Literal struct {
	lexical  string
	datatype Datatype
	num      float64 // valid iff datatype.isNumeric(); holds the value for Float/Double
	i        int64   // valid iff datatype.isInteger(); retains full int64 magnitude
	b        bool    // valid iff datatype == Boolean
	t        time.Time
	dur      time.Duration
}

// NewBoolean builds a boolean literal.
func NewBoolean(v bool) Literal {
	return Literal{lexical: strconv.FormatBool(v), datatype: Boolean, b: v}
}

// NewInt builds an int literal.
func NewInt(v int32) Literal {
	return Literal{lexical: strconv.FormatInt(int64(v), 10), datatype: Int, num: float64(v), i: int64(v)}
}

// NewLong builds a long literal.
func NewLong(v int64) Literal {
	return Literal{lexical: strconv.FormatInt(v, 10), datatype: Long, num: float64(v), i: v}
}

// NewShort builds a short literal.
func NewShort(v int16) Literal {
	return Literal{lexical: strconv.FormatInt(int64(v), 10), datatype: Short, num: float64(v), i: int64(v)}
}

// NewByte builds a byte literal.
func NewByte(v int8) Literal {
	return Literal{lexical: strconv.FormatInt(int64(v), 10), datatype: Byte, num: float64(v), i: int64(v)}
}

// NewFloat builds a float literal.
func NewFloat(v float32) Literal {
	return Literal{lexical: strconv.FormatFloat(float64(v), 'g', -1, 32), datatype: Float, num: float64(v)}
}

// NewDouble builds a double literal.
func NewDouble(v float64) Literal {
	return Literal{lexical: strconv.FormatFloat(v, 'g', -1, 64), datatype: Double, num: v}
}

// NewString builds a string literal.
func NewString(v string) Literal {
	return Literal{lexical: v, datatype: String}
}

// NewAnyURI builds an anyURI literal.
func NewAnyURI(v string) Literal {
	return Literal{lexical: v, datatype: AnyURI}
}

// NewDate builds a date literal from a date-only time.Time.
func NewDate(v time.Time) Literal {
	return Literal{lexical: v.Format("2006-01-02"), datatype: Date, t: v}
}

// NewTime builds a time-of-day literal.
func NewTime(v time.Time) Literal {
	return Literal{lexical: v.Format("15:04:05"), datatype: Time, t: v}
}

// NewDateTime builds a dateTime literal.
func NewDateTime(v time.Time) Literal {
	return Literal{lexical: v.Format(time.RFC3339), datatype: DateTime, t: v}
}

// NewDuration builds a duration literal.
func NewDuration(v time.Duration) Literal {
	return Literal{lexical: v.String(), datatype: Duration, dur: v}
}

// NewFromLexical constructs a literal from its lexical form and datatype,
// parsing the typed projection. It fails with ErrLiteralType if the lexical
// form cannot be parsed as the given datatype.
func NewFromLexical(lexical string, dt Datatype) (Literal, error) {
	switch {
	case dt == Boolean:
		b, err := strconv.ParseBool(lexical)
		if err != nil {
			return Literal{}, fmt.Errorf("parse boolean literal %q: %w", lexical, internalerr.ErrLiteralType)
		}
		return Literal{lexical: lexical, datatype: dt, b: b}, nil
	case dt.isInteger():
		n, err := strconv.ParseInt(lexical, 10, 64)
		if err != nil {
			return Literal{}, fmt.Errorf("parse %s literal %q: %w", dt, lexical, internalerr.ErrLiteralType)
		}
		return Literal{lexical: lexical, datatype: dt, num: float64(n), i: n}, nil
	case dt.isNumeric():
		n, err := strconv.ParseFloat(lexical, 64)
		if err != nil {
			return Literal{}, fmt.Errorf("parse %s literal %q: %w", dt, lexical, internalerr.ErrLiteralType)
		}
		return Literal{lexical: lexical, datatype: dt, num: n}, nil
	case dt.isString():
		return Literal{lexical: lexical, datatype: dt}, nil
	case dt == Date:
		t, err := time.Parse("2006-01-02", lexical)
		if err != nil {
			return Literal{}, fmt.Errorf("parse date literal %q: %w", lexical, internalerr.ErrLiteralType)
		}
		return Literal{lexical: lexical, datatype: dt, t: t}, nil
	case dt == Time:
		t, err := time.Parse("15:04:05", lexical)
		if err != nil {
			return Literal{}, fmt.Errorf("parse time literal %q: %w", lexical, internalerr.ErrLiteralType)
		}
		return Literal{lexical: lexical, datatype: dt, t: t}, nil
	case dt == DateTime:
		t, err := time.Parse(time.RFC3339, lexical)
		if err != nil {
			return Literal{}, fmt.Errorf("parse dateTime literal %q: %w", lexical, internalerr.ErrLiteralType)
		}
		return Literal{lexical: lexical, datatype: dt, t: t}, nil
	case dt == Duration:
		d, err := time.ParseDuration(lexical)
		if err != nil {
			return Literal{}, fmt.Errorf("parse duration literal %q: %w", lexical, internalerr.ErrLiteralType)
		}
		return Literal{lexical: lexical, datatype: dt, dur: d}, nil
	default:
		return Literal{}, fmt.Errorf("unsupported datatype %s: %w", dt, internalerr.ErrLiteralType)
	}
}

// Datatype returns the literal's stored datatype.
func (l Literal) Datatype() Datatype { return l.datatype }

// Lexical returns the literal's lexical form.
func (l Literal) Lexical() string { return l.lexical }

// IsNumeric is true exactly for {byte, short, int, long, float, double}.
func (l Literal) IsNumeric() bool { return l.datatype.isNumeric() }

// IsString is true for {string, anyURI}.
func (l Literal) IsString() bool { return l.datatype.isString() }

// IsDate is true for temporal datatypes (date, time, dateTime, duration).
func (l Literal) IsDate() bool { return l.datatype.isTemporal() }

// IsBoolean is true for the boolean datatype.
func (l Literal) IsBoolean() bool { return l.datatype == Boolean }

// AsBool returns the typed boolean projection.
func (l Literal) AsBool() (bool, error) {
	if l.datatype != Boolean {
		return false, fmt.Errorf("literal of datatype %s has no boolean projection: %w", l.datatype, internalerr.ErrLiteralType)
	}
	return l.b, nil
}

// AsDouble returns the numeric value widened to double precision.
func (l Literal) AsDouble() (float64, error) {
	if !l.datatype.isNumeric() {
		return 0, fmt.Errorf("literal of datatype %s has no numeric projection: %w", l.datatype, internalerr.ErrLiteralType)
	}
	return l.num, nil
}

// AsInt returns the numeric value as an int64. Valid for any numeric
// datatype, mirroring the source's integer-widening behavior. Integer
// kinds return their exact stored magnitude; float/double are truncated.
func (l Literal) AsInt() (int64, error) {
	if !l.datatype.isNumeric() {
		return 0, fmt.Errorf("literal of datatype %s has no integer projection: %w", l.datatype, internalerr.ErrLiteralType)
	}
	if l.datatype.isInteger() {
		return l.i, nil
	}
	return int64(l.num), nil
}

// AsString returns the string/anyURI projection.
func (l Literal) AsString() (string, error) {
	if !l.datatype.isString() {
		return "", fmt.Errorf("literal of datatype %s has no string projection: %w", l.datatype, internalerr.ErrLiteralType)
	}
	return l.lexical, nil
}

// AsTime returns the temporal projection for date/time/dateTime.
func (l Literal) AsTime() (time.Time, error) {
	if l.datatype != Date && l.datatype != Time && l.datatype != DateTime {
		return time.Time{}, fmt.Errorf("literal of datatype %s has no time projection: %w", l.datatype, internalerr.ErrLiteralType)
	}
	return l.t, nil
}

// AsDuration returns the duration projection.
func (l Literal) AsDuration() (time.Duration, error) {
	if l.datatype != Duration {
		return 0, fmt.Errorf("literal of datatype %s has no duration projection: %w", l.datatype, internalerr.ErrLiteralType)
	}
	return l.dur, nil
}

// QuotedForm renders the literal the way display code should: strings,
// URIs, dates and times quoted, numerics printed bare.
func (l Literal) QuotedForm() string {
	switch {
	case l.datatype.isString() || l.datatype.isTemporal():
		return "\"" + l.lexical + "\""
	default:
		return l.lexical
	}
}

func (l Literal) String() string { return l.QuotedForm() }

// compatibleCategory groups datatypes into the three comparison categories
// from the value model's total order: numeric, temporal, string/URI.
// Boolean compares only with boolean.
func compatibleCategory(a, b Datatype) bool {
	switch {
	case a.isNumeric() && b.isNumeric():
		return true
	case a.isTemporal() && b.isTemporal() && a == b:
		return true
	case a.isString() && b.isString():
		return true
	case a == Boolean && b == Boolean:
		return true
	default:
		return false
	}
}

// CompareTo implements the total order of §4.1. Comparison across
// incompatible datatype kinds fails with ErrLiteralType. Two integer-kinded
// values compare as int64; any other numeric pair compares in double
// precision.
func (l Literal) CompareTo(other Literal) (int, error) {
	if !compatibleCategory(l.datatype, other.datatype) {
		return 0, fmt.Errorf("cannot compare %s with %s: %w", l.datatype, other.datatype, internalerr.ErrLiteralType)
	}

	switch {
	case l.datatype.isNumeric():
		if l.datatype.isInteger() && other.datatype.isInteger() {
			return compareInt(l.i, other.i), nil
		}
		return compareFloat(l.num, other.num), nil
	case l.datatype == Boolean:
		if l.b == other.b {
			return 0, nil
		}
		if !l.b {
			return -1, nil
		}
		return 1, nil
	case l.datatype.isTemporal():
		if l.datatype == Duration {
			return compareFloat(float64(l.dur), float64(other.dur)), nil
		}
		return compareFloat(float64(l.t.UnixNano()), float64(other.t.UnixNano())), nil
	default: // string-like
		switch {
		case l.lexical < other.lexical:
			return -1, nil
		case l.lexical > other.lexical:
			return 1, nil
		default:
			return 0, nil
		}
	}
}

// Equals reports literal equality: same datatype category compatible and
// CompareTo == 0. Incompatible kinds are never equal.
func (l Literal) Equals(other Literal) bool {
	c, err := l.CompareTo(other)
	return err == nil && c == 0
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
