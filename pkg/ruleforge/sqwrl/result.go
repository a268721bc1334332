// Package sqwrl implements the SQWRL result engine: a tabular result
// structure moving through three phases (Configuring, Preparing,
// Processing) that supports aggregation, distinctness, stable ordering,
// and a family of 1-indexed row-selection operators.
package sqwrl

import (
	"fmt"
	"strings"

	"github.com/ruleforge/ruleforge/pkg/ruleforge/atom"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/internalerr"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/value"
)

// Phase is the result's lifecycle stage. Legal operations depend on
// runtime-accumulated data (how many columns were added, how many rows),
// which is why this is modeled as an explicit field with guards rather
// than three separate Go types.
type Phase int

const (
	Configuring Phase = iota
	Preparing
	Processing
)

// AggregateFunction names the supported aggregate functions. Matched
// case-insensitively at configuration time; the canonical stored form is
// lowercase.
type AggregateFunction string

const (
	Min           AggregateFunction = "min"
	Max           AggregateFunction = "max"
	Sum           AggregateFunction = "sum"
	Avg           AggregateFunction = "avg"
	Count         AggregateFunction = "count"
	CountDistinct AggregateFunction = "count-distinct"
)

func validAggregateFunction(name string) (AggregateFunction, bool) {
	lower := AggregateFunction(strings.ToLower(name))
	switch lower {
	case Min, Max, Sum, Avg, Count, CountDistinct:
		return lower, true
	default:
		return "", false
	}
}

// Result is the SQWRL tabular result structure. Grounded in
// DefaultSQWRLResult.
type Result struct {
	phase Phase

	allColumnNames     []string
	columnDisplayNames []string
	selectedColumns    map[int]struct{}
	aggregateColumns   map[int]AggregateFunction
	aggregateOrder     []int // preserves configuration order for deterministic iteration
	orderByColumns     []int
	isOrdered          bool
	isAscending        bool
	isDistinct         bool
	hasAggregates      bool

	rows []Row

	isRowOpen             bool
	rowData               Row
	currentRowDataColIndex int

	currentRowIndex int

	// selection operator state, all 1-indexed per §4.5.5
	hasLimit    bool
	limit       int
	hasNth      bool
	nth         int
	hasNotNth   bool
	notNth      int
	hasFirst    bool
	firstN      int
	hasNotFirst bool
	notFirstN   int
	hasLast     bool
	lastN       int
	hasNotLast  bool
	notLastN    int
	hasNthSlice bool
	nthSliceN   int
	sliceSize   int
	hasNotNthSlice     bool
	notNthSliceN       int
	notNthSliceSize    int
	hasNthLastSlice    bool
	nthLastSliceN      int
	nthLastSliceSize   int
	hasNotNthLastSlice bool
	notNthLastSliceN   int
	notNthLastSliceSize int
}

// CellKind tags which variant a Cell holds. Grounded in the four
// concrete SQWRLResultValue kinds (SQWRLLiteralResultValue,
// SQWRLClassValue, SQWRLIndividualValue, SQWRLPropertyValue): an
// ordinary sqwrl:select over a class, individual, or property variable
// projects a bare entity identifier, not a literal.
type CellKind int

const (
	CellLiteral CellKind = iota
	CellClass
	CellIndividual
	CellProperty
)

func (k CellKind) String() string {
	switch k {
	case CellLiteral:
		return "literal"
	case CellClass:
		return "class"
	case CellIndividual:
		return "individual"
	case CellProperty:
		return "property"
	default:
		return "unknown"
	}
}

// Cell is one value at a row/column position: either a typed literal or
// an OWL entity identifier.
type Cell struct {
	kind    CellKind
	literal value.Literal
	entity  atom.Identifier
}

// LiteralCell wraps a literal value as a result cell.
func LiteralCell(l value.Literal) Cell { return Cell{kind: CellLiteral, literal: l} }

// ClassCell wraps a class identifier as a result cell.
func ClassCell(id atom.Identifier) Cell { return Cell{kind: CellClass, entity: id} }

// IndividualCell wraps an individual identifier as a result cell.
func IndividualCell(id atom.Identifier) Cell { return Cell{kind: CellIndividual, entity: id} }

// PropertyCell wraps a property identifier as a result cell.
func PropertyCell(id atom.Identifier) Cell { return Cell{kind: CellProperty, entity: id} }

// Kind reports which variant this cell holds.
func (c Cell) Kind() CellKind { return c.kind }

// IsNumeric is true only for a literal cell whose datatype is numeric;
// entity cells are never aggregable.
func (c Cell) IsNumeric() bool { return c.kind == CellLiteral && c.literal.IsNumeric() }

// Lexical returns a display form for tie-breaking and diagnostics: the
// literal's lexical form, or the bare entity identifier.
func (c Cell) Lexical() string {
	if c.kind == CellLiteral {
		return c.literal.Lexical()
	}
	return string(c.entity)
}

// Literal returns the wrapped literal, failing with ErrInvalidColumnType
// if this cell holds an entity identifier instead.
func (c Cell) Literal() (value.Literal, error) {
	if c.kind != CellLiteral {
		return value.Literal{}, fmt.Errorf("expecting literal value for column type, got %s: %w", c.kind, internalerr.ErrInvalidColumnType)
	}
	return c.literal, nil
}

// ClassID returns the wrapped class identifier, failing with
// ErrInvalidColumnType if this cell is not a class cell.
func (c Cell) ClassID() (atom.Identifier, error) {
	if c.kind != CellClass {
		return "", fmt.Errorf("expecting class value for column type, got %s: %w", c.kind, internalerr.ErrInvalidColumnType)
	}
	return c.entity, nil
}

// IndividualID returns the wrapped individual identifier, failing with
// ErrInvalidColumnType if this cell is not an individual cell.
func (c Cell) IndividualID() (atom.Identifier, error) {
	if c.kind != CellIndividual {
		return "", fmt.Errorf("expecting individual value for column type, got %s: %w", c.kind, internalerr.ErrInvalidColumnType)
	}
	return c.entity, nil
}

// PropertyID returns the wrapped property identifier, failing with
// ErrInvalidColumnType if this cell is not a property cell.
func (c Cell) PropertyID() (atom.Identifier, error) {
	if c.kind != CellProperty {
		return "", fmt.Errorf("expecting property value for column type, got %s: %w", c.kind, internalerr.ErrInvalidColumnType)
	}
	return c.entity, nil
}

// CompareTo orders two cells of the same kind; literal cells delegate to
// value.Literal.CompareTo, entity cells compare their identifiers
// lexically. Cells of different kinds never compare, mirroring
// value.Literal's incompatible-category failure.
func (c Cell) CompareTo(other Cell) (int, error) {
	if c.kind != other.kind {
		return 0, fmt.Errorf("cannot compare %s with %s: %w", c.kind, other.kind, internalerr.ErrLiteralType)
	}
	if c.kind == CellLiteral {
		return c.literal.CompareTo(other.literal)
	}
	switch {
	case c.entity < other.entity:
		return -1, nil
	case c.entity > other.entity:
		return 1, nil
	default:
		return 0, nil
	}
}

// Row is a single result row: one cell per column.
type Row []Cell

// New builds an empty, Configuring-phase result.
func New() *Result {
	return &Result{
		phase:            Configuring,
		selectedColumns:  make(map[int]struct{}),
		aggregateColumns: make(map[int]AggregateFunction),
	}
}

// Phase returns the result's current lifecycle phase.
func (r *Result) Phase() Phase { return r.phase }

// IsConfigured reports whether Configured has been called.
func (r *Result) IsConfigured() bool { return r.phase != Configuring }

// IsPrepared reports whether Prepared has been called.
func (r *Result) IsPrepared() bool { return r.phase == Processing }

// NumberOfColumns returns the number of declared columns.
func (r *Result) NumberOfColumns() int { return len(r.allColumnNames) }

func (r *Result) requirePhase(want Phase, op string) error {
	if r.phase != want {
		return fmt.Errorf("%s requires phase %d, result is in phase %d: %w", op, want, r.phase, internalerr.ErrResultState)
	}
	return nil
}

func (r *Result) requireConfiguring(op string) error { return r.requirePhase(Configuring, op) }

func (r *Result) checkColumnIndex(idx int) error {
	if idx < 0 || idx >= len(r.allColumnNames) {
		return fmt.Errorf("column index %d out of range [0,%d): %w", idx, len(r.allColumnNames), internalerr.ErrInvalidColumnIndex)
	}
	return nil
}
