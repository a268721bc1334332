package sqwrl

import (
	"fmt"

	"github.com/ruleforge/ruleforge/pkg/ruleforge/atom"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/internalerr"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/value"
)

// NumberOfRows returns the number of rows in the processed result. Legal
// only once Prepared.
func (r *Result) NumberOfRows() (int, error) {
	if err := r.requirePhase(Processing, "NumberOfRows"); err != nil {
		return 0, err
	}
	return len(r.rows), nil
}

// IsEmpty reports whether the processed result has no rows.
func (r *Result) IsEmpty() (bool, error) {
	n, err := r.NumberOfRows()
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// Next reports whether the cursor is on an available row. It does not move
// the cursor; Advance does.
func (r *Result) Next() (bool, error) {
	if err := r.requirePhase(Processing, "Next"); err != nil {
		return false, err
	}
	if r.currentRowIndex < 0 || r.currentRowIndex >= len(r.rows) {
		return false, nil
	}
	return true, nil
}

// ResetCursor rewinds the row cursor to the first row (or -1 if empty).
func (r *Result) ResetCursor() error {
	if err := r.requirePhase(Processing, "ResetCursor"); err != nil {
		return err
	}
	if len(r.rows) > 0 {
		r.currentRowIndex = 0
	} else {
		r.currentRowIndex = -1
	}
	return nil
}

// Advance moves the cursor to the next row.
func (r *Result) Advance() error {
	if err := r.requirePhase(Processing, "Advance"); err != nil {
		return err
	}
	r.currentRowIndex++
	return nil
}

func (r *Result) currentRow() (Row, error) {
	if err := r.requirePhase(Processing, "currentRow"); err != nil {
		return nil, err
	}
	if r.currentRowIndex < 0 || r.currentRowIndex >= len(r.rows) {
		return nil, fmt.Errorf("no current row: %w", internalerr.ErrInvalidRowIndex)
	}
	return r.rows[r.currentRowIndex], nil
}

func (r *Result) checkRowIndex(rowIndex int) error {
	if rowIndex < 0 || rowIndex >= len(r.rows) {
		return fmt.Errorf("row index %d out of range [0,%d): %w", rowIndex, len(r.rows), internalerr.ErrInvalidRowIndex)
	}
	return nil
}

// Value returns the cell at the current row and column index.
func (r *Result) Value(columnIndex int) (Cell, error) {
	if err := r.checkColumnIndex(columnIndex); err != nil {
		return Cell{}, err
	}
	row, err := r.currentRow()
	if err != nil {
		return Cell{}, err
	}
	return row[columnIndex], nil
}

// ValueAt returns the cell at an arbitrary row and column index,
// independent of the cursor. Grounded in
// DefaultSQWRLResult.getValue(columnIndex, rowIndex).
func (r *Result) ValueAt(columnIndex, rowIndex int) (Cell, error) {
	if err := r.requirePhase(Processing, "ValueAt"); err != nil {
		return Cell{}, err
	}
	if err := r.checkColumnIndex(columnIndex); err != nil {
		return Cell{}, err
	}
	if err := r.checkRowIndex(rowIndex); err != nil {
		return Cell{}, err
	}
	return r.rows[rowIndex][columnIndex], nil
}

// Column returns every cell in a column across all rows. The vector is
// built from the rows on every call; it is not cached.
func (r *Result) Column(columnIndex int) ([]Cell, error) {
	if err := r.requirePhase(Processing, "Column"); err != nil {
		return nil, err
	}
	if err := r.checkColumnIndex(columnIndex); err != nil {
		return nil, err
	}
	out := make([]Cell, len(r.rows))
	for i, row := range r.rows {
		out[i] = row[columnIndex]
	}
	return out, nil
}

// NumericValue returns the current row's value at columnIndex as a
// double, failing with ErrLiteralType if it is not a numeric literal.
func (r *Result) NumericValue(columnIndex int) (float64, error) {
	c, err := r.Value(columnIndex)
	if err != nil {
		return 0, err
	}
	lit, err := c.Literal()
	if err != nil {
		return 0, err
	}
	return lit.AsDouble()
}

// StringValue returns the current row's value at columnIndex as a
// string, failing with ErrLiteralType if it is not string-typed.
func (r *Result) StringValue(columnIndex int) (string, error) {
	c, err := r.Value(columnIndex)
	if err != nil {
		return "", err
	}
	lit, err := c.Literal()
	if err != nil {
		return "", err
	}
	return lit.AsString()
}

// LiteralValue returns the current row's value at columnIndex as a
// literal, failing with ErrInvalidColumnType if the column holds an
// entity identifier instead. Grounded in getLiteralValue.
func (r *Result) LiteralValue(columnIndex int) (value.Literal, error) {
	c, err := r.Value(columnIndex)
	if err != nil {
		return value.Literal{}, err
	}
	return c.Literal()
}

// ClassValue returns the current row's value at columnIndex as a class
// identifier, failing with ErrInvalidColumnType on a kind mismatch.
// Grounded in getClassValue.
func (r *Result) ClassValue(columnIndex int) (atom.Identifier, error) {
	c, err := r.Value(columnIndex)
	if err != nil {
		return "", err
	}
	return c.ClassID()
}

// ObjectValue returns the current row's value at columnIndex as an
// individual identifier, failing with ErrInvalidColumnType on a kind
// mismatch. Grounded in getObjectValue.
func (r *Result) ObjectValue(columnIndex int) (atom.Identifier, error) {
	c, err := r.Value(columnIndex)
	if err != nil {
		return "", err
	}
	return c.IndividualID()
}

// PropertyValue returns the current row's value at columnIndex as a
// property identifier, failing with ErrInvalidColumnType on a kind
// mismatch. Grounded in getPropertyValue.
func (r *Result) PropertyValue(columnIndex int) (atom.Identifier, error) {
	c, err := r.Value(columnIndex)
	if err != nil {
		return "", err
	}
	return c.PropertyID()
}
