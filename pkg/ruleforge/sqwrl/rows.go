package sqwrl

import (
	"fmt"

	"github.com/ruleforge/ruleforge/pkg/ruleforge/internalerr"
)

// OpenRow begins a new row. Legal only in Preparing phase with no row
// already open.
func (r *Result) OpenRow() error {
	if err := r.requirePhase(Preparing, "OpenRow"); err != nil {
		return err
	}
	if r.isRowOpen {
		return fmt.Errorf("row already open: %w", internalerr.ErrResultState)
	}
	r.currentRowDataColIndex = 0
	r.rowData = make(Row, 0, len(r.allColumnNames))
	r.isRowOpen = true
	return nil
}

// AddRowData appends one value to the currently open row. Aggregate
// columns other than count/countDistinct require a numeric literal
// value, failing with ErrLiteralType at add time (before Prepared) if
// not.
// Automatically closes the row once its last column has been filled.
func (r *Result) AddRowData(v Cell) error {
	if err := r.requirePhase(Preparing, "AddRowData"); err != nil {
		return err
	}
	if !r.isRowOpen {
		return fmt.Errorf("no row open: %w", internalerr.ErrResultState)
	}
	if r.currentRowDataColIndex == len(r.allColumnNames) {
		return fmt.Errorf("attempt to add data beyond the end of a row: %w", internalerr.ErrResultState)
	}

	if fn, ok := r.aggregateColumns[r.currentRowDataColIndex]; ok && fn != Count && fn != CountDistinct {
		if !v.IsNumeric() {
			return fmt.Errorf("attempt to add non-numeric value to %s aggregate column %s: %w",
				fn, r.allColumnNames[r.currentRowDataColIndex], internalerr.ErrLiteralType)
		}
	}

	r.rowData = append(r.rowData, v)
	r.currentRowDataColIndex++

	if r.currentRowDataColIndex == len(r.allColumnNames) {
		return r.closeRowLocked()
	}
	return nil
}

// AddRow opens a row, adds every value in order, and closes it.
func (r *Result) AddRow(values []Cell) error {
	if len(values) != len(r.allColumnNames) {
		return fmt.Errorf("addRow expecting %d values, got %d: %w", len(r.allColumnNames), len(values), internalerr.ErrResultState)
	}
	if err := r.OpenRow(); err != nil {
		return err
	}
	for _, v := range values {
		if err := r.AddRowData(v); err != nil {
			return err
		}
	}
	return r.CloseRow()
}

// CloseRow closes the current row, appending it to the result's row set.
// A no-op if the row was already auto-closed by AddRowData.
func (r *Result) CloseRow() error {
	if err := r.requirePhase(Preparing, "CloseRow"); err != nil {
		return err
	}
	return r.closeRowLocked()
}

func (r *Result) closeRowLocked() error {
	if r.isRowOpen {
		r.rows = append(r.rows, r.rowData)
	}
	r.isRowOpen = false
	return nil
}
