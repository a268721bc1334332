package sqwrl

import (
	"fmt"
	"strings"

	"github.com/ruleforge/ruleforge/pkg/ruleforge/internalerr"
)

// AddColumn declares a plain selected column. Legal only in Configuring
// phase.
func (r *Result) AddColumn(name string) error {
	if err := r.requireConfiguring("AddColumn"); err != nil {
		return err
	}
	r.selectedColumns[len(r.allColumnNames)] = struct{}{}
	r.allColumnNames = append(r.allColumnNames, name)
	return nil
}

// AddColumns declares several plain selected columns in order.
func (r *Result) AddColumns(names []string) error {
	for _, name := range names {
		if err := r.AddColumn(name); err != nil {
			return err
		}
	}
	return nil
}

// AddAggregateColumn declares an aggregate column, validating the
// aggregate function name against the allowlist (case-insensitively,
// storing the lowercased canonical form).
func (r *Result) AddAggregateColumn(name string, functionName string) error {
	if err := r.requireConfiguring("AddAggregateColumn"); err != nil {
		return err
	}
	fn, ok := validAggregateFunction(functionName)
	if !ok {
		return fmt.Errorf("invalid aggregate function %q: %w", functionName, internalerr.ErrInvalidAggregateFunction)
	}
	idx := len(r.allColumnNames)
	r.aggregateColumns[idx] = fn
	r.aggregateOrder = append(r.aggregateOrder, idx)
	r.allColumnNames = append(r.allColumnNames, name)
	return nil
}

// AddOrderByColumn marks a previously declared column as an order-by key.
// All order-by columns in a single result must share the same direction;
// mixing ascending and descending fails.
func (r *Result) AddOrderByColumn(columnIndex int, ascending bool) error {
	if err := r.requireConfiguring("AddOrderByColumn"); err != nil {
		return err
	}
	if err := r.checkColumnIndex(columnIndex); err != nil {
		return err
	}
	if r.isOrdered && r.isAscending != ascending {
		dir := "descending"
		if r.isAscending {
			dir = "ascending"
		}
		return fmt.Errorf("attempt to order column %s inconsistently with previously specified %s: %w",
			r.allColumnNames[columnIndex], dir, internalerr.ErrInvalidQuery)
	}
	r.isOrdered = true
	r.isAscending = ascending
	r.orderByColumns = append(r.orderByColumns, columnIndex)
	return nil
}

// AddColumnDisplayName sets a display name overriding the declared column
// name at the next free display-name slot. Fails on empty names or names
// containing a comma.
func (r *Result) AddColumnDisplayName(name string) error {
	if name == "" || strings.Contains(name, ",") {
		return fmt.Errorf("invalid column display name %q: no commas or empty names allowed: %w", name, internalerr.ErrInvalidColumnName)
	}
	r.columnDisplayNames = append(r.columnDisplayNames, name)
	return nil
}

// SetIsDistinct marks the result as distinct: duplicate rows are removed
// during Prepared, unless the result has aggregates (aggregation already
// implies duplicate removal).
func (r *Result) SetIsDistinct() { r.isDistinct = true }

// Configured validates the column configuration and transitions the
// result from Configuring to Preparing. Selected and aggregate columns
// must not overlap.
func (r *Result) Configured() error {
	if err := r.requireConfiguring("Configured"); err != nil {
		return err
	}
	for idx := range r.selectedColumns {
		if _, ok := r.aggregateColumns[idx]; ok {
			return fmt.Errorf("column %d is both selected and aggregated: %w", idx, internalerr.ErrInvalidQuery)
		}
	}
	r.hasAggregates = len(r.aggregateColumns) > 0
	r.phase = Preparing
	return nil
}

// ColumnNames returns the display names for all columns: declared display
// names first, falling back to the column's own name past the end of the
// display-name list.
func (r *Result) ColumnNames() ([]string, error) {
	if r.phase == Configuring {
		return nil, fmt.Errorf("ColumnNames requires a configured result: %w", internalerr.ErrResultState)
	}
	out := make([]string, 0, len(r.allColumnNames))
	if len(r.columnDisplayNames) < len(r.allColumnNames) {
		out = append(out, r.columnDisplayNames...)
		out = append(out, r.allColumnNames[len(r.columnDisplayNames):]...)
	} else {
		out = append(out, r.columnDisplayNames...)
	}
	return out, nil
}

// ColumnName returns the display name of a single column.
func (r *Result) ColumnName(columnIndex int) (string, error) {
	if err := r.checkColumnIndex(columnIndex); err != nil {
		return "", err
	}
	if columnIndex < len(r.columnDisplayNames) {
		return r.columnDisplayNames[columnIndex], nil
	}
	return r.allColumnNames[columnIndex], nil
}
