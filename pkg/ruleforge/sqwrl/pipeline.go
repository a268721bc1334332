package sqwrl

import (
	"fmt"
	"sort"

	"github.com/ruleforge/ruleforge/pkg/ruleforge/internalerr"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/value"
)

// Prepared transitions the result from Preparing to Processing, running
// the fixed-order pipeline: aggregate (which implies killing duplicates),
// else distinct, then orderBy, then the selection operators. No column
// vectors are cached; Column builds them from the rows on each call.
// Grounded in DefaultSQWRLResult.prepared().
func (r *Result) Prepared() error {
	if err := r.requirePhase(Preparing, "Prepared"); err != nil {
		return err
	}
	if r.isRowOpen && r.currentRowDataColIndex != 0 {
		return fmt.Errorf("cannot prepare with a partially filled row open: %w", internalerr.ErrResultState)
	}
	r.isRowOpen = false
	r.currentRowDataColIndex = 0

	var err error
	if r.hasAggregates {
		r.rows, err = r.aggregate(r.rows)
		if err != nil {
			return err
		}
	} else if r.isDistinct {
		r.rows = distinctRows(r.rows, r.allColumnNames)
	}

	if r.isOrdered {
		r.rows = orderByRows(r.rows, r.orderByColumns, r.isAscending)
	}

	r.rows, err = r.processSelectionOperators(r.rows)
	if err != nil {
		return err
	}

	r.phase = Processing
	if len(r.rows) > 0 {
		r.currentRowIndex = 0
	} else {
		r.currentRowIndex = -1
	}
	return nil
}

// rowComparator compares two rows over a fixed set of column indexes,
// ascending or descending, mirroring RowComparator.
func rowComparator(indexes []int, ascending bool) func(a, b Row) int {
	return func(a, b Row) int {
		for _, idx := range indexes {
			c, err := a[idx].CompareTo(b[idx])
			if err != nil {
				// incompatible values at this index never order equal; treat
				// lexical form, then cell kind and datatype, as a tiebreak so
				// sorts stay deterministic
				if a[idx].Lexical() < b[idx].Lexical() {
					c = -1
				} else if a[idx].Lexical() > b[idx].Lexical() {
					c = 1
				} else {
					ka, kb := int(a[idx].kind), int(b[idx].kind)
					if ka == kb {
						ka, kb = int(a[idx].literal.Datatype()), int(b[idx].literal.Datatype())
					}
					c = ka - kb
				}
			}
			if c != 0 {
				if ascending {
					return c
				}
				return -c
			}
		}
		return 0
	}
}

func allColumnIndexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// distinctRows removes duplicate rows (by full-row equality), matching
// DefaultSQWRLResult.distinct: sort, then keep rows not seen immediately
// prior.
func distinctRows(rows []Row, allColumnNames []string) []Row {
	cmp := rowComparator(allColumnIndexes(len(allColumnNames)), true)
	sorted := append([]Row(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool { return cmp(sorted[i], sorted[j]) < 0 })

	out := make([]Row, 0, len(sorted))
	for _, row := range sorted {
		if len(out) == 0 || cmp(out[len(out)-1], row) != 0 {
			out = append(out, row)
		}
	}
	return out
}

// orderByRows sorts rows by the configured order-by column indexes.
func orderByRows(rows []Row, orderByColumns []int, ascending bool) []Row {
	out := append([]Row(nil), rows...)
	cmp := rowComparator(orderByColumns, ascending)
	sort.SliceStable(out, func(i, j int) bool { return cmp(out[i], out[j]) < 0 })
	return out
}

// selectedColumnIndexesSorted returns the grouping key columns for
// aggregation: every selected (non-aggregate) column index, in ascending
// order, matching the Java source's use of selectedColumnIndexes for the
// aggregate RowComparator.
func (r *Result) selectedColumnIndexesSorted() []int {
	out := make([]int, 0, len(r.selectedColumns))
	for idx := range r.selectedColumns {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// aggregate groups rows by their non-aggregated column values and reduces
// each aggregate column with its configured function. Grounded in
// DefaultSQWRLResult.aggregate's group-then-reduce algorithm.
func (r *Result) aggregate(rows []Row) ([]Row, error) {
	groupCols := r.selectedColumnIndexesSorted()
	cmp := rowComparator(groupCols, true)

	var result []Row
	buckets := make(map[int]map[int][]Cell) // result row index -> aggregate column -> collected values

	findRow := func(row Row) int {
		for i, existing := range result {
			if cmp(row, existing) == 0 {
				return i
			}
		}
		return -1
	}

	for _, row := range rows {
		idx := findRow(row)
		if idx < 0 {
			bucket := make(map[int][]Cell)
			for col := range r.aggregateColumns {
				bucket[col] = []Cell{row[col]}
			}
			buckets[len(result)] = bucket
			result = append(result, append(Row(nil), row...))
		} else {
			bucket := buckets[idx]
			for col := range r.aggregateColumns {
				bucket[col] = append(bucket[col], row[col])
			}
		}
	}

	for i, row := range result {
		bucket := buckets[i]
		for _, col := range r.aggregateOrder {
			fn := r.aggregateColumns[col]
			reduced, err := reduceAggregate(fn, bucket[col])
			if err != nil {
				return nil, err
			}
			row[col] = reduced
		}
		result[i] = row
	}

	return result, nil
}

func reduceAggregate(fn AggregateFunction, values []Cell) (Cell, error) {
	if len(values) == 0 && fn != Count && fn != CountDistinct {
		return Cell{}, fmt.Errorf("empty aggregate list for %s: %w", fn, internalerr.ErrInvalidAggregateFunction)
	}
	switch fn {
	case Min:
		best := values[0]
		for _, v := range values[1:] {
			c, err := v.CompareTo(best)
			if err != nil {
				return Cell{}, err
			}
			if c < 0 {
				best = v
			}
		}
		return best, nil
	case Max:
		best := values[0]
		for _, v := range values[1:] {
			c, err := v.CompareTo(best)
			if err != nil {
				return Cell{}, err
			}
			if c > 0 {
				best = v
			}
		}
		return best, nil
	case Sum:
		var sum float64
		for _, v := range values {
			lit, err := v.Literal()
			if err != nil {
				return Cell{}, err
			}
			d, err := lit.AsDouble()
			if err != nil {
				return Cell{}, err
			}
			sum += d
		}
		return LiteralCell(value.NewDouble(sum)), nil
	case Avg:
		var sum float64
		for _, v := range values {
			lit, err := v.Literal()
			if err != nil {
				return Cell{}, err
			}
			d, err := lit.AsDouble()
			if err != nil {
				return Cell{}, err
			}
			sum += d
		}
		return LiteralCell(value.NewDouble(sum / float64(len(values)))), nil
	case Count:
		return LiteralCell(value.NewInt(int32(len(values)))), nil
	case CountDistinct:
		seen := make(map[string]struct{})
		for _, v := range values {
			seen[v.Kind().String()+"|"+v.Lexical()] = struct{}{}
		}
		return LiteralCell(value.NewInt(int32(len(seen)))), nil
	default:
		return Cell{}, fmt.Errorf("invalid aggregate function %q: %w", fn, internalerr.ErrInvalidAggregateFunction)
	}
}
