// Package internalerr holds the sentinel errors shared across ruleforge's
// components. Callers wrap these with fmt.Errorf("...: %w", ...) to add
// context; tests and upstream callers match on these with errors.Is.
package internalerr

import "errors"

// Sentinel errors for the taxonomy described in the engine's error design.
var (
	ErrInvalidQueryName         = errors.New("invalid SQWRL query name")
	ErrInvalidRuleName          = errors.New("invalid rule name")
	ErrResultState              = errors.New("result operation attempted in wrong phase")
	ErrInvalidColumnName        = errors.New("invalid column name")
	ErrInvalidColumnIndex       = errors.New("invalid column index")
	ErrInvalidRowIndex          = errors.New("invalid row index")
	ErrInvalidColumnType        = errors.New("invalid column type for accessor")
	ErrInvalidAggregateFunction = errors.New("invalid aggregate function name")
	ErrInvalidQuery             = errors.New("invalid query configuration")
	ErrLiteralType              = errors.New("incompatible literal type")
	ErrBuiltIn                  = errors.New("built-in processing error")
	ErrTargetEngine             = errors.New("target rule engine error")
	ErrRuleEngine               = errors.New("rule engine error")
)
