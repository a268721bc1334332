package sqwrl

import (
	"errors"
	"testing"

	"github.com/ruleforge/ruleforge/pkg/ruleforge/internalerr"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/value"
)

func buildNameAgeResult(t *testing.T, rows [][2]value.Literal) *Result {
	t.Helper()
	r := New()
	if err := r.AddColumn("name"); err != nil {
		t.Fatalf("AddColumn: %v", err)
	}
	if err := r.AddColumn("age"); err != nil {
		t.Fatalf("AddColumn: %v", err)
	}
	if err := r.Configured(); err != nil {
		t.Fatalf("Configured: %v", err)
	}
	for _, row := range rows {
		if err := r.AddRow([]Cell{LiteralCell(row[0]), LiteralCell(row[1])}); err != nil {
			t.Fatalf("AddRow: %v", err)
		}
	}
	return r
}

func TestConfiguredRejectsOverlapBetweenSelectedAndAggregate(t *testing.T) {
	r := New()
	r.AddColumn("name")
	// force an overlap by reusing column 0 as both selected and aggregate
	r.aggregateColumns[0] = Sum
	err := r.Configured()
	if !errors.Is(err, internalerr.ErrInvalidQuery) {
		t.Fatalf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestAddRowDataRejectsNonNumericForSumColumn(t *testing.T) {
	r := New()
	if err := r.AddAggregateColumn("total", "sum"); err != nil {
		t.Fatalf("AddAggregateColumn: %v", err)
	}
	if err := r.Configured(); err != nil {
		t.Fatalf("Configured: %v", err)
	}
	if err := r.OpenRow(); err != nil {
		t.Fatalf("OpenRow: %v", err)
	}
	err := r.AddRowData(LiteralCell(value.NewString("not a number")))
	if !errors.Is(err, internalerr.ErrLiteralType) {
		t.Fatalf("expected ErrLiteralType, got %v", err)
	}
}

func TestOperationsFailInWrongPhase(t *testing.T) {
	r := New()
	if err := r.OpenRow(); !errors.Is(err, internalerr.ErrResultState) {
		t.Errorf("expected ErrResultState opening a row before Configured, got %v", err)
	}
	r.AddColumn("x")
	r.Configured()
	if _, err := r.NumberOfRows(); !errors.Is(err, internalerr.ErrResultState) {
		t.Errorf("expected ErrResultState reading rows before Prepared, got %v", err)
	}
}

func TestDistinctRemovesDuplicateRows(t *testing.T) {
	r := buildNameAgeResult(t, [][2]value.Literal{
		{value.NewString("alice"), value.NewInt(30)},
		{value.NewString("alice"), value.NewInt(30)},
		{value.NewString("bob"), value.NewInt(40)},
	})
	r.SetIsDistinct()
	if err := r.Prepared(); err != nil {
		t.Fatalf("Prepared: %v", err)
	}
	n, _ := r.NumberOfRows()
	if n != 2 {
		t.Errorf("expected 2 distinct rows, got %d", n)
	}
}

func TestAggregationCountSumsToN(t *testing.T) {
	r := New()
	r.AddColumn("name")
	r.AddAggregateColumn("total", "count")
	r.Configured()
	rows := [][2]value.Literal{
		{value.NewString("alice"), value.NewInt(1)},
		{value.NewString("alice"), value.NewInt(2)},
		{value.NewString("bob"), value.NewInt(3)},
	}
	for _, row := range rows {
		if err := r.AddRow([]Cell{LiteralCell(row[0]), LiteralCell(row[1])}); err != nil {
			t.Fatalf("AddRow: %v", err)
		}
	}
	if err := r.Prepared(); err != nil {
		t.Fatalf("Prepared: %v", err)
	}
	n, _ := r.NumberOfRows()
	if n != 2 {
		t.Fatalf("expected 2 grouped rows, got %d", n)
	}
	var total int64
	col, err := r.Column(1)
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	for _, cell := range col {
		lit, err := cell.Literal()
		if err != nil {
			t.Fatalf("Literal: %v", err)
		}
		c, err := lit.AsInt()
		if err != nil {
			t.Fatalf("AsInt: %v", err)
		}
		total += c
	}
	if total != int64(len(rows)) {
		t.Errorf("expected counts to sum to %d, got %d", len(rows), total)
	}
}

func TestSelectionLimit(t *testing.T) {
	r := buildNameAgeResult(t, [][2]value.Literal{
		{value.NewString("a"), value.NewInt(1)},
		{value.NewString("b"), value.NewInt(2)},
		{value.NewString("c"), value.NewInt(3)},
	})
	r.SetLimit(2)
	if err := r.Prepared(); err != nil {
		t.Fatalf("Prepared: %v", err)
	}
	n, _ := r.NumberOfRows()
	if n != 2 {
		t.Errorf("expected 2 rows after limit, got %d", n)
	}
}

func TestSelectionNth(t *testing.T) {
	r := buildNameAgeResult(t, [][2]value.Literal{
		{value.NewString("a"), value.NewInt(1)},
		{value.NewString("b"), value.NewInt(2)},
		{value.NewString("c"), value.NewInt(3)},
	})
	r.SetNth(2)
	if err := r.Prepared(); err != nil {
		t.Fatalf("Prepared: %v", err)
	}
	n, _ := r.NumberOfRows()
	if n != 1 {
		t.Fatalf("expected 1 row, got %d", n)
	}
	s, err := r.StringValue(0)
	if err != nil {
		t.Fatalf("StringValue: %v", err)
	}
	if s != "b" {
		t.Errorf("expected nth(2) to select row 'b', got %q", s)
	}
}

func TestSelectionNthBelowOneClampsToOne(t *testing.T) {
	r := buildNameAgeResult(t, [][2]value.Literal{
		{value.NewString("a"), value.NewInt(1)},
		{value.NewString("b"), value.NewInt(2)},
	})
	r.SetNth(0)
	if err := r.Prepared(); err != nil {
		t.Fatalf("Prepared: %v", err)
	}
	s, err := r.StringValue(0)
	if err != nil {
		t.Fatalf("StringValue: %v", err)
	}
	if s != "a" {
		t.Errorf("expected nth(0) clamped to 1 to select 'a', got %q", s)
	}
}

func TestSelectionOperatorsConcatenate(t *testing.T) {
	r := buildNameAgeResult(t, [][2]value.Literal{
		{value.NewString("a"), value.NewInt(1)},
		{value.NewString("b"), value.NewInt(2)},
		{value.NewString("c"), value.NewInt(3)},
	})
	r.SetFirst(1)
	r.SetLast(1)
	if err := r.Prepared(); err != nil {
		t.Fatalf("Prepared: %v", err)
	}
	n, _ := r.NumberOfRows()
	if n != 2 {
		t.Errorf("expected first(1)+last(1) to concatenate to 2 rows, got %d", n)
	}
}

func TestSelectionNGreaterThanNFallsBackToAll(t *testing.T) {
	r := buildNameAgeResult(t, [][2]value.Literal{
		{value.NewString("a"), value.NewInt(1)},
		{value.NewString("b"), value.NewInt(2)},
	})
	r.SetNotFirst(5)
	if err := r.Prepared(); err != nil {
		t.Fatalf("Prepared: %v", err)
	}
	n, _ := r.NumberOfRows()
	if n != 2 {
		t.Errorf("expected notFirst(5) on 2 rows to return all rows, got %d", n)
	}
}

func TestOrderByIsStable(t *testing.T) {
	r := New()
	r.AddColumn("key")
	r.AddColumn("seq")
	r.AddOrderByColumn(0, true)
	r.Configured()
	rows := [][2]value.Literal{
		{value.NewInt(1), value.NewInt(10)},
		{value.NewInt(1), value.NewInt(20)},
		{value.NewInt(0), value.NewInt(30)},
	}
	for _, row := range rows {
		r.AddRow([]Cell{LiteralCell(row[0]), LiteralCell(row[1])})
	}
	if err := r.Prepared(); err != nil {
		t.Fatalf("Prepared: %v", err)
	}
	col, _ := r.Column(1)
	if len(col) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(col))
	}
	lit0, _ := col[0].Literal()
	lit1, _ := col[1].Literal()
	lit2, _ := col[2].Literal()
	v0, _ := lit0.AsInt()
	v1, _ := lit1.AsInt()
	v2, _ := lit2.AsInt()
	if v0 != 30 || v1 != 10 || v2 != 20 {
		t.Errorf("expected stable order [30,10,20], got [%d,%d,%d]", v0, v1, v2)
	}
}

func TestAddAggregateColumnRejectsUnknownFunction(t *testing.T) {
	r := New()
	err := r.AddAggregateColumn("x", "bogus")
	if !errors.Is(err, internalerr.ErrInvalidAggregateFunction) {
		t.Fatalf("expected ErrInvalidAggregateFunction, got %v", err)
	}
}

func TestAggregateFunctionNameCaseInsensitive(t *testing.T) {
	r := New()
	if err := r.AddAggregateColumn("x", "SUM"); err != nil {
		t.Fatalf("expected uppercase function name to be accepted, got %v", err)
	}
}

func TestClassValueRejectsLiteralColumn(t *testing.T) {
	r := buildNameAgeResult(t, [][2]value.Literal{
		{value.NewString("a"), value.NewInt(1)},
	})
	if err := r.Prepared(); err != nil {
		t.Fatalf("Prepared: %v", err)
	}
	if _, err := r.ClassValue(0); !errors.Is(err, internalerr.ErrInvalidColumnType) {
		t.Fatalf("expected ErrInvalidColumnType, got %v", err)
	}
}

func TestObjectValueReturnsIndividualIdentifier(t *testing.T) {
	r := New()
	r.AddColumn("person")
	r.Configured()
	if err := r.AddRow([]Cell{IndividualCell("urn:ex#alice")}); err != nil {
		t.Fatalf("AddRow: %v", err)
	}
	if err := r.Prepared(); err != nil {
		t.Fatalf("Prepared: %v", err)
	}
	id, err := r.ObjectValue(0)
	if err != nil {
		t.Fatalf("ObjectValue: %v", err)
	}
	if id != "urn:ex#alice" {
		t.Errorf("expected urn:ex#alice, got %q", id)
	}
	if _, err := r.LiteralValue(0); !errors.Is(err, internalerr.ErrInvalidColumnType) {
		t.Fatalf("expected ErrInvalidColumnType from LiteralValue on an individual cell, got %v", err)
	}
}

func TestValueAtIsIndependentOfCursor(t *testing.T) {
	r := buildNameAgeResult(t, [][2]value.Literal{
		{value.NewString("a"), value.NewInt(1)},
		{value.NewString("b"), value.NewInt(2)},
	})
	if err := r.Prepared(); err != nil {
		t.Fatalf("Prepared: %v", err)
	}
	c, err := r.ValueAt(0, 1)
	if err != nil {
		t.Fatalf("ValueAt: %v", err)
	}
	lit, err := c.Literal()
	if err != nil {
		t.Fatalf("Literal: %v", err)
	}
	if lit.Lexical() != "b" {
		t.Errorf("expected row 1 to be 'b', got %q", lit.Lexical())
	}
	// cursor should remain at row 0
	s, err := r.StringValue(0)
	if err != nil {
		t.Fatalf("StringValue: %v", err)
	}
	if s != "a" {
		t.Errorf("expected cursor unaffected by ValueAt, still at 'a', got %q", s)
	}
}
