package atom

import (
	"testing"

	"github.com/ruleforge/ruleforge/pkg/ruleforge/value"
)

func TestSetUnboundIdempotent(t *testing.T) {
	a := Variable("x")
	if a.IsUnbound() {
		t.Fatal("fresh variable should not be unbound")
	}
	a.SetUnbound()
	a.SetUnbound()
	if !a.IsUnbound() {
		t.Error("expected variable to be unbound after SetUnbound")
	}
}

func TestSetUnboundNoOpOnNonVariable(t *testing.T) {
	a := Class(Identifier("Person"))
	a.SetUnbound()
	if a.IsUnbound() {
		t.Error("non-variable argument should never report unbound")
	}
}

func TestUnboundVariableConstructor(t *testing.T) {
	a := UnboundVariable("y")
	if a.Kind() != KindVariable {
		t.Fatalf("expected KindVariable, got %v", a.Kind())
	}
	if !a.IsUnbound() {
		t.Error("expected constructed argument to be unbound")
	}
	if a.VariableName() != "y" {
		t.Errorf("expected name y, got %s", a.VariableName())
	}
}

func TestLiteralArgumentRoundTrip(t *testing.T) {
	l := value.NewInt(7)
	a := LiteralArg(l)
	if a.Kind() != KindLiteral {
		t.Fatalf("expected KindLiteral, got %v", a.Kind())
	}
	if !a.LiteralValue().Equals(l) {
		t.Error("literal value did not round-trip")
	}
}

func TestClassAtomArguments(t *testing.T) {
	v := Variable("p")
	a := NewClassAtom(Identifier("Person"), v)
	if !a.IsClassAtom() {
		t.Error("expected class atom")
	}
	args := a.Arguments()
	if len(args) != 1 || args[0].VariableName() != "p" {
		t.Errorf("unexpected arguments: %+v", args)
	}
}

func TestBuiltInAtomName(t *testing.T) {
	a := NewBuiltInAtom("swrlb:greaterThan", Variable("x"), LiteralArg(value.NewInt(3)))
	if !a.IsBuiltIn() {
		t.Error("expected built-in atom")
	}
	if a.BuiltInName() != "swrlb:greaterThan" {
		t.Errorf("unexpected name: %s", a.BuiltInName())
	}
}

func TestWithArgumentsDoesNotMutateOriginal(t *testing.T) {
	orig := NewBuiltInAtom("swrlb:abs", Variable("x"))
	updated := orig.WithArguments([]BuiltInArgument{UnboundVariable("x")})

	if orig.Arguments()[0].IsUnbound() {
		t.Error("original atom should be unaffected by WithArguments")
	}
	if !updated.Arguments()[0].IsUnbound() {
		t.Error("updated atom should carry the new unbound argument")
	}
}

func TestMultiValueCopiesSlice(t *testing.T) {
	vals := []BuiltInArgument{LiteralArg(value.NewInt(1)), LiteralArg(value.NewInt(2))}
	mv := MultiValue(vals)
	vals[0] = LiteralArg(value.NewInt(99))
	got := mv.MultiValues()
	if !got[0].LiteralValue().Equals(value.NewInt(1)) {
		t.Error("MultiValue should defensively copy its input slice")
	}
}

func TestSQWRLCollectionAccessors(t *testing.T) {
	a := SQWRLCollection("q1", "coll", "g1")
	if a.CollectionQueryName() != "q1" || a.CollectionName() != "coll" || a.CollectionGroupID() != "g1" {
		t.Errorf("unexpected collection argument: %+v", a)
	}
}
