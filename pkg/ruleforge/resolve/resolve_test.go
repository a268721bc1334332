package resolve

import (
	"testing"

	"github.com/ruleforge/ruleforge/pkg/ruleforge/atom"
)

func TestRecordIsAdditiveAndIdempotent(t *testing.T) {
	r := New()
	r.Record(EntityClass, atom.Identifier("Person"))
	r.Record(EntityClass, atom.Identifier("Person"))
	r.Record(EntityClass, atom.Identifier("Animal"))

	if r.Count(EntityClass) != 2 {
		t.Errorf("expected 2 distinct classes, got %d", r.Count(EntityClass))
	}
	if !r.Has(EntityClass, atom.Identifier("Person")) {
		t.Error("expected Person to be recorded")
	}
}

func TestResetClearsAllKinds(t *testing.T) {
	r := New()
	r.Record(EntityClass, atom.Identifier("Person"))
	r.Record(EntityIndividual, atom.Identifier("alice"))
	r.Reset()

	if r.Count(EntityClass) != 0 || r.Count(EntityIndividual) != 0 {
		t.Error("expected Reset to clear every entity kind")
	}
}

func TestNewBlankNodeIDsAreDistinctAndOrdered(t *testing.T) {
	r := New()
	a := r.NewBlankNodeID("x")
	b := r.NewBlankNodeID("x")
	if a == b {
		t.Error("expected distinct blank node identifiers")
	}
	if a >= b {
		t.Errorf("expected %q to sort before %q", a, b)
	}
}

func TestSessionIDIsStable(t *testing.T) {
	r := New()
	id1 := r.SessionID()
	id2 := r.SessionID()
	if id1 != id2 {
		t.Error("expected SessionID to be stable across calls")
	}
}

func TestArgumentFactoryRejectsAnonymousIndividual(t *testing.T) {
	f := NewArgumentFactory(New())
	_, err := f.Individual(atom.Identifier(""))
	if err == nil {
		t.Error("expected error constructing anonymous individual argument")
	}
}

func TestArgumentFactoryRecordsEntities(t *testing.T) {
	r := New()
	f := NewArgumentFactory(r)
	f.Class(atom.Identifier("Person"))
	if !r.Has(EntityClass, atom.Identifier("Person")) {
		t.Error("expected ArgumentFactory.Class to record the entity with the resolver")
	}
}

func TestLiteralFactoryFromLexicalInvalid(t *testing.T) {
	lf := NewLiteralFactory()
	_, err := lf.FromLexical("notanumber", 3) // value.Int
	if err == nil {
		t.Error("expected error for invalid lexical form")
	}
}
