package rule

import (
	"testing"

	"github.com/ruleforge/ruleforge/pkg/ruleforge/atom"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/value"
)

// TestCanonicalizeReordersBodyAtoms exercises the class/other/built-in
// reordering: a built-in atom declared first in source order must end up
// last in the canonical body, after the class atom and the object-property
// atom.
func TestCanonicalizeReordersBodyAtoms(t *testing.T) {
	builtIn := atom.NewBuiltInAtom("swrlb:greaterThan", atom.Variable("age"), atom.LiteralArg(mustLiteral18()))
	classAtom := atom.NewClassAtom(atom.Identifier("Person"), atom.Variable("p"))
	propAtom := atom.NewObjectPropertyAtom(atom.Identifier("hasAge"), atom.Variable("p"), atom.Variable("age"))

	r := Rule{
		Name: "AdultRule",
		Body: []atom.Atom{builtIn, classAtom, propAtom},
	}

	canon := Canonicalize(r)

	if len(canon.Body) != 3 {
		t.Fatalf("expected 3 body atoms, got %d", len(canon.Body))
	}
	if !canon.Body[0].IsClassAtom() {
		t.Errorf("expected class atom first, got kind %v", canon.Body[0].Kind())
	}
	if canon.Body[1].Kind() != atom.KindObjectPropertyAtom {
		t.Errorf("expected object property atom second, got kind %v", canon.Body[1].Kind())
	}
	if !canon.Body[2].IsBuiltIn() {
		t.Errorf("expected built-in atom last, got kind %v", canon.Body[2].Kind())
	}
}

// TestCanonicalizeMarksUnboundOnFirstUse mirrors the mixed-body scenario:
// a variable used only inside built-ins, and never in a non-built-in atom,
// must be marked unbound on its first built-in use and bound thereafter.
func TestCanonicalizeMarksUnboundOnFirstUse(t *testing.T) {
	builtIn1 := atom.NewBuiltInAtom("swrlb:add", atom.Variable("sum"), atom.Variable("a"), atom.Variable("b"))
	builtIn2 := atom.NewBuiltInAtom("swrlb:greaterThan", atom.Variable("sum"), atom.LiteralArg(mustLiteral18()))
	classAtom := atom.NewClassAtom(atom.Identifier("Person"), atom.Variable("a"))
	propAtom := atom.NewObjectPropertyAtom(atom.Identifier("hasB"), atom.Variable("a"), atom.Variable("b"))

	r := Rule{Name: "SumRule", Body: []atom.Atom{builtIn1, builtIn2, classAtom, propAtom}}
	canon := Canonicalize(r)

	var seenBuiltIns []atom.Atom
	for _, a := range canon.Body {
		if a.IsBuiltIn() {
			seenBuiltIns = append(seenBuiltIns, a)
		}
	}
	if len(seenBuiltIns) != 2 {
		t.Fatalf("expected 2 built-in atoms, got %d", len(seenBuiltIns))
	}

	// first built-in: sum is unbound (never used outside built-ins), a and
	// b are bound (used by class/property atoms)
	firstArgs := seenBuiltIns[0].Arguments()
	if !firstArgs[0].IsUnbound() {
		t.Error("expected sum to be unbound on its first built-in use")
	}
	if firstArgs[1].IsUnbound() || firstArgs[2].IsUnbound() {
		t.Error("expected a and b to remain bound: they are used by non-built-in atoms")
	}

	// second built-in reuses sum: must not be marked unbound again since
	// it was already bound by the first built-in's unbound marking
	secondArgs := seenBuiltIns[1].Arguments()
	if secondArgs[0].IsUnbound() {
		t.Error("expected sum's second use to be bound: already claimed by the first built-in")
	}
}

func TestCanonicalizeIsPure(t *testing.T) {
	builtIn := atom.NewBuiltInAtom("swrlb:abs", atom.Variable("x"))
	r := Rule{Name: "R", Body: []atom.Atom{builtIn}}

	_ = Canonicalize(r)

	if r.Body[0].Arguments()[0].IsUnbound() {
		t.Error("Canonicalize must not mutate the input rule's atoms")
	}
}

func TestCanonicalizePreservesHead(t *testing.T) {
	head := atom.NewClassAtom(atom.Identifier("Adult"), atom.Variable("p"))
	r := Rule{Name: "R", Head: []atom.Atom{head}}
	canon := Canonicalize(r)
	if len(canon.Head) != 1 {
		t.Fatalf("expected head preserved, got %d atoms", len(canon.Head))
	}
}

func mustLiteral18() value.Literal {
	return value.NewInt(18)
}
