// Package noop provides a minimal in-memory target rule engine and
// built-in bridge: it evaluates class-atom rules by direct forward
// chaining over class-assertion axioms and never triggers built-ins.
// It exists to exercise engine.Engine end-to-end without a real
// external reasoner dependency, mirroring korel's inference/simple
// engine as a from-scratch, pure-Go reasoning backend.
package noop

import (
	"github.com/ruleforge/ruleforge/pkg/ruleforge/atom"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/ontology"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/rule"
)

// TargetRuleEngine is a from-scratch forward-chaining evaluator over a
// single-class-atom-body, single-class-atom-head rule shape: "if
// individual is asserted a member of the body class, assert it a member
// of the head class too." Anything more expressive than that shape is
// silently skipped, since general Horn-rule evaluation is out of scope
// for this backend.
type TargetRuleEngine struct {
	rules      []rule.Rule
	membership map[atom.Identifier]map[atom.Identifier]struct{} // class -> individual set
	inferred   []ontology.Axiom
}

// NewTargetRuleEngine builds an empty engine.
func NewTargetRuleEngine() *TargetRuleEngine {
	e := &TargetRuleEngine{}
	e.reset()
	return e
}

func (e *TargetRuleEngine) reset() {
	e.rules = nil
	e.membership = make(map[atom.Identifier]map[atom.Identifier]struct{})
	e.inferred = nil
}

// ResetRuleEngine clears all rule and membership state.
func (e *TargetRuleEngine) ResetRuleEngine() error {
	e.reset()
	return nil
}

// ExportAxioms records class-assertion axioms as class membership facts.
// Exported facts are asserted, not inferred: they never appear in
// InferredAxioms.
func (e *TargetRuleEngine) ExportAxioms(axioms []ontology.Axiom) error {
	for _, ax := range axioms {
		if ax.Kind != ontology.AxiomClassAssertion {
			continue
		}
		if e.membership[ax.Class] == nil {
			e.membership[ax.Class] = make(map[atom.Identifier]struct{})
		}
		e.membership[ax.Class][ax.Subject] = struct{}{}
	}
	return nil
}

// ExportRules records the rule set to evaluate on the next run.
func (e *TargetRuleEngine) ExportRules(rules []rule.Rule) error {
	e.rules = rules
	return nil
}

// RunRuleEngine evaluates every rule against known class membership,
// asserting the head class for every individual already a member of the
// rule's single recognized body class atom. Iterates to a fixed point so
// chained single-class-atom rules still fire.
func (e *TargetRuleEngine) RunRuleEngine() error {
	for {
		fired := false
		for _, r := range e.rules {
			bodyClass, headClass, ok := singleClassAtomShape(r)
			if !ok {
				continue
			}
			for individual := range e.membership[bodyClass] {
				if e.assert(headClass, individual) {
					fired = true
				}
			}
		}
		if !fired {
			return nil
		}
	}
}

// InferredAxioms returns every class assertion synthesized by
// RunRuleEngine since the last reset.
func (e *TargetRuleEngine) InferredAxioms() []ontology.Axiom {
	return e.inferred
}

// assert records individual as a member of class, returning true if this
// was a new fact (and thus a newly inferred axiom).
func (e *TargetRuleEngine) assert(class, individual atom.Identifier) bool {
	if e.membership[class] == nil {
		e.membership[class] = make(map[atom.Identifier]struct{})
	}
	if _, ok := e.membership[class][individual]; ok {
		return false
	}
	e.membership[class][individual] = struct{}{}
	e.inferred = append(e.inferred, ontology.Axiom{
		Kind:    ontology.AxiomClassAssertion,
		Class:   class,
		Subject: individual,
	})
	return true
}

// singleClassAtomShape recognizes a rule of exactly one class atom in the
// body and one class atom in the head, sharing the same variable. Any other
// atom in the body or head rejects the rule.
func singleClassAtomShape(r rule.Rule) (bodyClass, headClass atom.Identifier, ok bool) {
	var bodyAtom, headAtom atom.Atom
	found := false
	for _, a := range r.Body {
		if !a.IsClassAtom() || found {
			return "", "", false
		}
		bodyAtom = a
		found = true
	}
	if !found {
		return "", "", false
	}
	found = false
	for _, a := range r.Head {
		if !a.IsClassAtom() || found {
			return "", "", false
		}
		headAtom = a
		found = true
	}
	if !found {
		return "", "", false
	}

	bodyArgs := bodyAtom.Arguments()
	headArgs := headAtom.Arguments()
	if len(bodyArgs) != 1 || len(headArgs) != 1 {
		return "", "", false
	}
	if bodyArgs[0].VariableName() != headArgs[0].VariableName() {
		return "", "", false
	}
	return bodyAtom.Predicate(), headAtom.Predicate(), true
}

// BuiltInBridge is a no-op built-in bridge: it never injects axioms,
// since general built-in evaluation lives outside this backend's scope.
type BuiltInBridge struct{}

// NewBuiltInBridge builds an inert bridge.
func NewBuiltInBridge() *BuiltInBridge { return &BuiltInBridge{} }

// ResetController does nothing; there is no controller state to reset.
func (b *BuiltInBridge) ResetController() error { return nil }

// InjectedAxioms always returns nil: this bridge never injects knowledge.
func (b *BuiltInBridge) InjectedAxioms() []ontology.Axiom { return nil }
