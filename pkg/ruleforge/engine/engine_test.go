package engine

import (
	"testing"

	"github.com/ruleforge/ruleforge/pkg/ruleforge/atom"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/ontology"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/rule"
)

type fakeTarget struct {
	resetCount   int
	exportedRule []rule.Rule
	runCount     int
	inferred     []ontology.Axiom
}

func (f *fakeTarget) ResetRuleEngine() error { f.resetCount++; return nil }
func (f *fakeTarget) ExportAxioms(axioms []ontology.Axiom) error { return nil }
func (f *fakeTarget) ExportRules(rules []rule.Rule) error {
	f.exportedRule = rules
	return nil
}
func (f *fakeTarget) RunRuleEngine() error { f.runCount++; return nil }
func (f *fakeTarget) InferredAxioms() []ontology.Axiom { return f.inferred }

type fakeBridge struct {
	resetCount int
	injected   []ontology.Axiom
}

func (f *fakeBridge) ResetController() error { f.resetCount++; return nil }
func (f *fakeBridge) InjectedAxioms() []ontology.Axiom { return f.injected }

type fakeOntology struct {
	added                []ontology.Axiom
	bulkStarted, bulkDone int
}

func (f *fakeOntology) Axioms(kind ontology.AxiomKind, includeImports bool) []ontology.Axiom { return nil }
func (f *fakeOntology) SWRLAPIRules() []rule.Rule                                           { return nil }
func (f *fakeOntology) AddAxiom(ax ontology.Axiom) error {
	f.added = append(f.added, ax)
	return nil
}
func (f *fakeOntology) StartBulkConversion() error    { f.bulkStarted++; return nil }
func (f *fakeOntology) CompleteBulkConversion() error { f.bulkDone++; return nil }

func TestInferRunsFullCycle(t *testing.T) {
	target := &fakeTarget{inferred: []ontology.Axiom{{Kind: ontology.AxiomClassAssertion}}}
	bridge := &fakeBridge{injected: []ontology.Axiom{{Kind: ontology.AxiomIndividualDeclaration}}}
	source := &fakeOntology{}
	e := New(target, bridge, source)

	r := rule.Rule{
		Name: "AdultRule",
		Body: []atom.Atom{atom.NewClassAtom(atom.Identifier("Person"), atom.Variable("p"))},
		Head: []atom.Atom{atom.NewClassAtom(atom.Identifier("Adult"), atom.Variable("p"))},
	}
	e.LoadSource([]rule.Rule{r}, nil)

	axioms, err := e.Infer()
	if err != nil {
		t.Fatalf("Infer: %v", err)
	}
	if len(axioms) != 2 {
		t.Errorf("expected 2 written-back axioms (injected+inferred), got %d", len(axioms))
	}
	if target.runCount != 1 {
		t.Errorf("expected target rule engine to run once, got %d", target.runCount)
	}
	if len(target.exportedRule) != 1 {
		t.Errorf("expected 1 exported rule, got %d", len(target.exportedRule))
	}
	if source.bulkStarted != 1 || source.bulkDone != 1 {
		t.Errorf("expected exactly one bulk-conversion bracket, got start=%d complete=%d", source.bulkStarted, source.bulkDone)
	}
	if len(source.added) != 2 {
		t.Errorf("expected both written-back axioms added to the source ontology, got %d", len(source.added))
	}
}

func TestWriteInferredKnowledgeSkipsWritebackWithNoSourceOntology(t *testing.T) {
	target := &fakeTarget{inferred: []ontology.Axiom{{Kind: ontology.AxiomClassAssertion}}}
	bridge := &fakeBridge{}
	e := New(target, bridge, nil)
	e.LoadSource(nil, nil)

	if err := e.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	axioms, err := e.WriteInferredKnowledge()
	if err != nil {
		t.Fatalf("WriteInferredKnowledge: %v", err)
	}
	if len(axioms) != 1 {
		t.Errorf("expected 1 collected axiom even without a source ontology, got %d", len(axioms))
	}
}

func TestImportSQWRLQueryActivatesOnlyNamedQuery(t *testing.T) {
	target := &fakeTarget{}
	bridge := &fakeBridge{}
	source := &fakeOntology{}
	e := New(target, bridge, source)

	q1 := rule.Rule{Name: "q1", Head: []atom.Atom{atom.NewBuiltInAtom("sqwrl:select", atom.Variable("p"))}}
	q2 := rule.Rule{Name: "q2", Head: []atom.Atom{atom.NewBuiltInAtom("sqwrl:select", atom.Variable("p"))}}
	e.LoadSource([]rule.Rule{q1, q2}, nil)

	if err := e.ImportSQWRLQueryAndOWLKnowledge("q1"); err != nil {
		t.Fatalf("ImportSQWRLQueryAndOWLKnowledge: %v", err)
	}

	got1, err := e.Processor().Query("q1")
	if err != nil {
		t.Fatalf("Query q1: %v", err)
	}
	if !got1.Active {
		t.Error("expected q1 to be active")
	}
	got2, err := e.Processor().Query("q2")
	if err != nil {
		t.Fatalf("Query q2: %v", err)
	}
	if got2.Active {
		t.Error("expected q2 to be inactive")
	}
}

func TestRunSQWRLQueriesActivatesAllQueries(t *testing.T) {
	target := &fakeTarget{}
	bridge := &fakeBridge{}
	source := &fakeOntology{}
	e := New(target, bridge, source)

	q1 := rule.Rule{Name: "q1", Head: []atom.Atom{atom.NewBuiltInAtom("sqwrl:select", atom.Variable("p"))}}
	q2 := rule.Rule{Name: "q2", Head: []atom.Atom{atom.NewBuiltInAtom("sqwrl:select", atom.Variable("p"))}}
	e.LoadSource([]rule.Rule{q1, q2}, nil)

	if err := e.RunSQWRLQueries(); err != nil {
		t.Fatalf("RunSQWRLQueries: %v", err)
	}

	for _, name := range []string{"q1", "q2"} {
		q, err := e.Processor().Query(name)
		if err != nil {
			t.Fatalf("Query %s: %v", name, err)
		}
		if !q.Active {
			t.Errorf("expected %s to be active after RunSQWRLQueries", name)
		}
	}
}

func TestResetClearsRuleSelectionChanged(t *testing.T) {
	target := &fakeTarget{}
	bridge := &fakeBridge{}
	source := &fakeOntology{}
	e := New(target, bridge, source)
	e.ruleSelection.MarkChanged()

	if err := e.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if e.RuleSelectionChanged() {
		t.Error("expected Reset to clear rule-selection-changed marker")
	}
}

func TestNumberOfImportedSWRLRulesCounter(t *testing.T) {
	target := &fakeTarget{}
	bridge := &fakeBridge{}
	source := &fakeOntology{}
	e := New(target, bridge, source)
	r := rule.Rule{Name: "R1"}
	e.LoadSource([]rule.Rule{r}, nil)
	if err := e.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if e.NumberOfImportedSWRLRules() != 1 {
		t.Errorf("expected 1 imported rule, got %d", e.NumberOfImportedSWRLRules())
	}
}
