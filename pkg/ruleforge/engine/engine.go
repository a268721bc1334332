// Package engine implements the orchestrator that drives the ontology
// processor, the pluggable target reasoner, and the built-in bridge
// through a reset/import/run/writeback cycle.
package engine

import (
	"fmt"

	"github.com/ruleforge/ruleforge/pkg/ruleforge/internalerr"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/ontology"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/resolve"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/rule"
)

// TargetRuleEngine is the pluggable backend that actually evaluates rules,
// analogous to korel's inference.Engine interface and grounded in
// AbstractSWRLRuleEngine's TargetRuleEngine collaborator.
type TargetRuleEngine interface {
	ResetRuleEngine() error
	ExportAxioms(axioms []ontology.Axiom) error
	ExportRules(rules []rule.Rule) error
	RunRuleEngine() error
	InferredAxioms() []ontology.Axiom
}

// BuiltInBridge mediates built-in atom evaluation during a rule engine
// run, grounded in SWRLBuiltInBridgeController.
type BuiltInBridge interface {
	ResetController() error
	InjectedAxioms() []ontology.Axiom
}

// Ontology is the narrow external collaborator that owns the source
// ontology's persistent axiom state, grounded in the SWRLAPIOWLOntology
// surface AbstractSWRLRuleEngine holds onto: getAxioms(kind,
// includeImports), getSWRLAPIRules(), and the startBulkConversion /
// completeBulkConversion bracket used by writeInferredKnowledge to batch
// its writeback. AddAxiom is the write half of that bracket: the actual
// per-axiom change writeInferredKnowledge applies once for every injected
// or inferred axiom, corresponding to Java's AddAxiom ontology change.
type Ontology interface {
	Axioms(kind ontology.AxiomKind, includeImports bool) []ontology.Axiom
	SWRLAPIRules() []rule.Rule
	AddAxiom(ax ontology.Axiom) error
	StartBulkConversion() error
	CompleteBulkConversion() error
}

// RuleSelection tracks whether the engine's rule-selection state has
// changed since the last reset. A minimal stand-in for the Java source's
// OWL2RLEngine profile-selection bookkeeping, since OWL 2 RL reasoning
// itself is out of scope for this engine.
type RuleSelection struct {
	changed bool
}

// MarkChanged records that rule selection changed since the last reset.
func (s *RuleSelection) MarkChanged() { s.changed = true }

// Changed reports whether rule selection has changed since the last
// reset.
func (s *RuleSelection) Changed() bool { return s.changed }

func (s *RuleSelection) reset() { s.changed = false }

// Engine orchestrates a processor, a target rule engine, and a built-in
// bridge through the reset/import/run/writeback lifecycle. Grounded in
// AbstractSWRLRuleEngine.
type Engine struct {
	processor     *ontology.Processor
	resolver      *resolve.Resolver
	target        TargetRuleEngine
	builtInBridge BuiltInBridge
	source        Ontology
	ruleSelection RuleSelection

	exportedAxioms map[string]struct{} // recreated empty by Reset; no export path reads or fills it

	rulesAndQueries []rule.Rule
	axioms          []ontology.Axiom
}

// New builds an Engine wired to the given target rule engine, built-in
// bridge, and source ontology, backed by a fresh resolver and processor.
func New(target TargetRuleEngine, bridge BuiltInBridge, source Ontology) *Engine {
	r := resolve.New()
	return &Engine{
		processor:     ontology.New(r),
		resolver:      r,
		target:        target,
		builtInBridge: bridge,
		source:        source,
	}
}

// LoadSource replaces the rules/queries and axioms the engine processes on
// its next reset. Calling this does not itself process anything; Reset (or
// any of the Import*/Infer convenience methods, which call Reset) must run
// afterward.
func (e *Engine) LoadSource(rulesAndQueries []rule.Rule, axioms []ontology.Axiom) {
	e.rulesAndQueries = rulesAndQueries
	e.axioms = axioms
}

// Reset clears all engine and target state and rewalks the loaded source.
// Grounded in AbstractSWRLRuleEngine.reset().
func (e *Engine) Reset() error {
	e.processor.ProcessOntology(e.rulesAndQueries, e.axioms)
	if err := e.target.ResetRuleEngine(); err != nil {
		return fmt.Errorf("reset target rule engine: %w", internalerr.ErrTargetEngine)
	}
	if err := e.builtInBridge.ResetController(); err != nil {
		return fmt.Errorf("reset built-in bridge: %w", internalerr.ErrBuiltIn)
	}
	e.exportedAxioms = make(map[string]struct{})
	e.ruleSelection.reset()
	return nil
}

// ImportSWRLRulesAndOWLKnowledge resets the engine, then exports every
// known SWRL rule to the target rule engine through ExportRules. The
// processor's asserted axioms are not exported: TargetRuleEngine.ExportAxioms
// is never called by the engine.
func (e *Engine) ImportSWRLRulesAndOWLKnowledge() error {
	if err := e.Reset(); err != nil {
		return err
	}
	return e.exportRules()
}

// ImportSQWRLQueryAndOWLKnowledge resets the engine, exports rule
// knowledge, then marks exactly the named query active and every other
// known query inactive in the processor. Queries themselves are not passed
// to the target rule engine. Grounded in importSQWRLQueryAndOWLKnowledge.
func (e *Engine) ImportSQWRLQueryAndOWLKnowledge(queryName string) error {
	if err := e.Reset(); err != nil {
		return err
	}
	if err := e.exportRules(); err != nil {
		return err
	}
	return e.exportQueries(queryName)
}

func (e *Engine) exportRules() error {
	names := e.processor.RuleNames()
	rules := make([]rule.Rule, 0, len(names))
	for _, name := range names {
		r, err := e.processor.Rule(name)
		if err != nil {
			return err
		}
		rules = append(rules, r)
	}
	if err := e.target.ExportRules(rules); err != nil {
		return fmt.Errorf("export rules to target rule engine: %w", internalerr.ErrTargetEngine)
	}
	return nil
}

// exportQueries sets the processor's active flag on exactly queryName and
// clears it on every other known query (a name matching no query leaves
// every query inactive). It does not hand any query to the target rule
// engine. Grounded in exportSQWRLQueries2TargetRuleEngine(activeQueryName).
func (e *Engine) exportQueries(activeQueryName string) error {
	for _, name := range e.processor.QueryNames() {
		active := name == activeQueryName
		if err := e.processor.SetQueryActive(name, active); err != nil {
			return err
		}
	}
	return nil
}

// exportAllQueriesActive activates every known query, grounded in
// exportSQWRLQueries2TargetRuleEngine() with no name argument.
func (e *Engine) exportAllQueriesActive() error {
	for _, name := range e.processor.QueryNames() {
		if err := e.processor.SetQueryActive(name, true); err != nil {
			return err
		}
	}
	return nil
}

// Run invokes the target rule engine.
func (e *Engine) Run() error {
	if err := e.target.RunRuleEngine(); err != nil {
		return fmt.Errorf("run target rule engine: %w", internalerr.ErrRuleEngine)
	}
	return nil
}

// WriteInferredKnowledge collects axioms injected by built-ins and axioms
// inferred by the rule engine, and adds them to the source ontology,
// wrapping the whole batch in startBulkConversion/completeBulkConversion.
// Grounded in writeInferredKnowledge's bulk-conversion write-back. A nil
// source ontology (no external collaborator wired) skips the writeback and
// only returns the collected axioms.
func (e *Engine) WriteInferredKnowledge() ([]ontology.Axiom, error) {
	var out []ontology.Axiom
	out = append(out, e.builtInBridge.InjectedAxioms()...)
	out = append(out, e.target.InferredAxioms()...)

	if e.source == nil {
		return out, nil
	}

	if err := e.source.StartBulkConversion(); err != nil {
		return nil, fmt.Errorf("start bulk conversion: %w", internalerr.ErrTargetEngine)
	}
	defer e.source.CompleteBulkConversion()

	for _, ax := range out {
		if err := e.source.AddAxiom(ax); err != nil {
			return nil, fmt.Errorf("write inferred axiom back to source ontology: %w", internalerr.ErrTargetEngine)
		}
	}
	return out, nil
}

// Infer runs the full reset/import/run/writeback cycle, grounded in
// AbstractSWRLRuleEngine.infer().
func (e *Engine) Infer() ([]ontology.Axiom, error) {
	if err := e.Reset(); err != nil {
		return nil, err
	}
	if err := e.ImportSWRLRulesAndOWLKnowledge(); err != nil {
		return nil, err
	}
	if err := e.Run(); err != nil {
		return nil, err
	}
	return e.WriteInferredKnowledge()
}

// RunSQWRLQuery imports the named query and knowledge and runs the engine,
// returning only an error. The caller retrieves the actual SQWRL result
// from their own result store, since this package does not own result
// construction.
func (e *Engine) RunSQWRLQuery(queryName string) error {
	if err := e.ImportSQWRLQueryAndOWLKnowledge(queryName); err != nil {
		return err
	}
	return e.Run()
}

// RunSQWRLQueries imports rule knowledge, activates every known query, and
// runs the engine once. Grounded in runSQWRLQueries().
func (e *Engine) RunSQWRLQueries() error {
	if err := e.ImportSWRLRulesAndOWLKnowledge(); err != nil {
		return err
	}
	if err := e.exportAllQueriesActive(); err != nil {
		return err
	}
	return e.Run()
}

// ResetRuleSelectionChanged clears the rule-selection-changed marker,
// mirroring OWL2RLEngine.resetRuleSelectionChanged as invoked from
// reset().
func (e *Engine) ResetRuleSelectionChanged() { e.ruleSelection.reset() }

// RuleSelectionChanged reports whether rule selection changed since the
// last reset.
func (e *Engine) RuleSelectionChanged() bool { return e.ruleSelection.Changed() }

// Processor exposes the underlying ontology processor for read access
// (rule/query lookup, diagnostic counters).
func (e *Engine) Processor() *ontology.Processor { return e.processor }

// Resolver exposes the underlying entity resolver.
func (e *Engine) Resolver() *resolve.Resolver { return e.resolver }

// NumberOfImportedSWRLRules reports how many rules the processor knows
// about after the last ProcessOntology/Reset.
func (e *Engine) NumberOfImportedSWRLRules() int { return e.processor.NumberOfRules() }

// NumberOfAssertedOWLClassDeclarationAxioms reports the count of distinct
// declared classes.
func (e *Engine) NumberOfAssertedOWLClassDeclarationAxioms() int {
	return e.processor.NumberOfClassDeclarationAxioms()
}

// NumberOfAssertedOWLIndividualDeclarationAxioms reports the count of
// distinct declared individuals.
func (e *Engine) NumberOfAssertedOWLIndividualDeclarationAxioms() int {
	return e.processor.NumberOfIndividualDeclarationAxioms()
}
