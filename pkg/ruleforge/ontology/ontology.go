// Package ontology implements the ontology processor: it walks asserted
// axioms plus the rule/query stream, synthesizes missing declaration
// axioms idempotently, and partitions incoming rules into SWRL rules and
// SQWRL queries by built-in-name detection.
package ontology

import (
	"fmt"

	"github.com/ruleforge/ruleforge/pkg/ruleforge/atom"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/internalerr"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/resolve"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/rule"
)

// AxiomKind enumerates the asserted-axiom kinds the processor tracks.
// Grounded in the AxiomType family DefaultSWRLAPIOntologyProcessor walks
// via its processOWLAxioms dispatch table (processOWLSubClassOfAxioms
// through processOWLDisjointDataPropertiesAxioms).
type AxiomKind int

const (
	AxiomClassDeclaration AxiomKind = iota
	AxiomIndividualDeclaration
	AxiomObjectPropertyDeclaration
	AxiomDataPropertyDeclaration
	AxiomAnnotationPropertyDeclaration
	AxiomDatatypeDeclaration
	AxiomClassAssertion
	AxiomObjectPropertyAssertion
	AxiomDataPropertyAssertion
	AxiomSameIndividual
	AxiomDifferentIndividuals
	AxiomSubClassOf
	AxiomEquivalentClasses
	AxiomSubObjectPropertyOf
	AxiomEquivalentObjectProperties
	AxiomDisjointObjectProperties
	AxiomSubDataPropertyOf
	AxiomEquivalentDataProperties
	AxiomDisjointDataProperties
	AxiomTransitiveObjectProperty
	AxiomSymmetricObjectProperty
	AxiomFunctionalObjectProperty
	AxiomInverseFunctionalObjectProperty
	AxiomInverseObjectProperties
	AxiomIrreflexiveObjectProperty
	AxiomAsymmetricObjectProperty
	AxiomFunctionalDataProperty
	AxiomObjectPropertyDomain
	AxiomDataPropertyDomain
	AxiomObjectPropertyRange
	AxiomDataPropertyRange
)

// Axiom is an asserted OWL axiom as seen by the processor: a kind plus the
// entities/individuals it involves. Field use varies by kind:
//   - Entity: the sole argument of a declaration or unary property axiom
//     (transitive/symmetric/functional/inverse-functional/irreflexive/
//     asymmetric object-property, functional data-property, datatype).
//   - Subject/Object: the two arguments of a binary relation (sub-class-of,
//     sub-property-of, inverse-properties, property domain/range) or a
//     property/individual assertion.
//   - Members: the full participant list of an n-ary axiom (equivalent or
//     disjoint classes/properties, same/different individuals).
type Axiom struct {
	Kind    AxiomKind
	Entity  atom.Identifier
	Class   atom.Identifier
	Subject atom.Identifier
	Object  atom.Identifier
	Members []atom.Identifier
}

// sqwrlBuiltInNames is the fixed SQWRL built-in vocabulary. A rule whose
// head or body contains any built-in atom named here is a query, not a
// rule. Grounded in SQWRLNames.getSQWRLBuiltInNames().
var sqwrlBuiltInNames = map[string]struct{}{
	"sqwrl:select":        {},
	"sqwrl:selectDistinct": {},
	"sqwrl:count":         {},
	"sqwrl:countDistinct":  {},
	"sqwrl:min":           {},
	"sqwrl:max":           {},
	"sqwrl:sum":           {},
	"sqwrl:avg":           {},
	"sqwrl:orderBy":       {},
	"sqwrl:orderByDescending": {},
	"sqwrl:columnNames":   {},
	"sqwrl:limit":         {},
	"sqwrl:nth":           {},
	"sqwrl:notNth":        {},
	"sqwrl:firstN":        {},
	"sqwrl:notFirstN":     {},
	"sqwrl:lastN":         {},
	"sqwrl:notLastN":      {},
	"sqwrl:nthSlice":      {},
	"sqwrl:notNthSlice":   {},
	"sqwrl:nthLastSlice":  {},
	"sqwrl:notNthLastSlice": {},
	"sqwrl:makeSet":       {},
	"sqwrl:makeBag":       {},
	"sqwrl:groupBy":       {},
}

// IsSQWRLBuiltInName reports whether name is part of the fixed SQWRL
// built-in vocabulary.
func IsSQWRLBuiltInName(name string) bool {
	_, ok := sqwrlBuiltInNames[name]
	return ok
}

// isSQWRLQuery tests a rule's head and body built-in atoms against the
// SQWRL vocabulary. Grounded in
// DefaultSWRLAPIOntologyProcessor.isSQWRLQuery.
func isSQWRLQuery(r rule.Rule) bool {
	for _, a := range r.Body {
		if a.IsBuiltIn() && IsSQWRLBuiltInName(a.BuiltInName()) {
			return true
		}
	}
	for _, a := range r.Head {
		if a.IsBuiltIn() && IsSQWRLBuiltInName(a.BuiltInName()) {
			return true
		}
	}
	return false
}

// Processor walks asserted axioms and an incoming rule/query stream,
// synthesizing missing declaration axioms and partitioning rules from
// queries. Grounded in DefaultSWRLAPIOntologyProcessor.
type Processor struct {
	resolver *resolve.Resolver

	rules   map[string]rule.Rule
	queries map[string]rule.Query

	assertedAxioms []Axiom

	classDecl             map[atom.Identifier]struct{}
	individualDecl        map[atom.Identifier]struct{}
	objectPropertyDecl    map[atom.Identifier]struct{}
	dataPropertyDecl      map[atom.Identifier]struct{}
	annotationPropertyDecl map[atom.Identifier]struct{}
	datatypeDecl          map[atom.Identifier]struct{}
}

// New builds a Processor backed by the given resolver. The resolver is
// shared with factories constructing the axioms/rules fed to Process.
func New(r *resolve.Resolver) *Processor {
	p := &Processor{resolver: r}
	p.reset()
	return p
}

// reset clears all rule/query/axiom/declaration state, matching
// DefaultSWRLAPIOntologyProcessor.reset().
func (p *Processor) reset() {
	p.rules = make(map[string]rule.Rule)
	p.queries = make(map[string]rule.Query)
	p.assertedAxioms = nil
	p.classDecl = make(map[atom.Identifier]struct{})
	p.individualDecl = make(map[atom.Identifier]struct{})
	p.objectPropertyDecl = make(map[atom.Identifier]struct{})
	p.dataPropertyDecl = make(map[atom.Identifier]struct{})
	p.annotationPropertyDecl = make(map[atom.Identifier]struct{})
	p.datatypeDecl = make(map[atom.Identifier]struct{})
	p.resolver.Reset()
}

// ProcessOntology performs a full reset-then-rewalk over the supplied
// rules and asserted axioms: §4.4's "no partial state ever observable"
// guarantee is met by resetting first and only ever appending afterward,
// so a processor instance never exposes a partially processed mix of two
// runs. Grounded in processOntology() calling reset() then
// processSWRLRulesAndSQWRLQueries() then processOWLAxioms().
func (p *Processor) ProcessOntology(rulesAndQueries []rule.Rule, axioms []Axiom) {
	p.reset()
	p.processRulesAndQueries(rulesAndQueries)
	p.processAxioms(axioms)
}

func (p *Processor) processRulesAndQueries(rs []rule.Rule) {
	for _, r := range rs {
		if isSQWRLQuery(r) {
			p.queries[r.Name] = rule.Query{Rule: r, Active: false}
			// A SQWRL query is not itself an OWL axiom.
		} else {
			canon := rule.Canonicalize(r)
			p.rules[canon.Name] = canon
			// A SWRL rule is a type of OWL axiom.
			p.assertedAxioms = append(p.assertedAxioms, ruleAsAxiomMarker(canon))
		}
	}
}

// ruleAsAxiomMarker represents a rule's presence in the asserted-axiom set
// without reifying a full axiom kind for it; ruleforge tracks rule axioms
// by name rather than duplicating the rule's body/head into an Axiom.
func ruleAsAxiomMarker(r rule.Rule) Axiom {
	return Axiom{Kind: AxiomClassDeclaration, Entity: atom.Identifier("rule:" + r.Name)}
}

func (p *Processor) processAxioms(axioms []Axiom) {
	for _, ax := range axioms {
		switch ax.Kind {
		case AxiomClassDeclaration:
			p.declareClass(ax.Entity)
		case AxiomIndividualDeclaration:
			p.declareIndividual(ax.Entity)
		case AxiomObjectPropertyDeclaration:
			p.declareObjectProperty(ax.Entity)
		case AxiomDataPropertyDeclaration:
			p.declareDataProperty(ax.Entity)
		case AxiomAnnotationPropertyDeclaration:
			p.declareAnnotationProperty(ax.Entity)
		case AxiomDatatypeDeclaration:
			p.declareDatatype(ax.Entity)
		case AxiomClassAssertion:
			p.declareClass(ax.Class)
			ax.Subject = p.declareIndividual(ax.Subject)
			p.assertedAxioms = append(p.assertedAxioms, ax)
		case AxiomObjectPropertyAssertion:
			ax.Subject = p.declareIndividual(ax.Subject)
			ax.Object = p.declareIndividual(ax.Object)
			p.assertedAxioms = append(p.assertedAxioms, ax)
		case AxiomDataPropertyAssertion:
			ax.Subject = p.declareIndividual(ax.Subject)
			p.assertedAxioms = append(p.assertedAxioms, ax)
		case AxiomSameIndividual, AxiomDifferentIndividuals:
			for i, m := range ax.Members {
				ax.Members[i] = p.declareIndividual(m)
			}
			p.assertedAxioms = append(p.assertedAxioms, ax)
		case AxiomSubClassOf:
			p.declareClass(ax.Subject)
			p.declareClass(ax.Object)
			p.assertedAxioms = append(p.assertedAxioms, ax)
		case AxiomEquivalentClasses:
			for _, m := range ax.Members {
				p.declareClass(m)
			}
			p.assertedAxioms = append(p.assertedAxioms, ax)
		case AxiomSubObjectPropertyOf:
			p.declareObjectProperty(ax.Subject)
			p.declareObjectProperty(ax.Object)
			p.assertedAxioms = append(p.assertedAxioms, ax)
		case AxiomEquivalentObjectProperties, AxiomDisjointObjectProperties:
			for _, m := range ax.Members {
				p.declareObjectProperty(m)
			}
			p.assertedAxioms = append(p.assertedAxioms, ax)
		case AxiomSubDataPropertyOf:
			p.declareDataProperty(ax.Subject)
			p.declareDataProperty(ax.Object)
			p.assertedAxioms = append(p.assertedAxioms, ax)
		case AxiomEquivalentDataProperties, AxiomDisjointDataProperties:
			for _, m := range ax.Members {
				p.declareDataProperty(m)
			}
			p.assertedAxioms = append(p.assertedAxioms, ax)
		case AxiomTransitiveObjectProperty, AxiomSymmetricObjectProperty, AxiomFunctionalObjectProperty,
			AxiomInverseFunctionalObjectProperty, AxiomIrreflexiveObjectProperty, AxiomAsymmetricObjectProperty:
			p.declareObjectProperty(ax.Entity)
			p.assertedAxioms = append(p.assertedAxioms, ax)
		case AxiomInverseObjectProperties:
			p.declareObjectProperty(ax.Subject)
			p.declareObjectProperty(ax.Object)
			p.assertedAxioms = append(p.assertedAxioms, ax)
		case AxiomFunctionalDataProperty:
			p.declareDataProperty(ax.Entity)
			p.assertedAxioms = append(p.assertedAxioms, ax)
		case AxiomObjectPropertyDomain, AxiomObjectPropertyRange:
			p.declareObjectProperty(ax.Subject)
			p.declareClass(ax.Object)
			p.assertedAxioms = append(p.assertedAxioms, ax)
		case AxiomDataPropertyDomain:
			p.declareDataProperty(ax.Subject)
			p.declareClass(ax.Object)
			p.assertedAxioms = append(p.assertedAxioms, ax)
		case AxiomDataPropertyRange:
			// the range of a data property is a datatype, not a class: no
			// class declaration to close over, mirroring
			// processOWLDataPropertyRangeAxioms.
			p.declareDataProperty(ax.Subject)
			p.assertedAxioms = append(p.assertedAxioms, ax)
		}
	}
}

// declareClass synthesizes a class declaration axiom if one is not already
// present, mirroring generateOWLClassDeclarationAxiom's containsKey guard.
func (p *Processor) declareClass(id atom.Identifier) {
	if _, ok := p.classDecl[id]; ok {
		return
	}
	p.classDecl[id] = struct{}{}
	p.assertedAxioms = append(p.assertedAxioms, Axiom{Kind: AxiomClassDeclaration, Entity: id})
	p.resolver.Record(resolve.EntityClass, id)
}

// declareIndividual synthesizes an individual declaration axiom if one is
// not already present, returning the identifier actually declared: an
// anonymous individual (id == "") is first given a fresh blank-node
// identifier via the resolver, mirroring the Java source's handling of
// unnamed OWLIndividual instances, which still requires a declaration
// axiom over the anonymous node.
func (p *Processor) declareIndividual(id atom.Identifier) atom.Identifier {
	if id == "" {
		id = p.resolver.NewBlankNodeID("individual-")
	}
	if _, ok := p.individualDecl[id]; ok {
		return id
	}
	p.individualDecl[id] = struct{}{}
	p.assertedAxioms = append(p.assertedAxioms, Axiom{Kind: AxiomIndividualDeclaration, Entity: id})
	p.resolver.Record(resolve.EntityIndividual, id)
	return id
}

func (p *Processor) declareObjectProperty(id atom.Identifier) {
	if _, ok := p.objectPropertyDecl[id]; ok {
		return
	}
	p.objectPropertyDecl[id] = struct{}{}
	p.assertedAxioms = append(p.assertedAxioms, Axiom{Kind: AxiomObjectPropertyDeclaration, Entity: id})
	p.resolver.Record(resolve.EntityObjectProperty, id)
}

func (p *Processor) declareDataProperty(id atom.Identifier) {
	if _, ok := p.dataPropertyDecl[id]; ok {
		return
	}
	p.dataPropertyDecl[id] = struct{}{}
	p.assertedAxioms = append(p.assertedAxioms, Axiom{Kind: AxiomDataPropertyDeclaration, Entity: id})
	p.resolver.Record(resolve.EntityDataProperty, id)
}

func (p *Processor) declareAnnotationProperty(id atom.Identifier) {
	if _, ok := p.annotationPropertyDecl[id]; ok {
		return
	}
	p.annotationPropertyDecl[id] = struct{}{}
	p.assertedAxioms = append(p.assertedAxioms, Axiom{Kind: AxiomAnnotationPropertyDeclaration, Entity: id})
	p.resolver.Record(resolve.EntityAnnotationProperty, id)
}

func (p *Processor) declareDatatype(id atom.Identifier) {
	if _, ok := p.datatypeDecl[id]; ok {
		return
	}
	p.datatypeDecl[id] = struct{}{}
	p.assertedAxioms = append(p.assertedAxioms, Axiom{Kind: AxiomDatatypeDeclaration, Entity: id})
	p.resolver.Record(resolve.EntityDatatype, id)
}

// Rule returns a rule by name.
func (p *Processor) Rule(name string) (rule.Rule, error) {
	r, ok := p.rules[name]
	if !ok {
		return rule.Rule{}, fmt.Errorf("rule %q: %w", name, internalerr.ErrInvalidRuleName)
	}
	return r, nil
}

// Query returns a query by name.
func (p *Processor) Query(name string) (rule.Query, error) {
	q, ok := p.queries[name]
	if !ok {
		return rule.Query{}, fmt.Errorf("query %q: %w", name, internalerr.ErrInvalidQueryName)
	}
	return q, nil
}

// SetQueryActive flips a query's active flag in place within the
// processor's query map.
func (p *Processor) SetQueryActive(name string, active bool) error {
	q, ok := p.queries[name]
	if !ok {
		return fmt.Errorf("query %q: %w", name, internalerr.ErrInvalidQueryName)
	}
	q.Active = active
	p.queries[name] = q
	return nil
}

// RuleNames returns every known rule's name.
func (p *Processor) RuleNames() []string {
	out := make([]string, 0, len(p.rules))
	for name := range p.rules {
		out = append(out, name)
	}
	return out
}

// QueryNames returns every known query's name.
func (p *Processor) QueryNames() []string {
	out := make([]string, 0, len(p.queries))
	for name := range p.queries {
		out = append(out, name)
	}
	return out
}

// NumberOfRules returns the number of known rules.
func (p *Processor) NumberOfRules() int { return len(p.rules) }

// NumberOfQueries returns the number of known queries.
func (p *Processor) NumberOfQueries() int { return len(p.queries) }

// NumberOfAxioms returns the number of asserted axioms recorded so far
// (declarations, assertions, and rule markers, but not queries).
func (p *Processor) NumberOfAxioms() int { return len(p.assertedAxioms) }

// NumberOfClassDeclarationAxioms returns the count of distinct declared
// classes, whether asserted or synthesized.
func (p *Processor) NumberOfClassDeclarationAxioms() int { return len(p.classDecl) }

// NumberOfIndividualDeclarationAxioms returns the count of distinct
// declared individuals.
func (p *Processor) NumberOfIndividualDeclarationAxioms() int { return len(p.individualDecl) }

// NumberOfObjectPropertyDeclarationAxioms returns the count of distinct
// declared object properties.
func (p *Processor) NumberOfObjectPropertyDeclarationAxioms() int {
	return len(p.objectPropertyDecl)
}

// NumberOfDataPropertyDeclarationAxioms returns the count of distinct
// declared data properties.
func (p *Processor) NumberOfDataPropertyDeclarationAxioms() int { return len(p.dataPropertyDecl) }

// NumberOfDatatypeDeclarationAxioms returns the count of distinct declared
// datatypes.
func (p *Processor) NumberOfDatatypeDeclarationAxioms() int { return len(p.datatypeDecl) }
