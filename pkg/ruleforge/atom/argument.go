// Package atom implements the built-in argument and atom model: the typed
// operands of SWRL atoms and the atoms themselves (class atoms, property
// atoms, same/different-individual atoms, and built-in atoms).
package atom

import "github.com/ruleforge/ruleforge/pkg/ruleforge/value"

// ArgumentKind tags the variant held by a BuiltInArgument.
type ArgumentKind int

const (
	KindVariable ArgumentKind = iota
	KindLiteral
	KindClass
	KindIndividual
	KindObjectProperty
	KindDataProperty
	KindAnnotationProperty
	KindDatatype
	KindMultiValue
	KindSQWRLCollection
)

// Identifier names an OWL entity by IRI (or a local name, for tests and the
// fixture store, which don't carry a full IRI namespace).
type Identifier string

// BuiltInArgument is a tagged value: exactly one of its kind-specific
// fields is meaningful, selected by Kind(). Variable arguments additionally
// carry a mutable "unbound" flag set by the canonicalizer.
//
// Per the argument model's explicit carve-out, SetUnbound is a
// pointer-receiver mutator even though the rest of this package favors
// immutable values built through constructors.
type BuiltInArgument struct {
	kind ArgumentKind

	// KindVariable
	variableName string
	unbound      bool

	// KindLiteral
	literal value.Literal

	// KindClass, KindIndividual, KindObjectProperty, KindDataProperty,
	// KindAnnotationProperty, KindDatatype
	entity Identifier

	// KindMultiValue
	multiValue []BuiltInArgument

	// KindSQWRLCollection
	collectionQueryName string
	collectionName      string
	collectionGroupID   string
}

// Kind reports which variant this argument holds.
func (a BuiltInArgument) Kind() ArgumentKind { return a.kind }

// Variable constructs a bound variable argument.
func Variable(name string) BuiltInArgument {
	return BuiltInArgument{kind: KindVariable, variableName: name}
}

// UnboundVariable constructs a variable argument already marked unbound,
// mirroring getUnboundVariableBuiltInArgument's construct-then-setUnbound.
func UnboundVariable(name string) BuiltInArgument {
	a := Variable(name)
	a.SetUnbound()
	return a
}

// VariableName returns the variable's name. Valid only for KindVariable.
func (a BuiltInArgument) VariableName() string { return a.variableName }

// IsUnbound reports whether a variable argument has been marked unbound.
// Always false for non-variable arguments.
func (a BuiltInArgument) IsUnbound() bool { return a.kind == KindVariable && a.unbound }

// SetUnbound marks a variable argument unbound. Idempotent: calling it
// again on an already-unbound argument, or on one already processed by the
// canonicalizer, leaves it unchanged. No-op on non-variable arguments.
func (a *BuiltInArgument) SetUnbound() {
	if a.kind != KindVariable {
		return
	}
	a.unbound = true
}

// LiteralArg constructs a literal argument.
func LiteralArg(l value.Literal) BuiltInArgument {
	return BuiltInArgument{kind: KindLiteral, literal: l}
}

// LiteralValue returns the wrapped literal. Valid only for KindLiteral.
func (a BuiltInArgument) LiteralValue() value.Literal { return a.literal }

// Class constructs a class-entity argument.
func Class(id Identifier) BuiltInArgument {
	return BuiltInArgument{kind: KindClass, entity: id}
}

// Individual constructs a named-individual argument.
func Individual(id Identifier) BuiltInArgument {
	return BuiltInArgument{kind: KindIndividual, entity: id}
}

// ObjectProperty constructs an object-property argument.
func ObjectProperty(id Identifier) BuiltInArgument {
	return BuiltInArgument{kind: KindObjectProperty, entity: id}
}

// DataProperty constructs a data-property argument.
func DataProperty(id Identifier) BuiltInArgument {
	return BuiltInArgument{kind: KindDataProperty, entity: id}
}

// AnnotationProperty constructs an annotation-property argument.
func AnnotationProperty(id Identifier) BuiltInArgument {
	return BuiltInArgument{kind: KindAnnotationProperty, entity: id}
}

// DatatypeArg constructs a datatype-entity argument.
func DatatypeArg(id Identifier) BuiltInArgument {
	return BuiltInArgument{kind: KindDatatype, entity: id}
}

// EntityID returns the wrapped entity identifier. Valid for the entity-kind
// arguments (Class, Individual, ObjectProperty, DataProperty,
// AnnotationProperty, Datatype).
func (a BuiltInArgument) EntityID() Identifier { return a.entity }

// MultiValue constructs a multi-value argument wrapping a set of
// alternative argument values a built-in may iterate over.
func MultiValue(values []BuiltInArgument) BuiltInArgument {
	return BuiltInArgument{kind: KindMultiValue, multiValue: append([]BuiltInArgument(nil), values...)}
}

// MultiValues returns the wrapped alternatives. Valid only for
// KindMultiValue.
func (a BuiltInArgument) MultiValues() []BuiltInArgument {
	return append([]BuiltInArgument(nil), a.multiValue...)
}

// SQWRLCollection constructs a named collection argument scoped to a query
// and a collection group, mirroring
// SQWRLCollectionBuiltInArgument(queryName, collectionName, groupID).
func SQWRLCollection(queryName, collectionName, groupID string) BuiltInArgument {
	return BuiltInArgument{
		kind:                KindSQWRLCollection,
		collectionQueryName: queryName,
		collectionName:      collectionName,
		collectionGroupID:   groupID,
	}
}

// CollectionQueryName returns the owning query name of a collection
// argument. Valid only for KindSQWRLCollection.
func (a BuiltInArgument) CollectionQueryName() string { return a.collectionQueryName }

// CollectionName returns the collection's name. Valid only for
// KindSQWRLCollection.
func (a BuiltInArgument) CollectionName() string { return a.collectionName }

// CollectionGroupID returns the collection's group identifier. Valid only
// for KindSQWRLCollection.
func (a BuiltInArgument) CollectionGroupID() string { return a.collectionGroupID }
