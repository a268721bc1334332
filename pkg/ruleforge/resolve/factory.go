package resolve

import (
	"fmt"
	"time"

	"github.com/ruleforge/ruleforge/pkg/ruleforge/atom"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/internalerr"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/value"
)

// ArgumentFactory builds BuiltInArgument values, recording every entity
// identifier it mints with the associated Resolver. Grounded in
// DefaultSWRLBuiltInArgumentFactoryImpl's exhaustive getXxxBuiltInArgument
// family.
type ArgumentFactory struct {
	resolver *Resolver
}

// NewArgumentFactory builds a factory backed by the given resolver.
func NewArgumentFactory(r *Resolver) *ArgumentFactory {
	return &ArgumentFactory{resolver: r}
}

// Variable builds a bound variable argument.
func (f *ArgumentFactory) Variable(name string) atom.BuiltInArgument {
	return atom.Variable(name)
}

// UnboundVariable builds a variable argument already marked unbound.
func (f *ArgumentFactory) UnboundVariable(name string) atom.BuiltInArgument {
	return atom.UnboundVariable(name)
}

// Class builds a class argument and records the class with the resolver.
func (f *ArgumentFactory) Class(id atom.Identifier) atom.BuiltInArgument {
	f.resolver.Record(EntityClass, id)
	return atom.Class(id)
}

// Individual builds a named-individual argument and records it. Anonymous
// individuals have no place in the built-in argument model, mirroring
// DefaultSWRLBuiltInArgumentFactoryImpl's rejection of anonymous
// individuals when building a built-in argument.
func (f *ArgumentFactory) Individual(id atom.Identifier) (atom.BuiltInArgument, error) {
	if id == "" {
		return atom.BuiltInArgument{}, fmt.Errorf("anonymous individuals cannot be used as built-in arguments: %w", internalerr.ErrBuiltIn)
	}
	f.resolver.Record(EntityIndividual, id)
	return atom.Individual(id), nil
}

// ObjectProperty builds an object-property argument and records it.
func (f *ArgumentFactory) ObjectProperty(id atom.Identifier) atom.BuiltInArgument {
	f.resolver.Record(EntityObjectProperty, id)
	return atom.ObjectProperty(id)
}

// DataProperty builds a data-property argument and records it.
func (f *ArgumentFactory) DataProperty(id atom.Identifier) atom.BuiltInArgument {
	f.resolver.Record(EntityDataProperty, id)
	return atom.DataProperty(id)
}

// AnnotationProperty builds an annotation-property argument and records it.
func (f *ArgumentFactory) AnnotationProperty(id atom.Identifier) atom.BuiltInArgument {
	f.resolver.Record(EntityAnnotationProperty, id)
	return atom.AnnotationProperty(id)
}

// Datatype builds a datatype argument and records it.
func (f *ArgumentFactory) Datatype(id atom.Identifier) atom.BuiltInArgument {
	f.resolver.Record(EntityDatatype, id)
	return atom.DatatypeArg(id)
}

// MultiValue builds a multi-value argument from alternative values.
func (f *ArgumentFactory) MultiValue(values ...atom.BuiltInArgument) atom.BuiltInArgument {
	return atom.MultiValue(values)
}

// SQWRLCollection builds a named-collection argument.
func (f *ArgumentFactory) SQWRLCollection(queryName, collectionName, groupID string) atom.BuiltInArgument {
	return atom.SQWRLCollection(queryName, collectionName, groupID)
}

// LiteralFactory builds literal arguments, delegating datatype parsing to
// the value package. Grounded in DefaultSWRLAPILiteralFactory's overloaded
// getLiteral methods, collapsed into typed Go constructors plus one
// lexical-form entry point.
type LiteralFactory struct{}

// NewLiteralFactory builds a literal factory. Stateless: kept as a type so
// call sites read symmetrically with ArgumentFactory.
func NewLiteralFactory() *LiteralFactory { return &LiteralFactory{} }

// Boolean builds a boolean literal argument.
func (LiteralFactory) Boolean(v bool) atom.BuiltInArgument {
	return atom.LiteralArg(value.NewBoolean(v))
}

// Int builds an int literal argument.
func (LiteralFactory) Int(v int32) atom.BuiltInArgument {
	return atom.LiteralArg(value.NewInt(v))
}

// Long builds a long literal argument.
func (LiteralFactory) Long(v int64) atom.BuiltInArgument {
	return atom.LiteralArg(value.NewLong(v))
}

// Short builds a short literal argument.
func (LiteralFactory) Short(v int16) atom.BuiltInArgument {
	return atom.LiteralArg(value.NewShort(v))
}

// Byte builds a byte literal argument.
func (LiteralFactory) Byte(v int8) atom.BuiltInArgument {
	return atom.LiteralArg(value.NewByte(v))
}

// Float builds a float literal argument.
func (LiteralFactory) Float(v float32) atom.BuiltInArgument {
	return atom.LiteralArg(value.NewFloat(v))
}

// Double builds a double literal argument.
func (LiteralFactory) Double(v float64) atom.BuiltInArgument {
	return atom.LiteralArg(value.NewDouble(v))
}

// String builds a string literal argument.
func (LiteralFactory) String(v string) atom.BuiltInArgument {
	return atom.LiteralArg(value.NewString(v))
}

// AnyURI builds an anyURI literal argument.
func (LiteralFactory) AnyURI(v string) atom.BuiltInArgument {
	return atom.LiteralArg(value.NewAnyURI(v))
}

// Date builds a date literal argument.
func (LiteralFactory) Date(v time.Time) atom.BuiltInArgument {
	return atom.LiteralArg(value.NewDate(v))
}

// Time builds a time literal argument.
func (LiteralFactory) Time(v time.Time) atom.BuiltInArgument {
	return atom.LiteralArg(value.NewTime(v))
}

// DateTime builds a dateTime literal argument.
func (LiteralFactory) DateTime(v time.Time) atom.BuiltInArgument {
	return atom.LiteralArg(value.NewDateTime(v))
}

// Duration builds a duration literal argument.
func (LiteralFactory) Duration(v time.Duration) atom.BuiltInArgument {
	return atom.LiteralArg(value.NewDuration(v))
}

// FromLexical builds a literal argument by parsing a lexical form against a
// datatype, failing with ErrLiteralType if the form is malformed.
func (LiteralFactory) FromLexical(lexical string, dt value.Datatype) (atom.BuiltInArgument, error) {
	l, err := value.NewFromLexical(lexical, dt)
	if err != nil {
		return atom.BuiltInArgument{}, err
	}
	return atom.LiteralArg(l), nil
}
