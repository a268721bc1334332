// Package resolve implements the entity resolver and argument/literal
// factories of the argument-and-atom model's construction side: the parts
// of the system responsible for turning raw identifiers and lexical forms
// into the typed values the rest of ruleforge operates on.
package resolve

import (
	"crypto/rand"
	"fmt"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/ruleforge/ruleforge/pkg/ruleforge/atom"
)

// EntityKind classifies the OWL entity categories the resolver tracks
// separately, mirroring the six declaration-axiom maps kept by the
// ontology processor.
type EntityKind int

const (
	EntityClass EntityKind = iota
	EntityIndividual
	EntityObjectProperty
	EntityDataProperty
	EntityAnnotationProperty
	EntityDatatype
)

// Resolver records every entity encountered while processing an ontology,
// grouped by kind, additively across a session and cleared only by Reset.
// Grounded in OWLNamedObjectResolver's per-kind entity maps.
type Resolver struct {
	sessionID string
	entropy   *ulid.MonotonicEntropy
	entities  map[EntityKind]map[atom.Identifier]struct{}
}

// New creates a Resolver with a fresh per-session identifier, used to
// trace which resolver instance produced a given synthesized blank node
// across engine runs.
func New() *Resolver {
	r := &Resolver{
		sessionID: uuid.NewString(),
		entropy:   ulid.Monotonic(rand.Reader, 0),
	}
	r.Reset()
	return r
}

// SessionID returns the resolver's per-instance identifier.
func (r *Resolver) SessionID() string { return r.sessionID }

// Reset clears every recorded entity, matching
// OWLNamedObjectResolver.reset() being invoked from the ontology
// processor's own reset().
func (r *Resolver) Reset() {
	r.entities = map[EntityKind]map[atom.Identifier]struct{}{
		EntityClass:              {},
		EntityIndividual:         {},
		EntityObjectProperty:     {},
		EntityDataProperty:       {},
		EntityAnnotationProperty: {},
		EntityDatatype:           {},
	}
}

// Record adds an identifier under the given kind. Recording the same
// identifier twice under the same kind is a no-op: the resolver is
// additive and idempotent, never accumulating duplicates.
func (r *Resolver) Record(kind EntityKind, id atom.Identifier) {
	r.entities[kind][id] = struct{}{}
}

// Has reports whether an identifier has been recorded under the given
// kind.
func (r *Resolver) Has(kind EntityKind, id atom.Identifier) bool {
	_, ok := r.entities[kind][id]
	return ok
}

// Count returns the number of distinct identifiers recorded under a kind.
func (r *Resolver) Count(kind EntityKind) int {
	return len(r.entities[kind])
}

// All returns every identifier recorded under a kind.
func (r *Resolver) All(kind EntityKind) []atom.Identifier {
	out := make([]atom.Identifier, 0, len(r.entities[kind]))
	for id := range r.entities[kind] {
		out = append(out, id)
	}
	return out
}

// NewBlankNodeID synthesizes an identifier for an anonymous entity
// surfaced while declaring missing entities, stamped with a monotonic ULID
// so identifiers sort by creation order within a session, mirroring
// cards.Builder's ulid.Monotonic usage for card IDs.
func (r *Resolver) NewBlankNodeID(prefix string) atom.Identifier {
	id := ulid.MustNew(ulid.Now(), r.entropy)
	return atom.Identifier(fmt.Sprintf("_:%s%s", prefix, id.String()))
}
