// Package fixture provides a sqlite-backed sample-ontology store used by
// the CLI to demonstrate wiring an external ontology source into an
// engine; it also accepts the engine's written-back class assertions. It is not the engine's persistence layer: the engine
// itself never touches disk, per the ontology-persistence non-goal.
package fixture

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/ruleforge/ruleforge/pkg/ruleforge/atom"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/ontology"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/rule"
)

// execer is satisfied by *sql.DB and *sql.Tx, letting the writeback path
// run either autocommit or inside a bulk-conversion transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Store is a sqlite-backed sample-ontology fixture: rules, queries, and
// class-assertion axioms loaded once at startup, and also the engine's
// Ontology collaborator, receiving written-back inferred/injected axioms.
// Grounded in korel's store/sqlite.OpenSQLite for its connection setup and
// initSchema pattern.
type Store struct {
	db    *sql.DB
	tx    *sql.Tx
	rules []rule.Rule // cache of rule.Rule values seeded via SeedRule, backing SWRLAPIRules
}

// Open opens (creating if necessary) a fixture database at path and
// ensures its schema exists.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open fixture db: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error { return s.db.Close() }

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS rules (
	name TEXT PRIMARY KEY,
	text TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS class_assertions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	individual TEXT NOT NULL,
	class TEXT NOT NULL
);
`
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("init fixture schema: %w", err)
	}
	return nil
}

// PutRuleText stores a rule's diagnostic text alongside its name, for
// display by the CLI. Rule construction itself happens in Go (via the
// resolve/rule packages); this table exists purely as a demonstration of
// an external collaborator persisting rule provenance.
func (s *Store) PutRuleText(ctx context.Context, name, text string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO rules(name, text) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET text = excluded.text`, name, text)
	return err
}

// RuleTexts returns every stored rule name and its diagnostic text.
func (s *Store) RuleTexts(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, text FROM rules`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var name, text string
		if err := rows.Scan(&name, &text); err != nil {
			return nil, err
		}
		out[name] = text
	}
	return out, rows.Err()
}

// PutClassAssertion records a sample individual-to-class assertion.
func (s *Store) PutClassAssertion(ctx context.Context, individual, class atom.Identifier) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO class_assertions(individual, class) VALUES (?, ?)`,
		string(individual), string(class))
	return err
}

// ClassAssertions loads every stored class assertion as ontology Axioms,
// ready to feed to an engine via LoadSource.
func (s *Store) ClassAssertions(ctx context.Context) ([]ontology.Axiom, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT individual, class FROM class_assertions`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ontology.Axiom
	for rows.Next() {
		var individual, class string
		if err := rows.Scan(&individual, &class); err != nil {
			return nil, err
		}
		out = append(out, ontology.Axiom{
			Kind:    ontology.AxiomClassAssertion,
			Subject: atom.Identifier(individual),
			Class:   atom.Identifier(class),
		})
	}
	return out, rows.Err()
}

// SeedRule seeds the fixture with a rule's canonical text, so the sample
// database ships with at least one rule to demonstrate against, and caches
// the rule value itself so SWRLAPIRules can return it later.
func SeedRule(ctx context.Context, s *Store, r rule.Rule) error {
	if err := s.PutRuleText(ctx, r.Name, r.Text()); err != nil {
		return err
	}
	s.rules = append(s.rules, r)
	return nil
}

// execer returns the transaction opened by StartBulkConversion if one is
// in progress, else the plain connection, so AddAxiom writes participate
// in a bulk-conversion batch when one is open.
func (s *Store) execer() execer {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

// StartBulkConversion opens a transaction batching subsequent AddAxiom
// writes, grounded in AbstractSWRLRuleEngine.writeInferredKnowledge's
// startBulkConversion/completeBulkConversion bracket around a batch of
// ontology changes. Satisfies the engine's Ontology collaborator.
func (s *Store) StartBulkConversion() error {
	tx, err := s.db.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("start bulk conversion: %w", err)
	}
	s.tx = tx
	return nil
}

// CompleteBulkConversion commits the transaction opened by
// StartBulkConversion, if any.
func (s *Store) CompleteBulkConversion() error {
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("complete bulk conversion: %w", err)
	}
	return nil
}

// AddAxiom persists a single written-back axiom. Only class assertions
// have a home in the fixture's schema; other kinds are exercised entirely
// in-memory by the ontology processor and are accepted here as a no-op.
func (s *Store) AddAxiom(ax ontology.Axiom) error {
	if ax.Kind != ontology.AxiomClassAssertion {
		return nil
	}
	_, err := s.execer().ExecContext(context.Background(),
		`INSERT INTO class_assertions(individual, class) VALUES (?, ?)`, string(ax.Subject), string(ax.Class))
	if err != nil {
		return fmt.Errorf("add axiom: %w", err)
	}
	return nil
}

// Axioms returns every stored axiom of the requested kind. The fixture
// only persists class assertions; includeImports is accepted for
// interface conformance but has no effect since the fixture has no import
// closure of its own.
func (s *Store) Axioms(kind ontology.AxiomKind, includeImports bool) []ontology.Axiom {
	if kind != ontology.AxiomClassAssertion {
		return nil
	}
	out, err := s.ClassAssertions(context.Background())
	if err != nil {
		return nil
	}
	return out
}

// SWRLAPIRules returns every rule seeded into the fixture via SeedRule.
func (s *Store) SWRLAPIRules() []rule.Rule {
	return append([]rule.Rule(nil), s.rules...)
}
