// Command ruleforge-cli loads a sample ontology fixture, builds an
// engine around a no-op target rule engine, and runs one inference
// cycle, printing the resulting axioms.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/ruleforge/ruleforge/pkg/ruleforge/atom"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/config"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/engine"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/fixture"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/noop"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/ontology"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/rule"
	"github.com/ruleforge/ruleforge/pkg/ruleforge/value"
)

func main() {
	var (
		fixturePath = flag.String("fixture", "", "Path to sqlite fixture database (required)")
		configPath  = flag.String("config", "", "Optional path to engine config YAML")
		seed        = flag.Bool("seed", false, "Seed the fixture with a sample rule and class assertions before running")
	)
	flag.Parse()

	if *fixturePath == "" {
		log.Fatal("--fixture required")
	}

	cfg, err := (config.Loader{Path: *configPath}).Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.TargetReasoner != "" && cfg.TargetReasoner != "noop" {
		log.Fatalf("unsupported target reasoner %q", cfg.TargetReasoner)
	}

	ctx := context.Background()

	store, err := fixture.Open(ctx, *fixturePath)
	if err != nil {
		log.Fatalf("open fixture: %v", err)
	}
	defer store.Close()

	adultRule := rule.Rule{
		Name: "AdultRule",
		Body: []atom.Atom{
			atom.NewClassAtom(atom.Identifier("Person"), atom.Variable("p")),
			atom.NewBuiltInAtom("swrlb:greaterThanOrEqual", atom.Variable("age"), atom.LiteralArg(value.NewInt(18))),
		},
		Head: []atom.Atom{
			atom.NewClassAtom(atom.Identifier("Adult"), atom.Variable("p")),
		},
	}

	if *seed {
		if err := fixture.SeedRule(ctx, store, adultRule); err != nil {
			log.Fatalf("seed rule: %v", err)
		}
		if err := store.PutClassAssertion(ctx, atom.Identifier("alice"), atom.Identifier("Person")); err != nil {
			log.Fatalf("seed class assertion: %v", err)
		}
	}

	classAssertions, err := store.ClassAssertions(ctx)
	if err != nil {
		log.Fatalf("load class assertions: %v", err)
	}
	if len(classAssertions) == 0 {
		log.Fatal("fixture has no class assertions; run again with --seed")
	}

	target := noop.NewTargetRuleEngine()
	bridge := noop.NewBuiltInBridge()
	e := engine.New(target, bridge, store)
	e.LoadSource([]rule.Rule{adultRule}, classAssertions)

	axioms, err := e.Infer()
	if err != nil {
		log.Fatalf("infer: %v", err)
	}

	fmt.Printf("imported rules: %d\n", e.NumberOfImportedSWRLRules())
	fmt.Printf("declared classes: %d\n", e.NumberOfAssertedOWLClassDeclarationAxioms())
	fmt.Printf("declared individuals: %d\n", e.NumberOfAssertedOWLIndividualDeclarationAxioms())
	fmt.Printf("written-back axioms: %d\n", len(axioms))
	for _, ax := range axioms {
		printAxiom(ax)
	}
}

func printAxiom(ax ontology.Axiom) {
	switch ax.Kind {
	case ontology.AxiomClassAssertion:
		fmt.Printf("  ClassAssertion(%s %s)\n", ax.Class, ax.Subject)
	default:
		fmt.Printf("  Axiom(kind=%d entity=%s)\n", ax.Kind, ax.Entity)
	}
}
