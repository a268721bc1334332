// Package rule defines the Rule and Query types and the canonicalizer that
// reorders a rule's body atoms and marks unbound built-in variables.
package rule

import (
	"fmt"
	"strings"

	"github.com/ruleforge/ruleforge/pkg/ruleforge/atom"
)

// Rule is a SWRL rule: a name, an ordered body, and an ordered head.
type Rule struct {
	Name string
	Body []atom.Atom
	Head []atom.Atom
}

// Query is a SQWRL query: a rule body/head plus the active flag that
// controls whether the target reasoner populates its result table on a
// given run.
type Query struct {
	Rule
	Active bool
}

// Text renders a rule for diagnostics: "body1 ^ body2 -> head1 ^ head2",
// grounded in DefaultSWRLAPIRule.getRuleText().
func (r Rule) Text() string {
	body := make([]string, 0, len(r.Body))
	for _, a := range r.Body {
		body = append(body, atomText(a))
	}
	head := make([]string, 0, len(r.Head))
	for _, a := range r.Head {
		head = append(head, atomText(a))
	}
	return fmt.Sprintf("%s -> %s", strings.Join(body, " ^ "), strings.Join(head, " ^ "))
}

func atomText(a atom.Atom) string {
	args := make([]string, 0, len(a.Arguments()))
	for _, arg := range a.Arguments() {
		args = append(args, argText(arg))
	}
	name := string(a.Predicate())
	if a.IsBuiltIn() {
		name = a.BuiltInName()
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
}

func argText(a atom.BuiltInArgument) string {
	switch a.Kind() {
	case atom.KindVariable:
		if a.IsUnbound() {
			return "?" + a.VariableName()
		}
		return a.VariableName()
	case atom.KindLiteral:
		return a.LiteralValue().QuotedForm()
	default:
		return string(a.EntityID())
	}
}
