package rule

import "github.com/ruleforge/ruleforge/pkg/ruleforge/atom"

// Canonicalize returns a new Rule whose body has been reordered into
// class atoms, then other non-built-in atoms, then built-in atoms, and
// whose built-in atom arguments have had first-use variables marked
// unbound where nothing outside the built-ins binds them.
//
// This is a pure function: it never mutates the atoms or arguments of the
// rule passed in. Grounded in
// DefaultSWRLAPIRule.processUnboundBuiltInArguments /
// processBodyNonBuiltInAtoms, which perform the equivalent partitioning and
// single left-to-right unbound-marking pass in place.
func Canonicalize(r Rule) Rule {
	var classAtoms, otherAtoms, builtInAtoms []atom.Atom

	for _, a := range r.Body {
		if a.IsBuiltIn() {
			builtInAtoms = append(builtInAtoms, a)
		} else if a.IsClassAtom() {
			classAtoms = append(classAtoms, a)
		} else {
			otherAtoms = append(otherAtoms, a)
		}
	}

	nonBuiltInUsed := make(map[string]struct{})
	for _, a := range classAtoms {
		collectVariableNames(a, nonBuiltInUsed)
	}
	for _, a := range otherAtoms {
		collectVariableNames(a, nonBuiltInUsed)
	}

	boundByBuiltIns := make(map[string]struct{})
	canonicalBuiltIns := make([]atom.Atom, 0, len(builtInAtoms))
	for _, a := range builtInAtoms {
		args := a.Arguments()
		newArgs := make([]atom.BuiltInArgument, len(args))
		for i, arg := range args {
			newArgs[i] = arg
			if arg.Kind() != atom.KindVariable {
				continue
			}
			name := arg.VariableName()
			_, usedElsewhere := nonBuiltInUsed[name]
			_, alreadyBound := boundByBuiltIns[name]
			if !usedElsewhere && !alreadyBound {
				newArgs[i] = atom.UnboundVariable(name)
				boundByBuiltIns[name] = struct{}{}
			}
		}
		canonicalBuiltIns = append(canonicalBuiltIns, a.WithArguments(newArgs))
	}

	body := make([]atom.Atom, 0, len(r.Body))
	body = append(body, classAtoms...)
	body = append(body, otherAtoms...)
	body = append(body, canonicalBuiltIns...)

	return Rule{Name: r.Name, Body: body, Head: r.Head}
}

func collectVariableNames(a atom.Atom, into map[string]struct{}) {
	for _, arg := range a.Arguments() {
		if arg.Kind() == atom.KindVariable {
			into[arg.VariableName()] = struct{}{}
		}
	}
}
