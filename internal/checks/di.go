package checks

import (
	"fmt"

	"github.com/fennwick/csconform/internal/rules"
	"github.com/fennwick/csconform/internal/syntax"
)

// concreteAllowlist lists framework types that are conventionally
// injected or passed by value and never worth abstracting.
var concreteAllowlist = map[string]bool{
	"CancellationToken": true,
	"Guid":              true,
	"DateTime":          true,
	"DateTimeOffset":    true,
	"TimeSpan":          true,
	"Uri":               true,
	"Task":              true,
	"String":            true,
	"Object":            true,
}

// checkCtorDependencies flags constructor parameters typed as concrete
// classes (PascalCase, not I-prefixed, not allowlisted). Name-shape
// matching only: a struct parameter looks identical to a class one
// here.
func checkCtorDependencies(n *syntax.Node, ctx *rules.Context) []rules.Violation {
	src := ctx.Source
	pl := n.ChildOfRaw("parameter_list")
	if pl == nil {
		return nil
	}

	var out []rules.Violation
	for _, p := range pl.ChildrenOfKind(syntax.KindParameter) {
		t := paramTypeNode(p)
		if t == nil || (t.Raw != "identifier" && t.Raw != "generic_name" && t.Raw != "qualified_name") {
			continue
		}
		name := typeSimpleName(t, src)
		if !pascalCaseRe.MatchString(name) || ifacePrefRe.MatchString(name) || concreteAllowlist[name] {
			continue
		}
		out = append(out, rules.Violation{
			Span:    t.Span,
			Message: fmt.Sprintf("constructor depends on concrete type %q; inject an abstraction instead", name),
		})
	}
	return out
}

// checkReadonlyInjectedField requires private fields holding injected
// dependencies (interface-typed by the I-prefix convention) to be
// readonly.
func checkReadonlyInjectedField(n *syntax.Node, ctx *rules.Context) []rules.Violation {
	src := ctx.Source
	if !isPrivateOrInternalMember(n, src) {
		return nil
	}
	if syntax.HasModifier(n, src, "readonly") || syntax.HasModifier(n, src, "const") || syntax.HasModifier(n, src, "static") {
		return nil
	}
	t := fieldTypeNode(n)
	if t == nil {
		return nil
	}
	name := typeSimpleName(t, src)
	if !ifacePrefRe.MatchString(name) {
		return nil
	}

	var out []rules.Violation
	for _, id := range fieldDeclarators(n) {
		out = append(out, rules.Violation{
			Span:    id.Span,
			Message: fmt.Sprintf("injected dependency field %q must be readonly", id.Text(src)),
			Fix:     "readonly",
		})
	}
	return out
}

func fieldTypeNode(n *syntax.Node) *syntax.Node {
	decl := n.ChildOfRaw("variable_declaration")
	if decl == nil || len(decl.Children) == 0 {
		return nil
	}
	t := decl.Children[0]
	if !typeRaws[t.Raw] {
		return nil
	}
	return t
}
