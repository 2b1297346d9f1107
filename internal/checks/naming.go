package checks

import (
	"fmt"

	"github.com/fennwick/csconform/internal/rules"
	"github.com/fennwick/csconform/internal/syntax"
)

// checkFieldNaming enforces _camelCase on private/internal non-static,
// non-const fields. Each declarator in a multi-declarator field is
// checked separately.
func checkFieldNaming(n *syntax.Node, ctx *rules.Context) []rules.Violation {
	src := ctx.Source
	if syntax.HasModifier(n, src, "const") || syntax.HasModifier(n, src, "static") {
		return nil
	}
	if !isPrivateOrInternalMember(n, src) {
		return nil
	}

	var out []rules.Violation
	for _, id := range fieldDeclarators(n) {
		name := id.Text(src)
		if !fieldNameRe.MatchString(name) {
			out = append(out, rules.Violation{
				Span:    id.Span,
				Message: fmt.Sprintf("private field %q must be named like _camelCase", name),
			})
		}
	}
	return out
}

// checkConstNaming enforces PascalCase on const fields.
func checkConstNaming(n *syntax.Node, ctx *rules.Context) []rules.Violation {
	src := ctx.Source
	if !syntax.HasModifier(n, src, "const") {
		return nil
	}

	var out []rules.Violation
	for _, id := range fieldDeclarators(n) {
		name := id.Text(src)
		if !pascalCaseRe.MatchString(name) {
			out = append(out, rules.Violation{
				Span:    id.Span,
				Message: fmt.Sprintf("const field %q must be PascalCase", name),
			})
		}
	}
	return out
}

// checkInterfacePrefix requires interface names to start with I
// followed by another capital.
func checkInterfacePrefix(n *syntax.Node, ctx *rules.Context) []rules.Violation {
	id := declNameNode(n)
	if id == nil {
		return nil
	}
	name := id.Text(ctx.Source)
	if ifacePrefRe.MatchString(name) {
		return nil
	}
	return []rules.Violation{{
		Span:    id.Span,
		Message: fmt.Sprintf("interface %q must be prefixed with I", name),
	}}
}

// checkPropertyNaming requires PascalCase property names.
func checkPropertyNaming(n *syntax.Node, ctx *rules.Context) []rules.Violation {
	id := declNameNode(n)
	if id == nil {
		return nil
	}
	name := id.Text(ctx.Source)
	if pascalCaseRe.MatchString(name) {
		return nil
	}
	return []rules.Violation{{
		Span:    id.Span,
		Message: fmt.Sprintf("property %q must be PascalCase", name),
	}}
}

// fieldDeclarators returns the identifier nodes of every declarator in
// a field declaration.
func fieldDeclarators(n *syntax.Node) []*syntax.Node {
	decl := n.ChildOfRaw("variable_declaration")
	if decl == nil {
		return nil
	}
	var out []*syntax.Node
	for _, d := range decl.ChildrenOfRaw("variable_declarator") {
		if id := d.ChildOfRaw("identifier"); id != nil {
			out = append(out, id)
		}
	}
	return out
}
