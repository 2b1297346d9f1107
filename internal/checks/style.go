package checks

import (
	"fmt"
	"strings"

	"github.com/fennwick/csconform/internal/rules"
	"github.com/fennwick/csconform/internal/syntax"
)

// checkNamespaceStyle rejects block-scoped namespace declarations in
// favor of file-scoped ones.
func checkNamespaceStyle(n *syntax.Node, ctx *rules.Context) []rules.Violation {
	if n.Raw != "namespace_declaration" {
		return nil
	}
	return violationWithFix(n,
		"use a file-scoped namespace declaration instead of a block-scoped one",
		"namespace <name>;")
}

// bracedBodies are the raw types that represent a braced body.
var bracedBodies = map[string]bool{
	"block":            true,
	"declaration_list": true,
	"switch_body":      true,
}

// checkBraceStyle enforces two things: an opening brace never shares a
// line with the preceding declaration or condition token, and
// single-statement control bodies are always braced.
func checkBraceStyle(n *syntax.Node, ctx *rules.Context) []rules.Violation {
	switch n.Kind {
	case syntax.KindNamespace, syntax.KindClass, syntax.KindInterface,
		syntax.KindStruct, syntax.KindMethod, syntax.KindConstructor:
		body := n.ChildOfRaw("declaration_list")
		if body == nil {
			body = n.ChildOfRaw("block")
		}
		if body == nil {
			// File-scoped namespaces and expression-bodied members
			// have no braced body.
			return nil
		}
		return sameLineBrace(ctx.Source, body)
	case syntax.KindStatement:
		return controlBraces(n, ctx.Source)
	default:
		return nil
	}
}

// sameLineBrace flags a body whose opening brace sits on the same line
// as the token before it. The preceding token is located by scanning the
// source backwards, so anonymous keywords like "else" and "do" count
// even though they never appear as tree nodes.
func sameLineBrace(src []byte, body *syntax.Node) []rules.Violation {
	i := body.Span.Start - 1
	for ; i >= 0; i-- {
		switch src[i] {
		case ' ', '\t', '\r':
			continue
		}
		break
	}
	if i < 0 || src[i] == '\n' {
		return nil
	}
	return []rules.Violation{{
		Span:    syntax.Span{Start: body.Span.Start, End: body.Span.Start + 1, StartPos: body.Span.StartPos, EndPos: body.Span.StartPos},
		Message: "opening brace must be placed on its own line",
	}}
}

func controlBraces(n *syntax.Node, src []byte) []rules.Violation {
	var out []rules.Violation
	for _, body := range controlBodies(n) {
		if body == nil {
			continue
		}
		if !bracedBodies[body.Raw] {
			// An else-if chain is conventional, not a missing brace.
			if body.Raw == "if_statement" {
				continue
			}
			out = append(out, rules.Violation{
				Span:    body.Span,
				Message: fmt.Sprintf("single-statement %s body must be enclosed in braces", strings.TrimSuffix(n.Raw, "_statement")),
			})
			continue
		}
		out = append(out, sameLineBrace(src, body)...)
	}
	return out
}

// controlBodies returns the statement bodies of a control-flow node.
func controlBodies(n *syntax.Node) []*syntax.Node {
	switch n.Raw {
	case "if_statement":
		if len(n.Children) < 2 {
			return nil
		}
		bodies := []*syntax.Node{n.Children[1]}
		if len(n.Children) > 2 {
			alt := n.Children[2]
			// Some grammar revisions wrap the else branch in its own node.
			if alt.Raw == "else_clause" && len(alt.Children) > 0 {
				alt = alt.Children[len(alt.Children)-1]
			}
			bodies = append(bodies, alt)
		}
		return bodies
	case "do_statement":
		if len(n.Children) == 0 {
			return nil
		}
		return []*syntax.Node{n.Children[0]}
	case "for_statement", "foreach_statement", "while_statement",
		"lock_statement", "using_statement", "switch_statement":
		if len(n.Children) == 0 {
			return nil
		}
		return []*syntax.Node{n.Children[len(n.Children)-1]}
	default:
		return nil
	}
}

// checkUsingPlacement runs on File nodes: using directives must precede
// the namespace declaration, and System usings must come before all
// other usings. Usings declared inside a namespace body form their own
// ordering scope.
func checkUsingPlacement(n *syntax.Node, ctx *rules.Context) []rules.Violation {
	src := ctx.Source
	var out []rules.Violation

	var sawNamespace bool
	var sawNonSystem bool
	for _, c := range n.Children {
		switch c.Kind {
		case syntax.KindNamespace:
			sawNamespace = true
			out = append(out, namespaceUsingOrder(c, src)...)
		case syntax.KindUsing:
			name := usingName(c, src)
			if sawNamespace {
				out = append(out, rules.Violation{
					Span:    c.Span,
					Message: fmt.Sprintf("using %s must precede the namespace declaration", name),
				})
				continue
			}
			if isSystemUsing(name) {
				if sawNonSystem {
					out = append(out, rules.Violation{
						Span:    c.Span,
						Message: fmt.Sprintf("using %s: System directives must come before all others", name),
					})
				}
			} else {
				sawNonSystem = true
			}
		}
	}
	return out
}

// namespaceUsingOrder checks the System-first ordering of usings
// declared inside a namespace body. Placing usings there is legal, so
// only their relative order is checked.
func namespaceUsingOrder(ns *syntax.Node, src []byte) []rules.Violation {
	scope := ns.Children
	if dl := ns.ChildOfRaw("declaration_list"); dl != nil {
		scope = dl.Children
	}

	var out []rules.Violation
	var sawNonSystem bool
	for _, c := range scope {
		switch c.Kind {
		case syntax.KindUsing:
			name := usingName(c, src)
			if isSystemUsing(name) {
				if sawNonSystem {
					out = append(out, rules.Violation{
						Span:    c.Span,
						Message: fmt.Sprintf("using %s: System directives must come before all others", name),
					})
				}
			} else {
				sawNonSystem = true
			}
		case syntax.KindNamespace:
			out = append(out, namespaceUsingOrder(c, src)...)
		}
	}
	return out
}

func usingName(n *syntax.Node, src []byte) string {
	for _, c := range n.Children {
		if c.Raw == "identifier" || c.Raw == "qualified_name" {
			return c.Text(src)
		}
	}
	return ""
}

func isSystemUsing(name string) bool {
	return name == "System" || strings.HasPrefix(name, "System.")
}
