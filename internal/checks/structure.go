package checks

import (
	"fmt"

	"github.com/fennwick/csconform/internal/rules"
	"github.com/fennwick/csconform/internal/syntax"
)

// checkSealedClass requires internal classes with no subclass anywhere
// in the compilation set to be sealed. This is the one cross-file rule:
// it consults the pre-built symbol index rather than the current tree.
func checkSealedClass(n *syntax.Node, ctx *rules.Context) []rules.Violation {
	if ctx.Index == nil {
		return nil
	}
	src := ctx.Source
	for _, m := range syntax.Modifiers(n, src) {
		switch m {
		case "sealed", "static", "abstract", "public", "protected", "private":
			return nil
		}
	}
	// Reaching here the class is explicitly internal, or carries no
	// access modifier at namespace level (internal by default). Nested
	// classes without a modifier are private; leave them alone.
	if !syntax.HasModifier(n, src, "internal") {
		parent := n.Parent()
		// Block-scoped namespaces interpose a declaration_list between
		// the namespace and its types.
		if parent != nil && parent.Raw == "declaration_list" {
			parent = parent.Parent()
		}
		if parent == nil || (parent.Kind != syntax.KindFile && parent.Kind != syntax.KindNamespace) {
			return nil
		}
	}

	id := declNameNode(n)
	if id == nil {
		return nil
	}
	name := id.Text(src)
	if ctx.Index.HasSubclass(name) {
		return nil
	}
	return []rules.Violation{{
		Span:    id.Span,
		Message: fmt.Sprintf("internal class %q has no subclasses and must be sealed", name),
		Fix:     "sealed",
	}}
}

// checkOneTypePerFile flags every top-level type declaration after the
// first one in a file.
func checkOneTypePerFile(n *syntax.Node, ctx *rules.Context) []rules.Violation {
	types := topLevelTypes(n)
	if len(types) <= 1 {
		return nil
	}
	src := ctx.Source
	var out []rules.Violation
	for _, extra := range types[1:] {
		out = append(out, rules.Violation{
			Span:    extra.Span,
			Message: fmt.Sprintf("type %q must be declared in its own file", declName(extra, src)),
		})
	}
	return out
}

func topLevelTypes(file *syntax.Node) []*syntax.Node {
	var out []*syntax.Node
	var collect func(n *syntax.Node)
	collect = func(n *syntax.Node) {
		for _, c := range n.Children {
			switch c.Kind {
			case syntax.KindClass, syntax.KindInterface, syntax.KindStruct:
				out = append(out, c)
			case syntax.KindNamespace:
				collect(c)
			default:
				// namespace bodies are declaration_list nodes
				if c.Raw == "declaration_list" {
					collect(c)
				}
			}
		}
	}
	collect(file)
	return out
}
