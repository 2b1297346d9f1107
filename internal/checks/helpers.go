// Package checks implements the executable predicates behind the rule
// catalogue, one file per concern. Every check is a pure function from
// (node, context) to violations and is bound to its rule id in
// catalogue.go.
package checks

import (
	"regexp"
	"strings"

	"github.com/fennwick/csconform/internal/rules"
	"github.com/fennwick/csconform/internal/syntax"
)

var (
	fieldNameRe  = regexp.MustCompile(`^_[a-z][A-Za-z0-9]*$`)
	pascalCaseRe = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
	ifacePrefRe  = regexp.MustCompile(`^I[A-Z]`)
)

// typeRaws are the grammar node types that can appear as a type in a
// declaration (return type, field type, parameter type).
var typeRaws = map[string]bool{
	"predefined_type": true,
	"identifier":      true,
	"generic_name":    true,
	"qualified_name":  true,
	"nullable_type":   true,
	"array_type":      true,
	"pointer_type":    true,
	"tuple_type":      true,
}

// valueTypeKeywords lists the predefined C# types that are value types;
// string and object are reference types and deliberately absent.
var valueTypeKeywords = map[string]bool{
	"bool": true, "byte": true, "sbyte": true, "char": true,
	"decimal": true, "double": true, "float": true,
	"int": true, "uint": true, "long": true, "ulong": true,
	"short": true, "ushort": true, "nint": true, "nuint": true,
}

func violation(n *syntax.Node, msg string) []rules.Violation {
	return []rules.Violation{{Span: n.Span, Message: msg}}
}

func violationWithFix(n *syntax.Node, msg, fix string) []rules.Violation {
	return []rules.Violation{{Span: n.Span, Message: msg, Fix: fix}}
}

// pathHasSegment reports whether any directory segment of a slash
// separated path equals one of the names, case-insensitively. The file
// name itself is not a segment.
func pathHasSegment(path string, names ...string) bool {
	segs := strings.Split(path, "/")
	if len(segs) > 0 {
		segs = segs[:len(segs)-1]
	}
	for _, s := range segs {
		for _, name := range names {
			if strings.EqualFold(s, name) {
				return true
			}
		}
	}
	return false
}

func underTestDir(path string) bool {
	return pathHasSegment(path, "test", "tests")
}

func underTestOrSampleDir(path string) bool {
	return pathHasSegment(path, "test", "tests", "sample", "samples")
}

// hasAccessModifier reports whether the declaration carries any of
// public/protected. Members without one default to private and types
// at namespace level default to internal.
func hasPublicOrProtected(n *syntax.Node, src []byte) bool {
	for _, m := range syntax.Modifiers(n, src) {
		if m == "public" || m == "protected" {
			return true
		}
	}
	return false
}

// isPrivateOrInternalMember approximates member accessibility: an
// explicit private/internal modifier, or no access modifier at all.
func isPrivateOrInternalMember(n *syntax.Node, src []byte) bool {
	return !hasPublicOrProtected(n, src)
}

// declNameNode returns the identifier node carrying a declaration's
// name. For methods and constructors that is the identifier directly
// before the parameter list; for properties and parameters the last
// identifier child (the first may be the type).
func declNameNode(n *syntax.Node) *syntax.Node {
	switch n.Kind {
	case syntax.KindMethod, syntax.KindConstructor:
		var last *syntax.Node
		for _, c := range n.Children {
			if c.Raw == "parameter_list" {
				break
			}
			if c.Raw == "identifier" {
				last = c
			}
		}
		return last
	case syntax.KindProperty, syntax.KindParameter:
		var last *syntax.Node
		for _, c := range n.Children {
			if c.Raw == "identifier" {
				last = c
			}
		}
		return last
	default:
		return n.ChildOfRaw("identifier")
	}
}

func declName(n *syntax.Node, src []byte) string {
	if id := declNameNode(n); id != nil {
		return id.Text(src)
	}
	return ""
}

// returnTypeNode finds a method's declared return type: the last
// type-shaped child before the name identifier.
func returnTypeNode(n *syntax.Node) *syntax.Node {
	name := declNameNode(n)
	if name == nil {
		return nil
	}
	var last *syntax.Node
	for _, c := range n.Children {
		if c == name {
			break
		}
		if typeRaws[c.Raw] {
			last = c
		}
	}
	return last
}

// paramTypeNode finds a parameter's declared type node.
func paramTypeNode(n *syntax.Node) *syntax.Node {
	return returnTypeNode(n)
}

// typeSimpleName reduces a type node to its unqualified, non-generic
// name: "System.Threading.Tasks.Task<int>" becomes "Task".
func typeSimpleName(t *syntax.Node, src []byte) string {
	if t == nil {
		return ""
	}
	s := strings.TrimSpace(t.Text(src))
	if i := strings.IndexByte(s, '<'); i >= 0 {
		s = s[:i]
	}
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSuffix(s, "?")
}

var taskWrappers = map[string]bool{
	"Task":      true,
	"ValueTask": true,
}

// isTaskReturn reports whether a method's return type is a known
// asynchronous task wrapper.
func isTaskReturn(n *syntax.Node, src []byte) bool {
	return taskWrappers[typeSimpleName(returnTypeNode(n), src)]
}

// bodyBlock returns a declaration's block body, or nil for bodiless
// and expression-bodied declarations.
func bodyBlock(n *syntax.Node) *syntax.Node {
	return n.ChildOfRaw("block")
}

// attributeNames collects the attribute names declared directly on a
// node ("[Fact]" yields "Fact").
func attributeNames(n *syntax.Node, src []byte) []string {
	var out []string
	for _, al := range n.ChildrenOfKind(syntax.KindAttribute) {
		for _, a := range al.ChildrenOfRaw("attribute") {
			for _, c := range a.Children {
				if c.Raw == "identifier" || c.Raw == "qualified_name" || c.Raw == "generic_name" {
					out = append(out, typeSimpleName(c, src))
					break
				}
			}
		}
	}
	return out
}

// containsThrow reports whether the subtree raises anywhere.
func containsThrow(n *syntax.Node) bool {
	found := false
	syntax.Walk(n, func(c *syntax.Node) bool {
		if c.Raw == "throw_statement" || c.Raw == "throw_expression" {
			found = true
			return false
		}
		return true
	})
	return found
}
