// Package syntax defines the read-only syntax tree model the engine
// evaluates rules against. Trees are produced by an external parser
// (see internal/parse) and never mutated afterwards.
package syntax

// Kind classifies a node by its syntactic role. Rules subscribe to
// kinds; the raw grammar node type is preserved on Node.Raw for checks
// that need finer distinctions.
type Kind int

const (
	KindOther Kind = iota
	KindFile
	KindUsing
	KindNamespace
	KindClass
	KindInterface
	KindStruct
	KindMethod
	KindConstructor
	KindField
	KindProperty
	KindParameter
	KindAttribute
	KindBlock
	KindStatement
	KindAwait
	KindInvocation
)

var kindNames = map[Kind]string{
	KindOther:       "other",
	KindFile:        "file",
	KindUsing:       "using",
	KindNamespace:   "namespace",
	KindClass:       "class",
	KindInterface:   "interface",
	KindStruct:      "struct",
	KindMethod:      "method",
	KindConstructor: "constructor",
	KindField:       "field",
	KindProperty:    "property",
	KindParameter:   "parameter",
	KindAttribute:   "attribute",
	KindBlock:       "block",
	KindStatement:   "statement",
	KindAwait:       "await",
	KindInvocation:  "invocation",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Position is a line/column pair. Line is 1-based, Column is 0-based
// (matching what tree-sitter reports).
type Position struct {
	Line   int
	Column int
}

// Span locates a node or trivia token in its source file by byte
// offsets [Start, End) plus the corresponding positions.
type Span struct {
	Start    int
	End      int
	StartPos Position
	EndPos   Position
}

// Contains reports whether other lies entirely within s.
func (s Span) Contains(other Span) bool {
	return other.Start >= s.Start && other.End <= s.End
}

// Trivia is a comment token attached to a node. Text includes the
// comment delimiters.
type Trivia struct {
	Text string
	Span Span
}

// Node is one node of a parsed tree. Nodes are built once by the
// parser adapter and treated as immutable by everything downstream.
type Node struct {
	Kind Kind
	// Raw is the grammar node type, e.g. "class_declaration".
	Raw  string
	Span Span
	// Leading holds the comment trivia that immediately precedes this
	// node among its siblings.
	Leading  []Trivia
	Children []*Node

	parent *Node
}

// Parent returns the enclosing node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// SetParent wires the back-reference. Only the parser adapter calls it.
func (n *Node) SetParent(p *Node) { n.parent = p }

// Text returns the source text covered by the node's span.
func (n *Node) Text(source []byte) string {
	if n.Span.Start < 0 || n.Span.End > len(source) || n.Span.Start > n.Span.End {
		return ""
	}
	return string(source[n.Span.Start:n.Span.End])
}

// ChildOfRaw returns the first direct child with the given raw grammar
// type, or nil.
func (n *Node) ChildOfRaw(raw string) *Node {
	for _, c := range n.Children {
		if c.Raw == raw {
			return c
		}
	}
	return nil
}

// ChildrenOfRaw returns all direct children with the given raw type.
func (n *Node) ChildrenOfRaw(raw string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Raw == raw {
			out = append(out, c)
		}
	}
	return out
}

// ChildrenOfKind returns all direct children with the given kind.
func (n *Node) ChildrenOfKind(k Kind) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}

// Ancestor walks up the parent chain and returns the nearest ancestor
// with the given kind, or nil.
func (n *Node) Ancestor(k Kind) *Node {
	for p := n.parent; p != nil; p = p.parent {
		if p.Kind == k {
			return p
		}
	}
	return nil
}

// Tree is one parsed source unit: the File root plus the file-level
// metadata checks need.
type Tree struct {
	// Path is the repo-relative, slash-separated file path.
	Path   string
	Source []byte
	Root   *Node
	// Comments lists every comment in the file in source order,
	// independent of which node it is attached to.
	Comments []Trivia
}

// CommentsWithin returns the file's comments whose spans fall entirely
// inside span, in source order.
func (t *Tree) CommentsWithin(span Span) []Trivia {
	var out []Trivia
	for _, c := range t.Comments {
		if span.Contains(c.Span) {
			out = append(out, c)
		}
	}
	return out
}

// Modifiers returns the texts of a declaration's modifier children
// ("public", "static", "readonly", ...).
func Modifiers(n *Node, source []byte) []string {
	var out []string
	for _, c := range n.ChildrenOfRaw("modifier") {
		out = append(out, c.Text(source))
	}
	return out
}

// HasModifier reports whether the declaration carries the named modifier.
func HasModifier(n *Node, source []byte, mod string) bool {
	for _, m := range Modifiers(n, source) {
		if m == mod {
			return true
		}
	}
	return false
}

// DeclName returns the identifier of a declaration node, or "" when no
// identifier child is present. Field declarations resolve through their
// first variable declarator.
func DeclName(n *Node, source []byte) string {
	switch n.Kind {
	case KindField:
		decl := n.ChildOfRaw("variable_declaration")
		if decl == nil {
			return ""
		}
		declarator := decl.ChildOfRaw("variable_declarator")
		if declarator == nil {
			return ""
		}
		if id := declarator.ChildOfRaw("identifier"); id != nil {
			return id.Text(source)
		}
		return ""
	default:
		if id := n.ChildOfRaw("identifier"); id != nil {
			return id.Text(source)
		}
		return ""
	}
}

// Walk visits the subtree rooted at n in pre-order. Returning false
// from fn stops the walk.
func Walk(n *Node, fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !Walk(c, fn) {
			return false
		}
	}
	return true
}
