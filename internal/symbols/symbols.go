// Package symbols builds the read-only cross-file symbol index. The
// index is constructed once per run, before parallel walking begins,
// and gives checks whole-compilation visibility (e.g. "does any class
// in the file set derive from this one?").
package symbols

import (
	"strings"

	"github.com/fennwick/csconform/internal/syntax"
)

// TypeDecl is one type declaration found anywhere in the file set.
type TypeDecl struct {
	Name      string
	Path      string
	Kind      syntax.Kind
	Modifiers []string
	// Bases holds the simple names of the declared base types. C# does
	// not syntactically distinguish a base class from an implemented
	// interface, so both appear here.
	Bases []string
	Span  syntax.Span
}

// Index is the immutable whole-compilation symbol table.
type Index struct {
	decls   map[string][]TypeDecl
	derived map[string]bool
}

// Build scans every tree for type declarations and derivation edges.
// Trees are visited in the given order so the index is deterministic.
func Build(trees []*syntax.Tree) *Index {
	ix := &Index{
		decls:   make(map[string][]TypeDecl),
		derived: make(map[string]bool),
	}
	for _, t := range trees {
		syntax.Walk(t.Root, func(n *syntax.Node) bool {
			switch n.Kind {
			case syntax.KindClass, syntax.KindInterface, syntax.KindStruct:
				name := syntax.DeclName(n, t.Source)
				if name == "" {
					return true
				}
				decl := TypeDecl{
					Name:      name,
					Path:      t.Path,
					Kind:      n.Kind,
					Modifiers: syntax.Modifiers(n, t.Source),
					Bases:     baseNames(n, t.Source),
					Span:      n.Span,
				}
				ix.decls[name] = append(ix.decls[name], decl)
				for _, b := range decl.Bases {
					ix.derived[b] = true
				}
			}
			return true
		})
	}
	return ix
}

// Declarations returns every declaration of the given type name across
// the file set. The returned slice must not be modified.
func (ix *Index) Declarations(name string) []TypeDecl {
	return ix.decls[name]
}

// HasSubclass reports whether any type in the file set lists name among
// its base types.
func (ix *Index) HasSubclass(name string) bool {
	return ix.derived[name]
}

func baseNames(n *syntax.Node, source []byte) []string {
	bl := n.ChildOfRaw("base_list")
	if bl == nil {
		return nil
	}
	var out []string
	for _, c := range bl.Children {
		if name := simpleTypeName(c.Text(source)); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// simpleTypeName reduces "Ns.Outer.Base<T>" to "Base".
func simpleTypeName(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '<'); i >= 0 {
		s = s[:i]
	}
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		s = s[i+1:]
	}
	return s
}
