// Package parse adapts tree-sitter C# parse trees into the engine's
// syntax tree model.
package parse

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"

	"github.com/fennwick/csconform/internal/syntax"
)

// kindByType maps tree-sitter C# grammar node types to engine kinds.
// Anything unmapped becomes KindOther with its raw type preserved.
var kindByType = map[string]syntax.Kind{
	"compilation_unit":                  syntax.KindFile,
	"using_directive":                   syntax.KindUsing,
	"namespace_declaration":             syntax.KindNamespace,
	"file_scoped_namespace_declaration": syntax.KindNamespace,
	"class_declaration":                 syntax.KindClass,
	"record_declaration":                syntax.KindClass,
	"interface_declaration":             syntax.KindInterface,
	"struct_declaration":                syntax.KindStruct,
	"method_declaration":                syntax.KindMethod,
	"local_function_statement":          syntax.KindMethod,
	"constructor_declaration":           syntax.KindConstructor,
	"field_declaration":                 syntax.KindField,
	"property_declaration":              syntax.KindProperty,
	"parameter":                         syntax.KindParameter,
	"attribute_list":                    syntax.KindAttribute,
	"block":                             syntax.KindBlock,
	"if_statement":                      syntax.KindStatement,
	"for_statement":                     syntax.KindStatement,
	"foreach_statement":                 syntax.KindStatement,
	"while_statement":                   syntax.KindStatement,
	"do_statement":                      syntax.KindStatement,
	"switch_statement":                  syntax.KindStatement,
	"lock_statement":                    syntax.KindStatement,
	"using_statement":                   syntax.KindStatement,
	"await_expression":                  syntax.KindAwait,
	"invocation_expression":             syntax.KindInvocation,
}

// NewParser creates a fresh C# parser. Tree-sitter parsers are not
// thread-safe; each goroutine must use its own.
func NewParser() *sitter.Parser {
	p := sitter.NewParser()
	p.SetLanguage(csharp.GetLanguage())
	return p
}

// File parses one C# source file into the engine's tree model.
// filePath is used only for Tree.Path and should be repo-relative.
func File(ctx context.Context, parser *sitter.Parser, source []byte, filePath string) (*syntax.Tree, error) {
	st, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filePath, err)
	}
	defer st.Close()

	root := st.RootNode()
	if root == nil {
		return nil, fmt.Errorf("parsing %s: no root node", filePath)
	}

	tree := &syntax.Tree{Path: filePath, Source: source}
	tree.Root = convert(root, source, tree)
	return tree, nil
}

func convert(n *sitter.Node, source []byte, tree *syntax.Tree) *syntax.Node {
	out := &syntax.Node{
		Kind: kindFor(n.Type()),
		Raw:  n.Type(),
		Span: spanOf(n),
	}

	var pending []syntax.Trivia
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "comment" {
			tv := syntax.Trivia{
				Text: string(source[child.StartByte():child.EndByte()]),
				Span: spanOf(child),
			}
			tree.Comments = append(tree.Comments, tv)
			pending = append(pending, tv)
			continue
		}
		converted := convert(child, source, tree)
		converted.Leading = pending
		pending = nil
		converted.SetParent(out)
		out.Children = append(out.Children, converted)
	}
	// Comments trailing the last sibling stay only in tree.Comments.
	return out
}

func kindFor(rawType string) syntax.Kind {
	if k, ok := kindByType[rawType]; ok {
		return k
	}
	return syntax.KindOther
}

func spanOf(n *sitter.Node) syntax.Span {
	return syntax.Span{
		Start: int(n.StartByte()),
		End:   int(n.EndByte()),
		StartPos: syntax.Position{
			Line:   int(n.StartPoint().Row) + 1,
			Column: int(n.StartPoint().Column),
		},
		EndPos: syntax.Position{
			Line:   int(n.EndPoint().Row) + 1,
			Column: int(n.EndPoint().Column),
		},
	}
}
