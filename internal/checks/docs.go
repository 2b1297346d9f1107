package checks

import (
	"fmt"
	"strings"

	"github.com/fennwick/csconform/internal/rules"
	"github.com/fennwick/csconform/internal/syntax"
)

// checkPublicMemberDocs requires public declarations to carry an XML
// documentation comment in their leading trivia.
func checkPublicMemberDocs(n *syntax.Node, ctx *rules.Context) []rules.Violation {
	src := ctx.Source
	if !syntax.HasModifier(n, src, "public") {
		return nil
	}
	for _, tv := range n.Leading {
		if strings.HasPrefix(tv.Text, "///") {
			return nil
		}
	}
	id := declNameNode(n)
	if id == nil {
		return nil
	}
	return []rules.Violation{{
		Span:    id.Span,
		Message: fmt.Sprintf("public %s %q is missing an XML doc comment", n.Kind, id.Text(src)),
	}}
}
