package checks

import (
	"fmt"

	"github.com/fennwick/csconform/internal/rules"
	"github.com/fennwick/csconform/internal/syntax"
)

// checkHeader verifies that a file opens with the configured header
// comment lines, exactly and in order, before any non-trivia token.
// Violations are anchored at offset 0.
func checkHeader(n *syntax.Node, ctx *rules.Context) []rules.Violation {
	want := ctx.Config.Header
	if len(want) == 0 {
		return nil
	}

	// Header comments must precede the first syntactic token.
	limit := len(ctx.Source) + 1
	if len(n.Children) > 0 {
		limit = n.Children[0].Span.Start
	}

	// Mismatches are always anchored at the very start of the file.
	anchor := syntax.Span{StartPos: syntax.Position{Line: 1}, EndPos: syntax.Position{Line: 1}}

	comments := ctx.Tree.Comments
	for i, line := range want {
		if i >= len(comments) || comments[i].Span.Start >= limit {
			return []rules.Violation{{
				Span:    anchor,
				Message: fmt.Sprintf("missing file header comment line %d: %s", i+1, line),
			}}
		}
		if comments[i].Text != line {
			return []rules.Violation{{
				Span:    anchor,
				Message: fmt.Sprintf("file header comment line %d is %q, want %q", i+1, comments[i].Text, line),
			}}
		}
	}
	return nil
}
