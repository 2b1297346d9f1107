package checks

import (
	"fmt"
	"strings"

	"github.com/fennwick/csconform/internal/rules"
	"github.com/fennwick/csconform/internal/syntax"
)

// checkNullGuard flags the manual "if (param == null) throw ..." shape
// at the top of a method or constructor body when a throw-if-null
// helper would do. This is a structural match, not a semantic proof:
// guards further down the body or written through other expressions are
// not recognized.
func checkNullGuard(n *syntax.Node, ctx *rules.Context) []rules.Violation {
	src := ctx.Source
	body := bodyBlock(n)
	if body == nil {
		return nil
	}
	params := referenceParamNames(n, src)
	if len(params) == 0 {
		return nil
	}

	var out []rules.Violation
	for _, stmt := range body.Children {
		if stmt.Raw != "if_statement" {
			break
		}
		name, ok := nullComparedIdentifier(stmt, src)
		if !ok {
			break
		}
		if !params[name] || !containsThrow(stmt) {
			continue
		}
		out = append(out, rules.Violation{
			Span:    stmt.Span,
			Message: fmt.Sprintf("manual null guard for parameter %q; use a throw-if-null helper", name),
			Fix:     fmt.Sprintf("ArgumentNullException.ThrowIfNull(%s);", name),
		})
	}
	return out
}

// referenceParamNames collects the names of parameters whose declared
// type is (syntactically) a reference type. Predefined value-type
// keywords are excluded; everything else, including string and object,
// counts. Value-typed structs passed by name are indistinguishable from
// classes at this level, a documented false-positive boundary.
func referenceParamNames(n *syntax.Node, src []byte) map[string]bool {
	pl := n.ChildOfRaw("parameter_list")
	if pl == nil {
		return nil
	}
	out := make(map[string]bool)
	for _, p := range pl.ChildrenOfKind(syntax.KindParameter) {
		t := paramTypeNode(p)
		if t == nil {
			continue
		}
		if t.Raw == "predefined_type" && valueTypeKeywords[t.Text(src)] {
			continue
		}
		if name := declName(p, src); name != "" {
			out[name] = true
		}
	}
	return out
}

// nullComparedIdentifier recognizes "x == null", "null == x" and
// "x is null" conditions and returns the compared identifier.
func nullComparedIdentifier(ifStmt *syntax.Node, src []byte) (string, bool) {
	if len(ifStmt.Children) == 0 {
		return "", false
	}
	cond := ifStmt.Children[0]
	switch cond.Raw {
	case "binary_expression":
		if len(cond.Children) != 2 {
			return "", false
		}
		left, right := cond.Children[0], cond.Children[1]
		op := strings.TrimSpace(string(src[left.Span.End:right.Span.Start]))
		if op != "==" {
			return "", false
		}
		if left.Raw == "identifier" && right.Raw == "null_literal" {
			return left.Text(src), true
		}
		if left.Raw == "null_literal" && right.Raw == "identifier" {
			return right.Text(src), true
		}
	case "is_pattern_expression":
		if len(cond.Children) != 2 {
			return "", false
		}
		left, pattern := cond.Children[0], cond.Children[1]
		if left.Raw == "identifier" && strings.TrimSpace(pattern.Text(src)) == "null" {
			return left.Text(src), true
		}
	}
	return "", false
}
