package checks

import (
	"fmt"
	"strings"

	"github.com/fennwick/csconform/internal/rules"
	"github.com/fennwick/csconform/internal/syntax"
)

// checkAsyncSuffix requires methods returning a task wrapper to carry
// the Async suffix.
func checkAsyncSuffix(n *syntax.Node, ctx *rules.Context) []rules.Violation {
	src := ctx.Source
	if !isTaskReturn(n, src) {
		return nil
	}
	id := declNameNode(n)
	if id == nil {
		return nil
	}
	name := id.Text(src)
	if strings.HasSuffix(name, "Async") {
		return nil
	}
	return []rules.Violation{{
		Span:    id.Span,
		Message: fmt.Sprintf("method %q returns a task and must be suffixed Async", name),
		Fix:     name + "Async",
	}}
}

// checkAsyncVoid rejects async methods returning void; they cannot be
// awaited and their faults escape the caller.
func checkAsyncVoid(n *syntax.Node, ctx *rules.Context) []rules.Violation {
	src := ctx.Source
	if !syntax.HasModifier(n, src, "async") {
		return nil
	}
	ret := returnTypeNode(n)
	if ret == nil || ret.Raw != "predefined_type" || ret.Text(src) != "void" {
		return nil
	}
	id := declNameNode(n)
	if id == nil {
		return nil
	}
	return []rules.Violation{{
		Span:    id.Span,
		Message: fmt.Sprintf("async method %q must return Task instead of void", id.Text(src)),
	}}
}

// checkConfigureAwait requires every await outside test and sample
// directories to configure its awaiter without context capture.
func checkConfigureAwait(n *syntax.Node, ctx *rules.Context) []rules.Violation {
	if underTestOrSampleDir(ctx.Path) {
		return nil
	}
	if awaitedChainConfigures(n, ctx.Source) {
		return nil
	}
	return violationWithFix(n,
		"awaited call must use ConfigureAwait(false)",
		".ConfigureAwait(false)")
}

// awaitedChainConfigures reports whether the awaited expression chain
// contains a ConfigureAwait(false) call.
func awaitedChainConfigures(await *syntax.Node, src []byte) bool {
	found := false
	syntax.Walk(await, func(c *syntax.Node) bool {
		if c.Kind != syntax.KindInvocation {
			return true
		}
		member := c.ChildOfRaw("member_access_expression")
		if member == nil {
			return true
		}
		ids := member.ChildrenOfRaw("identifier")
		if len(ids) == 0 {
			return true
		}
		if ids[len(ids)-1].Text(src) != "ConfigureAwait" {
			return true
		}
		if args := c.ChildOfRaw("argument_list"); args != nil && strings.Contains(args.Text(src), "false") {
			found = true
			return false
		}
		return true
	})
	return found
}

// ioTokenType is the type every async method doing I/O-shaped work must
// accept as its last parameter.
const ioTokenType = "CancellationToken"

// checkCancellationToken requires async methods that perform I/O-shaped
// calls (any invocation of an Async-suffixed member) to accept a
// CancellationToken as their last parameter.
func checkCancellationToken(n *syntax.Node, ctx *rules.Context) []rules.Violation {
	src := ctx.Source
	if !syntax.HasModifier(n, src, "async") {
		return nil
	}
	body := bodyBlock(n)
	if body == nil || !performsIOShapedCall(body, src) {
		return nil
	}
	if lastParamIsToken(n, src) {
		return nil
	}
	id := declNameNode(n)
	if id == nil {
		return nil
	}
	return []rules.Violation{{
		Span:    id.Span,
		Message: fmt.Sprintf("async method %q performs I/O and must accept a %s as its last parameter", id.Text(src), ioTokenType),
	}}
}

func performsIOShapedCall(body *syntax.Node, src []byte) bool {
	found := false
	syntax.Walk(body, func(c *syntax.Node) bool {
		if c.Kind != syntax.KindInvocation {
			return true
		}
		if strings.HasSuffix(calleeName(c, src), "Async") {
			found = true
			return false
		}
		return true
	})
	return found
}

// calleeName returns the rightmost identifier of an invocation target.
func calleeName(inv *syntax.Node, src []byte) string {
	target := inv.ChildOfRaw("member_access_expression")
	if target == nil {
		if id := inv.ChildOfRaw("identifier"); id != nil {
			return id.Text(src)
		}
		return ""
	}
	ids := target.ChildrenOfRaw("identifier")
	if len(ids) == 0 {
		return ""
	}
	return ids[len(ids)-1].Text(src)
}

func lastParamIsToken(n *syntax.Node, src []byte) bool {
	pl := n.ChildOfRaw("parameter_list")
	if pl == nil {
		return false
	}
	params := pl.ChildrenOfKind(syntax.KindParameter)
	if len(params) == 0 {
		return false
	}
	last := params[len(params)-1]
	return typeSimpleName(paramTypeNode(last), src) == ioTokenType
}
