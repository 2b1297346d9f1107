package checks

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fennwick/csconform/internal/rules"
	"github.com/fennwick/csconform/internal/syntax"
)

var (
	arrangeRe = regexp.MustCompile(`\bArrange\b`)
	actRe     = regexp.MustCompile(`\bAct\b`)
	assertRe  = regexp.MustCompile(`\bAssert\b`)
)

// testAttributes are the attribute names that mark a method as a test
// across the common C# test frameworks.
var testAttributes = map[string]bool{
	"Fact":           true,
	"Theory":         true,
	"Test":           true,
	"TestMethod":     true,
	"TestCase":       true,
	"TestCaseSource": true,
}

// checkTestClassSuffix requires classes under a test directory to end
// with Test or Tests.
func checkTestClassSuffix(n *syntax.Node, ctx *rules.Context) []rules.Violation {
	if !underTestDir(ctx.Path) {
		return nil
	}
	id := declNameNode(n)
	if id == nil {
		return nil
	}
	name := id.Text(ctx.Source)
	if strings.HasSuffix(name, "Test") || strings.HasSuffix(name, "Tests") {
		return nil
	}
	return []rules.Violation{{
		Span:    id.Span,
		Message: fmt.Sprintf("test class %q must end with Test or Tests", name),
	}}
}

// checkTestMethodAAA requires test methods in test classes to structure
// their bodies with Arrange, then Act (or Act & Assert), then an
// optional Assert comment, in that order.
func checkTestMethodAAA(n *syntax.Node, ctx *rules.Context) []rules.Violation {
	src := ctx.Source
	cls := n.Ancestor(syntax.KindClass)
	if cls == nil || !isTestClass(cls, ctx) {
		return nil
	}
	if !hasTestAttribute(n, src) {
		return nil
	}
	body := bodyBlock(n)
	if body == nil {
		return nil
	}

	id := declNameNode(n)
	if id == nil {
		return nil
	}
	name := id.Text(src)

	comments := ctx.Tree.CommentsWithin(body.Span)
	arrange, act := -1, -1
	for i, c := range comments {
		switch {
		case arrange < 0 && arrangeRe.MatchString(c.Text):
			arrange = i
		case arrange >= 0 && act < 0 && actRe.MatchString(c.Text):
			act = i
		case act < 0 && assertRe.MatchString(c.Text):
			return []rules.Violation{{
				Span:    id.Span,
				Message: fmt.Sprintf("test method %q: Assert comment appears before Act", name),
			}}
		}
	}
	if arrange < 0 {
		return []rules.Violation{{
			Span:    id.Span,
			Message: fmt.Sprintf("test method %q is missing an Arrange comment", name),
		}}
	}
	if act < 0 {
		return []rules.Violation{{
			Span:    id.Span,
			Message: fmt.Sprintf("test method %q is missing an Act comment after Arrange", name),
		}}
	}
	return nil
}

func isTestClass(cls *syntax.Node, ctx *rules.Context) bool {
	if !underTestDir(ctx.Path) {
		return false
	}
	name := declName(cls, ctx.Source)
	return strings.HasSuffix(name, "Test") || strings.HasSuffix(name, "Tests")
}

func hasTestAttribute(n *syntax.Node, src []byte) bool {
	for _, name := range attributeNames(n, src) {
		if testAttributes[name] {
			return true
		}
	}
	return false
}
