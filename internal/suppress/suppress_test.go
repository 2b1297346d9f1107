package suppress

import (
	"context"
	"testing"

	"github.com/fennwick/csconform/internal/config"
	"github.com/fennwick/csconform/internal/parse"
	"github.com/fennwick/csconform/internal/rules"
	"github.com/fennwick/csconform/internal/syntax"
)

func parseTree(t *testing.T, path, source string) *syntax.Tree {
	t.Helper()
	tree, err := parse.File(context.Background(), parse.NewParser(), []byte(source), path)
	if err != nil {
		t.Fatalf("parse %s: %v", path, err)
	}
	return tree
}

func classSpan(t *testing.T, tree *syntax.Tree, name string) syntax.Span {
	t.Helper()
	var span syntax.Span
	found := false
	syntax.Walk(tree.Root, func(n *syntax.Node) bool {
		if n.Kind == syntax.KindClass && syntax.DeclName(n, tree.Source) == name {
			span, found = n.Span, true
			return false
		}
		return true
	})
	if !found {
		t.Fatalf("class %s not found", name)
	}
	return span
}

func at(rule, path string, span syntax.Span) rules.Violation {
	return rules.Violation{RuleID: rule, Path: path, Span: span}
}

func TestMarkerScopedToNextNode(t *testing.T) {
	t.Parallel()
	src := `namespace Acme;

// suppress-rule: CS0011
internal class Covered
{
}

internal class Uncovered
{
}
`
	tree := parseTree(t, "src/File.cs", src)
	fr := NewResolver(config.Default()).ForFile(tree)

	covered := classSpan(t, tree, "Covered")
	uncovered := classSpan(t, tree, "Uncovered")

	if !fr.Suppressed(at("CS0011", tree.Path, covered)) {
		t.Error("marker did not cover the annotated node")
	}
	if fr.Suppressed(at("CS0011", tree.Path, uncovered)) {
		t.Error("marker leaked past the annotated node")
	}
	if fr.Suppressed(at("CS0003", tree.Path, covered)) {
		t.Error("marker for CS0011 suppressed a different rule")
	}
}

func TestWildcardMarker(t *testing.T) {
	t.Parallel()
	src := `namespace Acme;

// suppress-rule: *
internal class Covered
{
}
`
	tree := parseTree(t, "src/File.cs", src)
	fr := NewResolver(config.Default()).ForFile(tree)
	span := classSpan(t, tree, "Covered")

	if !fr.Suppressed(at("CS0011", tree.Path, span)) || !fr.Suppressed(at("CS0003", tree.Path, span)) {
		t.Error("wildcard marker must suppress every rule within its span")
	}
}

func TestMarkerCoversInnerNodes(t *testing.T) {
	t.Parallel()
	src := `namespace Acme;

// suppress-rule: CS0003
internal class Widget
{
    private int BadName;
}
`
	tree := parseTree(t, "src/File.cs", src)
	fr := NewResolver(config.Default()).ForFile(tree)

	var field syntax.Span
	syntax.Walk(tree.Root, func(n *syntax.Node) bool {
		if n.Kind == syntax.KindField {
			field = n.Span
			return false
		}
		return true
	})
	if !fr.Suppressed(at("CS0003", tree.Path, field)) {
		t.Error("marker on a class must cover violations inside its body")
	}
}

func TestMalformedMarkerIgnored(t *testing.T) {
	t.Parallel()
	src := `namespace Acme;

// suppress rule: CS0011
internal class Widget
{
}
`
	tree := parseTree(t, "src/File.cs", src)
	fr := NewResolver(config.Default()).ForFile(tree)
	if fr.Suppressed(at("CS0011", tree.Path, classSpan(t, tree, "Widget"))) {
		t.Error("marker without the exact form must be inert")
	}
}

func TestConfigExclusionByGlob(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.Exclude = []config.Exclusion{
		{Rule: "CS0001", Paths: []string{"generated/", "*.Designer.cs"}},
		{Rule: "*", Paths: []string{"vendor/"}},
	}
	r := NewResolver(cfg)

	src := "namespace Acme;\n"
	span := syntax.Span{Start: 0, End: 1}

	cases := []struct {
		path string
		rule string
		want bool
	}{
		{"generated/Api.cs", "CS0001", true},
		{"generated/Api.cs", "CS0003", false},
		{"src/Form.Designer.cs", "CS0001", true},
		{"vendor/lib/Dep.cs", "CS0019", true},
		{"src/Api.cs", "CS0001", false},
	}
	for _, tc := range cases {
		fr := r.ForFile(parseTree(t, tc.path, src))
		if got := fr.Suppressed(at(tc.rule, tc.path, span)); got != tc.want {
			t.Errorf("%s %s: suppressed = %v, want %v", tc.path, tc.rule, got, tc.want)
		}
	}
}
