package syntax

import (
	"reflect"
	"testing"
)

func node(raw string, kind Kind, start, end int, children ...*Node) *Node {
	n := &Node{Kind: kind, Raw: raw, Span: Span{Start: start, End: end}, Children: children}
	for _, c := range children {
		c.SetParent(n)
	}
	return n
}

func TestSpanContains(t *testing.T) {
	t.Parallel()
	outer := Span{Start: 10, End: 50}
	for _, tc := range []struct {
		inner Span
		want  bool
	}{
		{Span{Start: 10, End: 50}, true},
		{Span{Start: 20, End: 30}, true},
		{Span{Start: 5, End: 30}, false},
		{Span{Start: 20, End: 60}, false},
	} {
		if got := outer.Contains(tc.inner); got != tc.want {
			t.Errorf("Contains(%+v) = %v, want %v", tc.inner, got, tc.want)
		}
	}
}

func TestWalkPreOrderAndStop(t *testing.T) {
	t.Parallel()
	root := node("compilation_unit", KindFile, 0, 100,
		node("class_declaration", KindClass, 0, 50,
			node("identifier", KindOther, 6, 12)),
		node("class_declaration", KindClass, 51, 99))

	var order []string
	Walk(root, func(n *Node) bool {
		order = append(order, n.Raw)
		return true
	})
	want := []string{"compilation_unit", "class_declaration", "identifier", "class_declaration"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}

	var visited int
	Walk(root, func(n *Node) bool {
		visited++
		return n.Kind != KindClass
	})
	if visited != 2 {
		t.Errorf("early stop visited %d nodes, want 2", visited)
	}
}

func TestAncestor(t *testing.T) {
	t.Parallel()
	id := node("identifier", KindOther, 20, 25)
	method := node("method_declaration", KindMethod, 15, 40, id)
	cls := node("class_declaration", KindClass, 0, 50, method)
	node("compilation_unit", KindFile, 0, 60, cls)

	if got := id.Ancestor(KindClass); got != cls {
		t.Error("Ancestor(KindClass) did not find the class")
	}
	if got := id.Ancestor(KindStruct); got != nil {
		t.Errorf("Ancestor(KindStruct) = %v, want nil", got)
	}
}

func TestModifiersAndText(t *testing.T) {
	t.Parallel()
	src := []byte("public static int Count;")
	decl := node("field_declaration", KindField, 0, 24,
		node("modifier", KindOther, 0, 6),
		node("modifier", KindOther, 7, 13))

	if got := Modifiers(decl, src); !reflect.DeepEqual(got, []string{"public", "static"}) {
		t.Errorf("Modifiers = %v", got)
	}
	if !HasModifier(decl, src, "static") || HasModifier(decl, src, "readonly") {
		t.Error("HasModifier answered wrong")
	}
	bad := &Node{Span: Span{Start: 10, End: 99}}
	if bad.Text(src) != "" {
		t.Error("out-of-range span must yield empty text")
	}
}

func TestCommentsWithin(t *testing.T) {
	t.Parallel()
	tree := &Tree{Comments: []Trivia{
		{Text: "// a", Span: Span{Start: 0, End: 4}},
		{Text: "// b", Span: Span{Start: 10, End: 14}},
		{Text: "// c", Span: Span{Start: 30, End: 34}},
	}}
	got := tree.CommentsWithin(Span{Start: 5, End: 20})
	if len(got) != 1 || got[0].Text != "// b" {
		t.Errorf("CommentsWithin = %+v", got)
	}
}

func TestDeclNameField(t *testing.T) {
	t.Parallel()
	src := []byte("private int _count = 0;")
	id := node("identifier", KindOther, 12, 18)
	declarator := node("variable_declarator", KindOther, 12, 22, id)
	varDecl := node("variable_declaration", KindOther, 8, 22, declarator)
	field := node("field_declaration", KindField, 0, 23, varDecl)

	if got := DeclName(field, src); got != "_count" {
		t.Errorf("DeclName = %q", got)
	}
}
