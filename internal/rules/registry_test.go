package rules

import (
	"errors"
	"testing"

	"github.com/fennwick/csconform/internal/syntax"
)

func noop(n *syntax.Node, ctx *Context) []Violation { return nil }

func def(id string, kinds ...syntax.Kind) *Definition {
	return &Definition{
		ID:             id,
		Severity:       SeverityWarning,
		Kinds:          kinds,
		DefaultEnabled: true,
		Check:          noop,
	}
}

func TestRegisterDuplicateID(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	if err := r.Register(def("CS0001", syntax.KindFile)); err != nil {
		t.Fatal(err)
	}
	err := r.Register(def("CS0001", syntax.KindClass))
	if !errors.Is(err, ErrDuplicateRuleID) {
		t.Fatalf("err = %v, want ErrDuplicateRuleID", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	if err := r.Register(&Definition{Check: noop, Kinds: []syntax.Kind{syntax.KindFile}}); err == nil {
		t.Error("missing id accepted")
	}
	if err := r.Register(&Definition{ID: "X1", Kinds: []syntax.Kind{syntax.KindFile}}); err == nil {
		t.Error("missing check accepted")
	}
	if err := r.Register(&Definition{ID: "X2", Check: noop}); err == nil {
		t.Error("missing kinds accepted")
	}
}

func TestRulesForRegistrationOrder(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	for _, id := range []string{"B2", "A1", "C3"} {
		if err := r.Register(def(id, syntax.KindClass)); err != nil {
			t.Fatal(err)
		}
	}
	got := r.RulesFor(syntax.KindClass)
	if len(got) != 3 || got[0].ID != "B2" || got[1].ID != "A1" || got[2].ID != "C3" {
		t.Fatalf("dispatch order not registration order: %v", ids(got))
	}
	if len(r.RulesFor(syntax.KindMethod)) != 0 {
		t.Error("unsubscribed kind returned rules")
	}
}

func TestLookupAndHas(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	if err := r.Register(def("CS0005", syntax.KindMethod, syntax.KindConstructor)); err != nil {
		t.Fatal(err)
	}
	if d, ok := r.Lookup("CS0005"); !ok || d.ID != "CS0005" {
		t.Error("Lookup failed for registered id")
	}
	if _, ok := r.Lookup("CS9999"); ok {
		t.Error("Lookup succeeded for unknown id")
	}
	if !r.Has("CS0005") || r.Has("CS9999") {
		t.Error("Has answered wrong")
	}
	if len(r.All()) != 1 {
		t.Errorf("All() = %d entries", len(r.All()))
	}
}

func TestMultiKindSubscription(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	if err := r.Register(def("CS0005", syntax.KindMethod, syntax.KindConstructor)); err != nil {
		t.Fatal(err)
	}
	if len(r.RulesFor(syntax.KindMethod)) != 1 || len(r.RulesFor(syntax.KindConstructor)) != 1 {
		t.Error("rule not dispatched to every subscribed kind")
	}
}

func TestParseSeverity(t *testing.T) {
	t.Parallel()
	for s, want := range map[string]Severity{"info": SeverityInfo, "warning": SeverityWarning, "error": SeverityError} {
		got, err := ParseSeverity(s)
		if err != nil || got != want {
			t.Errorf("ParseSeverity(%q) = %v, %v", s, got, err)
		}
	}
	if _, err := ParseSeverity("fatal"); err == nil {
		t.Error("unknown severity accepted")
	}
}

func ids(defs []*Definition) []string {
	out := make([]string, len(defs))
	for i, d := range defs {
		out[i] = d.ID
	}
	return out
}
