package rules

import (
	"errors"
	"fmt"

	"github.com/fennwick/csconform/internal/syntax"
)

// ErrDuplicateRuleID is returned when a rule id is registered twice.
var ErrDuplicateRuleID = errors.New("duplicate rule id")

// Registry holds every registered rule, organized by the node kinds it
// subscribes to. It is built once at startup and read-only during
// walks; per-kind order is registration order so diagnostic ordering
// stays deterministic.
type Registry struct {
	byKind map[syntax.Kind][]*Definition
	byID   map[string]*Definition
	order  []*Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byKind: make(map[syntax.Kind][]*Definition),
		byID:   make(map[string]*Definition),
	}
}

// Register adds a rule definition. It fails on a duplicate id or on a
// definition missing its id, check, or kind subscriptions.
func (r *Registry) Register(d *Definition) error {
	if d.ID == "" {
		return errors.New("rule definition missing id")
	}
	if d.Check == nil {
		return fmt.Errorf("rule %s: missing check", d.ID)
	}
	if len(d.Kinds) == 0 {
		return fmt.Errorf("rule %s: no node kinds subscribed", d.ID)
	}
	if _, exists := r.byID[d.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateRuleID, d.ID)
	}
	r.byID[d.ID] = d
	r.order = append(r.order, d)
	for _, k := range d.Kinds {
		r.byKind[k] = append(r.byKind[k], d)
	}
	return nil
}

// RulesFor returns the rules subscribed to the given node kind, in
// registration order. The returned slice must not be modified.
func (r *Registry) RulesFor(k syntax.Kind) []*Definition {
	return r.byKind[k]
}

// All enumerates every registered rule in registration order.
func (r *Registry) All() []*Definition {
	return r.order
}

// Lookup finds a rule by id.
func (r *Registry) Lookup(id string) (*Definition, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// Has reports whether the id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}
