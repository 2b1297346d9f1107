// Package walk drives rule evaluation: a depth-first walker dispatches
// every registered rule at every node of a tree, and Run fans walks out
// across files.
package walk

import (
	"fmt"
	"time"

	"github.com/fennwick/csconform/internal/rules"
	"github.com/fennwick/csconform/internal/syntax"
)

// Session is the mutable state of one file's walk. It is created at
// walk start, owned by a single goroutine, and discarded (or merged)
// at walk end.
type Session struct {
	Path         string
	Violations   []rules.Violation
	NodesVisited int
	// RuleTime accumulates evaluation time per rule id, for diagnosing
	// slow rules.
	RuleTime map[string]time.Duration
}

// Walker evaluates a registry's rules over trees. It is read-only and
// safe to share across goroutines.
type Walker struct {
	reg *rules.Registry
}

// New creates a walker over a finished registry.
func New(reg *rules.Registry) *Walker {
	return &Walker{reg: reg}
}

// File walks one tree depth-first in pre-order and returns the session.
// Coverage is exhaustive: no rule can prune subtrees, and leaf nodes
// are visited like any other. A check that panics is converted into an
// internal-error violation naming the rule, and the walk continues.
func (w *Walker) File(tree *syntax.Tree, ctx *rules.Context) *Session {
	s := &Session{Path: tree.Path, RuleTime: make(map[string]time.Duration)}
	w.visit(tree.Root, ctx, s)
	return s
}

func (w *Walker) visit(n *syntax.Node, ctx *rules.Context, s *Session) {
	s.NodesVisited++
	for _, def := range w.reg.RulesFor(n.Kind) {
		if !ctx.Config.Enabled(def.ID, def.DefaultEnabled) {
			continue
		}
		start := time.Now()
		vs := w.eval(def, n, ctx)
		s.RuleTime[def.ID] += time.Since(start)

		severity := effectiveSeverity(def, ctx)
		for _, v := range vs {
			// The walker owns attribution; checks only fill span,
			// message, and fix.
			if v.RuleID == "" {
				v.RuleID = def.ID
			}
			if v.RuleID == def.ID {
				v.Severity = severity
			}
			v.Path = ctx.Path
			s.Violations = append(s.Violations, v)
		}
	}
	for _, c := range n.Children {
		w.visit(c, ctx, s)
	}
}

// eval runs one check with a panic boundary.
func (w *Walker) eval(def *rules.Definition, n *syntax.Node, ctx *rules.Context) (vs []rules.Violation) {
	defer func() {
		if r := recover(); r != nil {
			vs = []rules.Violation{{
				RuleID:   rules.FaultID,
				Severity: rules.SeverityError,
				Span:     n.Span,
				Message:  fmt.Sprintf("rule %s failed at %s node: %v", def.ID, n.Kind, r),
			}}
		}
	}()
	return def.Check(n, ctx)
}

func effectiveSeverity(def *rules.Definition, ctx *rules.Context) rules.Severity {
	if o := ctx.Config.SeverityOverride(def.ID); o != "" {
		if sev, err := rules.ParseSeverity(o); err == nil {
			return sev
		}
	}
	return def.Severity
}
