// Package collect accumulates violations across walks, deduplicates
// them, and orders them deterministically for reporting.
package collect

import (
	"sort"

	"github.com/fennwick/csconform/internal/rules"
)

type dedupeKey struct {
	rule  string
	path  string
	start int
	end   int
}

// Collector gathers the violations of one run. It is not safe for
// concurrent use; parallel walks merge their sessions into it
// sequentially.
type Collector struct {
	violations []rules.Violation
	suppressed []rules.Violation
	seen       map[dedupeKey]struct{}
}

// New creates an empty collector.
func New() *Collector {
	return &Collector{seen: make(map[dedupeKey]struct{})}
}

// Add records a violation, dropping exact (rule, file, span) duplicates.
func (c *Collector) Add(v rules.Violation) {
	key := dedupeKey{v.RuleID, v.Path, v.Span.Start, v.Span.End}
	if _, dup := c.seen[key]; dup {
		return
	}
	c.seen[key] = struct{}{}
	c.violations = append(c.violations, v)
}

// AddSuppressed records a violation on the audit side channel.
func (c *Collector) AddSuppressed(v rules.Violation) {
	c.suppressed = append(c.suppressed, v)
}

// Result is the finalized, ordered outcome of a run.
type Result struct {
	Violations []rules.Violation
	Suppressed []rules.Violation
}

// Result sorts both channels by (file, start offset, rule id) and
// returns the finalized outcome.
func (c *Collector) Result() *Result {
	sortViolations(c.violations)
	sortViolations(c.suppressed)
	return &Result{Violations: c.violations, Suppressed: c.suppressed}
}

// Pass reports the run verdict: true unless any reported violation has
// Error severity. Warnings and infos never fail a run.
func (r *Result) Pass() bool {
	for _, v := range r.Violations {
		if v.Severity == rules.SeverityError {
			return false
		}
	}
	return true
}

// Errors counts the reported violations at Error severity.
func (r *Result) Errors() int {
	n := 0
	for _, v := range r.Violations {
		if v.Severity == rules.SeverityError {
			n++
		}
	}
	return n
}

func sortViolations(vs []rules.Violation) {
	sort.SliceStable(vs, func(i, j int) bool {
		if vs[i].Path != vs[j].Path {
			return vs[i].Path < vs[j].Path
		}
		if vs[i].Span.Start != vs[j].Span.Start {
			return vs[i].Span.Start < vs[j].Span.Start
		}
		return vs[i].RuleID < vs[j].RuleID
	})
}
