// Package suppress resolves inline suppression markers and
// configuration-level rule exclusions. Suppression is binary per
// violation: a suppressed violation is removed from the report but kept
// in a side channel for audit.
package suppress

import (
	"regexp"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/fennwick/csconform/internal/config"
	"github.com/fennwick/csconform/internal/rules"
	"github.com/fennwick/csconform/internal/syntax"
)

// markerRe matches the fixed inline marker form, e.g.
// "// suppress-rule: CS0003" or "// suppress-rule: *".
var markerRe = regexp.MustCompile(`^//\s*suppress-rule:\s*(\S+)\s*$`)

// Resolver holds the run-wide configuration exclusions, compiled once.
type Resolver struct {
	exclusions []exclusion
}

type exclusion struct {
	rule    string
	matcher *ignore.GitIgnore
}

// NewResolver compiles the configuration's exclusion globs. Glob
// semantics follow gitignore patterns.
func NewResolver(cfg *config.Config) *Resolver {
	r := &Resolver{}
	for _, ex := range cfg.Exclude {
		r.exclusions = append(r.exclusions, exclusion{
			rule:    ex.Rule,
			matcher: ignore.CompileIgnoreLines(ex.Paths...),
		})
	}
	return r
}

// span-scoped inline marker
type marker struct {
	rule string
	span syntax.Span
}

// FileResolver answers suppression queries for one file's walk.
type FileResolver struct {
	run     *Resolver
	path    string
	markers []marker
}

// ForFile scans a tree's leading trivia for inline markers. A marker
// suppresses its rule (or every rule, for "*") within the span of the
// syntactic node it precedes.
func (r *Resolver) ForFile(tree *syntax.Tree) *FileResolver {
	fr := &FileResolver{run: r, path: tree.Path}
	syntax.Walk(tree.Root, func(n *syntax.Node) bool {
		for _, tv := range n.Leading {
			m := markerRe.FindStringSubmatch(tv.Text)
			if m == nil {
				continue
			}
			fr.markers = append(fr.markers, marker{rule: m[1], span: n.Span})
		}
		return true
	})
	return fr
}

// Suppressed reports whether the violation is covered by an inline
// marker or a configuration exclusion.
func (fr *FileResolver) Suppressed(v rules.Violation) bool {
	for _, m := range fr.markers {
		if (m.rule == "*" || m.rule == v.RuleID) && m.span.Contains(v.Span) {
			return true
		}
	}
	for _, ex := range fr.run.exclusions {
		if (ex.rule == "*" || ex.rule == v.RuleID) && ex.matcher.MatchesPath(fr.path) {
			return true
		}
	}
	return false
}
