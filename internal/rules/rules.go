// Package rules defines the compliance rule model: severities,
// categories, rule definitions, violations, and the registry that
// dispatches rules by node kind.
package rules

import (
	"fmt"

	"github.com/fennwick/csconform/internal/config"
	"github.com/fennwick/csconform/internal/symbols"
	"github.com/fennwick/csconform/internal/syntax"
)

// Severity orders diagnostics by how much they matter. Only Error
// severity fails a run.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a configuration string into a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "info":
		return SeverityInfo, nil
	case "warning":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", s)
	}
}

// Category groups rules for listing and documentation.
type Category int

const (
	CategoryLicensing Category = iota
	CategoryNaming
	CategoryStructure
	CategoryDocumentation
	CategoryAsync
	CategoryNullability
	CategoryDIPattern
	CategoryStyle
)

func (c Category) String() string {
	switch c {
	case CategoryLicensing:
		return "licensing"
	case CategoryNaming:
		return "naming"
	case CategoryStructure:
		return "structure"
	case CategoryDocumentation:
		return "documentation"
	case CategoryAsync:
		return "async"
	case CategoryNullability:
		return "nullability"
	case CategoryDIPattern:
		return "di-pattern"
	case CategoryStyle:
		return "style"
	default:
		return "unknown"
	}
}

// Reserved rule ids for diagnostics the engine emits about itself.
const (
	// ParseErrorID marks a file whose tree could not be supplied.
	ParseErrorID = "internal:parse"
	// FaultID marks a rule whose check panicked during evaluation.
	FaultID = "internal:fault"
)

// Violation is one located, rule-attributed finding. Violations are
// created by checks during a walk and immutable once collected.
type Violation struct {
	RuleID   string
	Severity Severity
	Path     string
	Span     syntax.Span
	Message  string
	// Fix is advisory text; the engine never applies it.
	Fix string
}

// Context is the shared read-only state checks receive alongside each
// node. One Context serves one file's walk.
type Context struct {
	// Path is the repo-relative, slash-separated path of the current file.
	Path   string
	Source []byte
	Tree   *syntax.Tree
	// Index gives whole-compilation visibility for cross-file rules.
	Index *symbols.Index
	// Config carries header literals and other rule inputs.
	Config *config.Config
}

// CheckFunc evaluates one rule against one node. Checks must be pure:
// no tree mutation, no shared state, and they must terminate.
type CheckFunc func(n *syntax.Node, ctx *Context) []Violation

// Definition is the declarative record for one rule. The documentation
// fields (Summary, Success, Failure) are never evaluated; the
// executable logic is Check, bound to the same id.
type Definition struct {
	ID             string
	Category       Category
	Severity       Severity
	Kinds          []syntax.Kind
	DefaultEnabled bool
	Summary        string
	Success        string
	Failure        string
	Check          CheckFunc
}
