// Package report renders a run's collected result. Two writers are
// provided: a severity-colored text listing for terminals and a JSON
// encoding for tooling.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/fennwick/csconform/internal/collect"
	"github.com/fennwick/csconform/internal/rules"
)

var severityColors = map[rules.Severity]*color.Color{
	rules.SeverityError:   color.New(color.FgRed, color.Bold),
	rules.SeverityWarning: color.New(color.FgYellow),
	rules.SeverityInfo:    color.New(color.FgCyan),
}

// Text writes the violations as "path:line:col: severity [rule] message"
// lines followed by a summary and verdict.
func Text(w io.Writer, res *collect.Result, colored bool) error {
	for _, v := range res.Violations {
		sev := v.Severity.String()
		if colored {
			sev = severityColors[v.Severity].Sprint(sev)
		}
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s [%s] %s\n",
			v.Path, v.Span.StartPos.Line, v.Span.StartPos.Column+1, sev, v.RuleID, v.Message); err != nil {
			return err
		}
		if v.Fix != "" {
			if _, err := fmt.Fprintf(w, "\tsuggestion: %s\n", v.Fix); err != nil {
				return err
			}
		}
	}

	verdict := "PASS"
	if !res.Pass() {
		verdict = "FAIL"
	}
	_, err := fmt.Fprintf(w, "%d violation(s), %d error(s), %d suppressed: %s\n",
		len(res.Violations), res.Errors(), len(res.Suppressed), verdict)
	return err
}

type jsonViolation struct {
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Message  string `json:"message"`
	Fix      string `json:"fix,omitempty"`
}

type jsonReport struct {
	Pass       bool            `json:"pass"`
	Violations []jsonViolation `json:"violations"`
	Suppressed []jsonViolation `json:"suppressed"`
}

// JSON writes the full result, suppressed audit channel included.
func JSON(w io.Writer, res *collect.Result) error {
	out := jsonReport{
		Pass:       res.Pass(),
		Violations: toJSON(res.Violations),
		Suppressed: toJSON(res.Suppressed),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toJSON(vs []rules.Violation) []jsonViolation {
	out := make([]jsonViolation, 0, len(vs))
	for _, v := range vs {
		out = append(out, jsonViolation{
			Rule:     v.RuleID,
			Severity: v.Severity.String(),
			Path:     v.Path,
			Line:     v.Span.StartPos.Line,
			Column:   v.Span.StartPos.Column + 1,
			Start:    v.Span.Start,
			End:      v.Span.End,
			Message:  v.Message,
			Fix:      v.Fix,
		})
	}
	return out
}
