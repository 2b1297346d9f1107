package walk

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fennwick/csconform/internal/collect"
	"github.com/fennwick/csconform/internal/config"
	"github.com/fennwick/csconform/internal/parse"
	"github.com/fennwick/csconform/internal/rules"
	"github.com/fennwick/csconform/internal/suppress"
	"github.com/fennwick/csconform/internal/symbols"
	"github.com/fennwick/csconform/internal/syntax"
)

// Stats summarizes a run for diagnostics.
type Stats struct {
	Files        int
	NodesVisited int
	RuleTime     map[string]time.Duration
}

// Run walks every tree against the registry and returns the collected,
// ordered result. Files run in parallel, one Session each; the registry,
// index, and configuration are shared read-only. Cancellation is
// checked between files: completed files keep their results, an
// in-progress walk is discarded, and the context error is returned
// alongside whatever completed.
func Run(ctx context.Context, trees []*syntax.Tree, failures []parse.Failure, reg *rules.Registry, idx *symbols.Index, cfg *config.Config) (*collect.Result, Stats, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(trees) {
		workers = max(len(trees), 1)
	}

	walker := New(reg)
	sessions := make([]*Session, len(trees))

	work := make(chan int)
	g, gctx := errgroup.WithContext(ctx)
	for range workers {
		g.Go(func() error {
			for i := range work {
				t := trees[i]
				fctx := &rules.Context{
					Path:   t.Path,
					Source: t.Source,
					Tree:   t,
					Index:  idx,
					Config: cfg,
				}
				sessions[i] = walker.File(t, fctx)
			}
			return nil
		})
	}
	g.Go(func() error {
		defer close(work)
		for i := range trees {
			// Cancellation is honored between files: an in-progress walk
			// finishes or is discarded, completed files keep their results.
			if err := gctx.Err(); err != nil {
				return err
			}
			select {
			case work <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})
	runErr := g.Wait()

	// Merge sequentially in file order; the collector re-sorts, so the
	// outcome is identical for any worker count.
	resolver := suppress.NewResolver(cfg)
	c := collect.New()
	stats := Stats{RuleTime: make(map[string]time.Duration)}

	for _, f := range failures {
		c.Add(rules.Violation{
			RuleID:   rules.ParseErrorID,
			Severity: rules.SeverityError,
			Path:     f.Path,
			Span:     syntax.Span{StartPos: syntax.Position{Line: 1}, EndPos: syntax.Position{Line: 1}},
			Message:  "source tree unavailable: " + f.Err.Error(),
		})
	}

	for i, s := range sessions {
		if s == nil {
			continue // discarded by cancellation
		}
		stats.Files++
		stats.NodesVisited += s.NodesVisited
		for id, d := range s.RuleTime {
			stats.RuleTime[id] += d
		}
		fr := resolver.ForFile(trees[i])
		for _, v := range s.Violations {
			if fr.Suppressed(v) {
				c.AddSuppressed(v)
			} else {
				c.Add(v)
			}
		}
	}

	return c.Result(), stats, runErr
}
