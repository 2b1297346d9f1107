package parse

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/fennwick/csconform/internal/syntax"
)

// Failure records a file whose tree could not be supplied. The engine
// turns failures into file-level diagnostics; they never abort the run.
type Failure struct {
	Path string
	Err  error
}

// Files reads and parses the given repo-relative paths concurrently.
// Trees come back in the input order regardless of worker count; files
// that cannot be read or parsed are returned as Failures. The context
// cancels outstanding work between files.
func Files(ctx context.Context, root string, paths []string, workers int) ([]*syntax.Tree, []Failure, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	trees := make([]*syntax.Tree, len(paths))
	errs := make([]error, len(paths))

	work := make(chan int)
	g, gctx := errgroup.WithContext(ctx)

	for range workers {
		g.Go(func() error {
			// Each worker gets its own parser (not thread-safe).
			parser := NewParser()
			for idx := range work {
				rel := paths[idx]
				source, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
				if err != nil {
					errs[idx] = err
					continue
				}
				tree, err := File(gctx, parser, source, rel)
				if err != nil {
					errs[idx] = err
					continue
				}
				trees[idx] = tree
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(work)
		for i := range paths {
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

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var out []*syntax.Tree
	var failures []Failure
	for i, t := range trees {
		switch {
		case t != nil:
			out = append(out, t)
		case errs[i] != nil:
			failures = append(failures, Failure{Path: paths[i], Err: errs[i]})
		}
	}
	return out, failures, nil
}
