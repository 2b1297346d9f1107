// csconform checks a C# source tree against a declarative compliance
// rule catalogue and prints located diagnostics.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fennwick/csconform/internal/checks"
	"github.com/fennwick/csconform/internal/collect"
	"github.com/fennwick/csconform/internal/config"
	"github.com/fennwick/csconform/internal/discover"
	"github.com/fennwick/csconform/internal/parse"
	"github.com/fennwick/csconform/internal/report"
	"github.com/fennwick/csconform/internal/rules"
	"github.com/fennwick/csconform/internal/symbols"
	"github.com/fennwick/csconform/internal/walk"
)

var version = "dev"

func main() {
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "init" {
		if err := runInit(args[1:], os.Stdout, os.Stderr); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := run(context.Background(), args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("csconform", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath  string
		format      string
		workers     int
		listRules   bool
		noColor     bool
		showStats   bool
		showVersion bool
	)

	fs.StringVar(&configPath, "config", "", "configuration file path (default "+config.DefaultPath+")")
	fs.StringVar(&format, "format", "text", "output format: text or json")
	fs.IntVar(&workers, "workers", 0, "number of parallel file walks (0 = GOMAXPROCS)")
	fs.BoolVar(&listRules, "rules", false, "list registered rules and exit")
	fs.BoolVar(&noColor, "no-color", false, "disable colored output")
	fs.BoolVar(&showStats, "stats", false, "print per-rule timing to stderr")
	fs.BoolVar(&showVersion, "V", false, "show version and exit")
	fs.BoolVar(&showVersion, "version", false, "show version and exit")

	if err := fs.Parse(reorderArgs(args)); err != nil {
		return err
	}

	if showVersion {
		_, _ = fmt.Fprintf(stdout, "csconform %s\n", version)
		return nil
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("unsupported format %q", format)
	}

	// Registration errors (duplicate ids, malformed definitions) are
	// fatal before anything is walked.
	reg := rules.NewRegistry()
	if err := checks.Register(reg); err != nil {
		return err
	}

	if listRules {
		printRules(stdout, reg)
		return nil
	}

	root := "."
	if fs.NArg() > 0 {
		root = fs.Arg(0)
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving root: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("root path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", root)
	}

	cfg, err := loadConfig(root, configPath)
	if err != nil {
		return err
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if err := cfg.Validate(reg.Has, severityKnown); err != nil {
		return err
	}

	files, err := discover.Files(root)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no C# files found under %s", root)
	}

	trees, failures, err := parse.Files(ctx, root, files, cfg.Workers)
	if err != nil {
		return fmt.Errorf("parsing: %w", err)
	}

	// Cross-file visibility is built once, before parallel walking.
	index := symbols.Build(trees)

	res, stats, err := walk.Run(ctx, trees, failures, reg, index, cfg)
	if err != nil {
		return fmt.Errorf("walking: %w", err)
	}

	if showStats {
		printStats(stderr, stats)
	}

	if err := writeReport(stdout, res, format, noColor); err != nil {
		return err
	}
	if !res.Pass() {
		return fmt.Errorf("%d violation(s) at error severity", res.Errors())
	}
	return nil
}

func loadConfig(root, configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath, true)
	}
	return config.Load(filepath.Join(root, config.DefaultPath), false)
}

func severityKnown(s string) bool {
	_, err := rules.ParseSeverity(s)
	return err == nil
}

func writeReport(w io.Writer, res *collect.Result, format string, noColor bool) error {
	if format == "json" {
		return report.JSON(w, res)
	}
	return report.Text(w, res, !noColor)
}

func printRules(w io.Writer, reg *rules.Registry) {
	for _, d := range reg.All() {
		enabled := "enabled"
		if !d.DefaultEnabled {
			enabled = "disabled"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.ID, d.Category, d.Severity, enabled, d.Summary)
	}
}

func printStats(w io.Writer, stats walk.Stats) {
	_, _ = fmt.Fprintf(w, "walked %d file(s), %d node(s)\n", stats.Files, stats.NodesVisited)
	ids := make([]string, 0, len(stats.RuleTime))
	for id := range stats.RuleTime {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return stats.RuleTime[ids[i]] > stats.RuleTime[ids[j]] })
	for _, id := range ids {
		_, _ = fmt.Fprintf(w, "  %s\t%s\n", id, stats.RuleTime[id].Round(time.Microsecond))
	}
}

// flagsWithValue lists flags that take a value argument.
var flagsWithValue = map[string]bool{
	"-config": true, "--config": true,
	"-format": true, "--format": true,
	"-workers": true, "--workers": true,
}

// reorderArgs moves positional arguments after all flags so Go's flag
// package can parse them correctly (it stops at the first non-flag arg).
func reorderArgs(args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if len(args[i]) > 0 && args[i][0] == '-' {
			flags = append(flags, args[i])
			if flagsWithValue[args[i]] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, args[i])
		}
	}
	return append(flags, positional...)
}
