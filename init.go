package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fennwick/csconform/internal/config"
)

// runInit implements the `csconform init` subcommand, which scaffolds a
// default configuration file.
func runInit(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("csconform init", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var dryRun bool
	var force bool
	fs.BoolVar(&dryRun, "dry-run", false, "print the config without writing the file")
	fs.BoolVar(&force, "force", false, "overwrite an existing config file")

	fs.Usage = func() {
		fmt.Fprintf(stderr, `Usage: csconform init [flags] [path]

Write a starter configuration file with the default header literals and
a few commented-out override examples. path defaults to ./%s.

Flags:
`, config.DefaultPath)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	path := config.DefaultPath
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}

	content := defaultConfigFile()

	if dryRun {
		_, _ = fmt.Fprint(stdout, content)
		return nil
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use -force to overwrite)", path)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	_, _ = fmt.Fprintf(stderr, "wrote %s\n", path)
	return nil
}

// defaultConfigFile renders the starter configuration. It is a pure
// function for easy testing.
func defaultConfigFile() string {
	out := "# csconform configuration\n\n# Exact comment lines every file must open with.\nheader:\n"
	for _, line := range config.Default().Header {
		out += fmt.Sprintf("  - %q\n", line)
	}
	out += `
# Per-rule overrides. Run "csconform -rules" for the full catalogue.
#rules:
#  CS0007:
#    enabled: false
#  CS0012:
#    severity: error

# Suppress rules for matching paths (gitignore-style globs).
#exclude:
#  - rule: CS0009
#    paths: ["vendored/**"]

# Parallel file walks; 0 means one per CPU.
workers: 0
`
	return out
}
