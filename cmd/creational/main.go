// Command creational runs the creational pattern demos and prints their
// output to stdout.
//
// Usage:
//
//	creational [-config catalog.yaml] [-pattern builder,prototype] [-no-banner]
//
// Flags override values loaded from -config.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/creational/catalog"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("creational: ")

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("%v", err)
	}
}

// run parses args, resolves the catalog configuration and runs the demos.
// Usage and flag errors are printed to stderr; -h prints usage and succeeds.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("creational", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "path to a YAML catalog config")
		patterns   = fs.String("pattern", "", "comma-separated patterns to run (default: all)")
		noBanner   = fs.Bool("no-banner", false, "omit the == pattern == header before each demo")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("flags: %w", err)
	}

	cfg := catalog.DefaultConfig()
	if *configPath != "" {
		loaded, err := catalog.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *patterns != "" {
		selected, err := catalog.ParsePatternList(*patterns)
		if err != nil {
			return fmt.Errorf("-pattern: %w", err)
		}
		cfg.Patterns = selected
	}
	if *noBanner {
		cfg.Banner = false
	}

	return catalog.Run(stdout, cfg)
}
