// Command syndicate converts an Atom or RSS document read from a file or
// standard input.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/lysyi3m/syndication"
	"github.com/lysyi3m/syndication/app/cfg"
	"github.com/lysyi3m/syndication/app/report"
)

type options struct {
	To      string `short:"t" long:"to" default:"yaml" choice:"atom" choice:"rss" choice:"yaml" description:"Output format"`
	Output  string `short:"o" long:"output" description:"Write to this file instead of standard output"`
	Debug   bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
	Version bool   `short:"v" long:"version" description:"Print version and exit"`

	Args struct {
		Input string `positional-arg-name:"FILE" description:"Input document, '-' or omitted for standard input"`
	} `positional-args:"yes"`
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "syndicate:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var opts options

	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return nil
		}
		return fmt.Errorf("failed to parse arguments: %w", err)
	}

	if opts.Version {
		_, err := fmt.Fprintln(stdout, cfg.GetVersion())
		return err
	}

	level := slog.LevelWarn
	if opts.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	data, err := readInput(opts.Args.Input, stdin)
	if err != nil {
		return err
	}

	feed, err := syndication.ParseBytes(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", inputName(opts.Args.Input), err)
	}
	slog.Debug("Parsed document", "format", feed.SourceFormat(), "entries", len(feed.Entries))

	out, err := render(feed, opts.To)
	if err != nil {
		return err
	}

	if opts.Output == "" {
		_, err = io.WriteString(stdout, out)
		return err
	}

	if err := os.WriteFile(opts.Output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return data, nil
}

func render(feed *syndication.Feed, to string) (string, error) {
	switch to {
	case "atom":
		return syndication.ToAtomString(feed), nil
	case "rss":
		return syndication.ToRSSString(feed), nil
	default:
		return report.New(feed).YAML()
	}
}

func inputName(path string) string {
	if path == "" || path == "-" {
		return "standard input"
	}
	return path
}
