// Command jsontool validates and reformats JSON documents, in the
// spirit of python -m json.tool.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	stderrors "github.com/cockroachdb/errors"

	"github.com/ucharmdev/ujson"
	"github.com/ucharmdev/ujson/internal/config"
)

// CLI defines the command-line interface
var CLI struct {
	Input    string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output   string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Indent   int    `help:"Number of spaces per indentation level." default:"-1"`
	SortKeys bool   `help:"Sort object keys byte-wise ascending." name:"sort-keys" short:"s"`
	Compact  bool   `help:"Emit compact single-line output." short:"c"`
	Validate bool   `help:"Validate the input and exit without writing output."`
	Config   string `help:"Path to config file. Defaults to the nearest .jsontool.yml." type:"path"`
	Version  bool   `help:"Show version information." short:"v"`
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("jsontool"),
		kong.Description("A tool to validate and reformat JSON"),
		kong.UsageOnError(),
	)

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jsontool version %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", userFriendlyError(err))
		os.Exit(1)
	}
}

// run executes the main program logic
func run() error {
	// 1. Resolve the formatting configuration
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	// 2. Read the input document
	data, err := readInput()
	if err != nil {
		return err
	}

	// 3. Decode, and re-encode with the configured format
	out, err := process(data, cfg, CLI.Validate)
	if err != nil {
		return err
	}
	if CLI.Validate {
		return nil
	}

	// 4. Write the result
	return writeOutput(out)
}

// resolveConfig loads the config file and applies CLI flag overrides.
func resolveConfig() (*config.Config, error) {
	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}

	cfg := config.NewConfig()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if CLI.Indent >= 0 {
		cfg.Indent = CLI.Indent
	}
	if CLI.SortKeys {
		cfg.SortKeys = true
	}
	if CLI.Compact {
		cfg.Compact = true
	}
	return cfg, nil
}

// process decodes data and re-encodes it according to cfg. In validate
// mode the re-encode is skipped.
func process(data []byte, cfg *config.Config, validateOnly bool) (string, error) {
	v, err := ujson.LoadBytes(data)
	if err != nil {
		return "", err
	}
	if validateOnly {
		return "", nil
	}

	opts := &ujson.EncodeOptions{SortKeys: cfg.SortKeys}
	if !cfg.Compact {
		opts.Indent = cfg.Indent
	}
	out, err := ujson.Dumps(v, opts)
	if err != nil {
		return "", err
	}
	if cfg.TrailingNewline {
		out += "\n"
	}
	return out, nil
}

// readInput reads JSON from file or stdin
func readInput() ([]byte, error) {
	if CLI.Input != "" {
		data, err := os.ReadFile(CLI.Input)
		if err != nil {
			return nil, stderrors.Wrapf(err, "failed to read input file %q", CLI.Input)
		}
		return data, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, stderrors.Wrap(err, "failed to read from stdin")
	}
	if len(data) == 0 {
		return nil, stderrors.New("no input provided: specify a file with -i or pipe JSON data to stdin")
	}
	return data, nil
}

// writeOutput writes the result to file or stdout
func writeOutput(out string) error {
	if CLI.Output != "" {
		if err := os.WriteFile(CLI.Output, []byte(out), 0644); err != nil {
			return stderrors.Wrapf(err, "failed to write to file %q", CLI.Output)
		}
		return nil
	}

	if _, err := io.WriteString(os.Stdout, out); err != nil {
		return stderrors.Wrap(err, "failed to write to stdout")
	}
	return nil
}

// userFriendlyError returns a readable message for the common failure
// kinds.
func userFriendlyError(err error) string {
	var decErr *ujson.DecodeError
	if stderrors.As(err, &decErr) {
		return fmt.Sprintf("Invalid JSON: %s", decErr.Msg)
	}
	var encErr *ujson.EncodeError
	if stderrors.As(err, &encErr) {
		return fmt.Sprintf("Cannot encode: %s", encErr.Msg)
	}
	return fmt.Sprintf("Error: %v", err)
}
