package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"literal-generator/internal/common"
	"literal-generator/internal/match"
	"literal-generator/options"
	"literal-generator/uneval"
)

// ParseOptions holds options for the parse command.
type ParseOptions struct {
	*RootOptions
	Flags    []string
	MaxDepth int
}

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ParseOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Convert debug text into a literal expression",
		Long: `Read the debug rendering of a value from a file, or from standard input
when the argument is "-" or missing, and print the equivalent literal
expression.`,
		Example: `  echo 'Point { x: 1, y: 2 }' | literal-generator parse
  literal-generator parse --dialect go --flag pretty value.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, opts, args)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Flags, "flag", nil, "render flags: pretty, type_suffixes, vec_macro, same_package")
	cmd.Flags().IntVar(&opts.MaxDepth, "max-depth", options.DefaultMaxDepth, "maximum nesting depth")

	return cmd
}

func runParse(cmd *cobra.Command, opts *ParseOptions, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	dialect, _, err := opts.dialect(cmd)
	if err != nil {
		return err
	}

	flags, err := parseFlags(opts.Flags)
	if err != nil {
		return err
	}

	out, err := uneval.SerializeDebug(string(text),
		options.WithDialect(dialect),
		options.WithFlags(flags),
		options.WithMaxDepth(opts.MaxDepth),
	)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

	return err
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	path, ok := common.First(args)
	if !ok || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return data, nil
}

// parseFlags is options.ParseFlags with a suggestion for a misspelled name.
func parseFlags(names []string) (options.FlagEnum, error) {
	flags := options.FlagNone

	for _, name := range names {
		f, err := options.ParseFlags([]string{name})
		if err != nil {
			return options.FlagNone, fmt.Errorf("%w%s", err, match.Hint(name, options.FlagNames()))
		}

		flags |= f
	}

	return flags, nil
}
