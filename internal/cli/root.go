package cli

import (
	"github.com/spf13/cobra"

	"literal-generator/options"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Dialect string
	NoColor bool
}

// dialect returns the dialect flag and whether it was given explicitly.
func (o *RootOptions) dialect(cmd *cobra.Command) (options.DialectEnum, bool, error) {
	d, err := options.ParseDialect(o.Dialect)
	if err != nil {
		return 0, false, err
	}

	return d, cmd.Flags().Changed("dialect"), nil
}

// NewRootCommand creates the root command of the CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "literal-generator",
		Short: "Serialize values into constant literal tables",
		Long: `literal-generator turns values into source text that, once compiled,
reconstructs an equal value as a constant.

Tables are listed in a YAML manifest, either as debug renderings of values
or as YAML values, and rendered into Rust or Go source files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, _, err := opts.dialect(cmd)
			return err
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Dialect, "dialect", "rust", "output dialect (rust|go), overrides the manifest")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable colored output")

	cmd.AddCommand(NewGenCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewParseCommand(opts))

	return cmd
}
