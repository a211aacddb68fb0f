package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"literal-generator/internal/gen"
)

// ErrStale is returned by check when generated files are out of date.
var ErrStale = errors.New("generated files are out of date")

// CheckOptions holds options for the check command.
type CheckOptions struct {
	*RootOptions
	ManifestOptions
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify generated tables are up to date",
		Long: `Render a manifest and compare the result with the files in the output
directory without writing anything. Differences are printed as line diffs and
the command fails if any file is missing or stale.`,
		Example: `  literal-generator check -m tables.yaml -o src/tables`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}

	addManifestFlags(cmd, &opts.ManifestOptions)

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	p := NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.NoColor)
	log := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	defer func() { _ = log.Sync() }()

	// Check must not leave sidecars behind.
	files, diags, err := generate(cmd, opts.RootOptions, &opts.ManifestOptions, "", log)
	p.Diagnostics(diags, opts.Verbose)

	if err != nil {
		return err
	}

	if diags.HasErrors() {
		return ErrGenerationFailed
	}

	stale, err := gen.Check(files, opts.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to check files: %w", err)
	}

	for _, s := range stale {
		if s.Missing {
			fmt.Fprintf(p.Out, "missing %s\n", s.Filename)
			continue
		}

		p.Diff(s.Filename, s.Diff)
	}

	if len(stale) > 0 {
		return fmt.Errorf("%w: %d of %d", ErrStale, len(stale), len(files))
	}

	fmt.Fprintf(p.Out, "%d files up to date\n", len(files))

	return nil
}
