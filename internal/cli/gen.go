package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"literal-generator/internal/analyze"
	"literal-generator/internal/diagnostic"
	"literal-generator/internal/gen"
	"literal-generator/internal/manifest"
)

// ErrGenerationFailed is returned when a manifest has error diagnostics.
var ErrGenerationFailed = errors.New("generation failed")

// ManifestOptions holds the flags shared by gen and check.
type ManifestOptions struct {
	ManifestPath string
	OutputDir    string
	Concurrency  int
	ResolveTypes bool
}

// GenOptions holds options for the gen command.
type GenOptions struct {
	*RootOptions
	ManifestOptions
}

// NewGenCommand creates the gen command.
func NewGenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate literal tables from a manifest",
		Long: `Render every output of a manifest and write the files into the output
directory. Files whose content is unchanged are not rewritten.

An output with any failing table is not written; all failures are reported.`,
		Example: `  literal-generator gen -m tables.yaml -o src/tables`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, opts)
		},
	}

	addManifestFlags(cmd, &opts.ManifestOptions)

	return cmd
}

func addManifestFlags(cmd *cobra.Command, opts *ManifestOptions) {
	cmd.Flags().StringVarP(&opts.ManifestPath, "manifest", "m", "", "path to the manifest (required)")
	cmd.Flags().StringVarP(&opts.OutputDir, "out", "o", ".", "output directory")
	cmd.Flags().IntVar(&opts.Concurrency, "jobs", 0, "outputs rendered in parallel, 0 uses GOMAXPROCS")
	cmd.Flags().BoolVar(&opts.ResolveTypes, "resolve-types", false,
		"check Go type and field names against their packages, resolved from the manifest directory")

	_ = cmd.MarkFlagRequired("manifest")
}

func runGen(cmd *cobra.Command, opts *GenOptions) error {
	p := NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.NoColor)
	log := newLogger(cmd.ErrOrStderr(), opts.Verbose)

	defer func() { _ = log.Sync() }()

	files, diags, err := generate(cmd, opts.RootOptions, &opts.ManifestOptions, opts.OutputDir, log)
	p.Diagnostics(diags, opts.Verbose)

	if err != nil {
		return err
	}

	res, err := gen.WriteFiles(files, opts.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to write files: %w", err)
	}

	for _, name := range res.Written {
		fmt.Fprintf(p.Out, "wrote %s\n", name)
	}

	for _, name := range res.Unchanged {
		log.Debug("unchanged", zap.String("file", name))
	}

	if diags.HasErrors() {
		return ErrGenerationFailed
	}

	return nil
}

// generate loads, validates and renders a manifest. Sidecars of unformatted
// files go to sidecarDir unless it is empty. The returned diagnostics are
// never nil.
func generate(
	cmd *cobra.Command,
	root *RootOptions,
	opts *ManifestOptions,
	sidecarDir string,
	log *zap.Logger,
) ([]gen.GeneratedFile, *diagnostic.Diagnostics, error) {
	diags := &diagnostic.Diagnostics{}

	mf, err := manifest.LoadFile(opts.ManifestPath)
	if err != nil {
		return nil, diags, err
	}

	if _, explicit, err := root.dialect(cmd); err != nil {
		return nil, diags, err
	} else if explicit {
		mf.Dialect = root.Dialect
	}

	log.Debug("loaded manifest",
		zap.String("path", opts.ManifestPath),
		zap.String("dialect", mf.Dialect),
		zap.Int("outputs", len(mf.Outputs)),
	)

	diags = manifest.Validate(mf)
	if diags.HasErrors() {
		return nil, diags, ErrGenerationFailed
	}

	config := gen.GeneratorConfig{
		OutputDir:   sidecarDir,
		Concurrency: opts.Concurrency,
		Logger:      log,
	}

	if opts.ResolveTypes {
		config.Types = analyze.NewResolver(filepath.Dir(opts.ManifestPath), mf.ImportPath)
	}

	files, genDiags, err := gen.NewGenerator(config).Generate(cmd.Context(), mf)
	if err != nil {
		return nil, diags, err
	}

	diags.Merge(*genDiags)

	return files, diags, nil
}
