package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"text/template"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"literal-generator/internal/analyze"
	"literal-generator/internal/diagnostic"
	"literal-generator/internal/manifest"
	"literal-generator/lit"
	"literal-generator/options"
	"literal-generator/render"
	"literal-generator/uneval"
)

// Header is the first line of every generated file.
const Header = "Code generated by literal-generator. DO NOT EDIT."

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OutputDir receives the unformatted sidecar of a Go file that fails to
	// format. Empty disables sidecars.
	OutputDir string
	// Concurrency bounds the number of outputs rendered at once. Zero uses
	// GOMAXPROCS.
	Concurrency int
	// Logger receives progress messages. Nil disables logging.
	Logger *zap.Logger
	// Types, when set, checks the named types of every Go table against
	// their packages before rendering.
	Types TypeChecker
}

// TypeChecker reports named types of a literal tree that would not compile.
type TypeChecker interface {
	Check(ctx context.Context, n lit.Node) ([]analyze.Problem, error)
}

// TypeError carries the type problems of one table.
type TypeError struct {
	Problems []analyze.Problem
}

func (e *TypeError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.String()
	}

	return strings.Join(msgs, "; ")
}

// Generator renders manifest outputs into files.
type Generator struct {
	config GeneratorConfig
	log    *zap.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Generator{config: config, log: log}
}

// GeneratedFile represents a generated source file.
type GeneratedFile struct {
	// Filename is the path relative to the output directory, as given in the
	// manifest.
	Filename string
	// Content is the formatted source.
	Content []byte
}

// Digest is the xxhash of the content in hex, logged to tell generations
// apart.
func (f GeneratedFile) Digest() string {
	return fmt.Sprintf("%016x", xxhash.Sum64(f.Content))
}

type outputResult struct {
	file  *GeneratedFile
	diags diagnostic.Diagnostics
}

// Generate renders every output of a manifest. The manifest must be valid,
// see manifest.Validate. Files of outputs whose tables all serialized are
// returned in manifest order; failures are reported in the diagnostics. The
// error is only set when ctx is cancelled or the manifest configuration is
// broken.
func (g *Generator) Generate(ctx context.Context, mf *manifest.File) ([]GeneratedFile, *diagnostic.Diagnostics, error) {
	cfg, err := mf.Config()
	if err != nil {
		return nil, nil, fmt.Errorf("manifest configuration: %w", err)
	}

	results := make([]outputResult, len(mf.Outputs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.concurrency())

	for i := range mf.Outputs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i] = g.generateOutput(ctx, mf, &mf.Outputs[i], cfg)

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}

	var (
		files []GeneratedFile
		diags = &diagnostic.Diagnostics{}
	)

	for _, res := range results {
		diags.Merge(res.diags)

		if res.file != nil {
			files = append(files, *res.file)
		}
	}

	return files, diags, nil
}

func (g *Generator) concurrency() int {
	if g.config.Concurrency > 0 {
		return g.config.Concurrency
	}

	return runtime.GOMAXPROCS(0)
}

// generateOutput renders one file. Every table is attempted so that all
// failures of the file are reported together.
func (g *Generator) generateOutput(ctx context.Context, mf *manifest.File, out *manifest.Output, cfg options.Config) outputResult {
	var res outputResult

	r := render.New(cfg)
	decls := make([]uneval.Decl, 0, len(out.Tables))

	for i := range out.Tables {
		t := &out.Tables[i]

		d, err := g.generateTable(ctx, r, t, cfg)
		if err != nil {
			g.log.Warn("table failed",
				zap.String("file", out.File),
				zap.String("table", t.Name),
				zap.Error(err))

			var te *TypeError
			if errors.As(err, &te) {
				for _, p := range te.Problems {
					res.diags.Add(diagnostic.Diagnostic{
						Severity: diagnostic.DiagnosticError,
						Code:     p.Code,
						Message:  p.Message,
						Output:   out.File,
						Table:    t.Name,
						Path:     p.Path,
					})
				}
			} else {
				res.diags.Add(diagnostic.FromError(out.File, t.Name, err))
			}

			continue
		}

		decls = append(decls, d)
	}

	if res.diags.HasErrors() {
		res.diags.Add(diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticInfo,
			Code:     "output_skipped",
			Message:  "file not generated",
			Output:   out.File,
		})
		return res
	}

	content, err := g.fileContent(mf, out.File, decls, cfg)
	if err != nil {
		res.diags.Add(diagnostic.FromError(out.File, "", err))
		return res
	}

	res.file = &GeneratedFile{Filename: out.File, Content: content}

	g.log.Debug("output rendered",
		zap.String("file", out.File),
		zap.Int("tables", len(decls)),
		zap.Int("bytes", len(content)),
		zap.String("xxhash", res.file.Digest()))

	return res
}

func (g *Generator) generateTable(ctx context.Context, r *render.Renderer, t *manifest.Table, cfg options.Config) (uneval.Decl, error) {
	var (
		n   lit.Node
		err error
	)

	if t.IsDebug() {
		n, err = uneval.BuildDebug(t.Debug, cfg)
	} else {
		n, err = t.Value.Literal()
	}

	if err != nil {
		return uneval.Decl{}, err
	}

	if g.config.Types != nil && cfg.Dialect == options.DialectGo {
		if err := lit.Validate(n); err != nil {
			return uneval.Decl{}, err
		}

		problems, err := g.config.Types.Check(ctx, n)
		if err != nil {
			return uneval.Decl{}, fmt.Errorf("resolving types: %w", err)
		}

		if len(problems) > 0 {
			return uneval.Decl{}, &TypeError{Problems: problems}
		}
	}

	return uneval.Declare(r, t.Name, n, t.Type)
}

var rustFileTemplate = template.Must(template.New("rust").Parse(
	`// {{.Header}}
{{range .Decls}}
{{.}}
{{end}}`))

func (g *Generator) fileContent(mf *manifest.File, filename string, decls []uneval.Decl, cfg options.Config) ([]byte, error) {
	if cfg.Dialect == options.DialectGo {
		f := uneval.GoFile{
			Name:    filename,
			Header:  []string{Header},
			Package: mf.Package,
			Decls:   decls,
		}

		src, err := f.Source()
		if err != nil {
			if g.config.OutputDir != "" {
				_ = writeDebugUnformatted(g.config.OutputDir, filename, src)
			}

			return nil, err
		}

		return src, nil
	}

	data := struct {
		Header string
		Decls  []string
	}{Header: Header}

	for _, d := range decls {
		data.Decls = append(data.Decls, d.String())
	}

	var buf bytes.Buffer
	if err := rustFileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}
