package render

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"literal-generator/lit"
	"literal-generator/options"
)

// Import is a package required by a rendered Go expression.
type Import struct {
	Path  string
	Alias string
}

// Renderer renders literal trees with one configuration. Go import aliases are
// shared by every expression rendered with the same Renderer, so expressions
// placed in one file agree on them. It is not safe for concurrent use; create
// one per output file.
type Renderer struct {
	cfg   options.Config
	debug bool

	p       printer
	imports map[string]string // path -> alias
	aliases map[string]struct{}
}

// New returns a renderer for the configuration.
func New(cfg options.Config) *Renderer {
	return &Renderer{
		cfg:     cfg,
		imports: map[string]string{},
		aliases: map[string]struct{}{},
	}
}

// Config returns the configuration the renderer was created with.
func (r *Renderer) Config() options.Config {
	return r.cfg
}

// Render renders a single literal tree with the given configuration.
func Render(n lit.Node, cfg options.Config) (string, error) {
	return New(cfg).Render(n)
}

// Debug renders n in the host debug notation: rust syntax with every typed
// number suffixed, growable sequences as vec![...] and maps as {k: v}.
// For trees without Go type annotations Debug and reparse.Parse are inverse.
func Debug(n lit.Node) (string, error) {
	r := New(options.New(options.WithFlags(options.FlagTypeSuffixes | options.FlagVecMacro)))
	r.debug = true

	return r.Render(n)
}

// Render renders n. Imports needed by the result are added to Imports.
func (r *Renderer) Render(n lit.Node) (string, error) {
	r.p = printer{pretty: r.cfg.Flags.Has(options.FlagPretty)}

	var err error
	if r.cfg.Dialect == options.DialectGo {
		err = r.goNode(lit.Root(), n, goCtx{})
	} else {
		err = r.rustNode(lit.Root(), n)
	}

	if err != nil {
		return "", err
	}

	out := r.p.String()

	if r.cfg.Dialect == options.DialectGo {
		if err := checkGoExpr(out); err != nil {
			return "", err
		}
	}

	return out, nil
}

// Imports returns the packages referenced by the Go expressions rendered so
// far, sorted by path. Rust output never needs imports.
func (r *Renderer) Imports() []Import {
	out := make([]Import, 0, len(r.imports))
	for path, alias := range r.imports {
		out = append(out, Import{Path: path, Alias: alias})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })

	return out
}

// invariant reports a tree the renderer must never see.
func invariant(path lit.Path, n lit.Node) error {
	if u, ok := n.(*lit.Unsupported); ok {
		return lit.Internal("unsupported node reached the renderer at "+path.String(), errors.New(u.Reason))
	}

	return lit.Internal("nil node reached the renderer at "+path.String(), errors.New("nil node"))
}

type printer struct {
	sb     strings.Builder
	pretty bool
	indent int
}

func (p *printer) String() string {
	return p.sb.String()
}

func (p *printer) write(s string) {
	p.sb.WriteString(s)
}

func (p *printer) newline() {
	p.sb.WriteByte('\n')
	for range p.indent {
		p.sb.WriteByte('\t')
	}
}

// group writes open, n comma separated items and close. In single line mode
// pad puts a space inside the delimiters; in pretty mode every item goes on
// its own line with a trailing comma.
func (p *printer) group(open, close string, pad bool, n int, item func(i int) error) error {
	p.write(open)

	if n == 0 {
		p.write(close)
		return nil
	}

	if p.pretty {
		p.indent++

		for i := range n {
			p.newline()

			if err := item(i); err != nil {
				return err
			}

			p.write(",")
		}

		p.indent--
		p.newline()
		p.write(close)

		return nil
	}

	if pad {
		p.write(" ")
	}

	for i := range n {
		if i > 0 {
			p.write(", ")
		}

		if err := item(i); err != nil {
			return err
		}
	}

	if pad {
		p.write(" ")
	}

	p.write(close)

	return nil
}
