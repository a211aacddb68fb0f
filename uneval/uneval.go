package uneval

import (
	"literal-generator/lit"
	"literal-generator/node"
	"literal-generator/options"
	"literal-generator/render"
	"literal-generator/reparse"
)

// Serialize renders v as a literal expression.
func Serialize(v any, opts ...options.Option) (string, error) {
	cfg := options.New(opts...)

	n, err := Build(v, cfg)
	if err != nil {
		return "", err
	}

	return render.Render(n, cfg)
}

// SerializeDebug reparses text written in the host debug notation and renders
// the recovered literal.
func SerializeDebug(text string, opts ...options.Option) (string, error) {
	cfg := options.New(opts...)

	n, err := BuildDebug(text, cfg)
	if err != nil {
		return "", err
	}

	return render.Render(n, cfg)
}

// Build describes v as a literal tree ready for rendering. A value containing
// a shape without a literal form fails with lit.ErrUnrepresentable.
func Build(v any, cfg options.Config) (lit.Node, error) {
	n, err := node.NewBuilder(cfg).Build(v)
	if err != nil {
		return nil, err
	}

	if err := lit.Validate(n); err != nil {
		return nil, err
	}

	return n, nil
}

// BuildDebug reparses debug text into a literal tree ready for rendering.
func BuildDebug(text string, cfg options.Config) (lit.Node, error) {
	n, err := reparse.ParseDepth(text, cfg.MaxDepth)
	if err != nil {
		return nil, err
	}

	if err := lit.Validate(n); err != nil {
		return nil, err
	}

	return n, nil
}
