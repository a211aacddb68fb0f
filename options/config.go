package options

// DefaultMaxDepth bounds the nesting depth of a serialized value.
const DefaultMaxDepth = 512

// Config holds the settings of one serialization request.
type Config struct {
	// Dialect is the target grammar.
	Dialect DialectEnum
	// Flags tune the rendering, see FlagEnum.
	Flags FlagEnum
	// MaxDepth bounds value nesting; deeper values fail cleanly instead of
	// exhausting the stack.
	MaxDepth int
	// PkgPath is the import path of the package the output is generated into.
	// Go types of this package are written unqualified.
	PkgPath string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Dialect:  DialectRust,
		MaxDepth: DefaultMaxDepth,
	}
}

// Option customizes a Config.
type Option func(*Config)

// New builds a Config from the defaults and the given options.
func New(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}

	return cfg
}

func WithDialect(d DialectEnum) Option {
	return func(c *Config) { c.Dialect = d }
}

// WithFlags adds flags to the configuration.
func WithFlags(flags FlagEnum) Option {
	return func(c *Config) { c.Flags |= flags }
}

func WithMaxDepth(depth int) Option {
	return func(c *Config) { c.MaxDepth = depth }
}

// WithPackage sets the package path the output is generated into.
func WithPackage(pkgPath string) Option {
	return func(c *Config) { c.PkgPath = pkgPath }
}
