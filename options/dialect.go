package options

import "fmt"

// DialectEnum selects the target language grammar.
type DialectEnum int

const (
	DialectRust DialectEnum = iota
	DialectGo

	// DialectTotal is a constant that represents the total number of dialects defined
	DialectTotal = int(iota)
)

// String returns the dialect name as used on the command line and in manifests.
func (d DialectEnum) String() string {
	switch d {
	case DialectRust:
		return "rust"
	case DialectGo:
		return "go"
	default:
		return fmt.Sprintf("DialectEnum(%d)", int(d))
	}
}

// ParseDialect parses a dialect name. The empty string selects DialectRust.
func ParseDialect(s string) (DialectEnum, error) {
	switch s {
	case "", "rust":
		return DialectRust, nil
	case "go", "golang":
		return DialectGo, nil
	default:
		return 0, fmt.Errorf("unknown dialect %q: must be one of rust, go", s)
	}
}

// DialectNames returns the names accepted by ParseDialect for each dialect.
func DialectNames() []string {
	names := make([]string, 0, DialectTotal)
	for d := range DialectTotal {
		names = append(names, DialectEnum(d).String())
	}

	return names
}
