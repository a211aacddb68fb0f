package options

import (
	"fmt"
	"maps"
	"slices"
)

type FlagEnum int

const (
	FlagPretty       FlagEnum = 1 << iota // multi-line output with tab indentation
	FlagTypeSuffixes                      // suffix every typed number, e.g. 1i32, 2.5f64
	FlagVecMacro                          // growable sequences as vec![...] instead of [...]
	FlagSamePackage                       // output lives in the values' package: unqualified names, unexported fields allowed

	FlagAll  FlagEnum = (1 << iota) - 1 // all flags combined
	FlagNone FlagEnum = 0               // no flags selected
)

// Has reports whether all bits of flag are set.
func (f FlagEnum) Has(flag FlagEnum) bool {
	return f&flag == flag
}

var flagNames = map[string]FlagEnum{
	"pretty":        FlagPretty,
	"type_suffixes": FlagTypeSuffixes,
	"vec_macro":     FlagVecMacro,
	"same_package":  FlagSamePackage,
}

// ParseFlags combines flags given by name, as used in manifests:
// pretty, type_suffixes, vec_macro and same_package.
func ParseFlags(names []string) (FlagEnum, error) {
	flags := FlagNone

	for _, name := range names {
		f, ok := flagNames[name]
		if !ok {
			return FlagNone, fmt.Errorf("unknown flag %q", name)
		}

		flags |= f
	}

	return flags, nil
}

// FlagNames returns the manifest names of all flags, sorted.
func FlagNames() []string {
	return slices.Sorted(maps.Keys(flagNames))
}
