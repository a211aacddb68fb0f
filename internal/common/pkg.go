package common

import (
	"path"
	"strings"
)

// UnknownStr is the name of an out-of-range enum value.
const UnknownStr = "unknown"

// PkgAlias returns the package alias for a given package path: its last
// element, skipping a major version suffix ("gopkg.in/yaml.v3" and
// "github.com/x/y/v2" give "yaml" and "y"), with characters that are not
// valid in identifiers replaced by underscores.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if isMajorVersion(base) {
		if parent := path.Dir(pkgPath); parent != "." && parent != "/" {
			base = path.Base(parent)
		}
	}

	if name, _, ok := strings.Cut(base, ".v"); ok && name != "" {
		base = name
	}

	return sanitizeIdent(base)
}

func isMajorVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}

	for _, c := range s[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

func sanitizeIdent(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c != '_' && !('a' <= c && c <= 'z') && !('A' <= c && c <= 'Z') && !('0' <= c && c <= '9') {
			b[i] = '_'
		}
	}

	if len(b) > 0 && '0' <= b[0] && b[0] <= '9' {
		return "_" + string(b)
	}

	return string(b)
}
