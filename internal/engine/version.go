package engine

import (
	"strconv"
	"strings"
)

// version is stamped at build time via:
//
//	go build -ldflags "-X github.com/username/goviet-ime/internal/engine.version=1.4.0"
//
// and falls back to "dev" for local builds, matching how small Go CLIs in
// the pack stamp their version (spec.md §4.H names get_version as a pure
// helper; this repo gives it a real value instead of a stub).
var version = "dev"

// GetVersion returns the running build's version string.
func GetVersion() string {
	return version
}

// VersionCompare compares two dotted numeric version strings component by
// component. Missing trailing components compare as 0, so "1.4" == "1.4.0".
// Returns -1, 0, or 1.
func VersionCompare(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		av := versionComponent(as, i)
		bv := versionComponent(bs, i)
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

func versionComponent(parts []string, i int) int {
	if i >= len(parts) {
		return 0
	}
	n, err := strconv.Atoi(parts[i])
	if err != nil {
		return 0
	}
	return n
}

// VersionHasUpdate reports whether latest is strictly newer than current.
func VersionHasUpdate(current, latest string) bool {
	return VersionCompare(current, latest) < 0
}
