package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var versionPattern = regexp.MustCompile(`^\d+(\.\d+)*$`)

// ValidVersion reports whether v is a well-formed dotted numeric version
// string such as "114.0.5735.90". Ordering is only defined for valid
// versions; adapters drop anything else before it reaches the resolver.
func ValidVersion(v string) bool {
	return versionPattern.MatchString(v)
}

// Major returns the leading integer component of a version string.
// It returns 0 for malformed input, which adapters never let through.
func Major(v string) int {
	head, _, _ := strings.Cut(v, ".")
	major, err := strconv.Atoi(head)
	if err != nil {
		return 0
	}
	return major
}

// MajorDir returns the cache directory name for a version's major
// component, e.g. "114.0" for "114.0.5735.90". Directories are grouped
// by major only; the patch level inside is whatever was installed last.
func MajorDir(v string) string {
	return fmt.Sprintf("%d.0", Major(v))
}

// CompareVersions imposes a total order on valid version strings: the
// tuple of dot-separated integers, most significant first, with missing
// trailing components treated as zero. Returns -1, 0, or 1.
func CompareVersions(a, b string) int {
	aParts := strings.Split(a, ".")
	bParts := strings.Split(b, ".")

	n := len(aParts)
	if len(bParts) > n {
		n = len(bParts)
	}

	for i := 0; i < n; i++ {
		var av, bv int
		if i < len(aParts) {
			av, _ = strconv.Atoi(aParts[i])
		}
		if i < len(bParts) {
			bv, _ = strconv.Atoi(bParts[i])
		}

		if av > bv {
			return 1
		}
		if av < bv {
			return -1
		}
	}

	return 0
}
