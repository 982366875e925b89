// Package version reads and compares the versions of the external tools vidplay drives.
package version

import (
	"fmt"
	"regexp"

	"github.com/samber/lo"
)

// Version is a major.minor.patch triple. Missing components are zero.
type Version struct {
	Major, Minor, Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

var versionPattern = regexp.MustCompile(`\bn?v?(\d+)\.(\d+)(?:\.(\d+))?`)

// Parse finds the first dotted version number in s.
// "mpv v0.37.0-dirty", "ffprobe version n6.1" and "4.4.2-0ubuntu0.22.04.1" all parse.
func Parse(s string) (Version, error) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("no version number in %q", s)
	}

	var v Version
	_, err := fmt.Sscanf(m[1]+"."+m[2], "%d.%d", &v.Major, &v.Minor)
	if err != nil {
		return Version{}, err
	}

	if m[3] != "" {
		_, err = fmt.Sscanf(m[3], "%d", &v.Patch)
		if err != nil {
			return Version{}, err
		}
	}

	return v, nil
}

// Compare returns 1 if a > b, -1 if a < b, and 0 if equal.
func Compare(a, b Version) int {
	for _, pair := range []lo.Tuple2[int, int]{
		{A: a.Major, B: b.Major},
		{A: a.Minor, B: b.Minor},
		{A: a.Patch, B: b.Patch},
	} {
		if pair.A > pair.B {
			return 1
		}

		if pair.A < pair.B {
			return -1
		}
	}

	return 0
}
