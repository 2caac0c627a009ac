// Package version parses the free-form version string advertised by a Neo4j
// server into a structured, comparable four-part version.
//
// Parsing is deliberately forgiving: the root discovery endpoint has shipped
// a variety of version formats over the years ("1.5.M02", "2.2.0",
// "2.3.0-RC1"), and a client must always be able to resolve a capability set
// even when the string is missing or unrecognized. Parse therefore never
// fails; unknown input yields the zero version 0.0.0.0.
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ServerVersion is a structured four-part server version with an optional
// pre-release qualifier. The qualifier is informational only and does not
// participate in ordering.
type ServerVersion struct {
	Major    int
	Minor    int
	Build    int
	Revision int

	// PreRelease holds the raw qualifier segment when present, e.g. "M02"
	// or "RC1". Empty for final releases.
	PreRelease string
}

var (
	// milestonePattern matches milestone-qualified versions such as
	// "1.5.M02" or "1.5M02". The milestone number maps into the revision
	// slot so that milestone builds order correctly against each other.
	milestonePattern = regexp.MustCompile(`^(\d+)\.(\d+)\.?M(\d+)$`)

	// rcPattern matches release-candidate-qualified versions such as
	// "2.3.0-RC1". The candidate number is preserved as a qualifier but is
	// not mapped into a numeric slot; only the milestone marker carries
	// that behavior.
	rcPattern = regexp.MustCompile(`^(\d+(?:\.\d+){1,3})[.-]RC(\d+)$`)

	// numericPattern matches plain dotted-numeric versions with two to
	// four components.
	numericPattern = regexp.MustCompile(`^\d+(?:\.\d+){1,3}$`)
)

// Parse converts a raw server version string into a ServerVersion.
//
// Accepted forms:
//   - dotted numerics with 2-4 components: "1.8", "2.2.0", "2.2.0.1"
//   - milestone qualifiers: "1.5.M02" parses as 1.5.0.2
//   - release candidates: "2.3.0-RC1" parses as 2.3.0.0 with PreRelease "RC1"
//
// Anything else, including the empty string, yields the zero version.
// Parse is pure and never returns an error.
func Parse(s string) ServerVersion {
	s = strings.TrimSpace(s)
	if s == "" {
		return ServerVersion{}
	}

	if m := milestonePattern.FindStringSubmatch(s); m != nil {
		milestone, _ := strconv.Atoi(m[3])
		return ServerVersion{
			Major:      mustAtoi(m[1]),
			Minor:      mustAtoi(m[2]),
			Build:      0,
			Revision:   milestone,
			PreRelease: "M" + m[3],
		}
	}

	if m := rcPattern.FindStringSubmatch(s); m != nil {
		v := parseNumeric(m[1])
		v.PreRelease = "RC" + m[2]
		return v
	}

	if numericPattern.MatchString(s) {
		return parseNumeric(s)
	}

	return ServerVersion{}
}

// parseNumeric parses a dotted-numeric string of 2-4 components. Missing
// trailing components are zero.
func parseNumeric(s string) ServerVersion {
	parts := strings.Split(s, ".")
	var nums [4]int
	for i, p := range parts {
		if i >= len(nums) {
			break
		}
		nums[i] = mustAtoi(p)
	}
	return ServerVersion{
		Major:    nums[0],
		Minor:    nums[1],
		Build:    nums[2],
		Revision: nums[3],
	}
}

// mustAtoi converts a digit-only string already vetted by a pattern match.
func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// String renders the version as the full four-part form, e.g. "1.5.0.2".
func (v ServerVersion) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Revision)
}

// IsZero reports whether the version is the unknown/zero version.
func (v ServerVersion) IsZero() bool {
	return v.Major == 0 && v.Minor == 0 && v.Build == 0 && v.Revision == 0
}

// Compare orders two versions by (major, minor, build, revision). It returns
// -1 if v is lower than other, 0 if equal, and 1 if higher. PreRelease
// qualifiers are ignored.
func (v ServerVersion) Compare(other ServerVersion) int {
	pairs := [4][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Build, other.Build},
		{v.Revision, other.Revision},
	}
	for _, p := range pairs {
		switch {
		case p[0] < p[1]:
			return -1
		case p[0] > p[1]:
			return 1
		}
	}
	return 0
}

// LessThan reports whether v orders strictly before other.
func (v ServerVersion) LessThan(other ServerVersion) bool {
	return v.Compare(other) < 0
}

// AtLeast reports whether v orders at or after other.
func (v ServerVersion) AtLeast(other ServerVersion) bool {
	return v.Compare(other) >= 0
}
