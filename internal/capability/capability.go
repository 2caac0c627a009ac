// Package capability maps a negotiated server version to the Cypher dialect
// feature set the rest of the client must use.
//
// Exactly one capability set is active per connection. The set never changes
// after a successful connect without a reconnect.
package capability

import (
	"github.com/JohnTheGray/Neo4jClient/internal/version"
)

// CypherCapabilities names the Cypher dialect feature set available on a
// connection. It is an enumerable value, not a bitmask; the three sets are
// mutually exclusive.
type CypherCapabilities string

const (
	// CypherLegacy is the pre-2.0 dialect (Cypher 1.9 equivalent).
	CypherLegacy CypherCapabilities = "legacy"

	// Cypher20 is the dialect introduced at the 2.0 line.
	Cypher20 CypherCapabilities = "2.0"

	// Cypher22Plus is the dialect introduced at 2.2 and later.
	Cypher22Plus CypherCapabilities = "2.2+"
)

// Capability thresholds. Boundaries are inclusive of the higher bucket:
// exactly 2.0.0.0 resolves to Cypher20, exactly 2.2.0.0 to Cypher22Plus.
var (
	threshold20 = version.ServerVersion{Major: 2, Minor: 0}
	threshold22 = version.ServerVersion{Major: 2, Minor: 2}
)

// Resolve maps a server version to its capability set using ordered
// threshold checks. Pure function, no I/O.
func Resolve(v version.ServerVersion) CypherCapabilities {
	switch {
	case v.LessThan(threshold20):
		return CypherLegacy
	case v.LessThan(threshold22):
		return Cypher20
	default:
		return Cypher22Plus
	}
}

// String returns the string representation of the capability set.
func (c CypherCapabilities) String() string {
	return string(c)
}

// IsValid checks if the CypherCapabilities is a valid value.
func (c CypherCapabilities) IsValid() bool {
	switch c {
	case CypherLegacy, Cypher20, Cypher22Plus:
		return true
	default:
		return false
	}
}

// SupportsTransactions reports whether the server exposes the transactional
// Cypher endpoint, available from the 2.0 line onward.
func (c CypherCapabilities) SupportsTransactions() bool {
	return c == Cypher20 || c == Cypher22Plus
}

// SupportsPropertySuffixesForNullComparisons reports whether the legacy
// "prop?" / "prop!" suffixes are accepted for controlling null comparisons.
// Only the legacy dialect accepts them; 2.0 removed the syntax.
func (c CypherCapabilities) SupportsPropertySuffixesForNullComparisons() bool {
	return c == CypherLegacy
}

// AutoRollsBackOnError reports whether the server rolls an open transaction
// back automatically when a statement fails, a behavior change at 2.2.
func (c CypherCapabilities) AutoRollsBackOnError() bool {
	return c == Cypher22Plus
}
