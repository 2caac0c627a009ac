package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JohnTheGray/Neo4jClient/internal/version"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		expected CypherCapabilities
	}{
		{name: "zero version resolves to legacy", version: "", expected: CypherLegacy},
		{name: "1.5 milestone is legacy", version: "1.5.M02", expected: CypherLegacy},
		{name: "1.9.9 is legacy", version: "1.9.9", expected: CypherLegacy},
		{name: "exactly 2.0.0.0 is 2.0", version: "2.0.0.0", expected: Cypher20},
		{name: "2.1 line is 2.0", version: "2.1.8", expected: Cypher20},
		{name: "just below 2.2 is 2.0", version: "2.1.999", expected: Cypher20},
		{name: "exactly 2.2.0.0 is 2.2+", version: "2.2.0.0", expected: Cypher22Plus},
		{name: "2.3 line is 2.2+", version: "2.3.0", expected: Cypher22Plus},
		{name: "3.x is 2.2+", version: "3.5.35", expected: Cypher22Plus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(version.Parse(tt.version)))
		})
	}
}

func TestCypherCapabilities_IsValid(t *testing.T) {
	assert.True(t, CypherLegacy.IsValid())
	assert.True(t, Cypher20.IsValid())
	assert.True(t, Cypher22Plus.IsValid())
	assert.False(t, CypherCapabilities("1.9").IsValid())
	assert.False(t, CypherCapabilities("").IsValid())
}

func TestCypherCapabilities_FeatureFlags(t *testing.T) {
	assert.False(t, CypherLegacy.SupportsTransactions())
	assert.True(t, Cypher20.SupportsTransactions())
	assert.True(t, Cypher22Plus.SupportsTransactions())

	assert.True(t, CypherLegacy.SupportsPropertySuffixesForNullComparisons())
	assert.False(t, Cypher20.SupportsPropertySuffixesForNullComparisons())
	assert.False(t, Cypher22Plus.SupportsPropertySuffixesForNullComparisons())

	assert.False(t, CypherLegacy.AutoRollsBackOnError())
	assert.False(t, Cypher20.AutoRollsBackOnError())
	assert.True(t, Cypher22Plus.AutoRollsBackOnError())
}
