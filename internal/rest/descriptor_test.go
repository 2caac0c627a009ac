package rest

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohnTheGray/Neo4jClient/internal/types"
)

const fullRootResponse = `{
	"batch": "http://foo/db/data/batch",
	"node": "http://foo/db/data/node",
	"node_index": "http://foo/db/data/index/node",
	"relationship_index": "http://foo/db/data/index/relationship",
	"reference_node": "http://foo/db/data/node/123",
	"extensions_info": "http://foo/db/data/ext",
	"extensions": {
		"GremlinPlugin": {
			"execute_script": "http://foo/db/data/ext/GremlinPlugin/graphdb/execute_script"
		}
	},
	"cypher": "http://foo/db/data/cypher",
	"neo4j_version": "1.5.M02"
}`

func TestDecodeRootDescriptor(t *testing.T) {
	t.Run("full response", func(t *testing.T) {
		descriptor, err := DecodeRootDescriptor(strings.NewReader(fullRootResponse))

		require.NoError(t, err)
		assert.Equal(t, "http://foo/db/data/node", descriptor.Node)
		assert.Equal(t, "http://foo/db/data/index/node", descriptor.NodeIndex)
		assert.Equal(t, "http://foo/db/data/index/relationship", descriptor.RelationshipIndex)
		assert.Equal(t, "http://foo/db/data/batch", descriptor.Batch)
		assert.Equal(t, "http://foo/db/data/ext", descriptor.ExtensionsInfo)
		assert.Equal(t, "http://foo/db/data/cypher", descriptor.Cypher)
		assert.Equal(t, "1.5.M02", descriptor.Neo4jVersion)
		assert.True(t, descriptor.HasReferenceNode())
		assert.Equal(t, "http://foo/db/data/node/123", descriptor.ReferenceNode)

		require.Contains(t, descriptor.Extensions, "GremlinPlugin")
		assert.Equal(t,
			"http://foo/db/data/ext/GremlinPlugin/graphdb/execute_script",
			descriptor.Extensions["GremlinPlugin"]["execute_script"])
	})

	t.Run("absent optional fields are not errors", func(t *testing.T) {
		body := `{
			"node": "http://foo/db/data/node",
			"neo4j_version": "2.2.0"
		}`

		descriptor, err := DecodeRootDescriptor(strings.NewReader(body))

		require.NoError(t, err)
		assert.False(t, descriptor.HasReferenceNode())
		assert.Empty(t, descriptor.ReferenceNode)
		assert.Nil(t, descriptor.Extensions)
		assert.Empty(t, descriptor.Cypher)
		assert.Empty(t, descriptor.Transaction)
	})

	t.Run("present but empty extensions decode to empty map", func(t *testing.T) {
		body := `{"neo4j_version": "2.0.0", "extensions": {}}`

		descriptor, err := DecodeRootDescriptor(strings.NewReader(body))

		require.NoError(t, err)
		require.NotNil(t, descriptor.Extensions)
		assert.Empty(t, descriptor.Extensions)
	})

	t.Run("transaction endpoint", func(t *testing.T) {
		body := `{
			"neo4j_version": "2.2.1",
			"transaction": "http://foo/db/data/transaction"
		}`

		descriptor, err := DecodeRootDescriptor(strings.NewReader(body))

		require.NoError(t, err)
		assert.Equal(t, "http://foo/db/data/transaction", descriptor.Transaction)
	})

	t.Run("malformed body surfaces a decode error", func(t *testing.T) {
		_, err := DecodeRootDescriptor(strings.NewReader("not json"))

		require.Error(t, err)
		var clientErr *types.ClientError
		require.True(t, errors.As(err, &clientErr))
		assert.Equal(t, ErrCodeRootDecodeFailed, clientErr.Code)
	})
}

func TestParseNodeReference(t *testing.T) {
	tests := []struct {
		name       string
		uri        string
		expectedID int64
		wantErr    bool
	}{
		{name: "absolute node URI", uri: "http://foo/db/data/node/123", expectedID: 123},
		{name: "trailing slash", uri: "http://foo/db/data/node/456/", expectedID: 456},
		{name: "zero identifier", uri: "http://foo/db/data/node/0", expectedID: 0},
		{name: "non-numeric identifier", uri: "http://foo/db/data/node/abc", wantErr: true},
		{name: "no identifier segment", uri: "nodeuri", wantErr: true},
		{name: "empty", uri: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := ParseNodeReference(tt.uri)

			if tt.wantErr {
				require.Error(t, err)
				var clientErr *types.ClientError
				require.True(t, errors.As(err, &clientErr))
				assert.Equal(t, ErrCodeNodeURIInvalid, clientErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedID, ref.ID)
			assert.Equal(t, tt.uri, ref.URI)
		})
	}
}
