// Package rest models the discovery document served by the Neo4j HTTP API
// root endpoint: the named sub-resource URIs, the raw server version string,
// and optional extension-plugin metadata.
package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/JohnTheGray/Neo4jClient/internal/types"
)

// RootDescriptor is the parsed representation of the server's root endpoint
// response. All endpoint fields are opaque URIs, relative or absolute to the
// server root. Optional fields decode to their zero value when absent;
// absence is never an error.
type RootDescriptor struct {
	Node              string `json:"node,omitempty"`
	NodeIndex         string `json:"node_index,omitempty"`
	RelationshipIndex string `json:"relationship_index,omitempty"`
	Batch             string `json:"batch,omitempty"`
	ExtensionsInfo    string `json:"extensions_info,omitempty"`

	// Cypher is the non-transactional query endpoint. Optional; some
	// server versions advertise only the transactional endpoint.
	Cypher string `json:"cypher,omitempty"`

	// Transaction is the transactional query endpoint, advertised from
	// the 2.0 line onward.
	Transaction string `json:"transaction,omitempty"`

	// ReferenceNode is the optional well-known starting node exposed by
	// older server versions. Removed in 2.0; absence is valid.
	ReferenceNode string `json:"reference_node,omitempty"`

	// Neo4jVersion is the raw, free-form server version string.
	Neo4jVersion string `json:"neo4j_version,omitempty"`

	// Extensions maps an extension-plugin name to its operation name to
	// endpoint URI mapping. Present-but-empty decodes to an empty map;
	// absent stays nil.
	Extensions map[string]map[string]string `json:"extensions,omitempty"`
}

// HasReferenceNode reports whether the server advertised a reference node.
func (d *RootDescriptor) HasReferenceNode() bool {
	return d.ReferenceNode != ""
}

// DecodeRootDescriptor decodes a root endpoint response body into a
// RootDescriptor. Missing optional keys decode to absent, not error.
func DecodeRootDescriptor(r io.Reader) (*RootDescriptor, error) {
	var descriptor RootDescriptor
	if err := json.NewDecoder(r).Decode(&descriptor); err != nil {
		return nil, types.WrapError(ErrCodeRootDecodeFailed,
			"failed to decode root discovery response", err)
	}
	return &descriptor, nil
}

// NodeReference is a handle to a node addressed by the REST API, derived
// from a node URI such as "http://foo/db/data/node/123".
type NodeReference struct {
	// ID is the numeric node identifier, the trailing path segment of the
	// node URI.
	ID int64

	// URI is the full node URI as advertised by the server.
	URI string
}

// ParseNodeReference derives a NodeReference from a node URI. The node ID is
// the trailing path segment and must be numeric.
func ParseNodeReference(uri string) (*NodeReference, error) {
	trimmed := strings.TrimRight(uri, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 || idx == len(trimmed)-1 {
		return nil, types.NewError(ErrCodeNodeURIInvalid,
			fmt.Sprintf("node URI has no identifier segment: %q", uri))
	}

	id, err := strconv.ParseInt(trimmed[idx+1:], 10, 64)
	if err != nil {
		return nil, types.WrapError(ErrCodeNodeURIInvalid,
			fmt.Sprintf("node URI has a non-numeric identifier segment: %q", uri), err)
	}

	return &NodeReference{ID: id, URI: uri}, nil
}
