// Package client implements connection and capability negotiation against a
// Neo4j server's HTTP API.
//
// A GraphClient establishes a session by fetching the server's root
// discovery resource, decodes the advertised sub-resource URIs and version
// string, and derives the Cypher capability set the rest of a client stack
// must use.
//
// # Usage
//
//	config := client.DefaultConfig()
//	config.RootURI = "http://localhost:7474/db/data"
//
//	gc, err := client.NewGraphClient(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	gc.OnOperationCompleted(func(ev client.OperationCompletedEvent) {
//	    log.Printf("connect attempt %s: failed=%v", ev.ID, ev.HasException)
//	})
//
//	if err := gc.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	caps, _ := gc.Capabilities()
//
// # Connection Lifecycle
//
// The client moves Disconnected -> Connecting -> Connected, or back to
// Disconnected when an attempt fails. A failed attempt never partially
// commits: negotiated state is written all at once after a successful
// decode, or not at all, and a previously connected client keeps its prior
// state across a failed reconnect. Every attempt, success or failure,
// raises the OperationCompleted handlers exactly once.
//
// # Outbound Request
//
// The root discovery request carries:
//
//   - Authorization: Basic credentials when the root URI embeds userinfo or
//     Username/Password is configured
//   - User-Agent: the fixed product identifier, "Neo4jClient/<4-part>"
//   - X-Stream: "true" when streaming is enabled (the default); the header
//     is entirely absent when streaming is disabled
//
// # Error Handling
//
// All errors are types.ClientError values with package error codes:
//
//   - ErrCodeUnexpectedStatus: server answered outside the 2xx range; the
//     message embeds the literal status code and reason phrase
//   - ErrCodeSendFailed: the transport could not execute the request
//   - ErrCodeNotConnected: negotiated state requested before Connect
//   - ErrCodeInvalidConfig: configuration rejected by Validate
//
// No error is retried internally; callers own retry policy and simply call
// Connect again.
//
// # Thread Safety
//
// Connect must not run concurrently on one instance. Once Connected, the
// negotiated state is effectively immutable and safe for concurrent reads.
package client
