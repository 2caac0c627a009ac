package client

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/JohnTheGray/Neo4jClient/internal/capability"
	"github.com/JohnTheGray/Neo4jClient/internal/rest"
	"github.com/JohnTheGray/Neo4jClient/internal/types"
	"github.com/JohnTheGray/Neo4jClient/internal/version"
	buildversion "github.com/JohnTheGray/Neo4jClient/pkg/version"
)

// HTTPDoer is the transport collaborator: send a request, receive a
// response. *http.Client satisfies it. The transport owns timeout and
// cancellation concerns beyond the request context.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// GraphClient negotiates a session against a Neo4j server's HTTP root
// endpoint and exposes the negotiated state: the root descriptor, the
// resolved server version, and the Cypher capability set.
//
// A client is created disconnected. Connect runs one negotiation attempt;
// it may be called again after a failure, or while connected to re-run
// negotiation. Connect must not be called concurrently on one instance;
// once connected, the negotiated state is effectively immutable and safe
// for concurrent reads.
type GraphClient struct {
	config     Config
	httpClient HTTPDoer
	logger     *slog.Logger
	tracer     trace.Tracer

	state             *connectionState
	completedHandlers []OperationCompletedHandler
}

// connectionState holds the fields set exactly once per successful
// connection attempt. All fields commit together at the end of a successful
// decode, or not at all.
type connectionState struct {
	descriptor    *rest.RootDescriptor
	serverVersion version.ServerVersion
	capabilities  capability.CypherCapabilities
	rootNode      *rest.NodeReference
}

// Option is a functional option for configuring a GraphClient.
type Option func(*GraphClient)

// WithHTTPClient replaces the default HTTP transport.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *GraphClient) {
		if doer != nil {
			c.httpClient = doer
		}
	}
}

// WithLogger sets the structured logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *GraphClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTracer sets the OpenTelemetry tracer used to span connection
// attempts. Default: a no-op tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *GraphClient) {
		if tracer != nil {
			c.tracer = tracer
		}
	}
}

// NewGraphClient creates a new disconnected GraphClient with the given
// configuration. The client must be connected via Connect() before the
// negotiated-state accessors can be used.
func NewGraphClient(config Config, opts ...Option) (*GraphClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &GraphClient{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     slog.Default(),
		tracer:     noop.NewTracerProvider().Tracer("neo4jclient"),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Connect runs one connection negotiation attempt: GET the root discovery
// resource, validate the HTTP status, decode the root descriptor, resolve
// the server version and capability set, and commit the negotiated state.
//
// A single attempt, no retry. Any failure leaves previously negotiated
// state (if any) untouched and surfaces to the caller. The
// OperationCompleted handlers fire exactly once per call, success or
// failure, before the error returns.
func (c *GraphClient) Connect(ctx context.Context) (err error) {
	ctx, span := c.tracer.Start(ctx, "GraphClient.Connect",
		trace.WithAttributes(
			attribute.String("db.system", "neo4j"),
			attribute.Bool("neo4jclient.streaming", c.config.Streaming),
		))
	defer span.End()

	start := time.Now()
	defer func() {
		event := OperationCompletedEvent{
			ID:           types.NewID(),
			HasException: err != nil,
			Exception:    err,
			Duration:     time.Since(start),
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(otelcodes.Error, err.Error())
			c.logger.Error("connection attempt failed",
				"attempt_id", event.ID.String(), "error", err)
		}
		c.raiseOperationCompleted(event)
	}()

	req, err := c.newRootRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.WrapError(ErrCodeSendFailed,
			"failed to execute root discovery request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newUnexpectedStatusError(resp.StatusCode)
	}

	descriptor, err := rest.DecodeRootDescriptor(resp.Body)
	if err != nil {
		return err
	}

	serverVersion := version.Parse(descriptor.Neo4jVersion)
	capabilities := capability.Resolve(serverVersion)

	state := &connectionState{
		descriptor:    descriptor,
		serverVersion: serverVersion,
		capabilities:  capabilities,
	}
	if descriptor.HasReferenceNode() {
		rootNode, err := rest.ParseNodeReference(descriptor.ReferenceNode)
		if err != nil {
			return err
		}
		state.rootNode = rootNode
	}

	// Commit: all fields together, only after a fully successful decode.
	c.state = state

	span.SetAttributes(
		attribute.String("neo4jclient.server_version", serverVersion.String()),
		attribute.String("neo4jclient.capabilities", capabilities.String()),
	)
	c.logger.Info("connected to graph server",
		"server_version", serverVersion.String(),
		"capabilities", capabilities.String(),
		"has_root_node", state.rootNode != nil)

	return nil
}

// newRootRequest builds the outbound root discovery request: Basic auth
// when credentials are configured, the fixed product User-Agent, and the
// X-Stream header only when streaming is enabled.
func (c *GraphClient) newRootRequest(ctx context.Context) (*http.Request, error) {
	target, err := url.Parse(c.config.RootURI)
	if err != nil {
		return nil, types.WrapError(ErrCodeRequestInvalid,
			"root URI is not a valid URL", err)
	}

	// Userinfo moves into the Authorization header, never the request line.
	requestURL := *target
	requestURL.User = nil

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL.String(), nil)
	if err != nil {
		return nil, types.WrapError(ErrCodeRequestInvalid,
			"failed to build root discovery request", err)
	}

	if user, password, ok := c.config.credentials(); ok {
		req.SetBasicAuth(user, password)
	}
	req.Header.Set("User-Agent", buildversion.UserAgent())
	req.Header.Set("Accept", "application/json")
	if c.config.Streaming {
		req.Header.Set("X-Stream", "true")
	}

	return req, nil
}

// IsConnected reports whether a Connect attempt has succeeded.
func (c *GraphClient) IsConnected() bool {
	return c.state != nil
}

// Capabilities returns the negotiated Cypher capability set.
// Fails with a not-connected error before a successful Connect.
func (c *GraphClient) Capabilities() (capability.CypherCapabilities, error) {
	if c.state == nil {
		return "", errNotConnected()
	}
	return c.state.capabilities, nil
}

// ServerVersion returns the resolved server version.
// Fails with a not-connected error before a successful Connect.
func (c *GraphClient) ServerVersion() (version.ServerVersion, error) {
	if c.state == nil {
		return version.ServerVersion{}, errNotConnected()
	}
	return c.state.serverVersion, nil
}

// RootDescriptor returns the decoded root descriptor.
// Fails with a not-connected error before a successful Connect.
func (c *GraphClient) RootDescriptor() (*rest.RootDescriptor, error) {
	if c.state == nil {
		return nil, errNotConnected()
	}
	return c.state.descriptor, nil
}

// RootNode returns the server's reference node handle. The second return
// is false when the connected server advertises no reference node; that is
// a valid outcome, not an error. Fails with a not-connected error before a
// successful Connect.
func (c *GraphClient) RootNode() (*rest.NodeReference, bool, error) {
	if c.state == nil {
		return nil, false, errNotConnected()
	}
	return c.state.rootNode, c.state.rootNode != nil, nil
}

// Health returns the current health status of the server connection.
// Unhealthy before a successful Connect; afterwards the root resource is
// re-fetched to verify the server is still reachable. The check is bounded
// by the same configured timeout as connection negotiation.
func (c *GraphClient) Health(ctx context.Context) types.HealthStatus {
	if c.state == nil {
		return types.Unhealthy("not connected")
	}

	healthCtx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	req, err := c.newRootRequest(healthCtx)
	if err != nil {
		return types.Unhealthy("failed to build health check request: " + err.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.Unhealthy("health check failed: " + err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return types.Degraded("health check returned status " + resp.Status)
	}

	return types.Healthy("connected")
}
