package client

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JohnTheGray/Neo4jClient/internal/types"
)

// Connection negotiation error codes
const (
	// Connection errors
	ErrCodeNotConnected  types.ErrorCode = "CLIENT_NOT_CONNECTED"
	ErrCodeInvalidConfig types.ErrorCode = "CLIENT_INVALID_CONFIG"

	// Transport errors
	ErrCodeUnexpectedStatus types.ErrorCode = "CLIENT_UNEXPECTED_STATUS"
	ErrCodeSendFailed       types.ErrorCode = "CLIENT_SEND_FAILED"
	ErrCodeRequestInvalid   types.ErrorCode = "CLIENT_REQUEST_INVALID"
)

// notConnectedMessage is the guidance surfaced whenever negotiated state is
// requested before a successful Connect.
const notConnectedMessage = "The graph client is not connected to the server. Call the Connect method first."

// errNotConnected builds the not-connected error. Always an error, never a
// silent default.
func errNotConnected() error {
	return types.NewError(ErrCodeNotConnected, notConnectedMessage)
}

// newUnexpectedStatusError builds the transport-status error for a
// non-success HTTP status. The message embeds the literal status code and
// reason phrase, e.g. "The response status was: 500 InternalServerError".
func newUnexpectedStatusError(statusCode int) error {
	return types.NewError(ErrCodeUnexpectedStatus, fmt.Sprintf(
		"Received an unexpected HTTP status when executing the request.\r\n\r\nThe response status was: %d %s",
		statusCode, reasonPhrase(statusCode)))
}

// reasonPhrase renders the status reason in its compact form, the standard
// status text with separators removed ("Internal Server Error" ->
// "InternalServerError"). Unknown codes render as "Unknown".
func reasonPhrase(statusCode int) string {
	text := http.StatusText(statusCode)
	if text == "" {
		return "Unknown"
	}
	text = strings.ReplaceAll(text, " ", "")
	return strings.ReplaceAll(text, "-", "")
}
