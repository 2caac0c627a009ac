package rest

import "github.com/JohnTheGray/Neo4jClient/internal/types"

// REST discovery error codes
const (
	ErrCodeRootDecodeFailed types.ErrorCode = "REST_ROOT_DECODE_FAILED"
	ErrCodeNodeURIInvalid   types.ErrorCode = "REST_NODE_URI_INVALID"
)
