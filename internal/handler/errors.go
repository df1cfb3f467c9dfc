package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
)

// Success messages for API responses
const (
	MsgAdminGranted = "Administrator rights granted"
)

// Log messages
const (
	LogMsgDecodeFailed     = "Failed to decode %s request"
	LogMsgRequestDecoded   = "%s request decoded"
	LogMsgServiceFailed    = "%s failed"
	LogMsgServiceRejected  = "%s rejected"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgSuggestFailed    = "Failed to compute item suggestions"
	LogMsgRateFromFeed     = "Exchange rate taken from feed"
	LogMsgMissingPathParam = "Missing path parameter"
)

// Request field constraints shared by validation tags and tests
const (
	// MaxSuggestionLimit caps the ?limit= query of item lookups
	MaxSuggestionLimit = 20
)
