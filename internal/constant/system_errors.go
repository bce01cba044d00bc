package constant

// system codes (1xxx)
const (
	CodeSuccess            = 0    // request handled
	CodeSystemError        = 1000 // unexpected failure inside the service
	CodeInternalError      = 1003 // recovered panic
	CodeServiceUnavailable = 1004 // service is starting or shutting down
	CodeTimeout            = 1005 // request context ended before the answer was ready
)

// parameter codes
const (
	CodeInvalidParams     = 1100 // query parameters failed validation
	CodeMissingParams     = 1101 // a required parameter is absent
	CodeParamsFormatError = 1102 // e.g. a date that is not YYYY-MM-DD
)

// dashboard codes (2xxx)
const (
	CodeMerchantNotFound = 2000 // merchant detail lookup found no matching code
)
