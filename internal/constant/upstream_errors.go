package constant

// upstream codes (3xxx), raised when the payments REST API misbehaves
const (
	// CodeUpstreamError transport failure or a non-2xx answer
	CodeUpstreamError = 3000

	// CodeUpstreamTimeout the upstream call hit the client timeout
	CodeUpstreamTimeout = 3001

	// CodeUpstreamDecodeError the envelope or a record in it could not be decoded
	CodeUpstreamDecodeError = 3002
)
