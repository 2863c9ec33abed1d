package completion

// Kind classifies an upstream failure. The set is closed: every way the
// remote completion endpoint (or its output downstream) can fail maps to
// exactly one of these variants.
type Kind int

const (
	// KindTransport covers connection, DNS and timeout failures before an
	// HTTP response was received.
	KindTransport Kind = iota + 1
	// KindStatus covers non-success HTTP statuses from the remote endpoint.
	KindStatus
	// KindBadPayload covers responses (or completion content) that do not
	// have the expected structure.
	KindBadPayload
	// KindEmptyContent covers completions whose content is blank.
	KindEmptyContent
)

// UpstreamError is the error type for every failure of the remote dependency.
// Handlers map it to HTTP 502 regardless of Kind; Kind and the wrapped cause
// are kept for logs and tests.
type UpstreamError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return e.Message + ": " + e.Err.Error()
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return "upstream failure"
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
