package llm

import "fmt"

// UnavailableError represents a transport-class oracle failure: the request
// never yielded a response (network, auth, timeout), even after retries.
type UnavailableError struct {
	Attempts int
	Cause    error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("oracle unavailable after %d attempt(s): %v", e.Attempts, e.Cause)
	}
	return fmt.Sprintf("oracle unavailable after %d attempt(s)", e.Attempts)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}

// MalformedResponseError represents a response that was received but could
// not be parsed into the expected schema. Permanent: never retried.
type MalformedResponseError struct {
	Message string
	Raw     string
}

func (e *MalformedResponseError) Error() string {
	preview := e.Raw
	if len(preview) > 120 {
		preview = preview[:120] + "..."
	}
	if preview != "" {
		return fmt.Sprintf("malformed oracle response: %s (content: %s)", e.Message, preview)
	}
	return fmt.Sprintf("malformed oracle response: %s", e.Message)
}
