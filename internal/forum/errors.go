package forum

import "fmt"

// The client maps every failure into one of four error types so callers
// can branch with errors.As without inspecting status codes themselves.

// NetworkError wraps a transport-level failure (DNS, connect, timeout).
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("forum: %s: network failure: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServiceError is a non-success response that is neither an auth
// rejection nor a missing resource, or a response body that could not
// be decoded.
type ServiceError struct {
	Op     string
	Status int
	Body   string
}

func (e *ServiceError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("forum: %s: unexpected response: %s", e.Op, e.Body)
	}
	return fmt.Sprintf("forum: %s: status %d: %s", e.Op, e.Status, e.Body)
}

// AuthorizationError means the service rejected the token or the role
// behind it (401/403).
type AuthorizationError struct {
	Op     string
	Status int
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("forum: %s: not authorized (status %d)", e.Op, e.Status)
}

// NotFoundError means the target resource vanished between listing and
// acting on it (404).
type NotFoundError struct {
	Op string
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("forum: %s: %s not found", e.Op, e.ID)
}
