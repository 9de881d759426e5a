package strava

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is returned when no refresh token is stored for a user.
var ErrNotFound = errors.New("no stored credential for user")

// ErrStore wraps failures of the credential store.
var ErrStore = errors.New("credential store failure")

// ErrMalformedResponse is returned when the token endpoint answers 2xx
// without the fields this service depends on.
var ErrMalformedResponse = errors.New("malformed token response")

// UpstreamError reports a non-success status from the token endpoint.
type UpstreamError struct {
	Status int
	Body   []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("strava token endpoint returned %d %s", e.Status, http.StatusText(e.Status))
}
