// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrTransport matches every *TransportError.
var ErrTransport = errors.New("transport error")

// TransportError reports a failed API call: either the request never got a
// response (Err is set) or the server answered with a non-2xx status.
type TransportError struct {
	Op         string
	Method     string
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s %s: %v", e.Op, e.Method, e.URL, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("%s: %s %s: status %d: %s", e.Op, e.Method, e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: %s %s: status %d", e.Op, e.Method, e.URL, e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// NotFound reports whether the server answered 404.
func (e *TransportError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err is a TransportError carrying a 404.
func IsNotFound(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.NotFound()
}
