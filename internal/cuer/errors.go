package cuer

import "errors"

var (
	// ErrTransport marks failures before a response arrived (connection
	// refused, DNS, cancelled context).
	ErrTransport = errors.New("transport failure")

	// ErrStatus marks responses with an HTTP status of 400 or above.
	ErrStatus = errors.New("unexpected status")

	// ErrDecode marks response bodies that are not the expected JSON.
	ErrDecode = errors.New("decode response")

	// ErrUnsupportedMethod marks intents using a method other than GET, PUT or DELETE.
	ErrUnsupportedMethod = errors.New("unsupported method")
)
