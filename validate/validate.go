// Package validate contains the sentinel errors returned by option
// validation
package validate

import "github.com/pkg/errors"

var (
	ErrMissingOptions     = errors.New("options cannot be nil")
	ErrMissingLinkOptions = errors.New("link options cannot be nil")
	ErrMissingHost        = errors.New("broker host cannot be empty")
	ErrInvalidPort        = errors.New("broker port must be between 1 and 65535")
	ErrMissingClientID    = errors.New("client id cannot be empty")
	ErrMissingTopic       = errors.New("topic cannot be empty")
	ErrInvalidTopic       = errors.New("topic cannot contain wildcards, NUL or invalid UTF-8")
	ErrInvalidQoS         = errors.New("QoS must be 0, 1 or 2")
	ErrInvalidKeepAlive   = errors.New("keepalive must be greater than 0")
	ErrInvalidTimeout     = errors.New("timeouts must be greater than 0")
	ErrInvalidInterval    = errors.New("report interval must be greater than 0")
	ErrMissingTLSKey      = errors.New("TLS key file cannot be blank if a TLS cert file is provided")
	ErrMissingTLSCert     = errors.New("TLS cert file cannot be blank if a TLS key file is provided")
)
