package client

import (
	"errors"
	"fmt"
)

// CommunicationError means the camera could not be reached or answered
// with a non-2xx status.
type CommunicationError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *CommunicationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request %s failed: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("request %s failed: %v", e.URL, e.Err)
}

func (e *CommunicationError) Unwrap() error { return e.Err }

// ParseError means a camera response did not have the expected structure.
type ParseError struct {
	What string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s: %v", e.What, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// FilesystemError means a local directory or file could not be created or written.
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("filesystem error at %q: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

func IsCommunication(err error) bool {
	var e *CommunicationError
	return errors.As(err, &e)
}

func IsParse(err error) bool {
	var e *ParseError
	return errors.As(err, &e)
}

func IsFilesystem(err error) bool {
	var e *FilesystemError
	return errors.As(err, &e)
}
