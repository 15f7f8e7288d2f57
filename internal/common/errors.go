package common

import "errors"

var (
	// validation errors, raised before any network call
	ErrTooManyFiles = errors.New("exactly one file expected")
	ErrFileTooLarge = errors.New("file exceeds size limit")
	ErrNoFile       = errors.New("no file selected")

	// transport errors
	ErrTransport = errors.New("transport error")

	// response shape errors
	ErrParseResponse  = errors.New("malformed server response")
	ErrMissingFileURL = errors.New("no file url in response")

	// email errors
	ErrSendDisabled = errors.New("send is disabled")
)
