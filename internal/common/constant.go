// Package common contains shared constants, user-facing messages and
// sentinel errors used across sharedrop components.
package common

import "time"

// MaxFileSize is the client-side upload ceiling (100 MiB).
const MaxFileSize int64 = 100 * 1024 * 1024

// NotificationLifetime is how long a notification stays visible.
const NotificationLifetime = 2 * time.Second

// Wire-level names shared by the client and the stub server.
const (
	UploadPath    = "/api/files"
	SendEmailPath = "/api/files/send"
	FileFieldName = "myfile"
)

// User-visible notification texts.
const (
	MsgTooManyFiles   = "Please upload only one file"
	MsgFileTooLarge   = "Max file size is 100MB"
	MsgUploadError    = "Error uploading file."
	MsgParseError     = "Error parsing server response"
	MsgMissingFileURL = "Upload failed: No file URL returned"
	MsgEmailSent      = "Email Sent!"
	MsgEmailFailed    = "Failed to send email"
	MsgSomethingWrong = "Something went wrong"
	MsgCopied         = "Copied to clipboard"
)

// Labels of the send button and the status line.
const (
	LabelSend      = "Send"
	LabelSending   = "Sending"
	StatusUploaded = "Uploaded"
)
