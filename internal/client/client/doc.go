// Package client talks to the file service over HTTP.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     two calls the widget makes: Upload and SendEmail.
//  2. A concrete implementation (see HTTPClient) that streams the file as
//     multipart/form-data, reports byte progress, and posts the email payload
//     as JSON.
//
// # Status codes
//
// Neither call treats a non-2xx status as failure. Upload returns whatever
// body the server produced and leaves interpretation to
// models.ParseUploadResult; SendEmail decodes the body whatever the status.
// Status codes are logged.
//
// # Error Handling
//
// Network failures wrap common.ErrTransport; undecodable email responses
// wrap common.ErrParseResponse. Match them with errors.Is.
//
// There is no retry and no timeout beyond what ctx imposes.
package client
