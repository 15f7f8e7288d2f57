// Package widget holds the upload-and-share controller.
//
// The whole visible state lives in UIState, a plain serializable struct.
// It changes only through the Controller's transitions:
//
//	DragOver, DragLeave, Drop, Pick      input
//	(upload progress / completion)        transport callbacks
//	SetRecipient, SetSender, SubmitEmail email form
//	Copy, SelectURL                       link field
//
// Network calls run on their own goroutines; their callbacks re-enter the
// controller under its lock, so transitions never interleave mid-way.
// Wait blocks until every started call has been applied.
//
// Uploads are not serialized. Starting a new one makes it the current
// session: progress from older sessions is dropped, but their completion is
// still applied when it arrives.
package widget
