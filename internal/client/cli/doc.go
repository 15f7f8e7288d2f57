// Package cli provides the interactive sharedrop command-line client.
//
// It wires configuration, the HTTP client, the notifier and the widget
// controller, then reads commands from stdin. Each command maps onto one
// controller transition:
//
//	pick <path>        choose a file (file picker)
//	drop <path>...     drop one or more files on the drop zone
//	drag | leave       drag a file over / away from the drop zone
//	to [email]         set the recipient
//	from [email]       set the sender
//	send               email the link
//	copy               copy the link to the clipboard
//	select             select the link text
//	status             print the UI state as JSON
//	wait               block until uploads and sends finish
//	help, exit | quit
//
// Uploads and sends run in the background; progress and notifications are
// printed as they happen. The REPL is started via App.Run(ctx).
package cli
