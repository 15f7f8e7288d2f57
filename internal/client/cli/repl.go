package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Pick(ctx context.Context, paths []string) error
	Drop(ctx context.Context, paths []string) error
	DragOver()
	DragLeave()
	SetRecipient(args []string) error
	SetSender(args []string) error
	Send(ctx context.Context) error
	Copy(ctx context.Context)
	SelectURL()
	Status() error
	Wait()
}

const helpText = "Available commands: pick <path>, drop <path>..., drag, leave, to [email], from [email], send, copy, select, status, wait, exit"

// runREPL reads a line, parses the first token as the command and
// dispatches to a. The loop exits on EOF or on "exit"/"quit".
//
// Errors returned by command handlers are ignored here; the controller has
// already told the user through the notifier.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("sd %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "pick":
			_ = a.Pick(ctx, args)

		case "drop":
			if len(args) == 0 {
				printlnFn("Usage: drop <path>...")
				continue
			}
			_ = a.Drop(ctx, args)

		case "drag":
			a.DragOver()

		case "leave":
			a.DragLeave()

		case "to":
			_ = a.SetRecipient(args)

		case "from":
			_ = a.SetSender(args)

		case "send":
			_ = a.Send(ctx)

		case "copy":
			a.Copy(ctx)

		case "select":
			a.SelectURL()

		case "status":
			_ = a.Status()

		case "wait":
			a.Wait()

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
