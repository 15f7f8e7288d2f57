package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/sharedrop/internal/client/client"
	"github.com/dmitrijs2005/sharedrop/internal/client/clipboard"
	"github.com/dmitrijs2005/sharedrop/internal/client/config"
	"github.com/dmitrijs2005/sharedrop/internal/client/notify"
	"github.com/dmitrijs2005/sharedrop/internal/client/widget"
	"github.com/dmitrijs2005/sharedrop/internal/common"
	"github.com/dmitrijs2005/sharedrop/internal/filex"
	"github.com/dmitrijs2005/sharedrop/internal/logging"
)

type App struct {
	config     *config.Config
	log        logging.Logger
	controller *widget.Controller
	notifier   *notify.Notifier
	progress   *progressBar
	reader     *bufio.Reader
	out        io.Writer

	mu         sync.Mutex
	shownURL   string
	progressOn bool
}

// NewApp builds the client from cfg, reading commands from in and writing
// to out.
func NewApp(cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer) *App {
	out = &syncWriter{w: out}
	a := &App{
		config:   cfg,
		log:      log,
		reader:   bufio.NewReader(in),
		out:      out,
		progress: newProgressBar(out, outputFd(out)),
	}

	a.notifier = notify.New(common.NotificationLifetime, notify.WithListener(a.showNotification))

	api := client.NewHTTPClient(cfg.UploadURL(), cfg.SendEmailURL(), client.WithLogger(log))
	a.controller = widget.New(api, a.notifier,
		widget.WithLogger(log),
		widget.WithClipboard(clipboard.New(cfg.SystemClipboard)),
		widget.WithListener(a.render),
	)
	return a
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.notifier.Stop()

	a.log.Info(ctx, "sharedrop started", "server", a.config.ServerBaseURL)
	fmt.Fprintln(a.out, "Welcome to sharedrop (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) showNotification(message string, visible bool) {
	if visible {
		fmt.Fprintf(a.out, "» %s\n", message)
	}
}

// render draws what changed between controller snapshots.
func (a *App) render(s widget.UIState) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if s.ProgressVisible {
		a.progressOn = true
		a.progress.Render(s.ProgressPercent)
	} else if a.progressOn {
		a.progressOn = false
		a.progress.Finish()
	}

	if s.SharingVisible && s.FileURL != a.shownURL {
		a.shownURL = s.FileURL
		fmt.Fprintf(a.out, "%s: %s\n", s.Status, s.FileURL)
	}
}

func (a *App) getStatus() string {
	s := a.controller.State()
	switch {
	case s.ProgressVisible:
		return fmt.Sprintf("(uploading %d%%)", s.ProgressPercent)
	case !s.SendButton.Enabled && s.SharingVisible:
		return "(" + s.SendButton.Label + ")"
	case s.SharingVisible:
		return "(link ready)"
	}
	return ""
}

func (a *App) Pick(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		p, err := GetSimpleText(a.reader, "Path of the file to upload", a.out)
		if err != nil {
			return err
		}
		if p == "" {
			return nil
		}
		paths = []string{p}
	}

	files, err := filex.SelectAll(paths[:1])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	return a.controller.Pick(ctx, files)
}

func (a *App) Drop(ctx context.Context, paths []string) error {
	files, err := filex.SelectAll(paths)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	a.controller.DragOver()
	return a.controller.Drop(ctx, files)
}

func (a *App) DragOver()  { a.controller.DragOver() }
func (a *App) DragLeave() { a.controller.DragLeave() }

func (a *App) SetRecipient(args []string) error {
	return a.setField(args, "Recipient email", a.controller.SetRecipient)
}

func (a *App) SetSender(args []string) error {
	return a.setField(args, "Your email", a.controller.SetSender)
}

func (a *App) setField(args []string, prompt string, set func(string)) error {
	if len(args) > 0 {
		set(args[0])
		return nil
	}
	v, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return err
	}
	set(v)
	return nil
}

func (a *App) Send(ctx context.Context) error {
	err := a.controller.SubmitEmail(ctx)
	if errors.Is(err, common.ErrSendDisabled) {
		if a.controller.State().SharingVisible {
			fmt.Fprintln(a.out, "Still sending the previous email")
		} else {
			fmt.Fprintln(a.out, "Nothing to send yet: upload a file first")
		}
	}
	return err
}

func (a *App) Copy(ctx context.Context) { a.controller.Copy(ctx) }

func (a *App) SelectURL() {
	a.controller.SelectURL()
	if url := a.controller.State().FileURL; url != "" {
		fmt.Fprintln(a.out, url)
	}
}

func (a *App) Status() error {
	b, err := json.MarshalIndent(a.controller.State(), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(b))
	return err
}

func (a *App) Wait() { a.controller.Wait() }

// syncWriter serializes writes coming from background transfers and the REPL.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// outputFd returns the descriptor behind w when it is a file, else -1.
func outputFd(w io.Writer) int {
	if sw, ok := w.(*syncWriter); ok {
		w = sw.w
	}
	if f, ok := w.(*os.File); ok {
		return int(f.Fd())
	}
	return -1
}
