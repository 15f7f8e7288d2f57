package widget

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/sharedrop/internal/client/client"
	"github.com/dmitrijs2005/sharedrop/internal/client/clipboard"
	"github.com/dmitrijs2005/sharedrop/internal/client/models"
	"github.com/dmitrijs2005/sharedrop/internal/common"
	"github.com/dmitrijs2005/sharedrop/internal/logging"
)

// Notifier shows a transient message to the user.
type Notifier interface {
	Notify(message string)
}

type Controller struct {
	api      client.Client
	notifier Notifier
	clip     clipboard.Writer
	log      logging.Logger
	onChange func(UIState)
	newID    func() string

	// order serializes transitions end to end, so notifications and
	// snapshots go out in the order the state changed. mu guards state.
	order   sync.Mutex
	mu      sync.Mutex
	state   UIState
	session string

	wg sync.WaitGroup
}

type Option func(*Controller)

func WithLogger(l logging.Logger) Option {
	return func(c *Controller) { c.log = l }
}

func WithClipboard(w clipboard.Writer) Option {
	return func(c *Controller) { c.clip = w }
}

// WithListener is called with a snapshot after every transition.
func WithListener(f func(UIState)) Option {
	return func(c *Controller) { c.onChange = f }
}

// WithSessionIDs replaces the upload session id generator.
func WithSessionIDs(f func() string) Option {
	return func(c *Controller) { c.newID = f }
}

func New(api client.Client, n Notifier, opts ...Option) *Controller {
	c := &Controller{
		api:      api,
		notifier: n,
		clip:     &clipboard.Memory{},
		log:      logging.NewNop(),
		newID:    uuid.NewString,
		state:    initialState(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// State returns a snapshot of the current UI state.
func (c *Controller) State() UIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Wait blocks until all in-flight uploads and email sends have completed
// and been applied.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// update applies fn, then notifies (if fn returned a message) and
// publishes the new snapshot.
func (c *Controller) update(fn func(s *UIState) string) {
	c.updateIf(func(s *UIState) (string, bool) {
		return fn(s), true
	})
}

// updateIf is update for transitions that may decline: when fn reports
// false nothing is published. State is locked only while fn runs; the
// publish happens under c.order alone.
func (c *Controller) updateIf(fn func(s *UIState) (string, bool)) bool {
	c.order.Lock()
	defer c.order.Unlock()

	c.mu.Lock()
	msg, ok := fn(&c.state)
	snap := c.state.clone()
	c.mu.Unlock()

	if ok {
		c.publish(msg, snap)
	}
	return ok
}

func (c *Controller) publish(msg string, snap UIState) {
	if msg != "" && c.notifier != nil {
		c.notifier.Notify(msg)
	}
	if c.onChange != nil {
		c.onChange(snap)
	}
}

func (c *Controller) DragOver() {
	c.update(func(s *UIState) string {
		s.DropZoneActive = true
		return ""
	})
}

func (c *Controller) DragLeave() {
	c.update(func(s *UIState) string {
		s.DropZoneActive = false
		return ""
	})
}

// Drop accepts a drag-and-drop payload and starts uploading it when it
// holds exactly one file within the size ceiling.
func (c *Controller) Drop(ctx context.Context, files []models.SelectedFile) error {
	if err := models.CheckDrop(files); err != nil {
		c.update(func(s *UIState) string {
			s.DropZoneActive = false
			return validationMessage(err)
		})
		return err
	}

	f := files[0]
	c.mu.Lock()
	c.state.DropZoneActive = false
	c.state.Picker = &f
	c.mu.Unlock()

	c.startUpload(ctx, f)
	return nil
}

// Pick handles a file-picker change. An empty selection does nothing; an
// oversized file is rejected and the selection cleared.
func (c *Controller) Pick(ctx context.Context, files []models.SelectedFile) error {
	if len(files) == 0 {
		return nil
	}

	f := files[0]
	if err := f.CheckSize(); err != nil {
		c.update(func(s *UIState) string {
			s.Picker = nil
			return common.MsgFileTooLarge
		})
		return err
	}

	c.mu.Lock()
	c.state.Picker = &f
	c.mu.Unlock()

	c.startUpload(ctx, f)
	return nil
}

func validationMessage(err error) string {
	if errors.Is(err, common.ErrFileTooLarge) {
		return common.MsgFileTooLarge
	}
	return common.MsgTooManyFiles
}
