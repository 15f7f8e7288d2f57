package widget

import (
	"context"

	"github.com/dmitrijs2005/sharedrop/internal/client/models"
	"github.com/dmitrijs2005/sharedrop/internal/common"
	"github.com/dmitrijs2005/sharedrop/internal/logging"
)

// startUpload shows the progress UI and runs a new upload session.
func (c *Controller) startUpload(ctx context.Context, f models.SelectedFile) {
	id := c.newID()

	c.update(func(s *UIState) string {
		s.ProgressVisible = true
		c.session = id
		return ""
	})

	log := c.log.With("session", id)
	log.Info(ctx, "upload started", "file", f.Name, "size", f.Size)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		resp, err := c.api.Upload(ctx, f, func(p models.Progress) {
			c.progress(id, p)
		})
		if err != nil {
			c.uploadFailed(ctx, log, id, err)
			return
		}
		c.uploadDone(ctx, log, id, resp)
	}()
}

// progress updates the readout and both bars. Ticks from anything but the
// current, unfinished session are dropped.
func (c *Controller) progress(id string, p models.Progress) {
	c.updateIf(func(s *UIState) (string, bool) {
		if id != c.session {
			return "", false
		}
		scale := p.Scale()
		s.ProgressPercent = p.Percent()
		s.BackgroundScale = scale
		s.ForegroundScale = scale
		return "", true
	})
}

func (c *Controller) finish(id string) {
	if c.session == id {
		c.session = ""
	}
}

// uploadFailed clears the selection; the progress UI is left as it was.
func (c *Controller) uploadFailed(ctx context.Context, log logging.Logger, id string, err error) {
	log.Error(ctx, "upload failed", "error", err)

	c.update(func(s *UIState) string {
		c.finish(id)
		s.Picker = nil
		return common.MsgUploadError
	})
}

func (c *Controller) uploadDone(ctx context.Context, log logging.Logger, id string, resp *models.UploadResponse) {
	res := models.ParseUploadResult(resp.Body)

	switch res.Kind {
	case models.ResultParseError:
		log.Error(ctx, "upload response not understood", "status", resp.StatusCode, "error", res.Err)
	case models.ResultMissingField:
		log.Warn(ctx, "upload response has no file url", "status", resp.StatusCode)
	default:
		log.Info(ctx, "upload finished", "url", res.URL)
	}

	c.update(func(s *UIState) string {
		c.finish(id)
		return applyResult(s, res)
	})
}

// applyResult is the result presenter: it mutates s for res and returns
// the message to show, if any.
func applyResult(s *UIState, res models.UploadResult) string {
	switch res.Kind {
	case models.ResultParseError:
		return common.MsgParseError
	case models.ResultMissingField:
		return common.MsgMissingFileURL
	}

	s.Picker = nil
	s.Status = common.StatusUploaded
	s.SendButton = ButtonState{Enabled: true, Label: common.LabelSend}
	s.ProgressVisible = false
	s.SharingVisible = true
	s.FileURL = res.URL
	s.URLSelected = false
	return ""
}
