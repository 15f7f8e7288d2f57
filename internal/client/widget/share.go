package widget

import (
	"context"

	"github.com/dmitrijs2005/sharedrop/internal/client/models"
	"github.com/dmitrijs2005/sharedrop/internal/common"
)

func (c *Controller) SetRecipient(addr string) {
	c.update(func(s *UIState) string {
		s.EmailTo = addr
		return ""
	})
}

func (c *Controller) SetSender(addr string) {
	c.update(func(s *UIState) string {
		s.EmailFrom = addr
		return ""
	})
}

// SubmitEmail sends the current link by email. The send button stays
// disabled until the request completes; submitting while it is disabled
// returns common.ErrSendDisabled.
func (c *Controller) SubmitEmail(ctx context.Context) error {
	var req models.EmailRequest
	started := c.updateIf(func(s *UIState) (string, bool) {
		if !s.SendButton.Enabled {
			return "", false
		}
		s.SendButton = ButtonState{Enabled: false, Label: common.LabelSending}
		req = models.EmailRequest{
			UUID:      models.ResourceID(s.FileURL),
			EmailTo:   s.EmailTo,
			EmailFrom: s.EmailFrom,
		}
		return "", true
	})
	if !started {
		return common.ErrSendDisabled
	}

	c.log.Info(ctx, "sending email", "uuid", req.UUID, "to", req.EmailTo)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		resp, err := c.api.SendEmail(ctx, req)
		if err != nil {
			c.log.Error(ctx, "email request failed", "uuid", req.UUID, "error", err)
		}

		c.update(func(s *UIState) string {
			s.SendButton = ButtonState{Enabled: true, Label: common.LabelSend}
			switch {
			case err != nil:
				return common.MsgSomethingWrong
			case !resp.Success:
				return common.MsgEmailFailed
			}
			// form reset: the link and the sharing panel stay
			s.EmailTo = ""
			s.EmailFrom = ""
			return common.MsgEmailSent
		})
	}()
	return nil
}

// SelectURL marks the whole link text selected.
func (c *Controller) SelectURL() {
	c.update(func(s *UIState) string {
		s.URLSelected = true
		return ""
	})
}

// Copy selects the link and writes it to the clipboard. The confirmation
// is shown whether or not the write succeeded.
func (c *Controller) Copy(ctx context.Context) {
	c.order.Lock()
	defer c.order.Unlock()

	c.mu.Lock()
	c.state.URLSelected = true
	text := c.state.FileURL
	snap := c.state.clone()
	c.mu.Unlock()

	if err := c.clip.WriteAll(text); err != nil {
		c.log.Debug(ctx, "clipboard write failed", "error", err)
	}
	c.publish(common.MsgCopied, snap)
}
