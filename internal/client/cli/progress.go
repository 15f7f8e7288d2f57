package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/term"
)

const (
	defaultBarWidth = 40
	minBarWidth     = 10
	maxBarWidth     = 60
	redrawInterval  = 100 * time.Millisecond
)

// getTermSize and isTerminal are test seams for golang.org/x/term.
var (
	getTermSize = term.GetSize
	isTerminal  = term.IsTerminal
)

// progressBar draws upload progress. On a terminal it redraws one line in
// place; otherwise it prints a line at every quarter.
type progressBar struct {
	w     io.Writer
	tty   bool
	width int
	now   func() time.Time

	lastDraw    time.Time
	lastPercent int
	drawn       bool
}

func newProgressBar(w io.Writer, fd int) *progressBar {
	tty := fd >= 0 && isTerminal(fd)
	return &progressBar{
		w:           w,
		tty:         tty,
		width:       barWidth(fd, tty),
		now:         time.Now,
		lastPercent: -1,
	}
}

func barWidth(fd int, tty bool) int {
	if !tty {
		return defaultBarWidth
	}
	cols, _, err := getTermSize(fd)
	if err != nil {
		return defaultBarWidth
	}
	// leave room for the label and the percentage
	w := cols - 30
	if w < minBarWidth {
		return minBarWidth
	}
	if w > maxBarWidth {
		return maxBarWidth
	}
	return w
}

func (p *progressBar) Render(percent int) {
	if percent == p.lastPercent {
		return
	}
	if p.tty {
		if percent < 100 && p.now().Sub(p.lastDraw) < redrawInterval {
			return
		}
	} else if p.drawn && percent/25 == p.lastPercent/25 {
		return
	}

	p.lastDraw = p.now()
	p.lastPercent = percent
	p.drawn = true

	line := fmt.Sprintf("Uploading... [%s] %3d%%", p.bar(percent), percent)
	if p.tty {
		fmt.Fprint(p.w, "\r"+line)
	} else {
		fmt.Fprintln(p.w, line)
	}
}

// Finish ends the in-place line and resets for the next upload.
func (p *progressBar) Finish() {
	if p.tty && p.drawn {
		fmt.Fprintln(p.w)
	}
	p.drawn = false
	p.lastPercent = -1
	p.lastDraw = time.Time{}
}

func (p *progressBar) bar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	done := p.width * percent / 100
	return strings.Repeat("█", done) + strings.Repeat("░", p.width-done)
}
