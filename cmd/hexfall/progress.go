package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/coder/quartz"
)

// progressMonitor draws a single-line progress bar that is redrawn in place
// whenever the whole-percent value changes.
type progressMonitor struct {
	out     io.Writer
	bar     progress.Model
	clock   quartz.Clock
	start   time.Time
	lastPct int
}

func newProgressMonitor(out io.Writer, clock quartz.Clock) *progressMonitor {
	return &progressMonitor{
		out:     out,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		clock:   clock,
		lastPct: -1,
	}
}

func (m *progressMonitor) OnStart(total int) {
	m.lastPct = -1
	m.start = m.clock.Now()
	m.draw(0, total)
}

func (m *progressMonitor) OnGameComplete(done, total int) {
	m.draw(done, total)
	if done >= total {
		fmt.Fprintln(m.out)
	}
}

func (m *progressMonitor) draw(done, total int) {
	if total <= 0 {
		return
	}
	pct := done * 100 / total
	if pct == m.lastPct {
		return
	}
	m.lastPct = pct

	rate := 0.0
	if elapsed := m.clock.Since(m.start); elapsed > 0 {
		rate = float64(done) / elapsed.Seconds()
	}
	fmt.Fprintf(m.out, "\r%s %d/%d games (%.0f/s)", m.bar.ViewAs(float64(done)/float64(total)), done, total, rate)
}
