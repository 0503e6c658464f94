package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar shows one progress bar per run-list group
type ProgressBar struct {
	out   io.Writer
	bar   *progressbar.ProgressBar
	group string
}

// NewProgressBar creates a new progress bar writing to stderr
func NewProgressBar() *ProgressBar {
	return &ProgressBar{out: os.Stderr}
}

// Start begins a bar for the total entries of group's run-list
func (p *ProgressBar) Start(group string, total int) {
	p.group = group
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(p.describe(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(p.out),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(p.out, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// Update moves the bar to completed entries and shows the case tallies
func (p *ProgressBar) Update(completed, passed, failed int) {
	if p.bar == nil {
		return
	}
	_ = p.bar.Set(completed)
	p.bar.Describe(p.describe(passed, failed))
}

// Finish completes the bar of the current group
func (p *ProgressBar) Finish() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
	p.bar = nil
}

func (p *ProgressBar) describe(passed, failed int) string {
	return color.CyanString("Running %s: ", p.group) +
		color.GreenString("[success: %d", passed) +
		" | " +
		color.RedString("failed: %d]", failed)
}
