// Package ui provides console progress feedback.
package ui

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Progress reports files processed out of a known total.
type Progress struct {
	bar *progressbar.ProgressBar
}

// NewProgress creates a progress bar writing to output. A nil output
// disables rendering.
func NewProgress(total int, output io.Writer) *Progress {
	if output == nil {
		output = io.Discard
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(output),
		progressbar.OptionSetDescription("[Extracting]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
	)
	return &Progress{bar: bar}
}

// Step marks one file as done and shows its name.
func (p *Progress) Step(name string) {
	p.bar.Describe("[Extracting] " + name)
	_ = p.bar.Add(1)
}

// Finish completes and clears the bar.
func (p *Progress) Finish() {
	_ = p.bar.Finish()
}
