package installer

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"obenseuer-installer/internal/logger"
)

// Progress is a sample of how far a download got.
type Progress struct {
	Written int64
	Total   int64
}

// Percent returns Written/Total as a percentage in [0, 100]. Unknown totals report 0.
func (p Progress) Percent() float64 {
	if p.Total <= 0 || p.Written <= 0 {
		return 0
	}
	pct := float64(p.Written) / float64(p.Total) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// Reporter displays download progress samples.
type Reporter interface {
	Report(p Progress)
	Finish()
}

// LineReporter prints one line per sample, e.g. "Downloading 'BepInEx': 42.00%".
type LineReporter struct {
	Label  string
	Printf func(format string, a ...any)
}

func (r *LineReporter) Report(p Progress) {
	printf := r.Printf
	if printf == nil {
		printf = logger.Info
	}
	printf("[INFO] Downloading '%s': %.2f%%\n", r.Label, p.Percent())
}

func (r *LineReporter) Finish() {}

// BarReporter renders samples as a byte progress bar.
type BarReporter struct {
	bar   *progressbar.ProgressBar
	total int64
	w     io.Writer
}

// NewBarReporter creates a bar writing to w. A non-positive total renders a spinner.
func NewBarReporter(w io.Writer, label string, total int64) *BarReporter {
	limit := total
	if limit <= 0 {
		limit = -1
	}
	bar := progressbar.NewOptions64(limit,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(fmt.Sprintf("Downloading '%s'", label)),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(100*time.Millisecond),
	)
	return &BarReporter{bar: bar, total: total, w: w}
}

func (r *BarReporter) Report(p Progress) {
	n := p.Written
	if r.total > 0 && n > r.total {
		n = r.total
	}
	_ = r.bar.Set64(n)
}

func (r *BarReporter) Finish() {
	_ = r.bar.Finish()
	fmt.Fprintln(r.w)
}

// NewReporter picks a progress bar when stdout is a terminal and plain lines otherwise.
func NewReporter(label string, total int64) Reporter {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return NewBarReporter(os.Stdout, label, total)
	}
	return &LineReporter{Label: label}
}
