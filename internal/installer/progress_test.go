package installer

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressPercent(t *testing.T) {
	tests := []struct {
		name string
		p    Progress
		want float64
	}{
		{name: "half", p: Progress{Written: 50, Total: 100}, want: 50},
		{name: "complete", p: Progress{Written: 100, Total: 100}, want: 100},
		{name: "overrun is clamped", p: Progress{Written: 150, Total: 100}, want: 100},
		{name: "unknown total", p: Progress{Written: 10, Total: 0}, want: 0},
		{name: "nothing yet", p: Progress{Written: 0, Total: 100}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.p.Percent(), 0.0001)
		})
	}
}

func TestLineReporter(t *testing.T) {
	var out bytes.Buffer
	r := &LineReporter{
		Label:  "BepInEx",
		Printf: func(format string, a ...any) { fmt.Fprintf(&out, format, a...) },
	}

	r.Report(Progress{Written: 1, Total: 4})
	r.Finish()

	assert.Equal(t, "[INFO] Downloading 'BepInEx': 25.00%\n", out.String())
}

func TestBarReporterWritesToWriter(t *testing.T) {
	var out bytes.Buffer
	r := NewBarReporter(&out, "BepInEx", 1000)

	r.Report(Progress{Written: 2000, Total: 1000})
	r.Finish()

	assert.Contains(t, out.String(), "Downloading 'BepInEx'")
}
