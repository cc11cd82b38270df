package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"

	"obenseuer-installer/internal/logger"
)

// DefaultPollInterval is how often the destination file is sampled for progress.
const DefaultPollInterval = time.Second

// Downloader streams a URL to a local file while reporting progress.
//
// Progress is derived from the size of the destination file on disk, sampled on
// a timer while the copy runs in a separate goroutine. The figure can lag behind
// the bytes actually received; it is only meant for display.
type Downloader struct {
	HTTPClient   *http.Client
	PollInterval time.Duration
}

// NewDownloader returns a downloader without request timeouts that samples once per second.
func NewDownloader() *Downloader {
	return &Downloader{
		HTTPClient:   http.DefaultClient,
		PollInterval: DefaultPollInterval,
	}
}

type copyResult struct {
	n   int64
	err error
}

// Download writes the body of url to dest (created or truncated) and returns the number of bytes written.
// expectedSize is only used to compute percentages.
func (d *Downloader) Download(ctx context.Context, url string, expectedSize int64, dest string, reporter Reporter) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request for %s: %w", ErrNetwork, url, err)
	}
	resp, err := d.HTTPClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to GET %s: %w", ErrNetwork, url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close response body: %s\n", cerr)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: GET %s: HTTP status %d", ErrNetwork, url, resp.StatusCode)
	}

	out, err := os.Create(dest)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create file %s: %w", ErrIO, dest, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close destination file: %s\n", cerr)
		}
	}()

	done := make(chan copyResult, 1)
	go func() {
		n, err := io.Copy(out, resp.Body)
		done <- copyResult{n: n, err: err}
	}()

	interval := d.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case res := <-done:
			if res.err != nil {
				return res.n, classifyCopyError(dest, res.err)
			}
			if reporter != nil {
				// An unknown size is only learned once the stream ends.
				total := expectedSize
				if total <= 0 {
					total = res.n
				}
				reporter.Report(Progress{Written: res.n, Total: total})
				reporter.Finish()
			}
			logger.Debug("[DEBUG] Downloaded %d bytes to %s\n", res.n, dest)
			return res.n, nil
		case <-ticker.C:
			if reporter == nil {
				continue
			}
			if info, err := os.Stat(dest); err == nil {
				reporter.Report(Progress{Written: info.Size(), Total: expectedSize})
			}
		}
	}
}

// classifyCopyError separates failures writing the file from failures reading the stream.
func classifyCopyError(dest string, err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("%w: failed to write %s: %w", ErrIO, dest, err)
	}
	return fmt.Errorf("%w: failed to read response body: %w", ErrNetwork, err)
}
