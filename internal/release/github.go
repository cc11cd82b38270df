package release

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"obenseuer-installer/internal/logger"
)

// DefaultAPIURL is the public GitHub REST API.
const DefaultAPIURL = "https://api.github.com"

// GitHubClient lists releases through the GitHub REST API.
type GitHubClient struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// NewGitHubClient returns a client for the public API identifying itself as userAgent.
func NewGitHubClient(userAgent string) *GitHubClient {
	return &GitHubClient{
		BaseURL:    DefaultAPIURL,
		UserAgent:  userAgent,
		HTTPClient: http.DefaultClient,
	}
}

// ListReleases fetches the first page (up to 100) of releases, newest first.
func (c *GitHubClient) ListReleases(ctx context.Context, owner, repo string) ([]Release, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/releases?per_page=100", c.BaseURL, url.PathEscape(owner), url.PathEscape(repo))
	logger.Debug("[DEBUG] Fetching GitHub releases from URL: %s\n", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP GET error fetching releases for %s/%s: %w", owner, repo, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Warn("[WARN] Failed to close HTTP response body: %v\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub release fetch failed for %s/%s: HTTP status %d", owner, repo, resp.StatusCode)
	}

	var releases []Release
	if err := json.NewDecoder(resp.Body).Decode(&releases); err != nil {
		return nil, fmt.Errorf("failed to decode GitHub releases JSON for %s/%s: %w", owner, repo, err)
	}
	return releases, nil
}
