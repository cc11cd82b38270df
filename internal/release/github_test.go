package release

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitHubClientListReleases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/BepInEx/BepInEx/releases", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"tag_name": "v6.0.0-pre.2", "prerelease": true, "assets": []},
			{"tag_name": "v5.4.23.2", "prerelease": false, "assets": [
				{"name": "BepInEx_win_x64_5.4.23.2.zip", "size": 1234, "browser_download_url": "https://example.invalid/a.zip"}
			]}
		]`))
	}))
	defer server.Close()

	client := NewGitHubClient("test-agent")
	client.BaseURL = server.URL
	client.HTTPClient = server.Client()

	releases, err := client.ListReleases(context.Background(), "BepInEx", "BepInEx")
	require.NoError(t, err)
	require.Len(t, releases, 2)
	assert.True(t, releases[0].Prerelease)
	assert.Equal(t, "v5.4.23.2", releases[1].TagName)
	require.Len(t, releases[1].Assets, 1)
	assert.Equal(t, int64(1234), releases[1].Assets[0].Size)
	assert.Equal(t, "https://example.invalid/a.zip", releases[1].Assets[0].BrowserDownloadURL)
}

func TestGitHubClientNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewGitHubClient("test-agent")
	client.BaseURL = server.URL
	client.HTTPClient = server.Client()

	_, err := client.ListReleases(context.Background(), "BepInEx", "BepInEx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestGitHubClientBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message": "not a list"}`))
	}))
	defer server.Close()

	client := NewGitHubClient("test-agent")
	client.BaseURL = server.URL
	client.HTTPClient = server.Client()

	_, err := client.ListReleases(context.Background(), "BepInEx", "BepInEx")
	require.Error(t, err)
}

func TestLocateAgainstGitHubClient(t *testing.T) {
	releases := []Release{
		{TagName: "v6.0.0-pre.2", Prerelease: true, Assets: []Asset{{Name: "BepInEx-Unity.Mono-linux-x64.zip"}}},
		{TagName: "v5.4.23.2", Assets: []Asset{
			{Name: "BepInEx_win_x86_5.4.23.2.zip", Size: 1, BrowserDownloadURL: "https://example.invalid/x86.zip"},
			{Name: "BepInEx_linux_x64_5.4.23.2.zip", Size: 2, BrowserDownloadURL: "https://example.invalid/linux.zip"},
		}},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewEncoder(w).Encode(releases))
	}))
	defer server.Close()

	client := NewGitHubClient("test-agent")
	client.BaseURL = server.URL
	client.HTTPClient = server.Client()

	got, err := Locate(context.Background(), client, bepinexQuery("linux_x64"))
	require.NoError(t, err)
	assert.Equal(t, "https://example.invalid/linux.zip", got.DownloadURL)
	assert.Equal(t, int64(2), got.Size)
}
