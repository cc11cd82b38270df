package release

// Release is a GitHub release as returned by the releases API.
type Release struct {
	TagName    string  `json:"tag_name"`
	Name       string  `json:"name"`
	Draft      bool    `json:"draft"`
	Prerelease bool    `json:"prerelease"`
	Assets     []Asset `json:"assets"`
}

// Asset is a downloadable file attached to a release.
type Asset struct {
	Name               string `json:"name"`
	Size               int64  `json:"size"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// ReleaseAsset is the outcome of a lookup: the asset to download and the release it came from.
type ReleaseAsset struct {
	Tag         string
	Name        string
	DownloadURL string
	Size        int64
}
