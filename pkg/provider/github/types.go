package github

// releaseResponse is the subset of the GitHub release payload this
// provider consumes.
type releaseResponse struct {
	TagName     string  `json:"tag_name"`
	PublishedAt string  `json:"published_at"`
	Body        string  `json:"body"`
	Assets      []asset `json:"assets"`
}

// asset is a single downloadable file attached to a release.
type asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	DownloadCount      int    `json:"download_count"`
}

// Repo holds basic repository metadata from GET /repos/{owner}/{repo}.
type Repo struct {
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	HTMLURL     string `json:"html_url"`
	Stars       int    `json:"stargazers_count"`
	Language    string `json:"language"`
	Archived    bool   `json:"archived"`
}

// RateLimit describes the caller's API quota from GET /rate_limit.
type RateLimit struct {
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	Reset     int64 `json:"reset"` // unix timestamp when the quota resets
}

type rateLimitResponse struct {
	Rate RateLimit `json:"rate"`
}
