package github

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/LuoDiKaiHua/winget-source/pkg/provider"
)

func TestCanHandle(t *testing.T) {
	c := NewClient("")

	tests := []struct {
		url  string
		want bool
	}{
		{"https://github.com/x/y", true},
		{"https://www.github.com/x/y", true},
		{"https://GITHUB.COM/x/y", true},
		{"http://github.com/x/y", true},
		{"https://gitlab.com/x/y", false},
		{"https://example.com/github.com/x/y", false},
		{"github.com/x/y", false}, // no scheme, host is empty after parsing
		{"", false},
	}

	for _, tt := range tests {
		if got := c.CanHandle(tt.url); got != tt.want {
			t.Errorf("CanHandle(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestExtractRepoInfo(t *testing.T) {
	c := NewClient("")

	tests := []struct {
		url       string
		wantOwner string
		wantRepo  string
	}{
		{"https://github.com/owner/repo", "owner", "repo"},
		{"https://github.com/owner/repo/", "owner", "repo"},
		{"https://github.com/owner/repo.git", "owner", "repo"},
		{"https://github.com/owner/repo?tab=readme", "owner", "repo"},
		{"https://github.com/Owner/Repo", "owner", "repo"},
		{"https://github.com/owner/repo/tree/main/docs", "owner", "repo"},
		{"https://github.com/owner/repo/blob/main/README.md", "owner", "repo"},
		{"https://github.com/owner/repo/releases/tag/v1.0.0", "owner", "repo"},
		{"https://github.com/owner/repo/issues/42", "owner", "repo"},
		{"https://github.com/owner/repo/pull/7", "owner", "repo"},
		{"https://github.com/owner/repo/archive/refs/tags/v1.0.0.zip", "owner", "repo"},
		{"https://www.github.com/owner/repo", "owner", "repo"},
	}

	for _, tt := range tests {
		owner, repo, err := c.ExtractRepoInfo(tt.url)
		if err != nil {
			t.Errorf("ExtractRepoInfo(%q) error: %v", tt.url, err)
			continue
		}
		if owner != tt.wantOwner || repo != tt.wantRepo {
			t.Errorf("ExtractRepoInfo(%q) = (%q, %q), want (%q, %q)",
				tt.url, owner, repo, tt.wantOwner, tt.wantRepo)
		}
	}
}

func TestExtractRepoInfoInvalid(t *testing.T) {
	c := NewClient("")

	for _, url := range []string{
		"https://github.com/owner",
		"https://example.com/owner/repo",
		"not a url",
		"",
	} {
		_, _, err := c.ExtractRepoInfo(url)
		if !errors.Is(err, provider.ErrInvalidURL) {
			t.Errorf("ExtractRepoInfo(%q) error = %v, want ErrInvalidURL", url, err)
		}
	}
}

func TestLatestRelease_Stable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/owner/repo/releases/latest" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(releaseResponse{
			TagName:     "v1.2.3",
			PublishedAt: "2024-06-01T12:00:00Z",
			Body:        "Bug fixes",
			Assets: []asset{
				{Name: "app-linux.tar.gz", BrowserDownloadURL: "https://dl/app-linux.tar.gz", DownloadCount: 3},
				{Name: "app-win64.zip", BrowserDownloadURL: "https://dl/app-win64.zip", DownloadCount: 20},
			},
		})
	}))
	defer server.Close()

	c := testClient(server.URL)

	rel, err := c.LatestRelease(context.Background(), "https://github.com/owner/repo", provider.Options{AssetPattern: "win"})
	if err != nil {
		t.Fatalf("LatestRelease failed: %v", err)
	}
	if rel.Version != "v1.2.3" || rel.TagName != "v1.2.3" {
		t.Errorf("got version %q tag %q, want v1.2.3 for both", rel.Version, rel.TagName)
	}
	if rel.PublishedAt != "2024-06-01T12:00:00Z" {
		t.Errorf("got published %q", rel.PublishedAt)
	}
	if rel.Notes != "Bug fixes" {
		t.Errorf("got notes %q", rel.Notes)
	}
	if rel.DownloadURL != "https://dl/app-win64.zip" {
		t.Errorf("got download URL %q, want app-win64.zip URL", rel.DownloadURL)
	}
}

func TestLatestRelease_NoPatternLeavesDownloadEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(releaseResponse{
			TagName: "v2.0.0",
			Assets:  []asset{{Name: "app.zip", BrowserDownloadURL: "https://dl/app.zip"}},
		})
	}))
	defer server.Close()

	rel, err := testClient(server.URL).LatestRelease(context.Background(), "https://github.com/owner/repo", provider.Options{})
	if err != nil {
		t.Fatalf("LatestRelease failed: %v", err)
	}
	if rel.DownloadURL != "" {
		t.Errorf("got download URL %q, want empty without a pattern", rel.DownloadURL)
	}
	if rel.Version != "v2.0.0" {
		t.Errorf("got version %q, want v2.0.0", rel.Version)
	}
}

func TestLatestRelease_UnmatchedPatternStillSucceeds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(releaseResponse{
			TagName: "v2.0.0",
			Assets:  []asset{{Name: "app.zip", BrowserDownloadURL: "https://dl/app.zip"}},
		})
	}))
	defer server.Close()

	rel, err := testClient(server.URL).LatestRelease(context.Background(), "https://github.com/owner/repo", provider.Options{AssetPattern: "darwin"})
	if err != nil {
		t.Fatalf("LatestRelease failed: %v", err)
	}
	if rel.DownloadURL != "" {
		t.Errorf("got download URL %q, want empty for unmatched pattern", rel.DownloadURL)
	}
}

func TestLatestRelease_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := testClient(server.URL).LatestRelease(context.Background(), "https://github.com/owner/repo", provider.Options{})
	if !errors.Is(err, provider.ErrNotFound) {
		t.Errorf("got error %v, want ErrNotFound", err)
	}
}

func TestLatestRelease_Forbidden(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := testClient(server.URL).LatestRelease(context.Background(), "https://github.com/owner/repo", provider.Options{})
	if !errors.Is(err, provider.ErrForbidden) {
		t.Errorf("got error %v, want ErrForbidden", err)
	}
}

func TestLatestRelease_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := testClient(server.URL).LatestRelease(context.Background(), "https://github.com/owner/repo", provider.Options{})
	if !errors.Is(err, provider.ErrNetwork) {
		t.Errorf("got error %v, want ErrNetwork", err)
	}
}

func TestLatestRelease_InvalidURL(t *testing.T) {
	_, err := NewClient("").LatestRelease(context.Background(), "https://github.com/owner", provider.Options{})
	if !errors.Is(err, provider.ErrInvalidURL) {
		t.Errorf("got error %v, want ErrInvalidURL", err)
	}
}

func TestLatestRelease_Prerelease(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/owner/repo/releases" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("per_page"); got != "10" {
			t.Errorf("got per_page=%q, want 10", got)
		}
		// The API orders newest-first; the client must take the first
		// element even though the second has a later timestamp here.
		json.NewEncoder(w).Encode([]releaseResponse{
			{TagName: "v3.0.0-rc.1", PublishedAt: "2024-01-01T00:00:00Z"},
			{TagName: "v2.9.0", PublishedAt: "2024-12-31T00:00:00Z"},
		})
	}))
	defer server.Close()

	rel, err := testClient(server.URL).LatestRelease(context.Background(), "https://github.com/owner/repo", provider.Options{IncludePrerelease: true})
	if err != nil {
		t.Fatalf("LatestRelease failed: %v", err)
	}
	if rel.TagName != "v3.0.0-rc.1" {
		t.Errorf("got tag %q, want first list element v3.0.0-rc.1", rel.TagName)
	}
}

func TestLatestRelease_PrereleaseEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]releaseResponse{})
	}))
	defer server.Close()

	_, err := testClient(server.URL).LatestRelease(context.Background(), "https://github.com/owner/repo", provider.Options{IncludePrerelease: true})
	if !errors.Is(err, provider.ErrNotFound) {
		t.Errorf("got error %v, want ErrNotFound for empty release list", err)
	}
}

func TestLatestRelease_Idempotent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(releaseResponse{
			TagName:     "v1.0.0",
			PublishedAt: "2024-06-01T12:00:00Z",
			Assets:      []asset{{Name: "app.zip", BrowserDownloadURL: "https://dl/app.zip", DownloadCount: 1}},
		})
	}))
	defer server.Close()

	c := testClient(server.URL)
	opts := provider.Options{AssetPattern: `app.*\.zip`}

	first, err := c.LatestRelease(context.Background(), "https://github.com/owner/repo", opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.LatestRelease(context.Background(), "https://github.com/owner/repo", opts)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated resolution differs: %+v vs %+v", first, second)
	}
}

func TestRepoInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/owner/repo" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(Repo{
			FullName:    "owner/repo",
			Description: "a tool",
			Stars:       42,
			Language:    "Go",
		})
	}))
	defer server.Close()

	repo, err := testClient(server.URL).RepoInfo(context.Background(), "https://github.com/owner/repo")
	if err != nil {
		t.Fatalf("RepoInfo failed: %v", err)
	}
	if repo.Stars != 42 || repo.Language != "Go" {
		t.Errorf("got %+v", repo)
	}
}

func TestRateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rate_limit" {
			http.NotFound(w, r)
			return
		}
		json.NewEncoder(w).Encode(rateLimitResponse{Rate: RateLimit{Limit: 60, Remaining: 58, Reset: 1700000000}})
	}))
	defer server.Close()

	rl, err := testClient(server.URL).RateLimit(context.Background())
	if err != nil {
		t.Fatalf("RateLimit failed: %v", err)
	}
	if rl.Remaining != 58 || rl.Limit != 60 {
		t.Errorf("got %+v", rl)
	}
}

func TestNewClientAuthHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(rateLimitResponse{})
	}))
	defer server.Close()

	c := NewClient("test-token")
	c.baseURL = server.URL

	if _, err := c.RateLimit(context.Background()); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("got Authorization %q, want Bearer test-token", gotAuth)
	}
}

// testClient builds a Client pointed at a test server, unauthenticated.
func testClient(serverURL string) *Client {
	headers := map[string]string{
		"Accept":     "application/vnd.github.v3+json",
		"User-Agent": "winget-source/1.0",
	}
	return &Client{
		Client:  provider.NewClient(headers),
		baseURL: serverURL,
	}
}
