package github

import "regexp"

// selectAsset picks the download URL of the asset whose name matches
// pattern. Selection is opt-in: an empty pattern returns "" immediately.
//
// The pattern is compiled as a case-insensitive regular expression and
// matched anywhere in the asset name. A malformed pattern degrades to "no
// match" rather than failing the resolution, so a typo in the manifest
// never loses the rest of the release data.
//
// Among multiple matches the asset with the highest download count wins;
// ties go to the shorter name, and remaining ties to the earlier asset in
// the API's ordering, so the choice is stable for identical input.
func selectAsset(assets []asset, pattern string, logf func(string, ...any)) string {
	if pattern == "" {
		return ""
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}

	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		logf("invalid asset pattern %q: %v", pattern, err)
		return ""
	}

	var matches []asset
	for _, a := range assets {
		if re.MatchString(a.Name) {
			matches = append(matches, a)
		}
	}
	if len(matches) == 0 {
		logf("no asset matched pattern %q", pattern)
		return ""
	}

	best := matches[0]
	for _, a := range matches[1:] {
		if a.DownloadCount > best.DownloadCount ||
			(a.DownloadCount == best.DownloadCount && len(a.Name) < len(best.Name)) {
			best = a
		}
	}
	if len(matches) > 1 {
		logf("%d assets matched pattern %q, selected %s", len(matches), pattern, best.Name)
	}
	return best.BrowserDownloadURL
}
