package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/LuoDiKaiHua/winget-source/pkg/provider/github"
	"github.com/LuoDiKaiHua/winget-source/pkg/resolve"
)

// notesPreviewLen is how many runes of the release notes are shown per
// package. The full text stays available on the Release value.
const notesPreviewLen = 100

var (
	colorCyan  = lipgloss.Color("36")  // teal - primary
	colorGreen = lipgloss.Color("35")  // green - success
	colorRed   = lipgloss.Color("167") // soft red - errors
	colorBlue  = lipgloss.Color("75")  // light blue - links
	colorDim   = lipgloss.Color("240") // dim gray - muted text
)

var (
	styleTitle       = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLink        = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)
	styleDim         = lipgloss.NewStyle().Foreground(colorDim)
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

// printResult prints one package's resolution outcome.
func printResult(r resolve.Result) {
	name := r.Package.Name
	if name == "" {
		name = r.Package.URL
	}

	if r.Err != nil {
		fmt.Printf("%s %s %s\n", styleIconError.Render(iconError), styleTitle.Render(name), styleDim.Render(r.Err.Error()))
		return
	}

	rel := r.Release
	fmt.Printf("%s %s %s\n", styleIconSuccess.Render(iconSuccess), styleTitle.Render(name), rel.Version)
	printField("tag", rel.TagName)
	if rel.DownloadURL != "" {
		printField("download", styleLink.Render(rel.DownloadURL))
	}
	if rel.PublishedAt != "" {
		printField("published", rel.PublishedAt)
	}
	if rel.Notes != "" {
		printField("notes", truncate(rel.Notes, notesPreviewLen))
	}
}

// printRepo prints repository metadata from the info command.
func printRepo(repo *github.Repo) {
	fmt.Println(styleTitle.Render(repo.FullName))
	if repo.Description != "" {
		printField("description", repo.Description)
	}
	printField("stars", fmt.Sprintf("%d", repo.Stars))
	if repo.Language != "" {
		printField("language", repo.Language)
	}
	if repo.HTMLURL != "" {
		printField("url", styleLink.Render(repo.HTMLURL))
	}
	if repo.Archived {
		printField("archived", "yes")
	}
}

func printField(label, value string) {
	fmt.Printf("  %s %s\n", styleDim.Render(label+":"), value)
}

// truncate shortens s to at most n runes, appending an ellipsis when text
// was cut. Counting runes keeps multi-byte release notes intact.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
