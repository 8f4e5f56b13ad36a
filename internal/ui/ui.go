// Package ui renders the banners and usage text mbuild prints around a
// build. The text is part of the tool's contract: the start banner appears
// exactly once before the build, and the completion banner plus usage
// block appear exactly once after a successful build, never on failure.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	headingStyle = lipgloss.NewStyle().Bold(true)
	commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// Returns the banner printed before the build starts.
func StartBanner(ref, platform string) string {
	return bannerStyle.Render(fmt.Sprintf("==> Building %s for %s", ref, platform))
}

// Returns the banner printed after a successful build.
func CompletionBanner(ref string) string {
	return successStyle.Render(fmt.Sprintf("==> Build complete: %s", ref))
}

// Returns the static usage block printed after the completion banner.
//
// The block lists the compose test profile, the production run target, and
// a registry push example. The remote reference in the push example is
// derived from the registry host and the image reference.
func Usage(ref, registry string) string {
	remote := registry + "/" + ref

	var b strings.Builder

	b.WriteString(headingStyle.Render("Next steps:"))
	b.WriteString("\n\n")

	b.WriteString("  Run the test profile:\n")
	b.WriteString("    " + commandStyle.Render("docker compose --profile test up") + "\n\n")

	b.WriteString("  Run in production:\n")
	b.WriteString("    " + commandStyle.Render("docker compose up -d messenger") + "\n\n")

	b.WriteString("  Push to a registry:\n")
	b.WriteString("    " + commandStyle.Render("docker tag "+ref+" "+remote) + "\n")
	b.WriteString("    " + commandStyle.Render("docker push "+remote) + "\n")

	return b.String()
}
