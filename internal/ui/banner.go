// Where: internal/ui/banner.go
// What: Startup banner rendering.
// Why: Give the scaffold flow a recognizable opening line.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("42")).
	Padding(0, 1)

var taglineStyle = lipgloss.NewStyle().
	Faint(true).
	Padding(0, 1)

// Banner writes the startup banner. Purely cosmetic.
func Banner(out io.Writer, version string) {
	fmt.Fprintln(out, bannerStyle.Render(fmt.Sprintf("🌱 sprout %s", version)))
	fmt.Fprintln(out, taglineStyle.Render("scaffold a web application in seconds"))
	fmt.Fprintln(out)
}
