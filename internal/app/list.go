// Where: internal/app/list.go
// What: List command for previously scaffolded projects.
// Why: Surface the global config registry without hand-reading YAML.
package app

import (
	"fmt"
	"io"
	"sort"

	"github.com/sprout-dev/sprout/internal/config"
	"github.com/sprout-dev/sprout/internal/ui"
)

func runList(_ CLI, _ Dependencies, out io.Writer) int {
	console := ui.New(out)

	path, err := config.GlobalConfigPath()
	if err != nil {
		return exitWithError(out, err)
	}
	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		return exitWithError(out, err)
	}

	if len(cfg.Projects) == 0 {
		console.Info("No projects scaffolded yet")
		return 0
	}

	names := make([]string, 0, len(cfg.Projects))
	for name := range cfg.Projects {
		names = append(names, name)
	}
	sort.Strings(names)

	console.Header("🗂", "Projects")
	for _, name := range names {
		entry := cfg.Projects[name]
		detail := entry.Path
		if entry.Template != "" {
			detail = fmt.Sprintf("%s (%s)", entry.Path, entry.Template)
		}
		console.Item(name, detail)
	}
	return 0
}
