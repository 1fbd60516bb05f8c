// Where: internal/app/register.go
// What: Project registration after scaffolding.
// Why: Persist project metadata into global config for later listing.
package app

import (
	"time"

	"github.com/sprout-dev/sprout/internal/config"
	"github.com/sprout-dev/sprout/internal/scaffold"
)

// registerProject records a freshly scaffolded project in the global
// configuration with its path, template, and creation timestamp.
func registerProject(request scaffold.Request, deps Dependencies) error {
	path, err := config.GlobalConfigPath()
	if err != nil {
		return err
	}
	cfg, err := config.LoadGlobalConfig(path)
	if err != nil {
		cfg = config.DefaultGlobalConfig()
	}
	if cfg.Projects == nil {
		cfg.Projects = map[string]config.ProjectEntry{}
	}

	entry := cfg.Projects[request.Name]
	entry.Path = request.TargetDir
	entry.Template = request.Template
	entry.LastUsed = now(deps).Format(time.RFC3339)
	cfg.Projects[request.Name] = entry

	return config.SaveGlobalConfig(path, cfg)
}

func now(deps Dependencies) time.Time {
	if deps.Now != nil {
		return deps.Now()
	}
	return time.Now()
}
