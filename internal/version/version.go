// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Surface build-time VCS information without a separate version file.
package version

import (
	"fmt"
	"runtime/debug"
)

// GetVersion returns the version string derived from embedded build info.
// Without build info it returns "dev"; otherwise the short VCS revision,
// with "(dirty)" appended when the tree was modified at build time.
func GetVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	var revision string
	var modified bool

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			if setting.Value == "true" {
				modified = true
			}
		}
	}

	if revision == "" {
		return "dev"
	}

	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
