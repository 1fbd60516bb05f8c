// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep project identity in one place instead of scattered literals.
package meta

const (
	// Project Identity
	AppName   = "sprout"
	Slug      = "sprout"
	EnvPrefix = "SPROUT"

	// Directory Layout
	HomeDir        = ".sprout"
	ConfigFilename = "config.yaml"

	// Scaffold Defaults
	DefaultProjectName = "my-next-app"
	ManifestFilename   = "package.json"
	ManifestVersion    = "0.1.0"
)
