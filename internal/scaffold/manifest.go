// Where: internal/scaffold/manifest.go
// What: package.json manifest model and serialization.
// Why: Build the manifest once from variant data and write it verbatim.
package scaffold

import (
	"encoding/json"

	"github.com/sprout-dev/sprout/internal/meta"
)

// Manifest is the package.json document written into a new project.
// Built once per run, never mutated afterwards.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// defaultScripts returns the fixed script commands shared by all variants.
func defaultScripts() map[string]string {
	return map[string]string{
		"dev":   "next dev",
		"build": "next build",
		"start": "next start",
		"lint":  "next lint",
	}
}

// BuildManifest assembles the manifest for a project name and variant.
func BuildManifest(name string, variant Variant) Manifest {
	return Manifest{
		Name:            name,
		Version:         meta.ManifestVersion,
		Private:         true,
		Scripts:         defaultScripts(),
		Dependencies:    variant.Dependencies,
		DevDependencies: variant.DevDependencies,
	}
}

// Encode serializes the manifest as two-space indented JSON with a
// trailing newline, the way npm writes it.
func (m Manifest) Encode() ([]byte, error) {
	payload, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(payload, '\n'), nil
}
