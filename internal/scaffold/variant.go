// Where: internal/scaffold/variant.go
// What: Template variant descriptors loaded from embedded assets.
// Why: Keep all per-variant content and dependency maps out of Go code.
package scaffold

import (
	"fmt"
	"io/fs"

	"github.com/sprout-dev/sprout/assets"
	"gopkg.in/yaml.v3"
)

// VariantKeys lists the template variants in presentation order.
// The first entry is the effective default.
var VariantKeys = []string{"default", "typescript", "tailwind"}

// FileMapping pairs an embedded template source with its destination path
// relative to the project directory.
type FileMapping struct {
	Src  string `yaml:"src"`
	Dest string `yaml:"dest"`
}

// Variant describes one template choice: which directories and files it
// materializes and which dependency maps land in the manifest.
type Variant struct {
	Key             string            `yaml:"-"`
	Label           string            `yaml:"label"`
	Description     string            `yaml:"description"`
	Dirs            []string          `yaml:"dirs"`
	Files           []FileMapping     `yaml:"files"`
	Dependencies    map[string]string `yaml:"dependencies"`
	DevDependencies map[string]string `yaml:"dev_dependencies"`
}

// LoadVariant reads and parses the descriptor for the given variant key.
func LoadVariant(key string) (Variant, error) {
	payload, err := fs.ReadFile(assets.TemplatesFS, "templates/"+key+"/variant.yml")
	if err != nil {
		return Variant{}, fmt.Errorf("unknown template %q: %w", key, err)
	}

	var variant Variant
	if err := yaml.Unmarshal(payload, &variant); err != nil {
		return Variant{}, fmt.Errorf("parse variant %q: %w", key, err)
	}
	variant.Key = key
	return variant, nil
}

// Variants loads all known variants in presentation order.
func Variants() ([]Variant, error) {
	out := make([]Variant, 0, len(VariantKeys))
	for _, key := range VariantKeys {
		variant, err := LoadVariant(key)
		if err != nil {
			return nil, err
		}
		out = append(out, variant)
	}
	return out, nil
}

// KnownVariant reports whether key names a shipped template variant.
func KnownVariant(key string) bool {
	for _, known := range VariantKeys {
		if known == key {
			return true
		}
	}
	return false
}

func (v Variant) templatePath(mapping FileMapping) string {
	return "templates/" + v.Key + "/" + mapping.Src
}
