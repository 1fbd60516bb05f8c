// Where: assets/scaffold_templates_embed.go
// What: Embed scaffold template variants and the manifest schema.
// Why: Ship all generated-file content inside the binary.
package assets

import "embed"

//go:embed templates
var TemplatesFS embed.FS

//go:embed manifest.schema.json
var ManifestSchema []byte
