// Where: internal/scaffold/validator.go
// What: Schema validation for generated manifests.
// Why: Catch malformed package.json content before it reaches disk.
package scaffold

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/sprout-dev/sprout/assets"
)

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// ValidateManifest checks the serialized manifest against the embedded
// package.json schema.
func ValidateManifest(payload []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	var document any
	if err := json.Unmarshal(payload, &document); err != nil {
		return fmt.Errorf("parse manifest json: %w", err)
	}

	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("manifest schema: %w", err)
	}
	return nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("manifest.schema.json", bytes.NewReader(assets.ManifestSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("manifest.schema.json")
	})
	return compiledSchema, schemaErr
}
