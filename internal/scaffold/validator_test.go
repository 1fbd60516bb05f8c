// Where: internal/scaffold/validator_test.go
// What: Tests for manifest schema validation.
// Why: Ensure malformed manifests are rejected before hitting disk.
package scaffold

import "testing"

func TestValidateManifestAccepted(t *testing.T) {
	variant, err := LoadVariant("typescript")
	if err != nil {
		t.Fatalf("load variant: %v", err)
	}
	payload, err := BuildManifest("demo-app", variant).Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := ValidateManifest(payload); err != nil {
		t.Fatalf("expected valid manifest, got %v", err)
	}
}

func TestValidateManifestMissingName(t *testing.T) {
	payload := []byte(`{
  "version": "0.1.0",
  "private": true,
  "scripts": {"dev": "next dev", "build": "next build", "start": "next start", "lint": "next lint"},
  "dependencies": {"next": "14.2.3"}
}`)
	if err := ValidateManifest(payload); err == nil {
		t.Fatal("expected schema error for missing name")
	}
}

func TestValidateManifestBadVersion(t *testing.T) {
	payload := []byte(`{
  "name": "demo",
  "version": "latest",
  "private": true,
  "scripts": {"dev": "next dev", "build": "next build", "start": "next start", "lint": "next lint"},
  "dependencies": {"next": "14.2.3"}
}`)
	if err := ValidateManifest(payload); err == nil {
		t.Fatal("expected schema error for non-semver version")
	}
}

func TestValidateManifestInvalidJSON(t *testing.T) {
	if err := ValidateManifest([]byte("{")); err == nil {
		t.Fatal("expected error for invalid json")
	}
}
