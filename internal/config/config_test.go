package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir string, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
}

func TestReadMissingFile(t *testing.T) {
	conf, err := Read(t.TempDir())
	if err != nil {
		t.Fatalf("Expected no error for missing config, got %v", err)
	}
	if conf.CodeownersFile != "" {
		t.Errorf("Expected no pinned codeowners file, got %q", conf.CodeownersFile)
	}
	if len(conf.Ignore) != 0 {
		t.Errorf("Expected empty ignore list, got %v", conf.Ignore)
	}
	if conf.Enforcement == nil || !conf.Enforcement.FailCheck {
		t.Errorf("Expected fail_check to default to true, got %+v", conf.Enforcement)
	}
}

func TestReadFullConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
codeowners_file = "docs/CODEOWNERS"
ignore = ["vendor/", "generated/"]

[enforcement]
fail_check = false
`)

	conf, err := Read(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if conf.CodeownersFile != "docs/CODEOWNERS" {
		t.Errorf("Expected pinned rule file docs/CODEOWNERS, got %q", conf.CodeownersFile)
	}
	if len(conf.Ignore) != 2 || conf.Ignore[0] != "vendor/" {
		t.Errorf("Expected ignore list [vendor/ generated/], got %v", conf.Ignore)
	}
	if conf.Enforcement.FailCheck {
		t.Errorf("Expected fail_check to be false")
	}
}

func TestReadInvalidToml(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "not [valid toml")

	conf, err := Read(dir)
	if err == nil {
		t.Errorf("Expected an error for invalid TOML")
	}
	if conf == nil || conf.Enforcement == nil || !conf.Enforcement.FailCheck {
		t.Errorf("Expected defaults to be returned alongside the error, got %+v", conf)
	}
}
