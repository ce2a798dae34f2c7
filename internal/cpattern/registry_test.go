package cpattern

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRegistrySeedsBuiltins(t *testing.T) {
	r := NewRegistry(nil)
	if len(r.List()) != len(BuiltinCatalogue()) {
		t.Errorf("expected registry to seed all builtins, got %d", len(r.List()))
	}
}

func TestRegistryLoadDirectoryAddsCustomPattern(t *testing.T) {
	dir := t.TempDir()
	yamlContent := "id: custom-docket\nkind: statute\nregex: \"\\\\bNo\\\\.\\\\s+\\\\d{2}-\\\\d{3,5}\\\\b\"\n"
	if err := os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	r := NewRegistry(nil)
	if err := r.LoadDirectory(dir); err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	found := false
	for _, p := range r.List() {
		if p.ID == "custom-docket" {
			found = true
		}
	}
	if !found {
		t.Error("expected custom-docket pattern to be registered")
	}
}

func TestRegistryLoadDirectoryMissingIsNotError(t *testing.T) {
	r := NewRegistry(nil)
	if err := r.LoadDirectory(filepath.Join(t.TempDir(), "does-not-exist")); err != nil {
		t.Errorf("expected missing directory to be a no-op, got %v", err)
	}
}
