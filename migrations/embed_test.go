package migrations

import (
	"strings"
	"testing"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := FS.ReadDir(".")
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no migrations embedded")
	}

	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".sql") {
			t.Errorf("unexpected embedded file %q", entry.Name())
			continue
		}
		data, err := FS.ReadFile(entry.Name())
		if err != nil {
			t.Fatalf("ReadFile(%s) error = %v", entry.Name(), err)
		}
		content := string(data)
		if !strings.Contains(content, "+goose Up") {
			t.Errorf("%s missing goose up marker", entry.Name())
		}
		if !strings.Contains(content, "+goose Down") {
			t.Errorf("%s missing goose down marker", entry.Name())
		}
	}
}

func TestInitialSchemaTables(t *testing.T) {
	data, err := FS.ReadFile("001_initial_schema.sql")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	for _, table := range []string{"users", "onboarding_profiles", "performance_trends"} {
		if !strings.Contains(string(data), table) {
			t.Errorf("initial schema missing table %q", table)
		}
	}
}
