package database

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFirstDirPicksExistingDirectory(t *testing.T) {
	root := t.TempDir()
	missing := filepath.Join(root, "nope")
	file := filepath.Join(root, "file")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}
	dir := filepath.Join(root, "migrations")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := firstDir([]string{missing, file, dir})
	if err != nil {
		t.Fatalf("firstDir: %v", err)
	}
	if got != dir {
		t.Fatalf("expected %s, got %s", dir, got)
	}
}

func TestFirstDirNotFound(t *testing.T) {
	_, err := firstDir([]string{filepath.Join(t.TempDir(), "missing")})
	if !errors.Is(err, ErrMigrationsNotFound) {
		t.Fatalf("expected ErrMigrationsNotFound, got %v", err)
	}
}

func TestRunMigrationsRejectsUnknownDirection(t *testing.T) {
	if _, err := FindMigrationsDir(); err != nil {
		t.Skip("migrations directory not reachable from test cwd")
	}
	if err := RunMigrations("postgres://localhost/none", "sideways"); err == nil {
		t.Fatal("expected error for unknown direction")
	}
}
