package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gfdmit/adhd-forum/config"
)

func newTestStore(t *testing.T) *sqliteStore {
	t.Helper()
	dir := t.TempDir()
	migrations := filepath.Join(dir, "migrations")
	if err := os.MkdirAll(migrations, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	up := "CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL);\n"
	down := "DROP TABLE IF EXISTS kv;\n"
	if err := os.WriteFile(filepath.Join(migrations, "000001_create_kv.up.sql"), []byte(up), 0o644); err != nil {
		t.Fatalf("write migration: %v", err)
	}
	if err := os.WriteFile(filepath.Join(migrations, "000001_create_kv.down.sql"), []byte(down), 0o644); err != nil {
		t.Fatalf("write migration: %v", err)
	}

	s, err := New(config.Storage{
		Driver:     "sqlite",
		Path:       filepath.Join(dir, "forum.db"),
		Migrations: migrations,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "k", `["a"]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := s.Get(ctx, "k")
	if err != nil || !ok || v != `["a"]` {
		t.Fatalf("Get: v=%q ok=%v err=%v", v, ok, err)
	}

	// Set replaces the whole value.
	if err := s.Set(ctx, "k", `["b"]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _, _ = s.Get(ctx, "k")
	if v != `["b"]` {
		t.Fatalf("after overwrite: %q", v)
	}

	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatalf("key survives Delete")
	}
	// Deleting an absent key is a no-op.
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}
