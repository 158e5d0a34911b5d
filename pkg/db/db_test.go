package db

import (
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	d, err := Init(dbPath)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer d.Close()

	// Schema must be in place after Init.
	var count int
	err = d.QueryRow("SELECT count(*) FROM translations").Scan(&count)
	if err != nil {
		t.Fatalf("translations table missing: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty table, got %d rows", count)
	}

	// Init must be idempotent.
	d2, err := Init(dbPath)
	if err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	d2.Close()
}
