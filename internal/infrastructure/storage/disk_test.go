package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anything2image/gallery-api/internal/core/domain"
)

func newDiskStore(t *testing.T) (*DiskStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	return store, dir
}

func put(t *testing.T, store *DiskStore, key string, payload []byte) {
	t.Helper()
	err := store.Put(context.Background(), key, bytes.NewReader(payload), int64(len(payload)), "image/png")
	if err != nil {
		t.Fatalf("put %q: %v", key, err)
	}
}

func TestDiskStore_PutGet_Roundtrip(t *testing.T) {
	store, _ := newDiskStore(t)

	payload := []byte("png-bytes")
	put(t, store, "u1_photo.png", payload)

	rc, err := store.Get(context.Background(), "u1_photo.png")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Fatalf("read %q, want %q", data, payload)
	}
}

func TestDiskStore_Get_Missing(t *testing.T) {
	store, _ := newDiskStore(t)

	if _, err := store.Get(context.Background(), "u1_missing.png"); !errors.Is(err, domain.ErrImageNotFound) {
		t.Fatalf("expected ErrImageNotFound, got %v", err)
	}
}

func TestDiskStore_Exists(t *testing.T) {
	store, _ := newDiskStore(t)
	put(t, store, "u1_photo.png", []byte("x"))

	exists, err := store.Exists(context.Background(), "u1_photo.png")
	if err != nil || !exists {
		t.Fatalf("expected existing key, got %v %v", exists, err)
	}
	exists, err = store.Exists(context.Background(), "u1_other.png")
	if err != nil || exists {
		t.Fatalf("expected missing key, got %v %v", exists, err)
	}
}

func TestDiskStore_Put_OverwriteLastWriteWins(t *testing.T) {
	store, _ := newDiskStore(t)

	put(t, store, "u1_photo.png", []byte("first"))
	put(t, store, "u1_photo.png", []byte("second"))

	rc, err := store.Get(context.Background(), "u1_photo.png")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "second" {
		t.Fatalf("expected last write to win, got %q", data)
	}
}

func TestDiskStore_Put_LeavesNoTempFiles(t *testing.T) {
	store, dir := newDiskStore(t)
	put(t, store, "u1_photo.png", []byte("x"))

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".tmp") {
			t.Fatalf("temp file left behind: %s", entry.Name())
		}
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one file, got %d", len(entries))
	}
}

func TestDiskStore_RejectsTraversalKeys(t *testing.T) {
	store, dir := newDiskStore(t)

	bad := []string{
		"",
		"../escape.png",
		"a/b.png",
		"..",
	}
	for _, key := range bad {
		err := store.Put(context.Background(), key, bytes.NewReader([]byte("x")), 1, "")
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %q, got %v", key, err)
		}
	}

	// Nothing may exist outside the store directory.
	if _, err := os.Stat(filepath.Join(filepath.Dir(dir), "escape.png")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("traversal escaped the store directory")
	}
}
