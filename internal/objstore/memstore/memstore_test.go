package memstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/treepress/treepress/internal/objstore"
)

func TestStore_UploadDownloadRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()
	dir := t.TempDir()

	src := filepath.Join(dir, "src")
	if err := os.WriteFile(src, []byte("object payload"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err := s.Upload(ctx, src, "backups/src"); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	dst := filepath.Join(dir, "dst")
	if err := s.Download(ctx, dst, "backups/src"); err != nil {
		t.Fatalf("Download() error = %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "object payload" {
		t.Errorf("downloaded contents = %q, want %q", got, "object payload")
	}
}

func TestStore_Download_NotFound(t *testing.T) {
	s := New()
	err := s.Download(context.Background(), filepath.Join(t.TempDir(), "out"), "missing")
	if !errors.Is(err, objstore.ErrNotFound) {
		t.Errorf("Download() error = %v, want ErrNotFound", err)
	}
}

func TestStore_Upload_MissingLocalFile(t *testing.T) {
	s := New()
	err := s.Upload(context.Background(), filepath.Join(t.TempDir(), "missing"), "key")
	if !errors.Is(err, objstore.ErrTransferFailed) {
		t.Errorf("Upload() error = %v, want ErrTransferFailed", err)
	}
}

func TestStore_List(t *testing.T) {
	s := New()
	s.SetObject("backups/b", nil)
	s.SetObject("backups/a", nil)
	s.SetObject("other/c", nil)

	keys, err := s.List(context.Background(), "backups/")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"backups/a", "backups/b"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("List() = %v, want %v", keys, want)
	}
}
