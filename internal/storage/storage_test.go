package storage

import (
	"bytes"
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/psucodervn/anotador/internal/config"
)

func openAll(t *testing.T) map[string]Store {
	t.Helper()
	bh, err := NewBadgerHoldStorage(filepath.Join(t.TempDir(), "badger"))
	if err != nil {
		t.Fatalf("NewBadgerHoldStorage() error = %v", err)
	}
	fs, err := NewFileStorage(filepath.Join(t.TempDir(), "files"))
	if err != nil {
		t.Fatalf("NewFileStorage() error = %v", err)
	}
	stores := map[string]Store{
		"badgerhold": bh,
		"file":       fs,
		"memory":     NewMemoryStorage(),
	}
	t.Cleanup(func() {
		for _, s := range stores {
			_ = s.Close()
		}
	})
	return stores
}

func TestStore_Contract(t *testing.T) {
	ctx := context.Background()
	for name, s := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			if ok, err := s.Exists(ctx, "mus"); err != nil || ok {
				t.Errorf("Exists() on empty = %v, %v, want false, nil", ok, err)
			}
			if data, err := s.Read(ctx, "mus"); err != nil || data != nil {
				t.Errorf("Read() missing = %q, %v, want nil, nil", data, err)
			}
			if ok, err := s.Delete(ctx, "mus"); err != nil || ok {
				t.Errorf("Delete() missing = %v, %v, want false, nil", ok, err)
			}

			if err := s.Write(ctx, "mus", []byte(`{"a":1}`)); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if err := s.Write(ctx, "mus", []byte(`{"a":2}`)); err != nil {
				t.Fatalf("Write() overwrite error = %v", err)
			}
			if err := s.Write(ctx, "pocha", []byte(`[]`)); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if data, err := s.Read(ctx, "mus"); err != nil || !bytes.Equal(data, []byte(`{"a":2}`)) {
				t.Errorf("Read() = %q, %v, want overwritten value", data, err)
			}
			if ok, err := s.Exists(ctx, "mus"); err != nil || !ok {
				t.Errorf("Exists() = %v, %v, want true, nil", ok, err)
			}
			if keys, err := s.Keys(ctx); err != nil || !reflect.DeepEqual(keys, []string{"mus", "pocha"}) {
				t.Errorf("Keys() = %v, %v", keys, err)
			}

			if ok, err := s.Delete(ctx, "mus"); err != nil || !ok {
				t.Errorf("Delete() = %v, %v, want true, nil", ok, err)
			}
			if ok, _ := s.Exists(ctx, "mus"); ok {
				t.Errorf("Exists() after Delete = true")
			}
		})
	}
}

func TestFileStorage_InvalidKey(t *testing.T) {
	s, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"", "..", "a/b", `a\b`} {
		if err := s.Write(context.Background(), key, nil); err != ErrInvalidKey {
			t.Errorf("Write(%q) error = %v, want %v", key, err, ErrInvalidKey)
		}
	}
}

func TestBadgerHoldStorage_Reopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewBadgerHoldStorage(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Write(ctx, "preferences", []byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = NewBadgerHoldStorage(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if data, _ := s.Read(ctx, "preferences"); string(data) != "x" {
		t.Errorf("Read() after reopen = %q, want x", data)
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		driver  string
		wantErr bool
	}{
		{driver: config.DriverMemory},
		{driver: config.DriverFile},
		{driver: config.DriverBadger},
		{driver: "redis", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			s, err := Open(config.AppConfig{DataDir: t.TempDir(), StoreDriver: tt.driver})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open() error = %v, wantErr %v", err, tt.wantErr)
			}
			if s != nil {
				_ = s.Close()
			}
		})
	}
}
