package archive

import (
	"context"
	"testing"

	"edumigrate/internal/config"
)

func TestOpenDisabledWithoutDriver(t *testing.T) {
	store, err := Open(context.Background(), config.Archive{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if store != nil {
		t.Fatalf("empty driver must disable the archive")
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), config.Archive{Driver: "tape"}); err == nil {
		t.Fatalf("expected unknown driver error")
	}
}

func TestOpenS3RequiresBucket(t *testing.T) {
	if _, err := Open(context.Background(), config.Archive{Driver: "s3"}); err == nil {
		t.Fatalf("expected missing bucket error")
	}
}

func TestFilesystemRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := Open(ctx, config.Archive{Driver: "fs", FSRoot: t.TempDir()})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if store.Driver() != DriverFilesystem {
		t.Fatalf("unexpected driver %s", store.Driver())
	}

	key := Key("courses", "do_123")
	if key != "courses/do_123.json" {
		t.Fatalf("unexpected key %s", key)
	}
	if err := store.Put(ctx, key, []byte(`{"name":"Algebra"}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	// Reruns overwrite.
	if err := store.Put(ctx, key, []byte(`{"name":"Algebra II"}`)); err != nil {
		t.Fatalf("overwrite Put: %v", err)
	}
	data, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(data) != `{"name":"Algebra II"}` {
		t.Fatalf("expected latest payload, got %s", data)
	}

	if err := store.Put(ctx, Key("assessments", "a1"), []byte(`[]`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	keys, err := store.List(ctx, "courses/")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(keys) != 1 || keys[0] != "courses/do_123.json" {
		t.Fatalf("unexpected keys %v", keys)
	}
}

func TestFilesystemRejectsTraversal(t *testing.T) {
	store, err := NewFilesystem(t.TempDir())
	if err != nil {
		t.Fatalf("NewFilesystem: %v", err)
	}
	for _, key := range []string{"", "/abs", "../escape", "a/../../b"} {
		if err := store.Put(context.Background(), key, []byte("x")); err == nil {
			t.Fatalf("expected rejection for key %q", key)
		}
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	if store.Driver() != DriverMemory {
		t.Fatalf("unexpected driver %s", store.Driver())
	}
	if err := store.Put(ctx, "users/u1.json", []byte(`{}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}
	data, err := store.Get(ctx, "users/u1.json")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(data) != `{}` {
		t.Fatalf("unexpected payload %s", data)
	}
	if _, err := store.Get(ctx, "users/u2.json"); err == nil {
		t.Fatalf("expected miss error")
	}
	keys, err := store.List(ctx, "users/")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(keys) != 1 {
		t.Fatalf("unexpected keys %v", keys)
	}
}
