package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.Set(ctx, "greeting", []byte(`"hello"`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value, err := s.Get(ctx, "greeting")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(value) != `"hello"` {
		t.Fatalf("unexpected value: %q", value)
	}

	if err := s.Delete(ctx, "greeting"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(ctx, "greeting"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	original := []byte("abc")
	if err := s.Set(ctx, "k", original); err != nil {
		t.Fatalf("Set: %v", err)
	}
	original[0] = 'z'

	stored, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(stored) != "abc" {
		t.Fatalf("stored value aliased caller's buffer: %q", stored)
	}

	stored[0] = 'z'
	again, err := s.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(again) != "abc" {
		t.Fatalf("returned value aliased internal buffer: %q", again)
	}
}

func TestGetJSONRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := SetJSON(ctx, s, "record", record{Name: "sprints", Count: 7}); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}

	decoded, err := GetJSON[record](ctx, s, "record")
	if err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if decoded.Name != "sprints" || decoded.Count != 7 {
		t.Fatalf("unexpected decode: %+v", decoded)
	}
}

func TestGetJSONTreatsCorruptValueAsMiss(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Set(ctx, "broken", []byte(`{"name": "trunc`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	_, err := GetJSON[map[string]string](ctx, s, "broken")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected corrupt value to read as ErrNotFound, got %v", err)
	}
}
