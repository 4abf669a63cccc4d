package storage_test

import (
	"context"
	"errors"
	"testing"

	"lantern/internal/fault"
	"lantern/internal/storage"
)

func TestCreateAssignsIDAndEtag(t *testing.T) {
	store := storage.NewMemoryStore()
	created, err := store.Create(context.Background(), storage.StoredItem{Payload: "hello"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected assigned ID")
	}
	if created.Etag == "" {
		t.Fatal("expected assigned etag")
	}

	got, err := store.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Payload != "hello" {
		t.Fatalf("payload = %v, want hello", got.Payload)
	}
}

func TestCreateDuplicateIsConflict(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := fault.ContextWithCorrelation(context.Background(), "op-5")
	if _, err := store.Create(ctx, storage.StoredItem{ID: "a"}); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}
	_, err := store.Create(ctx, storage.StoredItem{ID: "a"})
	if err == nil {
		t.Fatal("expected conflict for duplicate id")
	}
	if !fault.Is(err, fault.Conflict) {
		t.Fatalf("expected conflict fault, got %v", err)
	}
	if !fault.RetryMeaningful(err) {
		t.Fatal("conflicts should be retry-meaningful")
	}
	var rec *fault.Record
	if !errors.As(err, &rec) || rec.CorrelationID() != "op-5" {
		t.Fatalf("expected correlation op-5 on conflict, got %v", err)
	}
}

func TestGetMissingIsNotFound(t *testing.T) {
	store := storage.NewMemoryStore()
	_, err := store.Get(context.Background(), "ghost")
	if err == nil {
		t.Fatal("expected error for missing item")
	}
	if !fault.Is(err, fault.NotFound) {
		t.Fatalf("expected not-found fault, got %v", err)
	}
	if fault.RetryMeaningful(err) {
		t.Fatal("not-found should not be retry-meaningful")
	}
}

func TestLenCountsItems(t *testing.T) {
	store := storage.NewMemoryStore()
	for i := 0; i < 3; i++ {
		if _, err := store.Create(context.Background(), storage.StoredItem{}); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}
	if store.Len() != 3 {
		t.Fatalf("Len = %d, want 3", store.Len())
	}
}
