package fault_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"lantern/internal/fault"
)

func TestNewWithoutMessageOrCauseStillPopulatesFriendly(t *testing.T) {
	rec := fault.New(fault.Contract, "", fault.WithCorrelation("corr-123"))
	if rec.FriendlyMessage() == "" {
		t.Fatal("expected non-empty friendly message")
	}
	if !strings.Contains(rec.FriendlyMessage(), "corr-123") {
		t.Fatalf("friendly message missing correlation id: %q", rec.FriendlyMessage())
	}
	if !strings.Contains(rec.FriendlyMessage(), rec.InstanceID()) {
		t.Fatalf("friendly message missing instance id: %q", rec.FriendlyMessage())
	}
	if rec.InstanceID() == "" {
		t.Fatal("expected generated instance id")
	}
}

func TestKindMetadataIsConstantAcrossInstances(t *testing.T) {
	first := fault.New(fault.Contract, "one")
	second := fault.New(fault.Contract, "two")
	if first.Kind().Type != second.Kind().Type {
		t.Fatalf("type discriminator varies: %q vs %q", first.Kind().Type, second.Kind().Type)
	}
	if first.Kind().RetryMeaningful != second.Kind().RetryMeaningful {
		t.Fatal("retry flag varies across instances of one kind")
	}
	if first.Kind().RetryMeaningful {
		t.Fatal("contract violations must never be retry-meaningful")
	}
	if first.InstanceID() == second.InstanceID() {
		t.Fatalf("instance ids must be unique, both %q", first.InstanceID())
	}
}

func TestErrorStringIncludesChain(t *testing.T) {
	base := errors.New("disk unplugged")
	rec := fault.New(fault.Transient, "write failed", fault.WithCause(base))
	msg := rec.Error()
	for _, fragment := range []string{"lantern.transient", "write failed", "disk unplugged"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in %q", fragment, msg)
		}
	}
	if !errors.Is(rec, base) {
		t.Fatal("expected cause to unwrap")
	}
}

func TestIsClassifiesThroughWrapping(t *testing.T) {
	rec := fault.New(fault.NotFound, "item 42")
	wrapped := fmt.Errorf("loading queue: %w", rec)
	if !fault.Is(wrapped, fault.NotFound) {
		t.Fatal("expected NotFound through fmt.Errorf wrapping")
	}
	if fault.Is(wrapped, fault.Timeout) {
		t.Fatal("did not expect Timeout classification")
	}
	kind, ok := fault.KindOf(wrapped)
	if !ok || kind.Type != fault.NotFound.Type {
		t.Fatalf("KindOf = %v, %v; want NotFound", kind, ok)
	}
}

func TestRetryMeaningful(t *testing.T) {
	if fault.RetryMeaningful(fault.New(fault.Contract, "bad input")) {
		t.Fatal("contract violation must not be retryable")
	}
	if !fault.RetryMeaningful(fault.New(fault.Timeout, "slow upstream")) {
		t.Fatal("timeout should be retryable")
	}
	if fault.RetryMeaningful(errors.New("plain")) {
		t.Fatal("unclassified errors must not claim retryability")
	}
	if fault.RetryMeaningful(nil) {
		t.Fatal("nil must not claim retryability")
	}
}

func TestFromContextPicksUpCorrelation(t *testing.T) {
	ctx := fault.ContextWithCorrelation(context.Background(), "op-7")
	rec := fault.FromContext(ctx, fault.Configuration, "missing sink")
	if rec.CorrelationID() != "op-7" {
		t.Fatalf("correlation = %q, want op-7", rec.CorrelationID())
	}

	plain := fault.FromContext(context.Background(), fault.Configuration, "missing sink")
	if plain.CorrelationID() != "" {
		t.Fatalf("expected empty correlation, got %q", plain.CorrelationID())
	}
}

func TestCallStackCaptured(t *testing.T) {
	rec := fault.New(fault.Internal, "boom")
	if len(rec.CallStack()) == 0 {
		t.Fatal("expected captured call stack")
	}
	if !strings.Contains(rec.CallStack().String(), "record_test.go") {
		t.Fatalf("expected this test in the stack, got:\n%s", rec.CallStack().String())
	}
}

func TestKindsListsStableTaxonomy(t *testing.T) {
	kinds := fault.Kinds()
	seen := make(map[string]struct{}, len(kinds))
	for _, kind := range kinds {
		if kind.Type == "" {
			t.Fatal("kind with empty discriminator")
		}
		if kind.MoreInfoURL == "" {
			t.Fatalf("kind %s missing more-info URL", kind.Type)
		}
		if _, dup := seen[kind.Type]; dup {
			t.Fatalf("duplicate discriminator %q", kind.Type)
		}
		seen[kind.Type] = struct{}{}
	}
}
