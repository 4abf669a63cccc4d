package safelog_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"lantern/internal/fault"
	"lantern/internal/safelog"
)

func TestFormatMessageRequiresInput(t *testing.T) {
	_, err := safelog.FormatMessage("", nil)
	if err == nil {
		t.Fatal("expected error for empty message and nil error")
	}
	if !fault.Is(err, fault.InvalidArgument) {
		t.Fatalf("expected invalid-argument fault, got %v", err)
	}
}

func TestFormatMessagePassesPlainMessageThrough(t *testing.T) {
	text, err := safelog.FormatMessage("x", nil)
	if err != nil {
		t.Fatalf("FormatMessage returned error: %v", err)
	}
	if text != "x" {
		t.Fatalf("text = %q, want %q", text, "x")
	}
}

func TestFormatMessagePrefersErrorOverMessage(t *testing.T) {
	rec := fault.New(fault.NotFound, "item 42")
	text, err := safelog.FormatMessage("ignored", rec)
	if err != nil {
		t.Fatalf("FormatMessage returned error: %v", err)
	}
	if text != safelog.FormatChain(rec) {
		t.Fatalf("expected chain rendering, got %q", text)
	}
	if strings.Contains(text, "ignored") {
		t.Fatalf("message should be ignored when an error is present: %q", text)
	}
}

func TestFormatChainSynthesizesPlaceholderForNil(t *testing.T) {
	text := safelog.FormatChain(nil)
	if text == "" {
		t.Fatal("expected usable text for nil error")
	}
	if !strings.Contains(text, fault.Internal.Type) {
		t.Fatalf("expected synthesized internal fault, got %q", text)
	}
}

func TestFormatChainRendersRecordFields(t *testing.T) {
	rec := fault.New(fault.Contract, "bad payload", fault.WithCorrelation("corr-9"))
	text := safelog.FormatChain(rec)
	for _, fragment := range []string{
		"bad payload",
		"type=" + fault.Contract.Type,
		"retry_meaningful=false",
		"correlation_id=corr-9",
		"instance_id=" + rec.InstanceID(),
		"stack:",
	} {
		if !strings.Contains(text, fragment) {
			t.Fatalf("expected %q in rendering:\n%s", fragment, text)
		}
	}
}

func TestFormatChainWalksThreeLevelCauseChain(t *testing.T) {
	root := errors.New("root cause")
	mid := fault.New(fault.Timeout, "middle", fault.WithCause(root))
	inner := fault.New(fault.Transient, "upper", fault.WithCause(mid))
	top := fault.New(fault.Internal, "outermost", fault.WithCause(inner))

	text := safelog.FormatChain(top)
	if got := strings.Count(text, "inner: "); got != 3 {
		t.Fatalf("expected 3 inner markers, got %d in:\n%s", got, text)
	}
	for _, msg := range []string{"outermost", "upper", "middle", "root cause"} {
		if !strings.Contains(text, msg) {
			t.Fatalf("expected %q in rendering:\n%s", msg, text)
		}
	}
	// Outermost first, each wrapping the next.
	if strings.Index(text, "outermost") > strings.Index(text, "middle") {
		t.Fatalf("expected outermost before middle:\n%s", text)
	}
	if strings.Index(text, "middle") > strings.Index(text, "root cause") {
		t.Fatalf("expected middle before root cause:\n%s", text)
	}
}

type cyclicError struct{ msg string }

func (e *cyclicError) Error() string { return e.msg }
func (e *cyclicError) Unwrap() error { return e }

func TestFormatChainTruncatesCycles(t *testing.T) {
	text := safelog.FormatChain(&cyclicError{msg: "ouroboros"})
	if !strings.Contains(text, "truncated") {
		t.Fatalf("expected truncation marker for cyclic chain:\n%s", text)
	}
	if !strings.Contains(text, "ouroboros") {
		t.Fatalf("expected original message in truncated rendering:\n%s", text)
	}
}

func TestFormatChainShowsRuntimeTypeName(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", errors.New("plain"))
	text := safelog.FormatChain(wrapped)
	if !strings.Contains(text, "*fmt.wrapError") {
		t.Fatalf("expected runtime type name in rendering:\n%s", text)
	}
	if !strings.Contains(text, "*errors.errorString") {
		t.Fatalf("expected cause type name in rendering:\n%s", text)
	}
}
