package safelog_test

import (
	"testing"

	"lantern/internal/safelog"
)

func TestSeverityOrdering(t *testing.T) {
	ordered := []safelog.Severity{
		safelog.SeverityDebug,
		safelog.SeverityInformation,
		safelog.SeverityWarning,
		safelog.SeverityError,
		safelog.SeverityCritical,
	}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Fatalf("expected %s < %s", ordered[i-1], ordered[i])
		}
	}
}

func TestParseSeverity(t *testing.T) {
	cases := map[string]safelog.Severity{
		"critical": safelog.SeverityCritical,
		"FATAL":    safelog.SeverityCritical,
		"error":    safelog.SeverityError,
		" warn ":   safelog.SeverityWarning,
		"warning":  safelog.SeverityWarning,
		"info":     safelog.SeverityInformation,
		"debug":    safelog.SeverityDebug,
		"verbose":  safelog.SeverityDebug,
		"bogus":    safelog.SeverityInformation,
		"":         safelog.SeverityInformation,
	}
	for input, want := range cases {
		if got := safelog.ParseSeverity(input); got != want {
			t.Fatalf("ParseSeverity(%q) = %s, want %s", input, got, want)
		}
	}
}
