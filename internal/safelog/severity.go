package safelog

import (
	"log/slog"
	"strings"
)

// Severity orders log entries from most to least urgent. Values are ordered
// so that a > b means a is more urgent than b.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInformation
	SeverityWarning
	SeverityError
	SeverityCritical
)

// String returns the canonical lowercase name.
func (s Severity) String() string {
	switch s {
	case SeverityCritical:
		return "critical"
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInformation:
		return "information"
	case SeverityDebug:
		return "debug"
	default:
		return "information"
	}
}

// Slog maps the severity onto the slog level scale. Critical lands above
// slog.LevelError so handlers can distinguish it.
func (s Severity) Slog() slog.Level {
	switch s {
	case SeverityCritical:
		return slog.LevelError + 4
	case SeverityError:
		return slog.LevelError
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityDebug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// ParseSeverity maps a config or flag string to a Severity. Unknown values
// fall back to information, matching how the logging constructors treat
// unknown levels.
func ParseSeverity(value string) Severity {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "critical", "fatal":
		return SeverityCritical
	case "error":
		return SeverityError
	case "warning", "warn":
		return SeverityWarning
	case "debug", "verbose":
		return SeverityDebug
	default:
		return SeverityInformation
	}
}
