// Package config loads and validates the TOML configuration that wires the
// default logging sinks at startup. Values not present in the file fall back
// to repository defaults, and all paths are expanded and absolute by the
// time Load returns.
package config
