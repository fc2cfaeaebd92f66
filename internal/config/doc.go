// Package config loads, normalizes, validates and saves Red Zebra settings.
//
// Settings live in a TOML file (by default ~/.config/redzebra/config.toml).
// The Config value is passed explicitly to whatever needs it; there is no
// process-wide instance. Changes are persisted only through Save, which writes
// the file atomically while holding an advisory lock so concurrent CLI
// invocations never interleave partial writes.
//
// Load repairs values left behind by a first launch (a font size of zero) and
// reports through NeedsSave that the repaired settings should be written back.
package config
