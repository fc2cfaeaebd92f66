// Package main hosts the Red Zebra CLI entrypoint and command graph.
//
// The Cobra-based command tree reads document text from a file or stdin and
// hands it to the internal text packages: word counts, zalgo and strike-through
// decoration, and document name validation. It centralizes configuration
// resolution and logging setup so subcommands only deal with presentation.
//
// Keep this package lean: new behavior belongs in the internal packages first,
// then gets surfaced through a command or flag here.
package main
