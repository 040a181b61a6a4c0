// Package gddoc provides offline lookup of Godot engine API documentation.
// It dumps the engine's structured API description once, flattens it into a
// cross-referenced symbol database, and persists per-symbol Markdown files
// plus a checksummed snapshot of the raw dump so later lookups never touch
// the engine again.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., apijson/, fs/, glamour/).
package gddoc
