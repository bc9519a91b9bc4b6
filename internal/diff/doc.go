// Package diff parses git unified-diff output into structured change records.
//
// The parser works in two stages: a splitter that segments raw diff text into
// per-file sections and hunks, and a reconstructor that replays each hunk's
// body to rebuild the old and new content fragments with their line ranges.
//
// Parsing never fails hard. Malformed pieces of the input (a file section
// missing its header pair, a hunk with a bad location header, a body line
// referencing a side that does not exist) are skipped and reported as typed
// Diagnostics so callers and tests can inspect exactly what was dropped.
package diff
