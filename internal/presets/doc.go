// Package presets locates and loads the journal's quick-pick labels
// (presets.json) and falls back to built-in defaults.
//
// Resolution walks an ordered list of candidate locations:
//  1. the override path (TRADE_JOURNAL_PRESETS_PATH, -presets flag or JSON config);
//  2. the directory of the running executable;
//  3. the parent of that directory;
//  4. the working directory and each of its ancestors up to the root;
//  5. the install data directory (<exe dir>/../share/trade-journal).
//
// Candidates are de-duplicated by their symlink-resolved form. The first
// candidate that is a regular file holding a JSON object wins; every other
// outcome (missing, not a regular file, unreadable, malformed) is recorded as
// an [Attempt] and the search moves on. Resolution never fails: with no usable
// file the result is the built-in [Defaults].
//
// A [Resolver] is meant to run once at startup. Its [Resolution] is read-only
// and is passed explicitly to whatever needs the presets.
package presets
