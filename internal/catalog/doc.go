// Package catalog normalizes the two upstream ChromeDriver catalogs into a
// single version model and resolves it against caller-supplied filters.
//
// Two adapters feed the resolver:
//   - ParseModern: the Chrome-for-Testing JSON index (majors >= 115)
//   - ParseLegacy: the legacy storage bucket XML listing (majors < 115)
//
// Both produce the same canonical Record type, so nothing downstream of the
// adapters ever sees a source-specific shape. Individual entries that cannot
// be understood are collected as Skipped diagnostics rather than raised;
// a ParseError is returned only when a document is structurally unreadable
// at the container level.
//
// The package performs no I/O. Fetching the documents belongs to
// internal/artifact, and the upstream locations are carried as an Endpoints
// value so tests can point the tool at fixture data.
package catalog
