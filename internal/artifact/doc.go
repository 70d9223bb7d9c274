// Package artifact performs the I/O the catalog engine stays out of:
// fetching the upstream catalog documents, downloading driver archives,
// extracting them, and installing the result into the local cache layout
// (<root>/<major>.0/).
//
// The package is organized into a few components:
//   - Client: HTTP fetch and download with retry logic
//   - ExtractZip: archive extraction with top-level directory flattening
//   - Installer: download + extract into the cache, under a file lock
//
// Installer implements the store package's Downloader interface, making
// it the download collaborator the reconciliation engine drives.
package artifact
