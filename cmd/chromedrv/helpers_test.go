package main

import (
	"archive/zip"
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// fixtureModern builds a modern catalog document whose download URLs all
// point at archiveURL.
func fixtureModern(archiveURL string) string {
	return fmt.Sprintf(`{
  "versions": [
    {
      "version": "115.0.5790.170",
      "downloads": {
        "chromedriver": [
          {"platform": "linux64", "url": "%[1]s/115/chromedriver-linux64.zip"},
          {"platform": "win64", "url": "%[1]s/115/chromedriver-win64.zip"}
        ]
      }
    },
    {
      "version": "116.0.5845.96",
      "downloads": {
        "chromedriver": [
          {"platform": "linux64", "url": "%[1]s/116/chromedriver-linux64.zip"}
        ]
      }
    }
  ]
}`, archiveURL)
}

const fixtureLegacy = `<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult xmlns="http://doc.s3.amazonaws.com/2006-03-01">
  <Contents><Key>85.0.4183.87/chromedriver_linux64.zip</Key></Contents>
  <Contents><Key>85.0.4183.87/chromedriver_win32.zip</Key></Contents>
  <Contents><Key>85.0.4183.87/notes.txt</Key></Contents>
</ListBucketResult>`

// driverArchive is a minimal modern-layout driver zip.
func driverArchive(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	entry, err := w.Create("chromedriver-linux64/chromedriver")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := entry.Write([]byte("driver binary")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip writer: %v", err)
	}
	return buf.Bytes()
}

// setupCatalogs starts fixture servers for both catalogs plus an archive
// host, and points the CHROMEDRV_* endpoints at them.
func setupCatalogs(t *testing.T) {
	t.Helper()

	archive := driverArchive(t)
	archiveServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	}))
	t.Cleanup(archiveServer.Close)

	modernServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, fixtureModern(archiveServer.URL))
	}))
	t.Cleanup(modernServer.Close)

	legacyServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The bucket serves its listing at the root and archives at
		// the keyed paths.
		if r.URL.Path == "/" {
			fmt.Fprint(w, fixtureLegacy)
			return
		}
		w.Write(archive)
	}))
	t.Cleanup(legacyServer.Close)

	// Keep any real user config out of the test environment.
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CHROMEDRV_MODERN_URL", modernServer.URL)
	t.Setenv("CHROMEDRV_LEGACY_URL", legacyServer.URL)
}

// runCommand executes the CLI with args and returns its combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}
