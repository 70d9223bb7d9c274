package artifact

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

// writeZip builds a zip fixture at path from entry name -> content.
// Entries ending in "/" become bare directory entries.
func writeZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create zip fixture: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range entries {
		entry, err := w.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := entry.Write([]byte(content)); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip writer: %v", err)
	}
}

func TestExtractZipFlattensModernLayout(t *testing.T) {
	tmpDir := t.TempDir()
	archivePath := filepath.Join(tmpDir, "modern.zip")

	// Modern archives wrap everything in chromedriver-<platform>/.
	writeZip(t, archivePath, map[string]string{
		"chromedriver-win64/":                     "",
		"chromedriver-win64/chromedriver.exe":     "driver binary",
		"chromedriver-win64/LICENSE.chromedriver": "license text",
	})

	destDir := filepath.Join(tmpDir, "out")
	if err := ExtractZip(archivePath, destDir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(destDir, "chromedriver.exe"))
	if err != nil {
		t.Fatalf("driver not extracted at top level: %v", err)
	}
	if string(content) != "driver binary" {
		t.Errorf("content = %q", content)
	}

	// The wrapper directory must not be reproduced.
	if _, err := os.Stat(filepath.Join(destDir, "chromedriver-win64")); !os.IsNotExist(err) {
		t.Errorf("wrapper directory survived extraction: %v", err)
	}
}

func TestExtractZipLegacyFlatLayout(t *testing.T) {
	tmpDir := t.TempDir()
	archivePath := filepath.Join(tmpDir, "legacy.zip")

	// Legacy archives hold the driver at the root.
	writeZip(t, archivePath, map[string]string{
		"chromedriver.exe": "legacy driver",
	})

	destDir := filepath.Join(tmpDir, "out")
	if err := ExtractZip(archivePath, destDir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(destDir, "chromedriver.exe"))
	if err != nil {
		t.Fatalf("driver not extracted: %v", err)
	}
	if string(content) != "legacy driver" {
		t.Errorf("content = %q", content)
	}
}

func TestExtractZipMixedTopLevelIsNotStripped(t *testing.T) {
	tmpDir := t.TempDir()
	archivePath := filepath.Join(tmpDir, "mixed.zip")

	writeZip(t, archivePath, map[string]string{
		"a/file1": "one",
		"b/file2": "two",
	})

	destDir := filepath.Join(tmpDir, "out")
	if err := ExtractZip(archivePath, destDir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(destDir, "a", "file1")); err != nil {
		t.Errorf("a/file1 not preserved: %v", err)
	}
	if _, err := os.Stat(filepath.Join(destDir, "b", "file2")); err != nil {
		t.Errorf("b/file2 not preserved: %v", err)
	}
}

func TestExtractZipRejectsPathTraversal(t *testing.T) {
	tmpDir := t.TempDir()
	archivePath := filepath.Join(tmpDir, "evil.zip")

	writeZip(t, archivePath, map[string]string{
		"ok.txt":           "fine",
		"../../escape.txt": "not fine",
	})

	destDir := filepath.Join(tmpDir, "out")
	if err := ExtractZip(archivePath, destDir); err == nil {
		t.Fatal("expected error for traversal entry")
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "escape.txt")); !os.IsNotExist(err) {
		t.Errorf("traversal entry escaped the destination: %v", err)
	}
}

func TestExtractZipNotAnArchive(t *testing.T) {
	tmpDir := t.TempDir()
	archivePath := filepath.Join(tmpDir, "bogus.zip")
	if err := os.WriteFile(archivePath, []byte("not a zip"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if err := ExtractZip(archivePath, filepath.Join(tmpDir, "out")); err == nil {
		t.Fatal("expected error for invalid archive")
	}
}
